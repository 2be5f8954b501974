package tnm

import "testing"

func TestConvertT(t *testing.T) {
	tests := []struct {
		in   T7
		want TCategory
	}{
		{T7Zero, T0},
		{T7One, T1},
		{T7Two, T2},
		{T7Three, T3},
		{T7Four, T4},
		{T7FourA, T4},
		{T7FourB, T4},
		{T7InSitu, TInSitu},
		{T7Unset, TUnset},
	}

	for _, tt := range tests {
		if got := ConvertT(tt.in); got != tt.want {
			t.Errorf("ConvertT(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestConvertPathN(t *testing.T) {
	tests := []struct {
		name      string
		n         N7
		nodeCount int
		want      NCategory
	}{
		{"N1 code alone", N7One, NodeCountUnknown, N1},
		{"N2a code alone", N7TwoA, NodeCountUnknown, N1},
		{"small count alone", N7Unset, 3, N1},
		{"count of four stays N1", N7Unset, 4, N1},
		{"count of five becomes N2", N7Unset, 5, N2},
		{"large count becomes N2", N7Unset, 40, N2},
		{"count overrides contradictory code", N7One, 12, N2},
		{"zero count always wins", N7TwoA, 0, N0},
		{"zero count beats unknown code", N7X, 0, N0},
		{"N0 code alone", N7Zero, NodeCountUnknown, N0},
		{"N0 code beats small count", N7Zero, 3, N0},
		{"N2b without count is unmappable", N7TwoB, NodeCountUnknown, NUnset},
		{"N3 without count is unmappable", N7Three, NodeCountUnknown, NUnset},
		{"nothing usable", N7Unset, NodeCountUnknown, NUnset},
		{"unknown code with count uses count", N7X, 2, N1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConvertPathN(tt.n, tt.nodeCount); got != tt.want {
				t.Errorf("ConvertPathN(%q, %d) = %q, want %q", tt.n, tt.nodeCount, got, tt.want)
			}
		})
	}
}

// The pathological node rules are an override chain: when several rules match
// the same record the highest-numbered one must decide the result.
func TestConvertPathNOverrideOrder(t *testing.T) {
	// rule 1 (code N1) vs rule 3 (count > 4): rule 3 wins
	if got := ConvertPathN(N7One, 10); got != N2 {
		t.Errorf("count > 4 should override N1 code, got %q", got)
	}
	// rules 1-3 all matched vs rule 4 (count == 0): rule 4 wins
	if got := ConvertPathN(N7One, 0); got != N0 {
		t.Errorf("zero count should override everything, got %q", got)
	}
	// rule 2 (count < 5) vs rule 1 (code N2a): rule 2 confirms N1
	if got := ConvertPathN(N7TwoA, 2); got != N1 {
		t.Errorf("small count with N2a code should stay N1, got %q", got)
	}
}

func TestConvertClinN(t *testing.T) {
	tests := []struct {
		in   N7
		want NCategory
	}{
		{N7Zero, N0},
		{N7One, N1},
		{N7TwoA, N1},
		{N7TwoB, N1},
		{N7TwoC, N2},
		{N7Three, N3},
		{N7X, NUnset},
		{N7Unset, NUnset},
	}

	for _, tt := range tests {
		if got := ConvertClinN(tt.in); got != tt.want {
			t.Errorf("ConvertClinN(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestConvertM(t *testing.T) {
	tests := []struct {
		name     string
		m        M7
		rawBlank bool
		want     MCategory
	}{
		{"recognized M1", M7One, false, M1},
		{"recognized M0", M7Zero, false, M0},
		{"blank is implicit M0", M7Unset, true, M0},
		{"unrecognized non-blank produces nothing", M7Unset, false, MUnset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConvertM(tt.m, tt.rawBlank); got != tt.want {
				t.Errorf("ConvertM(%q, %v) = %q, want %q", tt.m, tt.rawBlank, got, tt.want)
			}
		})
	}
}
