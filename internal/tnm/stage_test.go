package tnm

import "testing"

func TestClinicalStage(t *testing.T) {
	tests := []struct {
		name  string
		clinT TCategory
		pathT TCategory
		clinN NCategory
		m     MCategory
		want  StageGroup
	}{
		{"T1 N0", T1, TUnset, N0, M0, StageI},
		{"T2 N1", T2, TUnset, N1, M0, StageI},
		{"T0 N1", T0, TUnset, N1, M0, StageI},
		{"T1 N2", T1, TUnset, N2, M0, StageII},
		{"T3 N0", T3, TUnset, N0, M0, StageII},
		{"T3 N2", T3, TUnset, N2, M0, StageII},
		{"T4 N0", T4, TUnset, N0, M0, StageIII},
		{"T1 N3", T1, TUnset, N3, M0, StageIII},
		{"N3 with unknown T", TUnset, TUnset, N3, M0, StageIII},
		{"T4 with unknown N", T4, TUnset, NUnset, M0, StageIII},
		{"in situ T yields no numeric group", TInSitu, TUnset, N0, M0, Unstaged},
		{"unknown T and N", TUnset, TUnset, NUnset, M0, Unstaged},
		{"M1 forces stage 4", T1, TUnset, N0, M1, StageIV},
		{"M1 forces stage 4 even unstaged", TUnset, TUnset, NUnset, M1, StageIV},
		// subset fallback: pathological T substitutes for a missing clinical
		// T when a usable clinical N is present
		{"pT fallback", TUnset, T3, N1, M0, StageII},
		{"pT fallback needs usable cN", TUnset, T3, NUnset, M0, Unstaged},
		{"present cT is never overridden", T1, T3, N1, M0, StageI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClinicalStage(tt.clinT, tt.pathT, tt.clinN, tt.m); got != tt.want {
				t.Errorf("ClinicalStage(%q, %q, %q, %q) = %q, want %q",
					tt.clinT, tt.pathT, tt.clinN, tt.m, got, tt.want)
			}
		})
	}
}

func TestPathologicalStage(t *testing.T) {
	tests := []struct {
		name string
		t8   TCategory
		n8   NCategory
		m    MCategory
		want StageGroup
	}{
		{"T1 N0", T1, N0, M0, StageI},
		{"T2 N1", T2, N1, M0, StageI},
		{"T1 N2", T1, N2, M0, StageII},
		{"T3 N0", T3, N0, M0, StageII},
		{"T4 N1", T4, N1, M0, StageII},
		{"T3 N2", T3, N2, M0, StageIII},
		{"T4 N2", T4, N2, M0, StageIII},
		{"unknown T", TUnset, N1, M0, Unstaged},
		{"unknown N", T2, NUnset, M0, Unstaged},
		{"in situ T", TInSitu, N0, M0, Unstaged},
		{"M1 promotes an existing stage", T2, N1, M1, StageIV},
		// metastasis alone cannot create a pathological stage
		{"M1 does not create a stage", TUnset, NUnset, M1, Unstaged},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PathologicalStage(tt.t8, tt.n8, tt.m); got != tt.want {
				t.Errorf("PathologicalStage(%q, %q, %q) = %q, want %q",
					tt.t8, tt.n8, tt.m, got, tt.want)
			}
		})
	}
}

func TestBestStage(t *testing.T) {
	tests := []struct {
		name      string
		pathT     TCategory
		clinT     TCategory
		pathStage StageGroup
		clinStage StageGroup
		want      StageGroup
	}{
		{"pathological preferred", T2, T2, StageI, StageII, StageI},
		{"clinical fallback", TUnset, T2, Unstaged, StageII, StageII},
		{"nothing staged", TUnset, TUnset, Unstaged, Unstaged, Unstaged},
		{"in situ pT beats a numeric group", TInSitu, T2, Unstaged, StageII, StageInSitu},
		{"in situ cT without path stage", TUnset, TInSitu, Unstaged, Unstaged, StageInSitu},
		{"in situ cT loses to a path stage", T2, TInSitu, StageI, Unstaged, StageI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BestStage(tt.pathT, tt.clinT, tt.pathStage, tt.clinStage); got != tt.want {
				t.Errorf("BestStage(%q, %q, %q, %q) = %q, want %q",
					tt.pathT, tt.clinT, tt.pathStage, tt.clinStage, got, tt.want)
			}
		})
	}
}
