package tnm

// Edition conversion rules. The node rules are ordered override chains: every
// rule is evaluated and a later match overwrites an earlier one, so the
// evaluation order below is part of the contract and must not be rearranged.

// ConvertT maps a normalized 7th edition T category to the 8th edition.
// The rule is shared by the clinical and pathological axes: T0 through T3 are
// carried over, the locally-advanced T4 subdivisions collapse into T4, and
// carcinoma in situ maps to the special in situ category because the 8th
// edition no longer stages that histology for this tumor site.
func ConvertT(t T7) TCategory {
	switch t {
	case T7Zero:
		return T0
	case T7One:
		return T1
	case T7Two:
		return T2
	case T7Three:
		return T3
	case T7Four, T7FourA, T7FourB:
		return T4
	case T7InSitu:
		return TInSitu
	default:
		return TUnset
	}
}

// ConvertPathN derives the 8th edition pathological node category. The
// positive-node count, when recorded, is authoritative over the raw 7th
// edition code: it is finer-grained ground truth from the dissection
// specimen. The chain therefore runs code rule first, count rules after it,
// and the zero-count rule last so that zero positive nodes always wins.
func ConvertPathN(n N7, nodeCount int) NCategory {
	out := NUnset
	if n == N7One || n == N7TwoA {
		out = N1
	}
	if nodeCountValid(nodeCount) && nodeCount < 5 {
		out = N1
	}
	if nodeCountValid(nodeCount) && nodeCount > 4 {
		out = N2
	}
	if n == N7Zero || nodeCount == 0 {
		out = N0
	}
	return out
}

// ConvertClinN derives the 8th edition clinical node category. The node count
// never applies on this axis: it describes dissected nodes and only informs
// pathological staging.
func ConvertClinN(n N7) NCategory {
	switch n {
	case N7Zero:
		return N0
	case N7One, N7TwoA, N7TwoB:
		return N1
	case N7TwoC:
		return N2
	case N7Three:
		return N3
	default:
		return NUnset
	}
}

// ConvertM derives the shared metastasis category. A blank field counts as M0
// by convention and a recognized M0 token confirms it; only a recognized M1
// token yields M1. A non-blank token that matches neither form produces no
// value at all, which the validator reports as an inconsistent metastasis
// token.
func ConvertM(m M7, rawBlank bool) MCategory {
	switch {
	case m == M7One:
		return M1
	case m == M7Zero || rawBlank:
		return M0
	default:
		return MUnset
	}
}
