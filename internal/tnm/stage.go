package tnm

// Stage grouping rules. Like the node conversion these are ordered override
// chains: each rule is evaluated in turn and a later match overwrites an
// earlier one, so a T4/N3 record always ends on stage 3 before the metastasis
// override is considered.

func tIn(t TCategory, set ...TCategory) bool {
	for _, c := range set {
		if t == c {
			return true
		}
	}
	return false
}

func nIn(n NCategory, set ...NCategory) bool {
	for _, c := range set {
		if n == c {
			return true
		}
	}
	return false
}

func clinicalStageFromTN(t TCategory, n NCategory) StageGroup {
	s := Unstaged
	if nIn(n, N0, N1) && tIn(t, T0, T1, T2) {
		s = StageI
	}
	if (n == N2 && tIn(t, T0, T1, T2, T3)) || (t == T3 && nIn(n, N0, N1, N2)) {
		s = StageII
	}
	if n == N3 || t == T4 {
		s = StageIII
	}
	return s
}

// ClinicalStage derives the clinical stage group from the converted codes.
// When the clinical T is unavailable but a pathological T exists alongside a
// usable clinical N, the pathological T substitutes for it: T-assignment
// criteria are identical across the two staging paths under both editions, so
// the substitution is sound for clinical staging purposes. A recognized M1
// forces stage 4 unconditionally.
func ClinicalStage(clinT, pathT TCategory, clinN NCategory, m MCategory) StageGroup {
	t := clinT
	if t == TUnset && pathT != TUnset && clinN != NUnset {
		t = pathT
	}
	s := clinicalStageFromTN(t, clinN)
	if m == M1 {
		s = StageIV
	}
	return s
}

// PathologicalStage derives the pathological stage group. There is no
// substitution fallback on this axis, and M1 promotes to stage 4 only when a
// stage was already computed: metastasis alone cannot create a pathological
// stage for a record whose T or N could not be converted.
func PathologicalStage(t TCategory, n NCategory, m MCategory) StageGroup {
	s := Unstaged
	if tIn(t, T0, T1, T2) && nIn(n, N0, N1) {
		s = StageI
	}
	if (tIn(t, T0, T1, T2) && n == N2) || (tIn(t, T3, T4) && nIn(n, N0, N1)) {
		s = StageII
	}
	if tIn(t, T3, T4) && n == N2 {
		s = StageIII
	}
	if m == M1 && s != Unstaged {
		s = StageIV
	}
	return s
}

// BestStage resolves the single overall stage for a record: the pathological
// stage when one exists, otherwise the clinical stage. An in situ pathological
// T, or an in situ clinical T on a record with no pathological stage, takes
// precedence over any numeric group because the histology is no longer staged
// at all under the 8th edition.
func BestStage(pathT, clinT TCategory, pathStage, clinStage StageGroup) StageGroup {
	best := pathStage
	if best == Unstaged {
		best = clinStage
	}
	if pathT == TInSitu || (clinT == TInSitu && pathStage == Unstaged) {
		best = StageInSitu
	}
	return best
}
