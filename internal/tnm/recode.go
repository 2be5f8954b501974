package tnm

import "strings"

// InputRecord is one already-parsed source row. All code fields are raw free
// text and may be blank or carry any casing/spacing variant of a recognized
// token; PositiveNodes is the raw count field before parsing.
type InputRecord struct {
	ID            string
	ClinicalT     string
	ClinicalN     string
	PathT         string
	PathN         string
	Metastasis    string
	PositiveNodes string
}

// Flags is the per-record validation report. The flags are independent, never
// block processing, and describe missing or unmappable inputs relative to the
// staging path that was selected for the record.
type Flags struct {
	PathNUnmapped bool `json:"pathNUnmapped"`
	ClinNUnmapped bool `json:"clinNUnmapped"`
	PathTUnmapped bool `json:"pathTUnmapped"`
	ClinTUnmapped bool `json:"clinTUnmapped"`
	InSitu        bool `json:"inSitu"` // informational, not a data-quality defect
	MUnmapped     bool `json:"mUnmapped"`
}

// Any reports whether any data-quality flag is raised. The in situ flag is
// informational and excluded.
func (f Flags) Any() bool {
	return f.PathNUnmapped || f.ClinNUnmapped || f.PathTUnmapped || f.ClinTUnmapped || f.MUnmapped
}

// Result is the recoded output row for one input record.
type Result struct {
	ID   string      `json:"id"`
	Path StagingPath `json:"stagingPath"`

	PathT TCategory `json:"pathT"`
	PathN NCategory `json:"pathN"`
	ClinT TCategory `json:"clinT"`
	ClinN NCategory `json:"clinN"`
	M     MCategory `json:"m"`

	ClinicalStage     StageGroup `json:"clinicalStage"`
	PathologicalStage StageGroup `json:"pathologicalStage"`
	BestStage         StageGroup `json:"bestStage"`

	Flags Flags `json:"flags"`
}

// Recode runs one record through the full pipeline: normalize, select the
// staging path, convert each axis, derive the stage groups and build the
// validation flags. It is deterministic and depends on nothing outside the
// record itself.
func Recode(rec InputRecord) Result {
	nodeCount := ParseNodeCount(rec.PositiveNodes)
	path := SelectPath(rec.PathN, nodeCount)

	pathT := ConvertT(NormalizeT(rec.PathT))
	clinT := ConvertT(NormalizeT(rec.ClinicalT))
	pathN := ConvertPathN(NormalizeN(rec.PathN), nodeCount)
	clinN := ConvertClinN(NormalizeN(rec.ClinicalN))

	mRawBlank := strings.TrimSpace(rec.Metastasis) == ""
	m := ConvertM(NormalizeM(rec.Metastasis), mRawBlank)

	// Both stage branches are always evaluated: the pathological branch can
	// only produce a stage when the pathological path was selected (its node
	// conversion needs pathological evidence), and the clinical stage doubles
	// as the best-stage fallback for pathological-path records whose T could
	// not be converted.
	pathStage := PathologicalStage(pathT, pathN, m)
	clinStage := ClinicalStage(clinT, pathT, clinN, m)
	best := BestStage(pathT, clinT, pathStage, clinStage)

	res := Result{
		ID:                rec.ID,
		Path:              path,
		PathT:             pathT,
		PathN:             pathN,
		ClinT:             clinT,
		ClinN:             clinN,
		M:                 m,
		ClinicalStage:     clinStage,
		PathologicalStage: pathStage,
		BestStage:         best,
		Flags: Flags{
			PathNUnmapped: path == PathPathological && pathN == NUnset,
			ClinNUnmapped: path == PathClinical && clinN == NUnset,
			PathTUnmapped: path == PathPathological && pathT == TUnset,
			ClinTUnmapped: path == PathClinical && clinT == TUnset,
			InSitu:        pathT == TInSitu || clinT == TInSitu,
			MUnmapped:     !mRawBlank && m == MUnset,
		},
	}

	// The node field of the branch that was not selected is reported as not
	// applicable rather than unrecognized.
	if path == PathPathological {
		res.ClinN = NNotApplicable
	} else {
		res.PathN = NNotApplicable
	}

	return res
}
