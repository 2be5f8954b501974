package analysis

import "github.com/oncotools/tnmrecode/internal/tnm"

// Summary is the derived statistics view over one batch.
type Summary struct {
	Total           int     `json:"total"`
	Staged          int     `json:"staged"`
	Unstaged        int     `json:"unstaged"`
	PercentStaged   float64 `json:"percentStaged"`
	PercentPathPath float64 `json:"percentPathological"` // share of staged records on the pathological path
	FlaggedRecords  int     `json:"flaggedRecords"`
	InSituRecords   int     `json:"inSituRecords"`
}

// BuildSummary computes the summary statistics for a result set. A record
// counts as staged when it resolved to any best stage, the in situ marker
// included.
func BuildSummary(results []tnm.Result) Summary {
	s := Summary{Total: len(results)}

	pathological := 0
	for i := range results {
		res := &results[i]
		if res.BestStage == tnm.Unstaged {
			s.Unstaged++
			continue
		}
		s.Staged++
		if res.Path == tnm.PathPathological {
			pathological++
		}
	}
	for i := range results {
		if results[i].Flags.Any() {
			s.FlaggedRecords++
		}
		if results[i].Flags.InSitu {
			s.InSituRecords++
		}
	}

	if s.Total > 0 {
		s.PercentStaged = 100 * float64(s.Staged) / float64(s.Total)
	}
	if s.Staged > 0 {
		s.PercentPathPath = 100 * float64(pathological) / float64(s.Staged)
	}
	return s
}
