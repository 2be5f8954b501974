package analysis

import (
	"sync"
	"time"

	"github.com/oncotools/tnmrecode/internal/observability/metrics"
	"github.com/oncotools/tnmrecode/internal/tnm"
)

// Batch is the complete result of one recoding run. It is built once per
// invocation, never mutated afterwards, and replaced wholesale when a new
// input is processed. Every input record yields exactly one result, in input
// order.
type Batch struct {
	Results   []tnm.Result `json:"results"`
	Summary   Summary      `json:"summary"`
	CreatedAt time.Time    `json:"createdAt"`
}

var (
	recoderMetrics   *metrics.RecoderMetrics
	recoderMetricsMu sync.RWMutex
)

// SetMetrics wires the recoder metrics into batch processing. Safe to leave
// unset, metrics reporting is then skipped.
func SetMetrics(m *metrics.RecoderMetrics) {
	recoderMetricsMu.Lock()
	recoderMetrics = m
	recoderMetricsMu.Unlock()
}

func getMetrics() *metrics.RecoderMetrics {
	recoderMetricsMu.RLock()
	defer recoderMetricsMu.RUnlock()
	return recoderMetrics
}

// RunBatch recodes every record in a single pass. Rows are independent: no
// result depends on any other row, and a row with unusable inputs still
// produces a (flagged) result.
func RunBatch(records []tnm.InputRecord) *Batch {
	start := time.Now()

	results := make([]tnm.Result, 0, len(records))
	for _, rec := range records {
		results = append(results, tnm.Recode(rec))
	}

	batch := &Batch{
		Results:   results,
		Summary:   BuildSummary(results),
		CreatedAt: time.Now(),
	}

	if m := getMetrics(); m != nil {
		for i := range results {
			reportResult(m, &results[i])
		}
		m.RecordBatch(len(results), time.Since(start))
	}

	return batch
}

func reportResult(m *metrics.RecoderMetrics, res *tnm.Result) {
	m.RecordProcessed(string(res.Path))
	m.RecordStage(string(res.BestStage))

	flags := map[string]bool{
		"path_n_unmapped": res.Flags.PathNUnmapped,
		"clin_n_unmapped": res.Flags.ClinNUnmapped,
		"path_t_unmapped": res.Flags.PathTUnmapped,
		"clin_t_unmapped": res.Flags.ClinTUnmapped,
		"in_situ":         res.Flags.InSitu,
		"m_unmapped":      res.Flags.MUnmapped,
	}
	for name, raised := range flags {
		if raised {
			m.RecordFlag(name)
		}
	}
}
