package analysis

import (
	"encoding/csv"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/oncotools/tnmrecode/internal/errors"
	"github.com/oncotools/tnmrecode/internal/tnm"
)

// csvHeader lists the export columns, one group per concern: identifier,
// converted codes, stage groups, validation flags.
var csvHeader = []string{
	"record_id",
	"path_t8", "path_n8", "clin_t8", "clin_n8", "m8",
	"clinical_stage", "pathological_stage", "best_stage",
	"err_path_n", "err_clin_n", "err_path_t", "err_clin_t", "flag_in_situ", "err_m",
}

func csvRow(res *tnm.Result) []string {
	flag := func(b bool) string {
		if b {
			return "1"
		}
		return "0"
	}
	return []string{
		res.ID,
		string(res.PathT), string(res.PathN), string(res.ClinT), string(res.ClinN), string(res.M),
		string(res.ClinicalStage), string(res.PathologicalStage), string(res.BestStage),
		flag(res.Flags.PathNUnmapped), flag(res.Flags.ClinNUnmapped),
		flag(res.Flags.PathTUnmapped), flag(res.Flags.ClinTUnmapped),
		flag(res.Flags.InSitu), flag(res.Flags.MUnmapped),
	}
}

// WriteBatchCsv writes the batch results to the destination in CSV format.
func WriteBatchCsv(w io.Writer, batch *Batch) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return errors.Newf("failed to write CSV header: %w", err).
			Component("analysis").
			Category(errors.CategoryFileIO).
			Build()
	}
	for i := range batch.Results {
		if err := writer.Write(csvRow(&batch.Results[i])); err != nil {
			return errors.Newf("failed to write CSV record: %w", err).
				Component("analysis").
				Category(errors.CategoryFileIO).
				Build()
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.New(err).
			Component("analysis").
			Category(errors.CategoryFileIO).
			Build()
	}
	return nil
}

// WriteBatchTable writes the batch results as an aligned text table, for
// on-screen review of small batches.
func WriteBatchTable(w io.Writer, batch *Batch) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "ID\tpT8\tpN8\tcT8\tcN8\tM8\tcStage\tpStage\tBest\tFlags")
	for i := range batch.Results {
		res := &batch.Results[i]
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			res.ID,
			res.PathT, res.PathN, res.ClinT, res.ClinN, res.M,
			res.ClinicalStage, res.PathologicalStage, res.BestStage,
			flagSummary(res.Flags))
	}

	s := batch.Summary
	fmt.Fprintf(tw, "\nTotal %d, staged %d (%.1f%%), unstaged %d, pathological path %.1f%% of staged\n",
		s.Total, s.Staged, s.PercentStaged, s.Unstaged, s.PercentPathPath)

	if err := tw.Flush(); err != nil {
		return errors.New(err).
			Component("analysis").
			Category(errors.CategoryFileIO).
			Build()
	}
	return nil
}

func flagSummary(f tnm.Flags) string {
	if !f.Any() && !f.InSitu {
		return "-"
	}
	out := ""
	add := func(raised bool, code string) {
		if raised {
			out += code
		}
	}
	add(f.PathNUnmapped, "pN ")
	add(f.ClinNUnmapped, "cN ")
	add(f.PathTUnmapped, "pT ")
	add(f.ClinTUnmapped, "cT ")
	add(f.InSitu, "is ")
	add(f.MUnmapped, "M ")
	return out[:len(out)-1]
}
