// Package analysis drives batch recoding: it parses tabular input into
// records, runs every row through the tnm engine, and produces the immutable
// batch result the writers and the HTTP surface consume.
package analysis

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/oncotools/tnmrecode/internal/conf"
	"github.com/oncotools/tnmrecode/internal/errors"
	"github.com/oncotools/tnmrecode/internal/tnm"
)

// ReadRecords parses CSV input into records using the configured column
// headers. Header matching is exact and case-sensitive; a missing required
// column fails the whole batch rather than silently producing empty output.
// Cells may be blank, and rows shorter than the header are padded with blank
// fields so a trailing empty node-count column does not kill the row.
func ReadRecords(r io.Reader, cols *conf.ColumnSettings) ([]tnm.InputRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Newf("failed to read header row: %w", err).
			Component("analysis").
			Category(errors.CategoryFileParsing).
			Build()
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	required := []string{
		cols.ID, cols.ClinicalT, cols.ClinicalN,
		cols.PathT, cols.PathN, cols.Metastasis, cols.PositiveNodes,
	}
	for _, name := range required {
		if _, ok := index[name]; !ok {
			return nil, errors.Newf("required column %q not found in input", name).
				Component("analysis").
				Category(errors.CategoryFileParsing).
				Context("header_count", len(header)).
				Build()
		}
	}

	cell := func(row []string, name string) string {
		i := index[name]
		if i >= len(row) {
			return ""
		}
		return row[i]
	}

	var records []tnm.InputRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Newf("failed to read record %d: %w", len(records)+1, err).
				Component("analysis").
				Category(errors.CategoryFileParsing).
				Build()
		}
		records = append(records, tnm.InputRecord{
			ID:            strings.TrimSpace(cell(row, cols.ID)),
			ClinicalT:     cell(row, cols.ClinicalT),
			ClinicalN:     cell(row, cols.ClinicalN),
			PathT:         cell(row, cols.PathT),
			PathN:         cell(row, cols.PathN),
			Metastasis:    cell(row, cols.Metastasis),
			PositiveNodes: cell(row, cols.PositiveNodes),
		})
	}

	return records, nil
}
