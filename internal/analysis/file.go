package analysis

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/oncotools/tnmrecode/internal/conf"
	"github.com/oncotools/tnmrecode/internal/errors"
	"github.com/oncotools/tnmrecode/internal/logging"
)

// FileAnalysis recodes one CSV batch file and writes the results according to
// the output settings.
func FileAnalysis(settings *conf.Settings) error {
	logger := logging.ForService("analysis")

	if err := validateInputFile(settings.Input.Path); err != nil {
		return err
	}

	file, err := os.Open(settings.Input.Path)
	if err != nil {
		return errors.New(err).
			Component("analysis").
			Category(errors.CategoryFileIO).
			Context("path", settings.Input.Path).
			Build()
	}
	defer file.Close()

	records, err := ReadRecords(file, &settings.Input.Columns)
	if err != nil {
		return err
	}

	batch := RunBatch(records)
	if logger != nil {
		logger.Info("batch recoded",
			"input", filepath.Base(settings.Input.Path),
			"records", batch.Summary.Total,
			"staged", batch.Summary.Staged,
			"unstaged", batch.Summary.Unstaged,
			"flagged", batch.Summary.FlaggedRecords)
	}

	return writeResults(settings, batch)
}

// validateInputFile checks that the input path points at a readable,
// non-empty regular file.
func validateInputFile(path string) error {
	if path == "" {
		return errors.NewStd("no input file specified")
	}
	info, err := os.Stat(path)
	if err != nil {
		return errors.Newf("cannot access input file %s: %w", filepath.Base(path), err).
			Component("analysis").
			Category(errors.CategoryFileIO).
			Build()
	}
	if info.IsDir() {
		return errors.Newf("input path %s is a directory, not a file", filepath.Base(path)).
			Component("analysis").
			Category(errors.CategoryValidation).
			Build()
	}
	if info.Size() == 0 {
		return errors.Newf("input file %s is empty", filepath.Base(path)).
			Component("analysis").
			Category(errors.CategoryValidation).
			Build()
	}
	return nil
}

// writeResults sends the batch to the configured destination, stdout when no
// output path is set.
func writeResults(settings *conf.Settings, batch *Batch) error {
	out := os.Stdout
	if settings.Output.Path != "" {
		path := settings.Output.Path
		if settings.Output.Format == "csv" && !strings.HasSuffix(path, ".csv") {
			path += ".csv"
		}
		file, err := os.Create(path)
		if err != nil {
			return errors.Newf("failed to create output file %s: %w", path, err).
				Component("analysis").
				Category(errors.CategoryFileIO).
				Build()
		}
		defer file.Close()
		out = file
	}

	switch settings.Output.Format {
	case "table":
		return WriteBatchTable(out, batch)
	default:
		return WriteBatchCsv(out, batch)
	}
}
