package conf

import (
	"github.com/oncotools/tnmrecode/internal/errors"
)

// ValidateSettings checks the loaded configuration for values that would
// make a batch run or server start misbehave.
func ValidateSettings(settings *Settings) error {
	if err := validateOutputSettings(&settings.Output); err != nil {
		return err
	}
	if err := validateColumnSettings(&settings.Input.Columns); err != nil {
		return err
	}
	return validateServerSettings(&settings.Server)
}

func validateOutputSettings(output *OutputSettings) error {
	switch output.Format {
	case "csv", "table":
		return nil
	default:
		return errors.Newf("invalid output format: %s", output.Format).
			Component("conf").
			Category(errors.CategoryValidation).
			Context("allowed", "csv, table").
			Build()
	}
}

func validateColumnSettings(cols *ColumnSettings) error {
	named := map[string]string{
		"id":            cols.ID,
		"clinicalt":     cols.ClinicalT,
		"clinicaln":     cols.ClinicalN,
		"patht":         cols.PathT,
		"pathn":         cols.PathN,
		"metastasis":    cols.Metastasis,
		"positivenodes": cols.PositiveNodes,
	}

	seen := make(map[string]string, len(named))
	for key, header := range named {
		if header == "" {
			return errors.Newf("input column %s has no header configured", key).
				Component("conf").
				Category(errors.CategoryValidation).
				Build()
		}
		if other, dup := seen[header]; dup {
			return errors.Newf("input columns %s and %s share header %q", key, other, header).
				Component("conf").
				Category(errors.CategoryValidation).
				Build()
		}
		seen[header] = key
	}
	return nil
}

func validateServerSettings(server *ServerSettings) error {
	if server.Port < 1 || server.Port > 65535 {
		return errors.Newf("invalid server port: %d", server.Port).
			Component("conf").
			Category(errors.CategoryValidation).
			Build()
	}
	return nil
}
