package conf

import "testing"

func defaultColumns() ColumnSettings {
	return ColumnSettings{
		ID:            "record_id",
		ClinicalT:     "clin_t",
		ClinicalN:     "clin_n",
		PathT:         "path_t",
		PathN:         "path_n",
		Metastasis:    "m",
		PositiveNodes: "nodes_positive",
	}
}

func TestValidateSettings(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr bool
	}{
		{
			name:    "defaults pass",
			mutate:  func(s *Settings) {},
			wantErr: false,
		},
		{
			name:    "table format passes",
			mutate:  func(s *Settings) { s.Output.Format = "table" },
			wantErr: false,
		},
		{
			name:    "unknown output format",
			mutate:  func(s *Settings) { s.Output.Format = "xlsx" },
			wantErr: true,
		},
		{
			name:    "blank column header",
			mutate:  func(s *Settings) { s.Input.Columns.PathN = "" },
			wantErr: true,
		},
		{
			name:    "duplicate column headers",
			mutate:  func(s *Settings) { s.Input.Columns.PathN = "clin_n" },
			wantErr: true,
		},
		{
			name:    "port zero",
			mutate:  func(s *Settings) { s.Server.Port = 0 },
			wantErr: true,
		},
		{
			name:    "port out of range",
			mutate:  func(s *Settings) { s.Server.Port = 70000 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := &Settings{
				Input:  InputSettings{Columns: defaultColumns()},
				Output: OutputSettings{Format: "csv"},
				Server: ServerSettings{Host: "localhost", Port: 8090},
			}
			tt.mutate(settings)

			err := ValidateSettings(settings)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSettings() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
