package file

import (
	"github.com/spf13/cobra"

	"github.com/oncotools/tnmrecode/internal/analysis"
	"github.com/oncotools/tnmrecode/internal/conf"
)

// Command creates the file command for recoding a single CSV batch.
func Command(settings *conf.Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "file [input.csv]",
		Short: "Recode a CSV batch of TNM records",
		Long:  `Recode a CSV batch of 7th edition TNM records to 8th edition codes and stage groups.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings.Input.Path = args[0]
			return analysis.FileAnalysis(settings)
		},
	}

	setupFlags(cmd, settings)

	return cmd
}

// setupFlags configures flags specific to the file command.
func setupFlags(cmd *cobra.Command, settings *conf.Settings) {
	cmd.Flags().StringVarP(&settings.Output.Path, "output", "o", "", "Path to output file, stdout when omitted")
}
