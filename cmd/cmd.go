// Package cmd assembles the cobra command tree.
package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/oncotools/tnmrecode/cmd/file"
	"github.com/oncotools/tnmrecode/cmd/serve"
	"github.com/oncotools/tnmrecode/cmd/version"
	"github.com/oncotools/tnmrecode/internal/conf"
	"github.com/oncotools/tnmrecode/internal/logging"
)

// RootCommand creates and returns the root command
func RootCommand(settings *conf.Settings) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tnmrecode",
		Short: "AJCC 7th to 8th edition TNM recoding for HPV-associated oropharyngeal cancer",
	}

	setupFlags(rootCmd, settings)

	subcommands := []*cobra.Command{
		file.Command(settings),
		serve.Command(settings),
		version.Command(),
	}
	rootCmd.AddCommand(subcommands...)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := cmd.Flags().Parse(args); err != nil {
			return err
		}
		if settings.Debug {
			logging.SetLevel(slog.LevelDebug)
		}
		return nil
	}

	return rootCmd
}

// setupFlags defines flags that are global to the command line interface
func setupFlags(rootCmd *cobra.Command, settings *conf.Settings) {
	rootCmd.PersistentFlags().BoolVarP(&settings.Debug, "debug", "d", viper.GetBool("debug"), "Enable debug output")
	rootCmd.PersistentFlags().StringVarP(&settings.Output.Format, "format", "f", viper.GetString("output.format"), "Output format: csv or table")

	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		logging.Error("error binding flags", "error", err)
	}
}
