package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oncotools/tnmrecode/internal/buildinfo"
)

// Command creates the version command.
func Command() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			info := buildinfo.Current()
			fmt.Printf("tnmrecode %s (built %s)\n", info.Version, info.BuildDate)
		},
	}
}
