package serve

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oncotools/tnmrecode/internal/analysis"
	"github.com/oncotools/tnmrecode/internal/api"
	"github.com/oncotools/tnmrecode/internal/conf"
	"github.com/oncotools/tnmrecode/internal/logging"
	"github.com/oncotools/tnmrecode/internal/observability"
)

// Command creates the serve command running the upload/review HTTP server.
func Command(settings *conf.Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the batch upload and review server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(settings)
		},
	}

	cmd.Flags().IntVarP(&settings.Server.Port, "port", "p", settings.Server.Port, "Port for the HTTP server")

	return cmd
}

func runServer(settings *conf.Settings) error {
	metrics, err := observability.NewMetrics()
	if err != nil {
		logging.Warn("metrics disabled", "error", err)
		metrics = nil
	} else {
		analysis.SetMetrics(metrics.Recoder)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	controller := api.New(settings, metrics)
	return controller.Start(ctx)
}
