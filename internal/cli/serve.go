package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"JaundiceRate/internal/app"
	"JaundiceRate/internal/logging"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP scoring endpoint",
	Long: `Starts an HTTP server exposing GET / with a comma-separated "urls" query
parameter. Results come back as a JSON array once the whole batch finishes;
per-article failures are reported inside the array, never as a 5xx.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		logger := logging.New(cfg.Logging.Level)

		application, err := app.New(cfg, logger)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return application.Serve(ctx)
	},
}
