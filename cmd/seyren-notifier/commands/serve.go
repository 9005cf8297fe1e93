package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"seyren-notifier/infrastructure/server"
)

// NewServeCommand creates the serve command.
func NewServeCommand(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the notification HTTP API",
		Long: `Serves POST /api/notifications, delivery history, health checks and
Prometheus metrics until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			container := app.Container
			cfg := container.Config.Server
			if addr != "" {
				cfg.Addr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := server.New(
				server.Options{
					Addr:            cfg.Addr,
					ReadTimeout:     cfg.ReadTimeout,
					WriteTimeout:    cfg.WriteTimeout,
					ShutdownTimeout: cfg.ShutdownTimeout,
				},
				container.DispatchNotificationUseCase,
				container.DeliveryRepository,
				container.Metrics.Registry(),
				container.Logger,
			)

			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")

	return cmd
}
