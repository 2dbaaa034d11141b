package main

import (
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/culinary/config"
	"github.com/randalmurphal/culinary/server"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		addr  string
		watch bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the menu HTTP API",
		Example: `  culinary serve --addr :8080
  culinary serve --config culinary.toml --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			client, err := a.newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			cfg := a.cfg
			if addr != "" {
				cfg.Server.Addr = addr
			}

			srv := server.New(cfg.NewGenerator(client),
				server.WithParser(cfg.NewParser()),
				server.WithItemsPerSection(cfg.Generation.ItemsPerSection),
				server.WithPublicURL(cfg.Server.PublicURL),
				server.WithAllowedOrigins(cfg.Server.AllowedOrigins...),
				server.WithTimeouts(cfg.Server.ReadTimeout.Std(), cfg.Server.WriteTimeout.Std()),
			)

			if watch && a.configPath != "" {
				// Provider and server settings need a restart; parsing and
				// prompt settings apply to the next request.
				err := config.Watch(ctx, a.configPath, func(next config.Config) {
					srv.SetParser(next.NewParser())
					srv.SetGenerator(next.NewGenerator(client))
				})
				if err != nil {
					return err
				}
				slog.Info("watching config", slog.String("path", a.configPath))
			}

			return srv.ListenAndServe(ctx, cfg.Server.Addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "reload parser and prompt settings when the config file changes")

	return cmd
}
