package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/kitchen-finder/internal/finder"
	"github.com/ziadkadry99/kitchen-finder/internal/kitchen"
	"github.com/ziadkadry99/kitchen-finder/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the kitchen search web server",
	Long:  `Starts the web server hosting the cloud kitchen search page, its results fragment and a JSON search endpoint.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}

		logger, err := newLogger(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}
		defer logger.Sync()

		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)

		client := kitchen.NewClient(cfg.APIBaseURL, nil, kitchen.NewMetrics(reg))

		srv := server.New(server.Config{
			Port:            cfg.Port,
			AllowAll:        cfg.AllowAllOrigins,
			ShutdownTimeout: 10 * time.Second,
		}, logger, reg)

		finder.New(client, cfg.DefaultLocation, logger).RegisterRoutes(srv.Router())

		// Graceful shutdown: Run drains in-flight requests before returning.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger.Info("kitchenfinder starting",
			zap.String("version", Version),
			zap.Int("port", cfg.Port),
			zap.String("api_base_url", client.BaseURL()),
			zap.String("default_location", cfg.DefaultLocation),
		)

		return srv.Run(ctx)
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
