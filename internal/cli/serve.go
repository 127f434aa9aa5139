package cli

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/metrics"
	"github.com/Zachkp/folio/internal/server"
	"github.com/Zachkp/folio/internal/visits"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the content API",
	Long: `Start the HTTP API. Settings come from the environment (or a .env file).

Examples:
  folio serve              # Listen on $PORT, 8080 by default
  folio serve --port 3000  # Listen on port 3000`,
	RunE: runServe,
}

var servePort string

const cleanupInterval = 24 * time.Hour

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "Port to listen on (overrides PORT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if servePort != "" {
		cfg.Port = servePort
	}

	tenants, err := openTenants(cfg)
	if err != nil {
		return err
	}
	log.Printf("Serving %d tenant(s), default %q", len(tenants.List()), tenants.DefaultID())

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := []server.Option{server.WithClock(clock)}

	recorder, err := metrics.New(ctx, cfg.OTel)
	if err != nil {
		log.Printf("Metrics disabled: %v", err)
		recorder = metrics.NewNoop()
	}
	defer func() {
		closeCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		if err := recorder.Close(closeCtx); err != nil {
			log.Printf("Error flushing metrics: %v", err)
		}
	}()
	opts = append(opts, server.WithMetrics(recorder))

	if cfg.DatabasePath != "" {
		store, err := visits.Open(ctx, cfg.DatabasePath)
		if err != nil {
			return fmt.Errorf("failed to open visits database: %w", err)
		}
		defer store.Close()

		tracker := visits.NewTracker(store, visits.NewHasher(cfg.TrackingSalt))
		go tracker.RunCleanup(ctx, cleanupInterval)
		opts = append(opts, server.WithTracker(tracker))
		log.Println("Privacy: visitor tracking enabled with hashed IP addresses")
	} else {
		log.Println("Privacy: visitor tracking disabled")
	}

	if cfg.TrackingSalt == "" && cfg.DatabasePath != "" {
		log.Println("WARNING: TRACKING_SALT is not set, unique visitor counts reset on restart")
	}

	srv := server.New(cfg, tenants, opts...)
	return srv.Start(ctx, ":"+cfg.Port)
}
