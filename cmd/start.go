package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/openlsr/openlsr/internal/brand"
	"github.com/openlsr/openlsr/internal/logging"
	"github.com/openlsr/openlsr/internal/metrics"
)

// StartOptions controls RunStart.
type StartOptions struct {
	ConfigFile  string
	MetricsAddr string
	JSONLog     bool
	Debug       bool
}

// RunStart validates the configuration once and runs the daemon. A
// validation failure is terminal: the daemon refuses to start rather than
// run with an invalid configuration.
func RunStart(opts StartOptions) error {
	logCfg := logging.DefaultConfig()
	logCfg.JSON = opts.JSONLog
	if opts.Debug {
		logCfg.Level = logging.LevelDebug
	}
	logger := logging.New(logCfg)
	log := logger.WithComponent("daemon")

	cfg, _, err := loadAndValidate(opts.ConfigFile)
	if err != nil {
		log.Error("refusing to start", "error", err)
		return err
	}

	log.Info("configuration validated",
		"node", cfg.NodeName(),
		"areas", len(cfg.AreaIDs()),
		"forwarding", cfg.PrefixForwardingType())
	if params, ok := cfg.PrefixAllocation(); ok {
		log.Info("prefix allocation active",
			"seed", params.SeedNetwork.String(),
			"allocate_prefix_len", params.AllocatePrefixLen)
	}

	addr := opts.MetricsAddr
	if addr == "" {
		addr = brand.DefaultMetricsAddr
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	server := &http.Server{Addr: addr, Handler: mux}

	errCh := make(chan error, 1)
	go func() {
		log.Info("metrics listening", "addr", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Protocol components (discovery, flooding, route computation) attach
	// here; they consume cfg read-only and never mutate it.

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("shutting down", "signal", sig.String())
	case err := <-errCh:
		log.Error("metrics server failed", "error", err)
		return fmt.Errorf("metrics server: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}
