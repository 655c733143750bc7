package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yourusername/arpalette/api"
	"github.com/yourusername/arpalette/host"
	"github.com/yourusername/arpalette/metrics"
	"github.com/yourusername/arpalette/middleware"
	"github.com/yourusername/arpalette/pkg/arpalette"
	"github.com/yourusername/arpalette/registry"
	"github.com/yourusername/arpalette/store"
)

const version = "1.0.0"

// newHost registers the usermod and applies the configured gates.
func newHost(st store.Store, opts ...host.Option) (*host.Host, error) {
	mod, err := arpalette.New(arpalette.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	reg := registry.New()
	if err := reg.Register(mod); err != nil {
		return nil, err
	}

	h := host.New(reg, st, opts...)
	for _, name := range cfg.Disabled {
		if err := h.SetEnabled(name, false); err != nil {
			return nil, err
		}
	}
	return h, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, closeStore, err := store.New(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	defer closeStore()
	logger.Info("storage ready", zap.String("backend", cfg.Storage.Backend))

	tracker := metrics.NewMetrics()
	h, err := newHost(st, host.WithLogger(logger), host.WithRecorder(tracker))
	if err != nil {
		return err
	}
	if err := h.Boot(ctx); err != nil {
		return fmt.Errorf("boot: %w", err)
	}

	interval, err := cfg.Interval()
	if err != nil {
		return err
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		h.Run(ctx, interval)
	}()

	if fs, ok := st.(*store.FileStore); ok && cfg.Watch {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := h.Watch(ctx, fs.Path(host.ConfigKey)); err != nil {
				logger.Error("configuration watcher stopped", zap.Error(err))
			}
		}()
	}

	mux := http.NewServeMux()
	api.NewHandler(h, tracker, logger).Register(mux)
	mux.Handle("/metrics", api.NewMetricsHandler(tracker))
	mux.HandleFunc("/health", healthHandler)
	mux.HandleFunc("/settings", settingsHandler)
	mux.HandleFunc("/", rootHandler)

	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           middleware.NewRequestLogger(logger).Middleware(mux),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.Listen))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err = <-errCh:
		stop()
		wg.Wait()
		return fmt.Errorf("http server: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Warn("http shutdown", zap.Error(err))
	}
	wg.Wait()
	return nil
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "arpalette",
		"version": version,
	})
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"service": "AR Palette parameter service",
		"version": version,
		"endpoints": map[string]string{
			"GET /json/state":   "Live parameter state",
			"POST /json/state":  "Merge a partial state update",
			"GET /json/info":    "Human-readable summary",
			"GET /json/cfginfo": "Settings-page help",
			"POST /cfg/save":    "Persist current parameters",
			"GET /metrics":      "Traffic counters (JSON)",
			"GET /settings":     "Settings page (HTML)",
			"GET /health":       "Health check",
		},
	})
}
