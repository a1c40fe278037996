// tabinote is the backend for a two-person Helsinki trip planner: a
// packing checklist, a wish list, a ten-day itinerary and a shared
// expense ledger, all mirrored into one sqlite-backed trip document.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/yutarok/tabinote/internal/config"
	"github.com/yutarok/tabinote/internal/docstore"
	"github.com/yutarok/tabinote/internal/logging"
	"github.com/yutarok/tabinote/internal/service"
	"github.com/yutarok/tabinote/internal/state"
	"github.com/yutarok/tabinote/internal/suggest"
	"github.com/yutarok/tabinote/internal/suggest/claude"
	"github.com/yutarok/tabinote/internal/suggest/gemini"
	"github.com/yutarok/tabinote/internal/syncer"
	"github.com/yutarok/tabinote/internal/web"
)

func main() {
	cfg := config.Load()

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		slog.Error("failed to set up logging", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A missing or broken database degrades to local-only mode instead
	// of refusing to start; the planner stays usable from seed data.
	var docs *docstore.Store
	if db, err := docstore.Open(cfg.DBPath); err != nil {
		logger.Error("failed to open trip database, continuing in local-only mode", "path", cfg.DBPath, "error", err)
	} else {
		defer db.Close()
		docs = docstore.NewStore(db)
	}

	var adapter *syncer.Adapter
	store := state.NewStore(func(collection string, value any) {
		adapter.Persist(collection, value)
	})
	interval := time.Duration(cfg.SyncPollMS) * time.Millisecond
	if docs == nil {
		adapter = syncer.New(nil, store, cfg.TripID, interval, logger)
	} else {
		adapter = syncer.New(docs, store, cfg.TripID, interval, logger)
	}
	go adapter.Run(ctx)

	token := store.Subscribe(func(collection string) {
		logger.Debug("collection changed", "collection", collection)
	})
	defer store.Unsubscribe(token)

	completer := newCompleter(cfg, logger)
	svc := service.NewTripService(store, adapter, completer, cfg.TripID, logger)

	origins := strings.Split(cfg.CORSOrigins, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	server := web.NewServer(svc, origins, logger)

	httpSrv := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      server,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("starting server", "addr", cfg.ListenAddr, "trip_id", cfg.TripID, "mode", adapter.Mode())
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}

// newCompleter picks the suggestion backend. An unknown backend name or
// a missing API key disables suggestions rather than failing startup.
func newCompleter(cfg *config.Config, logger *slog.Logger) suggest.Completer {
	switch cfg.SuggestBackend {
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			logger.Warn("GEMINI_API_KEY not set, suggestions disabled")
			return suggest.Disabled{}
		}
		return gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	case "claude":
		if cfg.ClaudeAPIKey == "" {
			logger.Warn("CLAUDE_API_KEY not set, suggestions disabled")
			return suggest.Disabled{}
		}
		return claude.NewClient(cfg.ClaudeAPIKey, cfg.ClaudeModel)
	case "none", "":
		return suggest.Disabled{}
	default:
		logger.Warn("unknown suggestion backend, suggestions disabled", "backend", cfg.SuggestBackend)
		return suggest.Disabled{}
	}
}
