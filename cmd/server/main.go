package main

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"catalog/internal/cluster"
	"catalog/internal/config"
	"catalog/internal/db"
	"catalog/internal/logging"
	mcpserver "catalog/internal/mcp"
	"catalog/internal/middleware"
	"catalog/internal/notifications"
	"catalog/internal/pubsub"
	"catalog/internal/schemes"

	"github.com/mark3labs/mcp-go/server"
	"golang.org/x/sync/errgroup"
)

//go:embed static
var staticFS embed.FS

func main() {
	// Config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Logger
	logger := logging.New(os.Stdout, cfg.LogFormat, cfg.LogLevel)

	if err := run(cfg, logger); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to MongoDB
	startCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	logger.Info("connecting to MongoDB", "uri", cfg.MongoURI)
	database, err := db.Connect(startCtx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		return err
	}
	defer db.Close(context.Background(), database)
	logger.Info("connected to MongoDB")

	// Event bus
	bus := pubsub.NewBus(logger)
	defer bus.Close()

	// Wire dependencies
	schemeRepo := schemes.NewRepo(database)
	if err := schemeRepo.EnsureIndexes(startCtx); err != nil {
		logger.Warn("failed to ensure indexes", "collection", db.SchemesCollection, "error", err)
	}
	notifyRepo := notifications.NewRepo(database)
	if err := notifyRepo.EnsureIndexes(startCtx); err != nil {
		logger.Warn("failed to ensure indexes", "collection", db.NotificationsCollection, "error", err)
	}

	opts := cluster.DefaultOptions()
	opts.Clusters = cfg.Clusters
	opts.MaxFeatures = cfg.MaxFeatures

	schemeSvc := schemes.NewService(schemeRepo, bus, opts, logger)
	notifySvc := notifications.NewService(notifyRepo, cfg.NotificationLimit, logger)
	if err := notifySvc.Subscribe(ctx, bus); err != nil {
		return err
	}

	// Create MCP server
	mcpSrv := mcpserver.NewServer(schemeSvc, notifySvc)

	// HTTP router
	mux := http.NewServeMux()

	// Static files
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return err
	}
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(sub))))
	mux.Handle("GET /wasm/", http.StripPrefix("/wasm/", http.FileServer(http.Dir(cfg.WasmDir))))

	// REST API endpoints and pages
	schemes.NewHandler(schemeSvc, logger).Register(mux)
	notifications.NewHandler(notifySvc, logger).Register(mux)

	// MCP endpoint (HTTP transport)
	// MCP uses POST for requests and GET for SSE streams
	mcpHTTP := server.NewStreamableHTTPServer(mcpSrv)
	mux.Handle("POST /mcp", mcpHTTP)
	mux.Handle("GET /mcp", mcpHTTP)
	mux.Handle("DELETE /mcp", mcpHTTP)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	srv := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: middleware.Chain(mux,
			middleware.RequestID(),
			middleware.Recover(logger),
			middleware.Logger(logger),
		),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting", "port", cfg.Port)
		logger.Info("endpoints available",
			"web", "http://localhost:"+cfg.Port,
			"api", "http://localhost:"+cfg.Port+"/api",
			"mcp", "http://localhost:"+cfg.Port+"/mcp",
		)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
