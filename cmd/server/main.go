// Package main is the entry point for the website server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/sphericalkat/website/internal/adapters/content"
	"github.com/sphericalkat/website/internal/adapters/http"
	"github.com/sphericalkat/website/internal/adapters/http/handlers"
	"github.com/sphericalkat/website/internal/adapters/http/web"
	"github.com/sphericalkat/website/internal/app"
	"github.com/sphericalkat/website/internal/markdown"
	"github.com/sphericalkat/website/internal/platform/config"
	"github.com/sphericalkat/website/internal/platform/logging"
	"github.com/sphericalkat/website/internal/platform/telemetry"
	"github.com/sphericalkat/website/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the service.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// 1. Determine profile from environment
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	// 2. Load and validate configuration (fail fast)
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 3. Initialize logging
	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	slog.SetDefault(logger)

	logger.Info("starting server",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	// 4. Initialize telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(ctx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// 5. Open the embedded content bundles
	posts, err := content.New(content.PostsFS(), "post")
	if err != nil {
		return fmt.Errorf("loading post bundle: %w", err)
	}

	assets, err := content.New(web.StaticFS(), "asset")
	if err != nil {
		return fmt.Errorf("loading asset bundle: %w", err)
	}

	logger.Info("content bundles loaded",
		slog.Int("posts", posts.Len()),
		slog.Int("assets", assets.Len()),
	)

	// 6. Create the markdown renderer and post service
	renderer := markdown.NewRenderer(markdown.Options{
		AnchorPrefix: cfg.Markdown.AnchorPrefix,
		Highlight:    cfg.Markdown.Highlight,
		ChromaStyle:  cfg.Markdown.ChromaStyle,
	})

	postService := app.NewPostService(app.PostServiceConfig{
		Store:    posts,
		Renderer: renderer,
		Logger:   logger,
	})

	// 7. Create health registry; the post service doubles as the content
	// health check since it exercises the whole extract-and-render path.
	healthRegistry := ports.NewHealthRegistry()
	if err := healthRegistry.Register(postService); err != nil {
		return fmt.Errorf("registering content health check: %w", err)
	}

	// 8. Parse page templates
	tmpl, err := web.Templates()
	if err != nil {
		return fmt.Errorf("parsing templates: %w", err)
	}

	// 9. Create handlers
	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime)
	healthHandler := handlers.NewHealthHandler(healthRegistry, buildInfo)
	pagesHandler := handlers.NewPagesHandler(postService, tmpl, cfg.Site, processInfo())
	staticHandler := handlers.NewStaticHandler(assets)
	postsHandler := handlers.NewPostsHandler(postService)

	// 10. Create HTTP server
	server := http.New(&cfg.Server, logger)

	// 11. Setup router with all middleware and routes
	routerCfg := http.NewDefaultRouterConfig(
		logger,
		&cfg.App,
		pagesHandler,
		staticHandler,
		postsHandler,
		healthHandler,
	)
	http.SetupRouter(server.Engine(), routerCfg)

	// 12. Start server (non-blocking)
	serverErr := server.Start()

	// 13. Wait for shutdown signal
	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// processInfo captures the executable path and Go runtime version shown
// in the page footer.
func processInfo() handlers.ProcessInfo {
	path, err := os.Executable()
	if err != nil {
		path = os.Args[0]
	}

	return handlers.ProcessInfo{
		Path:    path,
		Version: runtime.Version(),
	}
}

// waitForShutdown blocks until a shutdown signal is received or server error occurs.
// It then performs graceful shutdown of the HTTP server.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	// Listen for OS signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		// Server error during startup or runtime
		return fmt.Errorf("server error: %w", err)

	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	}

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	// Graceful shutdown sequence
	logger.Info("initiating graceful shutdown",
		slog.Duration("timeout", shutdownTimeout),
	)

	// Stop accepting new requests, drain in-flight
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
