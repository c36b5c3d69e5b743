package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/carlos0768/lexisync/internal/server/handlers"
	"github.com/carlos0768/lexisync/internal/server/middleware"
	"github.com/carlos0768/lexisync/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 30 * 24 * time.Hour

	// tokenJanitorInterval период удаления протухших refresh token'ов
	tokenJanitorInterval = time.Hour

	shutdownTimeout = 10 * time.Second
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	addr := flag.String("addr", ":8080", "HTTP listen address")
	dbPath := flag.String("db", "lexisync-server.db", "Path to SQLite database")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	if err := run(logger, *addr, *dbPath); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, addr, dbPath string) error {
	// Секрет только из окружения: в флагах он засветился бы в ps
	secret := os.Getenv("LEXISYNC_JWT_SECRET")
	if secret == "" {
		return errors.New("LEXISYNC_JWT_SECRET environment variable is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	jwtConfig := handlers.JWTConfig{
		Secret:          []byte(secret),
		AccessTokenTTL:  accessTokenTTL,
		RefreshTokenTTL: refreshTokenTTL,
	}

	authHandler := handlers.NewAuthHandler(logger, store, store, jwtConfig)
	projectHandler := handlers.NewProjectHandler(logger, store, store)
	wordHandler := handlers.NewWordHandler(logger, store, store)
	shareHandler := handlers.NewShareHandler(logger, store, store)
	healthHandler := handlers.NewHealthHandler(logger, store, Version)

	requireAuth := middleware.AuthMiddleware(logger, jwtConfig)

	mux := http.NewServeMux()

	// Публичные endpoints
	mux.HandleFunc("GET /api/v1/health", healthHandler.Health)
	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/v1/auth/refresh", authHandler.Refresh)
	// Share-токен в пути сам по себе авторизация на чтение
	mux.HandleFunc("GET /api/v1/share/{shareID}", shareHandler.Get)
	mux.HandleFunc("GET /api/v1/share/{shareID}/words", shareHandler.GetWords)

	// Авторизованные endpoints
	authed := func(h http.HandlerFunc) http.Handler {
		return requireAuth(h)
	}
	mux.Handle("POST /api/v1/auth/logout", authed(authHandler.Logout))

	mux.Handle("POST /api/v1/projects", authed(projectHandler.Create))
	mux.Handle("GET /api/v1/projects", authed(projectHandler.List))
	mux.Handle("GET /api/v1/projects/{id}", authed(projectHandler.Get))
	mux.Handle("PATCH /api/v1/projects/{id}", authed(projectHandler.Update))
	mux.Handle("DELETE /api/v1/projects/{id}", authed(projectHandler.Delete))
	mux.Handle("GET /api/v1/projects/{id}/words", authed(projectHandler.ListWords))
	mux.Handle("DELETE /api/v1/projects/{id}/words", authed(projectHandler.DeleteWords))
	mux.Handle("POST /api/v1/projects/{id}/share", authed(shareHandler.Generate))

	mux.Handle("POST /api/v1/words", authed(wordHandler.Create))
	mux.Handle("POST /api/v1/words/query", authed(wordHandler.Query))
	mux.Handle("PATCH /api/v1/words/{id}", authed(wordHandler.Update))
	mux.Handle("DELETE /api/v1/words/{id}", authed(wordHandler.Delete))

	// Общие middleware: recovery снаружи, чтобы паника в логировании
	// тоже была перехвачена. Health check не логируем: клиент дергает
	// его перед каждой операцией синхронизации.
	rateLimits := []middleware.PathRateLimit{
		{Path: "/api/v1/auth/login", Rate: 10, Window: time.Minute},
		{Path: "/api/v1/auth/register", Rate: 5, Window: time.Minute},
	}
	var handler http.Handler = mux
	handler = middleware.RateLimitByPathMiddleware(rateLimits, 100, time.Minute, logger)(handler)
	handler = middleware.LoggingWithSkip(logger, []string{"/api/v1/health"})(handler)
	handler = middleware.RecoveryMiddleware(logger)(handler)

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Фоновая чистка протухших refresh token'ов
	go tokenJanitor(ctx, logger, store)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", addr, "version", Version)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	return nil
}

// tokenJanitor периодически удаляет протухшие refresh token'ы
func tokenJanitor(ctx context.Context, logger *slog.Logger, store *sqlite.Storage) {
	ticker := time.NewTicker(tokenJanitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deleted, err := store.DeleteExpiredTokens(ctx)
			if err != nil {
				logger.Error("failed to delete expired tokens", "error", err)
				continue
			}
			if deleted > 0 {
				logger.Info("expired refresh tokens deleted", "count", deleted)
			}
		}
	}
}

func printVersion() {
	fmt.Printf("LexiSync Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
