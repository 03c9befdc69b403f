package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"locallibrary/internal/auth"
	"locallibrary/internal/author"
	"locallibrary/internal/book"
	"locallibrary/internal/bookinstance"
	"locallibrary/internal/config"
	"locallibrary/internal/genre"
	"locallibrary/internal/home"
	"locallibrary/internal/httpx"
	"locallibrary/internal/platform/logging"
	"locallibrary/internal/platform/openlibrary"
	"locallibrary/internal/session"
	"locallibrary/internal/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool := mustOpenDB(ctx, cfg.DatabaseDSN, logger)
	defer dbPool.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := httpx.NewMetrics(registry)

	userRepo := user.NewPostgresRepo(dbPool, cfg.DBTimeout)
	blacklistRepo := auth.NewBlacklistPostgresRepo(dbPool, cfg.DBTimeout)
	sessionStore := session.NewStore(session.NewPostgresRepo(dbPool, cfg.DBTimeout))

	userService := user.NewService(userRepo)
	authService := auth.NewService(cfg.JWTSecret, cfg.AccessTokenTTL, userService, blacklistRepo)
	guard := auth.NewGuard(userService)

	genreService := genre.NewService(genre.NewPostgresRepo(dbPool, cfg.DBTimeout))
	authorService := author.NewService(author.NewPostgresRepo(dbPool, cfg.DBTimeout))
	instanceService := bookinstance.NewService(
		bookinstance.NewPostgresRepo(dbPool, cfg.DBTimeout),
		cfg.Location,
		bookinstance.WithRegisterer(registry),
	)
	olClient := openlibrary.NewClient(cfg.OpenLibraryUserAgent, cfg.OpenLibraryRPS, 3)
	bookService := book.NewService(book.NewPostgresRepo(dbPool, cfg.DBTimeout), genreService, instanceService, olClient)
	homeService := home.NewService(home.NewPostgresRepo(dbPool, cfg.DBTimeout), sessionStore)

	cleanupExpired(ctx, sessionStore, blacklistRepo, cfg.SessionTTL, logger)

	router := newRouter(handlers{
		auth:         auth.NewHTTPHandler(authService),
		user:         user.NewHTTPHandler(userService),
		home:         home.NewHTTPHandler(homeService),
		genre:        genre.NewHTTPHandler(genreService),
		author:       author.NewHTTPHandler(authorService, guard),
		book:         book.NewHTTPHandler(bookService, guard),
		bookInstance: bookinstance.NewHTTPHandler(instanceService, guard),
	}, metrics, dbPool.Ping, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	rateLimiter := httpx.NewRateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go rateLimiter.Run(ctx)

	handler := httpx.Chain(router,
		httpx.RequestIDMiddleware,
		httpx.RecoveryMiddleware(logger),
		httpx.AccessLogMiddleware(logger),
		httpx.SecurityHeadersMiddleware(cfg.Production()),
		httpx.CORSMiddleware(cfg.AllowedOrigins),
		httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes),
		rateLimiter.Middleware,
		httpx.IdentityMiddleware(cfg.JWTSecret, authService),
		session.Middleware(cfg.SessionTTL, cfg.Production()),
	)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("addr", cfg.Addr), zap.String("env", cfg.Env))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", zap.Error(err))
		}
	}
}

type expiringSessions interface {
	CleanupExpired(ctx context.Context, ttl time.Duration) (int64, error)
}

type expiringTokens interface {
	CleanupExpired(ctx context.Context) error
}

// cleanupExpired drops idle visitor sessions and revoked tokens that have
// expired anyway. Failures are logged; the server still starts.
func cleanupExpired(ctx context.Context, sessions expiringSessions, tokens expiringTokens, ttl time.Duration, logger *zap.Logger) {
	removed, err := sessions.CleanupExpired(ctx, ttl)
	if err != nil {
		logger.Warn("session cleanup failed", zap.Error(err))
	} else {
		logger.Info("session cleanup", zap.Int64("removed", removed))
	}
	if err := tokens.CleanupExpired(ctx); err != nil {
		logger.Warn("token blacklist cleanup failed", zap.Error(err))
	}
}

func mustOpenDB(ctx context.Context, dsn string, logger *zap.Logger) *pgxpool.Pool {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Fatal("cannot create db pool", zap.Error(err))
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		logger.Fatal("cannot ping database", zap.String("dsn", redactDSN(dsn)), zap.Error(err))
	}
	logger.Info("database connection OK")
	return pool
}

func redactDSN(dsn string) string {
	const marker = "://"
	start := strings.Index(dsn, marker)
	if start < 0 {
		return dsn
	}
	start += len(marker)
	end := strings.Index(dsn[start:], "@")
	if end < 0 {
		return dsn
	}
	return dsn[:start] + "***" + dsn[start+end:]
}
