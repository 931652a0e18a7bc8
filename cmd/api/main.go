package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"DocVerifier_BluestockProject/internal/auth"
	"DocVerifier_BluestockProject/internal/config"
	"DocVerifier_BluestockProject/internal/handler"
	"DocVerifier_BluestockProject/internal/logger"
	"DocVerifier_BluestockProject/internal/metrics"
	"DocVerifier_BluestockProject/internal/sharelink"
	"DocVerifier_BluestockProject/internal/storage"
	"DocVerifier_BluestockProject/internal/verification"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

// @title        Document Verification API
// @version      1.0
// @description  Looks up document IDs and returns their verification details.
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in           header
// @name         Authorization
func main() {
	if err := config.LoadEnvFiles(); err != nil {
		zlog.Warn().Err(err).Msg("failed to load .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to load config")
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to create logger")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

// run wires the application and serves until ctx is done.
func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	store, err := storage.Open(ctx, cfg.StoreDriver, cfg.SQLiteDSN, cfg.HistoryLimit)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	svc := verification.NewService(store, log,
		verification.WithDelay(cfg.VerifyDelay),
		verification.WithFormatEnforcement(cfg.EnforceIDFormat),
		verification.WithAttemptLog(store),
		verification.WithMetrics(m),
	)

	admin, err := auth.NewAdmin(cfg.AdminUsername, cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	if !cfg.AdminEnabled() {
		log.Warn().Msg("ADMIN_PASSWORD not set, operator login disabled")
	}

	h := handler.New(handler.Options{
		Verifier: svc,
		History:  store,
		Links: sharelink.Builder{
			Origin: cfg.PublicOrigin,
			Path:   cfg.VerifyPath,
			QRSize: cfg.QRSize,
		},
		Tokens:       auth.NewTokenManager(cfg.JWTSecretKey, cfg.TokenTTL, log),
		Admin:        admin,
		Log:          log,
		HistoryLimit: cfg.HistoryLimit,
	})
	router := handler.NewRouter(h, handler.RouterConfig{
		VerifyPath:     cfg.VerifyPath,
		CORSOrigins:    cfg.CORSOrigins,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		Gatherer:       reg,
	})

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", cfg.HTTPAddr).
			Str("store", cfg.StoreDriver).
			Dur("verify_delay", cfg.VerifyDelay).
			Bool("enforce_id_format", svc.EnforcesFormat()).
			Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
