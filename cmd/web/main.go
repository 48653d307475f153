package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/BruksfildServices01/barber-booking-web/internal/apiclient"
	"github.com/BruksfildServices01/barber-booking-web/internal/audit"
	"github.com/BruksfildServices01/barber-booking-web/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-booking-web/internal/db"
	infraRepo "github.com/BruksfildServices01/barber-booking-web/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking-web/internal/logging"
	"github.com/BruksfildServices01/barber-booking-web/internal/media"
	"github.com/BruksfildServices01/barber-booking-web/internal/metrics"
	"github.com/BruksfildServices01/barber-booking-web/internal/payments"
	"github.com/BruksfildServices01/barber-booking-web/internal/routes"
	"github.com/BruksfildServices01/barber-booking-web/internal/session"
)

func main() {

	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// ======================================================
	// SESSÃO
	// ======================================================
	sessions, err := session.NewManager(cfg.SessionSecret, cfg.CookieSecure)
	if err != nil {
		log.Fatalf("failed to init session manager: %v", err)
	}

	rdb, err := infraRepo.NewRedisClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to init redis: %v", err)
	}
	defer rdb.Close()
	store := infraRepo.NewSessionRedisStore(rdb, session.StateTTL)

	// ======================================================
	// API REMOTA
	// ======================================================
	api := apiclient.New(cfg.APIURL, logger, apiclient.WithMetrics(metrics.NewAPIMetrics(reg)))

	deps := routes.Deps{
		Config:   cfg,
		Logger:   logger,
		Registry: reg,
		API:      api,
		Sessions: sessions,
		Store:    store,
	}

	// ======================================================
	// OPCIONAIS (log de atividade, S3, PIX)
	// ======================================================
	if cfg.DatabaseURL != "" {
		db, err := dbpkg.NewDB(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("failed to connect database: %v", err)
		}
		deps.AuditLogs = audit.New(db)
		deps.Audit = audit.NewDispatcher(deps.AuditLogs, logger)
		defer deps.Audit.Close()
	} else {
		logger.Warn("DATABASE_URL not set, activity log disabled")
	}

	if cfg.MediaMirrorEnabled() {
		deps.Mirror = media.NewMirror(media.NewS3Client(media.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.AWSAccessKeyID,
			SecretKey: cfg.AWSSecretKey,
		}), cfg.S3Bucket, logger)
	}

	if cfg.PixEnabled() {
		charger, err := payments.NewPixCharger(cfg.MercadoPagoAccessToken, logger)
		if err != nil {
			log.Fatalf("failed to init pix charger: %v", err)
		}
		deps.Charger = charger
	}

	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, deps)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server running", "addr", cfg.Addr(), "api_url", cfg.APIURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", "error", err)
	}
}
