package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"burgerhouse/internal/config"
	"burgerhouse/internal/db"
	"burgerhouse/internal/events"
	"burgerhouse/internal/logging"
	"burgerhouse/internal/menu"
	"burgerhouse/internal/metrics"
	"burgerhouse/internal/order"
	"burgerhouse/internal/router"
	"burgerhouse/internal/session"
	"burgerhouse/internal/storage"
	"burgerhouse/internal/storefront"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ config: %v", err)
	}

	logger, err := logging.New(cfg.IsProduction())
	if err != nil {
		log.Fatalf("❌ logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// prices go out as JSON numbers (65, 12.5), like the catalog the
	// front end was built against
	decimal.MarshalJSONWithoutQuotes = true

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ───────────────────────── SESSIONS ─────────────────────────
	var sessionRepo session.Repository = session.NewInMemoryRepository()
	if cfg.DatabaseURL != "" {
		pool, err := db.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("postgres", zap.Error(err))
		}
		defer pool.Close()
		sessionRepo = session.NewPostgresRepository(pool)
		logger.Info("sessions stored in postgres")
	} else {
		logger.Info("sessions stored in memory")
	}

	sessions := session.NewService(
		sessionRepo,
		session.NewTokens(cfg.SessionSecret, session.DefaultTokenTTL),
	)

	// ───────────────────────── EVENTS ─────────────────────────
	publisher := events.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Warn("closing event publisher", zap.Error(err))
		}
	}()

	// ───────────────────────── SERVICES ─────────────────────────
	m := metrics.NewServerMetrics()

	menuService := menu.NewService(menu.Catalog, storage.Resolver(cfg.R2.PublicBaseURL))
	shopService := storefront.NewService(sessions, menuService, m)
	orderService := order.NewService(
		sessions,
		order.NewRemoteClient(cfg.OrderServiceURL, cfg.OrderServiceTimeout),
		publisher,
		m,
		logger,
	)

	r := router.NewRouter(router.Deps{
		Logger:      logger,
		Metrics:     m,
		CORSOrigins: cfg.CORSOrigins,
		Sessions:    sessions,
		Menu:        menuService,
		Storefront:  shopService,
		Orders:      orderService,
	})

	// ───────────────────────── START ─────────────────────────
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("🚀 API running", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
	logger.Info("stopped")
}
