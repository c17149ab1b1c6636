package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/Spok95/fleet-ops/internal/config"
	"github.com/Spok95/fleet-ops/internal/domain/customers"
	"github.com/Spok95/fleet-ops/internal/domain/fleet"
	"github.com/Spok95/fleet-ops/internal/domain/handover"
	"github.com/Spok95/fleet-ops/internal/domain/pricing"
	"github.com/Spok95/fleet-ops/internal/domain/reports"
	"github.com/Spok95/fleet-ops/internal/domain/reservations"
	"github.com/Spok95/fleet-ops/internal/domain/settings"
	"github.com/Spok95/fleet-ops/internal/domain/telematics"
	"github.com/Spok95/fleet-ops/internal/infra/db"
	httpx "github.com/Spok95/fleet-ops/internal/infra/http"
	"github.com/Spok95/fleet-ops/internal/infra/logger"
	"github.com/Spok95/fleet-ops/internal/infra/notify"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/subosito/gotenv"
)

func runMigrations(dsn string) error {
	sqlDB, err := goose.OpenDBWithDriver("postgres", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()
	return goose.Up(sqlDB, "migrations")
}

func main() {
	_ = gotenv.Load()

	cfg, err := config.Load("config/example.yaml")
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.App.Env)

	if err := runMigrations(cfg.Postgres.DSN); err != nil {
		log.Error("migrations failed", "err", err)
		return
	}
	log.Info("migrations applied")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.Connect(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Error("db connect failed", "err", err)
		return
	}
	defer pool.Close()
	log.Info("db connected")

	fleetRepo := fleet.NewRepo(pool)
	pricingRepo := pricing.NewRepo(pool)
	engine := pricing.NewEngine(fleetRepo, pricingRepo, pricing.NewEnvYield())

	notifier, err := notify.New(cfg.Telegram.Token, cfg.Telegram.AdminChatID, log)
	if err != nil {
		log.Error("telegram notifier init failed", "err", err)
		return
	}
	if notifier == nil {
		log.Info("telegram notifier disabled")
	}

	srv := httpx.New(httpx.Deps{
		Log:          log,
		Cfg:          cfg,
		Engine:       engine,
		Fleet:        fleetRepo,
		Pricing:      pricingRepo,
		Customers:    customers.NewRepo(pool),
		Reservations: reservations.NewRepo(pool),
		Handover:     handover.NewRepo(pool),
		Telematics:   telematics.NewRepo(pool),
		Reports:      reports.NewRepo(pool),
		Settings:     settings.NewRepo(pool),
		Notifier:     notifier,
	})
	go func() {
		if err := srv.Start(); err != nil && err.Error() != "http: Server closed" {
			log.Error("http server error", "err", err)
		}
	}()
	log.Info("HTTP server started", "addr", cfg.HTTP.Addr)

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	log.Info("graceful shutdown complete")
}
