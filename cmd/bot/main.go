package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/nthenya/chamabot/internal/app"
	"github.com/nthenya/chamabot/internal/config"
	"github.com/nthenya/chamabot/internal/db"
	"github.com/nthenya/chamabot/internal/jobs"
	"github.com/nthenya/chamabot/internal/logging"
	"github.com/nthenya/chamabot/internal/observability"
	"github.com/nthenya/chamabot/internal/wa"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, relying on environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	lg, err := logging.Init(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer lg.Closer()

	flush, err := observability.InitSentry(cfg.SentryDSN, cfg.Env, os.Getenv("RELEASE"))
	if err != nil {
		lg.Sugar.Warnw("sentry init failed", "err", err)
	}
	defer flush()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		lg.Sugar.Fatalw("database connect failed", "err", err)
	}
	defer func() { _ = database.Close() }()

	if err := db.Migrate(database); err != nil {
		lg.Sugar.Fatalw("migrations failed", "err", err)
	}

	sender := wa.New(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.WhatsAppFrom, lg.Sugar)
	dispatcher := app.New(database, cfg, lg.Sugar)
	app.StartHTTP(ctx, cfg.HTTPAddr, database, dispatcher, sender)

	runner := jobs.New(ctx)
	runner.Every(24*time.Hour, "unpaid_reminder", jobs.UnpaidReminder(database, sender, cfg))

	lg.Sugar.Infow("chamabot started", "addr", cfg.HTTPAddr, "env", cfg.Env, "admins", len(cfg.AdminPhones))
	<-ctx.Done()
	lg.Sugar.Info("shutting down")
}
