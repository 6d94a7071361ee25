package main

import (
	"centavo-server/src/alerts"
	"centavo-server/src/api"
	"centavo-server/src/config"
	"centavo-server/src/db"
	sqldb "centavo-server/src/db/sql"
	"centavo-server/src/models"
	"centavo-server/src/pending"
	"centavo-server/src/snapshot"
	"context"
	"log"
	"net/http"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()

	// Engine logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Connect to database
	pool, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("DB connection failed: %v", err)
	}
	defer pool.Close()

	if err := db.Migrate(ctx, pool); err != nil {
		log.Fatalf("DB migration failed: %v", err)
	}

	db.InitCache()

	store := snapshot.NewStore(pool, logger)
	engine := alerts.NewEngine(
		&sqldb.AlertLedger{Pool: pool},
		&sqldb.NotificationStore{Pool: pool},
		time.Now,
		logger,
	)
	converter := pending.NewConverter(&sqldb.PendingStore{Pool: pool}, time.Now, logger)

	// Every change-driven reload invalidates cached summaries, sweeps matured
	// pending incomes, and re-evaluates alert rules against the new snapshot.
	store.OnChange(func(ctx context.Context, snap *models.Snapshot) {
		db.ClearAllSummaryCaches()
		if converter.Sweep(ctx, snap.PendingIncomes) > 0 {
			// Conversions changed the data; the insert trigger will fire a
			// fresh notification, so alerts run on the next reload.
			return
		}
		engine.Evaluate(ctx, snap)
	})

	// The listener refreshes as soon as its subscription is live, so writes
	// landing during startup are observed. The synchronous pass below warms
	// the snapshot before traffic is served; the alert ledger and conversion
	// claim make the overlapping passes harmless.
	go func() {
		if err := store.Listen(ctx); err != nil && ctx.Err() == nil {
			logger.WithError(err).Fatal("change listener stopped")
		}
	}()
	store.Refresh(ctx)

	// Date-based rules (due soon, overdue, pending maturity) shift at
	// midnight even when no row changes, so a daily tick re-runs the pass.
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("5 0 * * *", func() { store.Refresh(ctx) }); err != nil {
		log.Fatalf("failed to schedule daily rollover: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	router := api.NewRouter(pool, store, cfg.CORSOrigins, cfg.ReadOnly)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	log.Println("API server running on port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
