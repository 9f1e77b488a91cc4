package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"storeops/cmd"
)

func main() {
	// A missing .env file is fine, the environment wins either way.
	_ = godotenv.Load()

	cfg, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := cmd.NewLogger(cfg)

	app, err := cmd.NewCompositionRoot(cfg, logger)
	if err != nil {
		log.Fatalf("build application: %v", err)
	}

	if err := app.JobManager().StartAll(); err != nil {
		log.Fatalf("start jobs: %v", err)
	}
	logger.Info("store started",
		"backup_dir", cfg.BackupDir,
		"autosave_interval", cfg.AutosaveInterval().String(),
		"retention_days", cfg.BackupRetentionDays)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logger.Info("shutting down")
	app.JobManager().StopAll()

	// Final snapshot so nothing recorded since the last autosave is lost.
	runID, err := app.Archive().SaveAll(app.Manager(), app.Registry(), app.Ledger())
	if err != nil {
		logger.Error("final snapshot failed", "error", err)
		return
	}
	logger.Info("final snapshot written", "run_id", runID)
}
