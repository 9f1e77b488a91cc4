package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"storeops/internal/adapters/out/backup"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	autosaveJob  *AutosaveJob
	retentionJob *RetentionJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	archive *backup.Archive,
	orders backup.ProcurementSource,
	suppliers backup.SupplierSource,
	customers backup.LedgerSource,
	autosaveInterval time.Duration,
	retentionDays int,
	logger *slog.Logger,
) (*JobManager, error) {
	autosaveJob, err := NewAutosaveJob(archive, orders, suppliers, customers, autosaveInterval, logger)
	if err != nil {
		return nil, fmt.Errorf("build autosave job: %w", err)
	}

	retentionJob, err := NewRetentionJob(archive, retentionDays, logger)
	if err != nil {
		return nil, fmt.Errorf("build retention job: %w", err)
	}

	return &JobManager{
		autosaveJob:  autosaveJob,
		retentionJob: retentionJob,
	}, nil
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.autosaveJob.Start(); err != nil {
		return fmt.Errorf("failed to start autosave job: %w", err)
	}

	if err := jm.retentionJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.autosaveJob.Stop()
		return fmt.Errorf("failed to start retention job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.retentionJob.Stop()
	jm.autosaveJob.Stop()
}
