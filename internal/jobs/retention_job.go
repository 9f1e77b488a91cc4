package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"storeops/internal/adapters/out/backup"
	"storeops/internal/pkg/errs"
)

// RetentionJob prunes snapshots past the retention window.
// Runs once a day at 03:00.
type RetentionJob struct {
	archive       *backup.Archive
	retentionDays int
	cron          *cron.Cron
	logger        *slog.Logger
}

// NewRetentionJob creates the retention job. Retention must be positive.
func NewRetentionJob(archive *backup.Archive, retentionDays int, logger *slog.Logger) (*RetentionJob, error) {
	if retentionDays <= 0 {
		return nil, errs.NewValidationError("retentionDays")
	}

	return &RetentionJob{
		archive:       archive,
		retentionDays: retentionDays,
		cron:          cron.New(),
		logger:        logger.With("component", "retention_job"),
	}, nil
}

// Start schedules the daily prune.
func (j *RetentionJob) Start() error {
	_, err := j.cron.AddFunc("0 3 * * *", func() {
		ctx := context.Background()

		removed, err := j.archive.PruneOlderThan(j.retentionDays)
		if err != nil {
			j.logger.ErrorContext(ctx, "Retention job failed", "error", err)
			return
		}
		if removed > 0 {
			j.logger.InfoContext(ctx, "Retention sweep completed", "removed", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(),
		"Retention job started", "retention_days", j.retentionDays)
	return nil
}

// Stop stops the retention job.
func (j *RetentionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Retention job stopped")
}
