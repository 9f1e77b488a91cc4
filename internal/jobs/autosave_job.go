package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"storeops/internal/adapters/out/backup"
	"storeops/internal/pkg/errs"
)

const minAutosaveInterval = 10 * time.Second

// AutosaveJob periodically snapshots every collection to the archive.
type AutosaveJob struct {
	archive   *backup.Archive
	orders    backup.ProcurementSource
	suppliers backup.SupplierSource
	customers backup.LedgerSource
	interval  time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewAutosaveJob creates the autosave job. Intervals under ten seconds are
// rejected.
func NewAutosaveJob(
	archive *backup.Archive,
	orders backup.ProcurementSource,
	suppliers backup.SupplierSource,
	customers backup.LedgerSource,
	interval time.Duration,
	logger *slog.Logger,
) (*AutosaveJob, error) {
	if interval < minAutosaveInterval {
		return nil, errs.NewValidationErrorWithCause("interval",
			fmt.Errorf("autosave interval must be at least %s, got %s",
				minAutosaveInterval, interval))
	}

	return &AutosaveJob{
		archive:   archive,
		orders:    orders,
		suppliers: suppliers,
		customers: customers,
		interval:  interval,
		cron:      cron.New(),
		logger:    logger.With("component", "autosave_job"),
	}, nil
}

// Start begins periodic snapshots at the configured interval.
func (j *AutosaveJob) Start() error {
	_, err := j.cron.AddFunc(fmt.Sprintf("@every %s", j.interval), func() {
		ctx := context.Background()

		runID, err := j.archive.SaveAll(j.orders, j.suppliers, j.customers)
		if err != nil {
			j.logger.ErrorContext(ctx, "Autosave job failed", "error", err)
			return
		}
		j.logger.InfoContext(ctx, "Autosave completed", "run_id", runID)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(),
		"Autosave job started", "interval", j.interval.String())
	return nil
}

// Stop stops the autosave job.
func (j *AutosaveJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Autosave job stopped")
}
