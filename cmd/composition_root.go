package cmd

import (
	"fmt"
	"log/slog"

	"storeops/internal/adapters/out/backup"
	"storeops/internal/core/application/ledger"
	"storeops/internal/core/application/procurement"
	"storeops/internal/jobs"
)

// CompositionRoot wires the application services, the snapshot archive and
// the background jobs together from a single Config.
type CompositionRoot struct {
	registry   *procurement.Registry
	manager    *procurement.Manager
	ledger     *ledger.Ledger
	archive    *backup.Archive
	jobManager *jobs.JobManager
}

func NewCompositionRoot(cfg Config, logger *slog.Logger) (*CompositionRoot, error) {
	registry := procurement.NewRegistry()
	manager := procurement.NewManager(registry)
	customerLedger := ledger.NewLedger()

	archive, err := backup.NewArchive(cfg.BackupDir, logger)
	if err != nil {
		return nil, fmt.Errorf("build archive: %w", err)
	}

	jobManager, err := jobs.NewJobManager(
		archive, manager, registry, customerLedger,
		cfg.AutosaveInterval(), cfg.BackupRetentionDays, logger)
	if err != nil {
		return nil, fmt.Errorf("build job manager: %w", err)
	}

	return &CompositionRoot{
		registry:   registry,
		manager:    manager,
		ledger:     customerLedger,
		archive:    archive,
		jobManager: jobManager,
	}, nil
}

func (c *CompositionRoot) Registry() *procurement.Registry {
	return c.registry
}

func (c *CompositionRoot) Manager() *procurement.Manager {
	return c.manager
}

func (c *CompositionRoot) Ledger() *ledger.Ledger {
	return c.ledger
}

func (c *CompositionRoot) Archive() *backup.Archive {
	return c.archive
}

func (c *CompositionRoot) JobManager() *jobs.JobManager {
	return c.jobManager
}
