package jobs_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"storeops/internal/adapters/out/backup"
	"storeops/internal/core/application/ledger"
	"storeops/internal/core/application/procurement"
	"storeops/internal/jobs"
	"storeops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testArchive(t *testing.T) *backup.Archive {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	archive, err := backup.NewArchive(t.TempDir(), logger)
	require.NoError(t, err)
	return archive
}

func TestNewJobManager(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	registry := procurement.NewRegistry()
	manager := procurement.NewManager(registry)
	customerLedger := ledger.NewLedger()

	t.Run("should build with valid settings", func(t *testing.T) {
		jm, err := jobs.NewJobManager(
			testArchive(t), manager, registry, customerLedger,
			5*time.Minute, 30, logger)

		require.NoError(t, err)
		assert.NotNil(t, jm)
	})

	t.Run("should reject an autosave interval under ten seconds", func(t *testing.T) {
		_, err := jobs.NewJobManager(
			testArchive(t), manager, registry, customerLedger,
			5*time.Second, 30, logger)

		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("should reject a non-positive retention", func(t *testing.T) {
		_, err := jobs.NewJobManager(
			testArchive(t), manager, registry, customerLedger,
			time.Minute, 0, logger)

		require.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestJobManager_StartStop(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	registry := procurement.NewRegistry()
	manager := procurement.NewManager(registry)
	customerLedger := ledger.NewLedger()

	jm, err := jobs.NewJobManager(
		testArchive(t), manager, registry, customerLedger,
		time.Minute, 30, logger)
	require.NoError(t, err)

	require.NoError(t, jm.StartAll())
	jm.StopAll()
}
