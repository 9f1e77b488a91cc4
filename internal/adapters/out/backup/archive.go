package backup

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"storeops/internal/core/application/procurement"
	"storeops/internal/core/domain/model/customer"
	"storeops/internal/core/domain/model/order"
	"storeops/internal/core/domain/model/supplier"
	"storeops/internal/pkg/errs"
)

// ProcurementSource is the slice of the order manager the archive needs.
type ProcurementSource interface {
	History() []*order.Order
	Statistics() procurement.Statistics
}

// SupplierSource is the slice of the supplier registry the archive needs.
type SupplierSource interface {
	All() []*supplier.Supplier
	Count() int
}

// LedgerSource is the slice of the customer ledger the archive needs.
type LedgerSource interface {
	All() []*customer.Customer
	WithDebt() []*customer.Customer
	TotalDebt() float64
	Count() int
}

const (
	timestampLayout = "20060102_150405"
	snapshotExt     = ".txt"
)

// Archive writes snapshots into a single flat directory. One Archive per
// directory; files written by anything else are prunable too as long as
// they carry the snapshot extension.
type Archive struct {
	dir    string
	logger *slog.Logger
}

func NewArchive(dir string, logger *slog.Logger) (*Archive, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errs.NewValidationError("dir")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create archive directory: %w", err)
	}
	return &Archive{
		dir:    dir,
		logger: logger.With(slog.String("component", "backup-archive")),
	}, nil
}

// SaveOrders writes the full order history, one block per order.
func (a *Archive) SaveOrders(source ProcurementSource) (string, error) {
	var sb strings.Builder
	now := time.Now()
	orders := source.History()
	stats := source.Statistics()

	fmt.Fprintf(&sb, "ORDER SNAPSHOT %s\n", now.Format(time.RFC3339))
	fmt.Fprintf(&sb, "orders=%d pending=%d completed=%d cancelled=%d spent=%.2f\n\n",
		stats.Total, stats.Pending, stats.Completed, stats.Cancelled, stats.TotalSpent)

	for _, o := range orders {
		fmt.Fprintf(&sb, "order #%d supplier=%s status=%s total=%.2f created=%s estimated=%s\n",
			o.ID(), o.Supplier().Name(), o.Status(), o.Total(),
			o.CreatedAt().Format(time.RFC3339),
			o.EstimatedDelivery().Format(time.RFC3339))
		if deliveredAt, ok := o.DeliveredAt(); ok {
			fmt.Fprintf(&sb, "  delivered=%s\n", deliveredAt.Format(time.RFC3339))
		}
		for _, item := range o.Items() {
			fmt.Fprintf(&sb, "  item %s x%d @ %.2f = %.2f\n",
				item.Product(), item.Quantity(), item.UnitPrice(), item.Subtotal())
		}
		if o.Notes() != "" {
			fmt.Fprintf(&sb, "  notes: %s\n", o.Notes())
		}
	}

	return a.write("orders", now, sb.String())
}

// SaveSuppliers writes the supplier registry, one line per supplier.
func (a *Archive) SaveSuppliers(source SupplierSource) (string, error) {
	var sb strings.Builder
	now := time.Now()

	fmt.Fprintf(&sb, "SUPPLIER SNAPSHOT %s\n", now.Format(time.RFC3339))
	fmt.Fprintf(&sb, "suppliers=%d\n\n", source.Count())

	for _, s := range source.All() {
		state := "active"
		if !s.Active() {
			state = "inactive"
		}
		fmt.Fprintf(&sb, "supplier #%d %s (%s) %s products=[%s]\n",
			s.ID(), s.Name(), s.Company(), state,
			strings.Join(s.Products(), ", "))
	}

	return a.write("suppliers", now, sb.String())
}

// SaveCustomers writes the customer ledger with per-customer balances.
func (a *Archive) SaveCustomers(source LedgerSource) (string, error) {
	var sb strings.Builder
	now := time.Now()

	fmt.Fprintf(&sb, "CUSTOMER SNAPSHOT %s\n", now.Format(time.RFC3339))
	fmt.Fprintf(&sb, "customers=%d debtors=%d total_debt=%.2f\n\n",
		source.Count(), len(source.WithDebt()), source.TotalDebt())

	for _, c := range source.All() {
		fmt.Fprintf(&sb, "customer #%d %s national_id=%s balance=%.2f purchases=%d\n",
			c.ID(), c.Name(), c.NationalID(), c.Balance(), len(c.Purchases()))
	}

	return a.write("customers", now, sb.String())
}

// SaveAll snapshots every collection and writes a summary file naming the
// run. It returns the run id so callers can correlate log entries with the
// files on disk.
func (a *Archive) SaveAll(
	orders ProcurementSource, suppliers SupplierSource, customers LedgerSource,
) (string, error) {
	runID := uuid.NewString()
	now := time.Now()

	ordersFile, err := a.SaveOrders(orders)
	if err != nil {
		return "", err
	}
	suppliersFile, err := a.SaveSuppliers(suppliers)
	if err != nil {
		return "", err
	}
	customersFile, err := a.SaveCustomers(customers)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "SNAPSHOT RUN %s %s\n", runID, now.Format(time.RFC3339))
	fmt.Fprintf(&sb, "orders: %s\n", filepath.Base(ordersFile))
	fmt.Fprintf(&sb, "suppliers: %s\n", filepath.Base(suppliersFile))
	fmt.Fprintf(&sb, "customers: %s\n", filepath.Base(customersFile))

	if _, err := a.write("summary", now, sb.String()); err != nil {
		return "", err
	}

	a.logger.Info("snapshot run completed",
		slog.String("run_id", runID),
		slog.String("dir", a.dir))
	return runID, nil
}

// List returns the snapshot file names in the archive directory, sorted
// lexicographically. The timestamped naming makes that chronological per
// kind.
func (a *Archive) List() ([]string, error) {
	entries, err := os.ReadDir(a.dir)
	if err != nil {
		return nil, fmt.Errorf("read archive directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != snapshotExt {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// PruneOlderThan removes snapshot files whose modification time is older
// than the given number of days. It returns how many files were removed.
func (a *Archive) PruneOlderThan(days int) (int, error) {
	if days <= 0 {
		return 0, errs.NewValidationError("days")
	}

	cutoff := time.Now().AddDate(0, 0, -days)
	entries, err := os.ReadDir(a.dir)
	if err != nil {
		return 0, fmt.Errorf("read archive directory: %w", err)
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != snapshotExt {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return removed, fmt.Errorf("stat snapshot %s: %w", entry.Name(), err)
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(a.dir, entry.Name())); err != nil {
			return removed, fmt.Errorf("remove snapshot %s: %w", entry.Name(), err)
		}
		removed++
	}

	if removed > 0 {
		a.logger.Info("pruned old snapshots",
			slog.Int("removed", removed),
			slog.Int("retention_days", days))
	}
	return removed, nil
}

// Dir returns the directory the archive writes into.
func (a *Archive) Dir() string {
	return a.dir
}

func (a *Archive) write(kind string, at time.Time, content string) (string, error) {
	name := fmt.Sprintf("%s_%s%s", kind, at.Format(timestampLayout), snapshotExt)
	path := filepath.Join(a.dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write snapshot %s: %w", name, err)
	}
	return path, nil
}
