package procurement

import (
	"fmt"
	"time"

	"storeops/internal/core/domain/model/kernel"
	"storeops/internal/core/domain/model/order"
	"storeops/internal/pkg/errs"
)

// Statistics aggregates counts and spend over the full order collection.
// The counts are mutually exclusive by current status; an order in an
// intermediate state such as InTransit matches none of the three buckets.
type Statistics struct {
	Total      int
	Pending    int
	Completed  int
	Cancelled  int
	TotalSpent float64
}

// Manager owns the collection of purchase orders. It mediates every
// mutation, consulting the supplier Registry where cross-cutting rules
// apply, and answers all historical and statistical queries.
//
// Error contract, preserved exactly because callers observe it:
//   - creation failures raise (unknown supplier, inactive supplier)
//   - AddItem and Confirm propagate state and validation errors
//   - Cancel absorbs the aggregate's state error into a false return
//   - unknown ids are reported as false or absent, never as an error
type Manager struct {
	registry *Registry
	orders   []*order.Order
	seq      *kernel.Sequence
}

// NewManager creates an order manager over the given supplier registry,
// with its own id counter independent from the registry's.
func NewManager(registry *Registry) *Manager {
	return &Manager{registry: registry, seq: kernel.NewSequence()}
}

// Create opens a new order against the supplier with the given id.
// It fails with a validation error when no such supplier exists and with
// a state error when the supplier is inactive. The order starts Pending
// with no items.
func (m *Manager) Create(supplierID int, estimatedDelivery time.Time) (*order.Order, error) {
	sup, ok := m.registry.FindByID(supplierID)
	if !ok {
		return nil, errs.NewValidationErrorWithCause("supplier id",
			fmt.Errorf("no supplier with id %d", supplierID))
	}
	if !sup.Active() {
		return nil, errs.NewStateError("supplier is not active")
	}

	o, err := order.New(m.seq.Next(), sup, estimatedDelivery)
	if err != nil {
		return nil, err
	}

	m.orders = append(m.orders, o)
	return o, nil
}

// AddItem appends a line item to the order with the given id. It returns
// false without an error when the order is unknown. Adding to an order
// that is no longer pending or confirmed fails with a state error, and
// invalid item data fails with a validation error; both propagate.
func (m *Manager) AddItem(orderID int, product string, quantity int, unitPrice float64) (bool, error) {
	o, ok := m.FindByID(orderID)
	if !ok {
		return false, nil
	}
	if !o.IsPending() {
		return false, errs.NewStateError("cannot add items to anything but a pending or confirmed order")
	}

	if err := o.AddItem(product, quantity, unitPrice); err != nil {
		return false, err
	}
	return true, nil
}

// Confirm moves a pending order to Confirmed. It returns false without an
// error when the order is unknown and fails with a state error when the
// order has no items.
func (m *Manager) Confirm(orderID int) (bool, error) {
	o, ok := m.FindByID(orderID)
	if !ok {
		return false, nil
	}
	if len(o.Items()) == 0 {
		return false, errs.NewStateError("cannot confirm an order with no items")
	}

	o.SetStatus(order.Confirmed)
	return true, nil
}

// MarkInTransit moves an order to InTransit via the aggregate's unguarded
// setter. Returns false when the order is unknown.
func (m *Manager) MarkInTransit(orderID int) bool {
	o, ok := m.FindByID(orderID)
	if !ok {
		return false
	}

	o.SetStatus(order.InTransit)
	return true
}

// MarkDelivered marks an order as delivered, stamping the actual delivery
// timestamp. Returns false when the order is unknown; otherwise it always
// succeeds, whatever the current status.
func (m *Manager) MarkDelivered(orderID int) bool {
	o, ok := m.FindByID(orderID)
	if !ok {
		return false
	}

	o.MarkDelivered()
	return true
}

// Cancel cancels an order, recording the reason. Returns false when the
// order is unknown or already delivered. Unlike AddItem and Confirm, the
// aggregate's state error is absorbed here, not propagated; callers must
// check the boolean, not rely on an error.
func (m *Manager) Cancel(orderID int, reason string) bool {
	o, ok := m.FindByID(orderID)
	if !ok {
		return false
	}

	if err := o.Cancel(reason); err != nil {
		return false
	}
	return true
}

// FindByID returns the order with the given id, or false when absent.
func (m *Manager) FindByID(id int) (*order.Order, bool) {
	for _, o := range m.orders {
		if o.ID() == id {
			return o, true
		}
	}
	return nil, false
}

// History returns a snapshot of every order in insertion order. This is
// part of the read-only contract the backup collaborator depends on.
func (m *Manager) History() []*order.Order {
	history := make([]*order.Order, len(m.orders))
	copy(history, m.orders)
	return history
}

// HistoryForSupplier returns the orders placed with the given supplier,
// in insertion order.
func (m *Manager) HistoryForSupplier(supplierID int) []*order.Order {
	history := make([]*order.Order, 0)
	for _, o := range m.orders {
		if o.Supplier().ID() == supplierID {
			history = append(history, o)
		}
	}
	return history
}

// ByStatus returns the orders currently in the given status.
func (m *Manager) ByStatus(status order.Status) []*order.Order {
	matched := make([]*order.Order, 0)
	for _, o := range m.orders {
		if o.Status() == status {
			matched = append(matched, o)
		}
	}
	return matched
}

// CreatedBetween returns the orders whose creation timestamp falls within
// the period, both ends inclusive.
func (m *Manager) CreatedBetween(period kernel.Period) []*order.Order {
	matched := make([]*order.Order, 0)
	for _, o := range m.orders {
		if period.Contains(o.CreatedAt()) {
			matched = append(matched, o)
		}
	}
	return matched
}

// Pending returns the orders still accepting items (Pending or
// Confirmed).
func (m *Manager) Pending() []*order.Order {
	pending := make([]*order.Order, 0)
	for _, o := range m.orders {
		if o.IsPending() {
			pending = append(pending, o)
		}
	}
	return pending
}

// Completed returns the delivered orders.
func (m *Manager) Completed() []*order.Order {
	completed := make([]*order.Order, 0)
	for _, o := range m.orders {
		if o.IsCompleted() {
			completed = append(completed, o)
		}
	}
	return completed
}

// TotalSpentWith returns the amount spent with the given supplier,
// counting only delivered orders.
func (m *Manager) TotalSpentWith(supplierID int) float64 {
	var total float64
	for _, o := range m.orders {
		if o.Supplier().ID() == supplierID && o.IsCompleted() {
			total += o.Total()
		}
	}
	return total
}

// Statistics computes the aggregate counters in a single pass over the
// order collection. TotalSpent sums the totals of delivered orders only.
func (m *Manager) Statistics() Statistics {
	stats := Statistics{Total: len(m.orders)}
	for _, o := range m.orders {
		switch {
		case o.IsPending():
			stats.Pending++
		case o.IsCompleted():
			stats.Completed++
			stats.TotalSpent += o.Total()
		case o.Status() == order.Cancelled:
			stats.Cancelled++
		}
	}
	return stats
}

// Count returns the number of orders ever created.
func (m *Manager) Count() int {
	return len(m.orders)
}
