package order

import (
	"errors"
	"fmt"
	"time"

	"storeops/internal/core/domain/model/supplier"
	"storeops/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through the New factory method.
var ErrOrderIsNotConstructed = errors.New("Order must be created via New constructor")

// Order represents a purchase order placed with a supplier. It is the
// aggregate root managing line items, the running total, and the delivery
// lifecycle.
//
// Order follows these invariants:
//   - It references exactly one supplier, fixed at creation
//   - The total always equals the sum of item subtotals
//   - A delivered order can never be cancelled
//
// The supplier reference is non-owning: the supplier continues to exist
// and may be queried independently of any order.
type Order struct {
	// id uniquely identifies the order within its manager
	id int
	// supplier is the vendor this order was placed with
	supplier *supplier.Supplier
	// createdAt is the creation timestamp
	createdAt time.Time
	// estimatedDelivery is the expected delivery date, mutable until delivered
	estimatedDelivery time.Time
	// deliveredAt is the actual delivery timestamp, zero until delivered
	deliveredAt time.Time
	// items is the append-only sequence of line items
	items []Item
	// total is derived from the items; recomputed after every append
	total float64
	// status is the current lifecycle state
	status Status
	// notes is free text, used to record a cancellation reason
	notes string

	// isConstructed ensures the order was created via New
	isConstructed bool
}

// New creates an Order against the given supplier with an estimated
// delivery date. The order starts Pending, with no items and a zero total,
// and its creation timestamp is stamped to now.
func New(id int, sup *supplier.Supplier, estimatedDelivery time.Time) (*Order, error) {
	if sup == nil {
		return nil, errs.NewValidationError("supplier")
	}

	return &Order{
		id:                id,
		supplier:          sup,
		createdAt:         time.Now(),
		estimatedDelivery: estimatedDelivery,
		status:            Pending,
		isConstructed:     true,
	}, nil
}

// Validate ensures the Order instance was properly constructed via New.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// AddItem validates and appends a line item, then recomputes the total as
// the sum of all subtotals. The recomputation is deliberate: summing from
// scratch keeps the invariant trivially re-derivable and immune to drift
// from repeated increments.
//
// The aggregate does not check the lifecycle state here; the rule that
// items may only be added to pending or confirmed orders belongs to the
// manager layer.
func (o *Order) AddItem(product string, quantity int, unitPrice float64) error {
	item, err := newItem(product, quantity, unitPrice)
	if err != nil {
		return err
	}

	o.items = append(o.items, item)
	o.recomputeTotal()
	return nil
}

// recomputeTotal rederives the total from the current item list.
func (o *Order) recomputeTotal() {
	var total float64
	for _, item := range o.items {
		total += item.subtotal
	}
	o.total = total
}

// MarkDelivered sets the status to Delivered and stamps the actual
// delivery timestamp to now. It has no precondition: even a cancelled
// order is flipped to Delivered. Callers rely on the unguarded behavior,
// so do not add a guard here.
func (o *Order) MarkDelivered() {
	o.status = Delivered
	o.deliveredAt = time.Now()
}

// Cancel sets the status to Cancelled and records the reason in the
// notes. Cancelling an already-delivered order fails with a state error.
// Cancelling an already-cancelled order succeeds again and overwrites the
// reason.
func (o *Order) Cancel(reason string) error {
	if o.status == Delivered {
		return errs.NewStateError("cannot cancel an already-delivered order")
	}

	o.status = Cancelled
	o.notes = reason
	return nil
}

// IsPending reports whether the order still accepts items, which is the
// case while it is Pending or Confirmed.
func (o *Order) IsPending() bool {
	return o.status == Pending || o.status == Confirmed
}

// IsCompleted reports whether the order was delivered.
func (o *Order) IsCompleted() bool {
	return o.status == Delivered
}

// SetStatus overwrites the status without any legality check. It is the
// low-level primitive the manager uses for the Confirmed and InTransit
// transitions. Trusted callers only; the guarded paths are Cancel and
// MarkDelivered.
func (o *Order) SetStatus(status Status) {
	o.status = status
}

// SetEstimatedDelivery updates the expected delivery date.
func (o *Order) SetEstimatedDelivery(estimatedDelivery time.Time) {
	o.estimatedDelivery = estimatedDelivery
}

// SetNotes overwrites the free-text notes.
func (o *Order) SetNotes(notes string) {
	o.notes = notes
}

// ID returns the order's identifier.
func (o *Order) ID() int {
	return o.id
}

// Supplier returns the supplier this order was placed with.
func (o *Order) Supplier() *supplier.Supplier {
	return o.supplier
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// EstimatedDelivery returns the expected delivery date.
func (o *Order) EstimatedDelivery() time.Time {
	return o.estimatedDelivery
}

// DeliveredAt returns the actual delivery timestamp. The boolean is false
// until the order has been delivered.
func (o *Order) DeliveredAt() (time.Time, bool) {
	return o.deliveredAt, !o.deliveredAt.IsZero()
}

// Items returns a copy of the line items in insertion order. Mutating the
// returned slice never affects the order.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Total returns the current order total.
func (o *Order) Total() float64 {
	return o.total
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// Notes returns the free-text notes.
func (o *Order) Notes() string {
	return o.notes
}

// String returns a short human-readable representation of the order.
func (o *Order) String() string {
	return fmt.Sprintf("Order{id=%d, supplier=%s, total=%g, status=%s, items=%d}",
		o.id, o.supplier.Name(), o.total, o.status, len(o.items))
}
