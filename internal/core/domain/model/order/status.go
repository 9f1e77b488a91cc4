package order

import (
	"fmt"

	"storeops/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// Intended workflow:
//
//	Pending ──> Confirmed ──> InTransit ──> Delivered
//	    │            │            │
//	    └────────────┴────────────┴──> Cancelled
//
// Delivered and Cancelled are the intended terminal states. The aggregate
// guards only the cancel and deliver rules; the Confirmed and InTransit
// transitions are driven by the manager layer, and Order.SetStatus remains
// an unguarded primitive for trusted callers.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every order. Items may be added.
	Pending

	// Confirmed indicates the order has been confirmed with the supplier.
	// Items may still be added.
	Confirmed

	// InTransit indicates the goods are on the way. No further items.
	InTransit

	// Delivered indicates the goods arrived. Terminal by intent.
	Delivered

	// Cancelled indicates the order was called off. Terminal by intent,
	// with the cancellation reason recorded in the order notes.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string
// representations. All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Confirmed: "Confirmed",
		InTransit: "InTransit",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Confirmed: "Confirmed",
		InTransit: "InTransit",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// Validate checks if the Status value is one of the defined lifecycle
// states. Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValidationErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status. It is safe to call
// on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
