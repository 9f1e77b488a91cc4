// Package order provides the Order aggregate for the procurement domain.
// An order is a single purchase request to one supplier, composed of line
// items and moving through a delivery lifecycle.
//
// The package includes:
//   - Order: the aggregate root managing items, the running total, and
//     the lifecycle state
//   - Item: an immutable line item with a precomputed subtotal
//   - Status: the lifecycle state enumeration
//
// Key business rules:
//   - The total always equals the sum of item subtotals; it is recomputed
//     from scratch after every append, never incremented
//   - Items may only be appended while the order is pending or confirmed
//     (that rule is enforced by the manager layer)
//   - Delivered orders cannot be cancelled; the aggregate enforces this
//   - MarkDelivered has no precondition, and SetStatus is an unguarded
//     setter for trusted callers; see the respective method docs
//
// The package follows Domain-Driven Design principles, providing rich
// domain behavior, encapsulation, and validation to ensure business rules
// are enforced.
package order
