// Package supplier provides the Supplier aggregate for the procurement
// domain. A supplier is an external vendor the store orders goods from.
//
// Key business rules:
//   - Suppliers must have a non-blank name and company
//   - The product list never contains duplicates; adding an existing
//     product is a no-op
//   - Suppliers are never deleted; deactivation via the active flag is the
//     only soft delete
//   - Identity is immutable; contact data and the active flag are mutable
//
// The package follows the same aggregate conventions as the rest of the
// domain model: private fields, constructor validation, and defensive
// copies for every exposed collection.
package supplier
