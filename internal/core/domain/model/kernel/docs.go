// Package kernel provides shared value types used across the storeops
// domain model.
//
// The package includes:
//   - Sequence: a per-owner counter issuing sequential integer identifiers
//   - Period: an inclusive date range used for history queries
//
// These are deliberately small. Identifiers in this system are plain
// sequential integers owned by the collection that issues them; they are
// never global and never reused.
package kernel
