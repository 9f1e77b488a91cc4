// Package procurement provides the application services for purchase-order
// tracking: the supplier Registry and the order Manager.
//
// The Registry exclusively owns the supplier collection and its id
// counter; the Manager exclusively owns the order collection and its own
// independent counter. The Manager is the only component with
// collection-wide visibility and mediates every mutation, consulting the
// Registry before creating orders. Aggregates never reference the Manager.
//
// Both services follow the single-actor model: no internal locking, no
// blocking operations. Embedders running concurrently must serialize
// mutations externally. Every collection-returning query hands out a
// snapshot copy.
package procurement
