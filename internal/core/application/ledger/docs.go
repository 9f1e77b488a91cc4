// Package ledger tracks store-credit customers and their outstanding
// balances. The Ledger owns the customer collection directly and hands out
// aggregate references, mirroring the ownership model of the procurement
// package.
package ledger
