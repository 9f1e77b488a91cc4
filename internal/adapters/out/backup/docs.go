// Package backup writes plain-text snapshots of the store's state to a
// directory on disk. Snapshots are append-only files named by kind and
// timestamp; the Archive never reads them back, it only lists and prunes.
package backup
