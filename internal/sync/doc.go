// Package sync implements the pairwise reconciliation of two independently
// evolved copies of the same logical vocabulary store.
//
// The merge is a one-shot batch operation over two in-memory snapshots, not
// a replication protocol: there is no causal ordering and no multi-writer
// coordination. Conflicts are resolved deterministically - vocabulary items
// by the later review state, log entries by local-first deduplication - so
// re-running a merge on the same inputs always yields the same result.
//
// All merge functions are pure. They never mutate their inputs and return
// freshly allocated collections.
package sync
