// Package heap implements a mark-and-sweep garbage collector coupled with a
// segregated-free-list allocator over a single contiguous, word-addressed
// memory region.
//
// Allocation tries the free lists first, falls back to a collection cycle
// on exhaustion, and gives up for good only after a post-collection retry
// still finds nothing. Free space is segregated by exact payload size below
// a cutoff and served best-fit above it.
//
// The collector is single-threaded, non-moving, non-generational, and
// non-concurrent by design; see SPEC_FULL.md for the full list of things this
// package deliberately does not do.
package heap
