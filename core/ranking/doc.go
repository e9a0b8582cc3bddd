// Package ranking implements the section controller's decision core: a
// stable multi-key ordering of waiting trains and a greedy one-to-one
// pairing of the top-ranked trains with currently available platforms.
// The package performs no I/O; callers supply in-memory tables and an
// optional priority override snapshot.
package ranking
