// SPDX-License-Identifier: MPL-2.0

// Package theme validates crossword theme entries against the numeric
// guidelines of a puzzle profile (entry count range, per-entry letter range,
// grid size). All operations are pure functions over their inputs: they hold
// no shared state, perform no I/O, and are safe to call concurrently.
package theme
