// Package lite streams values through composables with a fixed number of
// concurrent lines.
//
// Common usage:
// - Run: execute a composable over an input channel
// - Turnout: continue a stream of results with another composable
// - Finally: map results to plain values on completion
// - Collect: run over a slice and gather every result
//
// Cancelling the context stops feeding new values. A composable that has
// already started always finishes.
package lite
