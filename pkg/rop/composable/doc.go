// Package composable turns ordinary functions into units that always settle
// to a rop.Result and combines those units into larger ones.
//
// A unit (Fn) never panics out and never returns a bare error: a returned
// error or a recovered panic becomes a failure, and an *rop.ErrorList
// contributes all of its members, so several errors can cross a plain
// function boundary (see FromSuccess) and come back as one failure.
//
// Highlights:
// - Of/Lift/Of2: wrap functions as units
// - Pipe/Sequence: run units left to right, stop at the first failure
// - All/Collect/Merge/First: run units concurrently on the same input,
//   report results and errors in declaration order
// - Branch/CatchError/MapError/Trace/Map/MapInput/Tap: control flow around a unit
// - Tupled/Untupled: use binary units with the unary combinators
//
// Parallel combinators run every unit to completion, a failing unit does
// not cancel its siblings. The number of units in flight can be capped with
// core.WithWorkerOptions.
package composable
