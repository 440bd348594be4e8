// Package solo contains single-value, synchronous primitives that operate
// on Result[T]. The composable combinators are built from them.
//
// Highlights:
// - Succeed/Fail: construct Result[T]
// - Switch: move from Result[In] to Result[Out]
// - Map: transform successful values
// - Try: call a function (Out, error) and convert error to failure
// - Tee/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/error handlers
// - Concat: gather the errors of several results in order
package solo
