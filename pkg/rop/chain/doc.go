// Package chain provides a fluent wrapper around Result[T]
// for running composables one after another on an existing result.
//
// Every step goes through the composable boundary, so errors and panics of
// a step turn into failures, and a failure skips the remaining steps.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or value
// - Then: continue with a composable.Fn[T, U]
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - Ensure: run side effects on success without changing the result
// - Recover: turn a failure back into a value
// - Finally: collapse the chain into a final value via handlers
package chain
