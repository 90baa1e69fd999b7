// Package solo contains single-value, synchronous combinators over
// result.Result[T]. Unlike the Result methods, these may change the
// payload type, and every callback receives the caller's context.
//
// Highlights:
// - Succeed/Fail: construct Result[T]
// - Validate/AndValidate/ValidateAll: turn invalid input into a failure
// - Switch: move from Result[In] to Result[Out]
// - Map: transform successful values
// - Try: call a function (Out, error) and convert error to failure
// - Tee/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/error handlers
//
// A failed input always short-circuits and keeps its original error.
package solo
