// Package result provides Result[T], the outcome of an operation that
// either succeeded with a value (Ok) or failed with an error (Err).
//
// The held error is kept verbatim: Unwrap returns the very error value
// passed to Err, so errors.Is and errors.As recover the original type.
//
// Key operations:
// - Ok/Err/Try: construct a Result
// - IsOk/IsErr/Tag/Kind/Value: inspect the variant for case dispatch
// - Unwrap/UnwrapOr/UnwrapOrElse: extract the payload
// - IfOk/AsyncIfOk/IfErr: side effects on one variant
// - MapToErr: replace the error of an Err
//
// The zero Result and Err(nil) behave as Err(rop.ErrConstruction).
package result
