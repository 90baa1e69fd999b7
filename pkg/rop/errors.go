package rop

import "errors"

var (
	// ErrConstruction is held by a Result that was not built through Ok,
	// Err or Try: the zero value and Err(nil).
	ErrConstruction = errors.New("rop: value was not built by a constructor")

	// ErrEmptyValue is returned when unwrapping Nothing.
	ErrEmptyValue = errors.New("rop: unwrap called on Nothing")
)
