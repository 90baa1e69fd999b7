// Package option provides Option[T], a value that is either Some(v) or
// Nothing.
//
// Options are built only through the factories:
// - Of: Some(v) unless v is an absence marker (nil pointer, map, slice, ...)
// - Some: always Some, including Some(nil)
// - Empty: always Nothing
// - FromPtr/FromPair: adapt pointer and comma-ok results
//
// The variant is carried as a tag, so Some(nil) is never confused with
// Nothing. The zero Option is Nothing.
//
// Case dispatch:
//
//	if user, ok := repo.FindByID(id).Get(); ok {
//		// use user
//	}
package option
