package option

// Map transforms Some(v) into Some(fn(v)); Nothing passes through and fn
// is not called. The result stays Some even when fn returns nil.
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	if !o.some {
		return Empty[U]()
	}
	return Some(fn(o.value))
}

// AndThen chains an operation that itself may produce Nothing.
func AndThen[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if !o.some {
		return Empty[U]()
	}
	return fn(o.value)
}

// Fold reduces the option to a value of U.
func Fold[T, U any](o Option[T], onSome func(T) U, onNothing func() U) U {
	if o.some {
		return onSome(o.value)
	}
	return onNothing()
}
