package option

import (
	"fmt"

	"github.com/ib-77/toradh/pkg/rop"
)

var _ rop.Variant = Option[int]{}

// Option holds either one value (Some) or nothing (Nothing).
type Option[T any] struct {
	value T
	some  bool
}

// Of returns Some(v), or Nothing when v is an absence marker.
func Of[T any](v T) Option[T] {
	if rop.IsNil(v) {
		return Empty[T]()
	}
	return Some(v)
}

// Some wraps v unconditionally.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

func Empty[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr returns Some(*p), or Nothing for a nil pointer.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return Empty[T]()
	}
	return Some(*p)
}

// FromPair adapts the comma-ok idiom.
func FromPair[T any](v T, ok bool) Option[T] {
	if !ok {
		return Empty[T]()
	}
	return Some(v)
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

func (o Option[T]) Tag() rop.Tag {
	if o.some {
		return rop.TagSome
	}
	return rop.TagNothing
}

// Kind returns the payload for Some and nil for Nothing.
func (o Option[T]) Kind() any {
	if !o.some {
		return nil
	}
	return o.value
}

// Get returns the payload and whether the option is Some.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// Unwrap returns the payload, or rop.ErrEmptyValue for Nothing.
func (o Option[T]) Unwrap() (T, error) {
	if !o.some {
		var zero T
		return zero, rop.ErrEmptyValue
	}
	return o.value, nil
}

// MustUnwrap returns the payload and panics with rop.ErrEmptyValue for Nothing.
func (o Option[T]) MustUnwrap() T {
	if !o.some {
		panic(rop.ErrEmptyValue)
	}
	return o.value
}

func (o Option[T]) UnwrapOr(fallback T) T {
	if !o.some {
		return fallback
	}
	return o.value
}

// UnwrapOrElse computes the fallback only for Nothing.
func (o Option[T]) UnwrapOrElse(fallback func() T) T {
	if !o.some {
		return fallback()
	}
	return o.value
}

// Map applies fn to the payload of Some. fn is never called for Nothing.
func (o Option[T]) Map(fn func(T) T) Option[T] {
	return Map(o, fn)
}

// Filter keeps Some(v) only when keep(v) holds.
func (o Option[T]) Filter(keep func(T) bool) Option[T] {
	if o.some && keep(o.value) {
		return o
	}
	return Empty[T]()
}

// OrElse returns o if it is Some, otherwise alt.
func (o Option[T]) OrElse(alt Option[T]) Option[T] {
	if o.some {
		return o
	}
	return alt
}

// Match calls onSome with the payload or onNothing. Nil handlers are skipped.
func (o Option[T]) Match(onSome func(T), onNothing func()) {
	if o.some {
		if onSome != nil {
			onSome(o.value)
		}
		return
	}
	if onNothing != nil {
		onNothing()
	}
}

// Ptr returns a pointer to a copy of the payload, or nil for Nothing.
func (o Option[T]) Ptr() *T {
	if !o.some {
		return nil
	}
	v := o.value
	return &v
}

func (o Option[T]) Equal(other Option[T]) bool {
	if o.some != other.some {
		return false
	}
	return !o.some || rop.Equal(o.value, other.value)
}

func (o Option[T]) String() string {
	if !o.some {
		return "Nothing"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

func IsSome[T any](o Option[T]) bool {
	return o.IsSome()
}

func IsNone[T any](o Option[T]) bool {
	return o.IsNone()
}
