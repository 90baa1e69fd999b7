package result

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/toradh/pkg/rop"
	"github.com/ib-77/toradh/pkg/rop/future"
)

var _ rop.Variant = Result[int]{}

// Result is either Ok(value) or Err(error). Compare with Equal, not ==:
// every Result carries its own id and creation time.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	ok        bool
}

func Ok[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		ok:        true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Err wraps err. A nil err yields a Result holding rop.ErrConstruction.
func Err[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		ok:        false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Try builds a Result from a (value, error) pair.
func Try[T any](v T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(v)
}

func (r Result[T]) IsOk() bool {
	return r.ok
}

func (r Result[T]) IsErr() bool {
	return !r.ok
}

func (r Result[T]) Tag() rop.Tag {
	if r.ok {
		return rop.TagOk
	}
	return rop.TagErr
}

// Err returns the held error, or nil for Ok
func (r Result[T]) Err() error {
	if r.ok {
		return nil
	}
	if rop.IsNil(r.err) {
		return rop.ErrConstruction
	}
	return r.err
}

// Kind returns the success value for Ok and the held error for Err. It is
// meant for a type switch:
//
//	switch k := res.Kind().(type) {
//	case Cart:
//	case *DuplicateItemError:
//	}
//
// When T is itself an error type, branch on IsOk instead.
func (r Result[T]) Kind() any {
	if r.ok {
		return r.value
	}
	return r.Err()
}

// Value returns the success payload and whether r is Ok.
func (r Result[T]) Value() (T, bool) {
	if !r.ok {
		var zero T
		return zero, false
	}
	return r.value, true
}

// Unwrap returns the success payload, or the held error itself for Err.
func (r Result[T]) Unwrap() (T, error) {
	if !r.ok {
		var zero T
		return zero, r.Err()
	}
	return r.value, nil
}

// MustUnwrap returns the success payload and panics with the held error.
func (r Result[T]) MustUnwrap() T {
	if !r.ok {
		panic(r.Err())
	}
	return r.value
}

func (r Result[T]) UnwrapOr(fallback T) T {
	if !r.ok {
		return fallback
	}
	return r.value
}

// UnwrapOrElse computes a value from the held error, only for Err.
func (r Result[T]) UnwrapOrElse(op func(err error) T) T {
	if !r.ok {
		return op(r.Err())
	}
	return r.value
}

// IfOk runs op with the payload of Ok. Err is a no-op.
func (r Result[T]) IfOk(op func(T)) {
	if r.ok {
		op(r.value)
	}
}

// AsyncIfOk runs op with the payload of Ok and waits for the returned
// computation before returning. op may return nil when nothing is
// pending. There is no timeout: a computation that never resolves blocks
// the caller forever.
func (r Result[T]) AsyncIfOk(op func(T) future.Awaitable) {
	if !r.ok {
		return
	}
	pending := op(r.value)
	if rop.IsNil(pending) {
		return
	}
	pending.Wait()
}

// IfErr runs op with the held error of Err. Ok is a no-op.
func (r Result[T]) IfErr(op func(error)) {
	if !r.ok {
		op(r.Err())
	}
}

// MapToErr replaces the error of an Err with err. Ok is returned unchanged.
func (r Result[T]) MapToErr(err error) Result[T] {
	if r.ok {
		return r
	}
	return Result[T]{
		err:       err,
		createdAt: time.Now().UTC(),
		id:        r.id,
	}
}

// Match calls onOk or onErr depending on the variant. Nil handlers are skipped.
func (r Result[T]) Match(onOk func(T), onErr func(error)) {
	if r.ok {
		if onOk != nil {
			onOk(r.value)
		}
		return
	}
	if onErr != nil {
		onErr(r.Err())
	}
}

// Equal reports whether both are Ok with equal values or both are Err with
// equal errors. Id and creation time are ignored.
func (r Result[T]) Equal(other Result[T]) bool {
	if r.ok != other.ok {
		return false
	}
	if r.ok {
		return rop.Equal(r.value, other.value)
	}
	return rop.Equal(r.Err(), other.Err())
}

func (r Result[T]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.Err())
}

// ID identifies this Result. MapToErr keeps the id of its source.
func (r Result[T]) ID() uuid.UUID {
	return r.id
}

// CreatedAt time creation (UTC)
func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func IsOk[T any](r Result[T]) bool {
	return r.IsOk()
}

func IsErr[T any](r Result[T]) bool {
	return r.IsErr()
}
