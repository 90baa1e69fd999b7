package solo

import (
	"context"
	"errors"

	"github.com/ib-77/toradh/pkg/rop"
	"github.com/ib-77/toradh/pkg/rop/result"
)

func Succeed[T any](input T) result.Result[T] {
	return result.Ok(input)
}

func Fail[T any](err error) result.Result[T] {
	return result.Err[T](err)
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) result.Result[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input result.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) result.Result[T] {

	v, ok := input.Value()
	if !ok {
		return input
	}

	if isValid, errMsg := validate(ctx, v); !isValid {
		return result.Err[T](errors.New(errMsg))
	}
	return input
}

// ValidateAll runs every validator against input. With breakOnError the
// first failure is returned; otherwise all failures are joined. A context
// cancelled before every validator ran fails with ctx.Err(), joined with
// the failures collected so far.
func ValidateAll[T any](
	ctx context.Context,
	input result.Result[T],
	breakOnError bool,
	validators ...func(ctx context.Context, in T) error) result.Result[T] {

	v, ok := input.Value()
	if !ok {
		return input
	}

	var errs []error
	for _, validate := range validators {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result.Err[T](errors.Join(append(errs, ctxErr)...))
		}
		if err := validate(ctx, v); err != nil {
			if breakOnError {
				return result.Err[T](err)
			}
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return result.Err[T](errors.Join(errs...))
	}
	return input
}

// Errors splits the error of a failed Result into its joined parts.
func Errors[T any](input result.Result[T]) []error {
	return rop.GetErrors(input.Err())
}

func Switch[In any, Out any](ctx context.Context,
	input result.Result[In],
	onSuccess func(ctx context.Context, r In) result.Result[Out]) result.Result[Out] {

	v, ok := input.Value()
	if !ok {
		return result.Err[Out](input.Err())
	}
	return onSuccess(ctx, v)
}

func Map[In any, Out any](ctx context.Context,
	input result.Result[In],
	onSuccess func(ctx context.Context, r In) Out) result.Result[Out] {

	v, ok := input.Value()
	if !ok {
		return result.Err[Out](input.Err())
	}
	return result.Ok(onSuccess(ctx, v))
}

func Tee[T any](ctx context.Context,
	input result.Result[T],
	onSuccess func(ctx context.Context, r T)) result.Result[T] {

	input.IfOk(func(v T) {
		onSuccess(ctx, v)
	})
	return input
}

func DoubleTee[T any](ctx context.Context, input result.Result[T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error)) result.Result[T] {

	input.Match(
		func(v T) { onSuccess(ctx, v) },
		func(err error) { onError(ctx, err) })

	return input
}

func Try[In any, Out any](ctx context.Context, input result.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) result.Result[Out] {

	v, ok := input.Value()
	if !ok {
		return result.Err[Out](input.Err())
	}
	out, err := onTryExecute(ctx, v)
	return result.Try(out, err)
}

func FailOnError[T any](ctx context.Context, input result.Result[T],
	maybeErr func(ctx context.Context, in T) error) result.Result[T] {

	v, ok := input.Value()
	if !ok {
		return input
	}
	if err := maybeErr(ctx, v); err != nil {
		return result.Err[T](err)
	}
	return input
}

func Finally[In, Out any](ctx context.Context, input result.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out) Out {

	if v, ok := input.Value(); ok {
		return onSuccess(ctx, v)
	}
	return onError(ctx, input.Err())
}
