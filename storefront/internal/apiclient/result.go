package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pkg/errors"

	"github.com/Astemirdum/bookstore-storefront/storefront/internal/errs"
)

type outcome uint8

const (
	outcomeFailure outcome = iota
	outcomeOk
	outcomeUnauthorized
)

// Result is the outcome of a read whose caller must tell
// "not allowed" apart from every other failure.
type Result[T any] struct {
	value   T
	err     error
	outcome outcome
}

func Ok[T any](v T) Result[T] {
	return Result[T]{value: v, outcome: outcomeOk}
}

func Unauthorized[T any]() Result[T] {
	return Result[T]{err: errs.ErrUnauthorized, outcome: outcomeUnauthorized}
}

func Failure[T any](err error) Result[T] {
	if err == nil {
		err = errs.ErrDefault
	}
	return Result[T]{err: err, outcome: outcomeFailure}
}

func (r Result[T]) IsOk() bool {
	return r.outcome == outcomeOk
}

func (r Result[T]) IsUnauthorized() bool {
	return r.outcome == outcomeUnauthorized
}

// Value returns the payload, or the zero value when the read did not succeed.
func (r Result[T]) Value() T {
	return r.value
}

func (r Result[T]) Err() error {
	return r.err
}

// Fetch performs a GET and classifies the answer:
// 2xx is Ok, 401 is Unauthorized, anything else a Failure.
func Fetch[T any](ctx context.Context, c *Client, path string, query url.Values) Result[T] {
	var v T
	code, err := c.Get(ctx, path, query, &v)
	switch {
	case code == http.StatusUnauthorized:
		return Unauthorized[T]()
	case err != nil:
		return Failure[T](err)
	case !IsSuccess(code):
		return Failure[T](errors.Errorf("unexpected status %d", code))
	}
	return Ok(v)
}
