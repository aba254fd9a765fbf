package betting

import (
	"fmt"
	"reflect"
)

// ErrorKind classifies every failure a ClientResponse can carry.
type ErrorKind uint8

const (
	ErrKindRPCFailure ErrorKind = iota + 1
	ErrKindAccountNotFound
	ErrKindAccountDecodeFailed
	ErrKindDerivationFailed
	ErrKindInvalidInput
)

func (k ErrorKind) String() string {
	switch k {
	case ErrKindRPCFailure:
		return "rpc failure"
	case ErrKindAccountNotFound:
		return "account not found"
	case ErrKindAccountDecodeFailed:
		return "account decode failed"
	case ErrKindDerivationFailed:
		return "pda derivation failed"
	case ErrKindInvalidInput:
		return "invalid input"
	default:
		return "unknown"
	}
}

// Error is a classified failure of one dependency call.
type Error struct {
	Kind       ErrorKind
	Dependency string
	Cause      error
}

func (e Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v: %v", e.Dependency, e.Kind, e.Cause)
	}
	return fmt.Sprintf("%s: %v", e.Dependency, e.Kind)
}

func (e Error) Unwrap() error { return e.Cause }

// ClientResponse is the uniform envelope every operation returns.
// Success is false exactly when Errors is non-empty; Data may be
// partially populated on failure.
type ClientResponse[T any] struct {
	Success bool
	Errors  []Error
	Data    T
}

// ResponseFactory accumulates data and errors for one operation and
// produces ClientResponse snapshots. Once an error is added the
// factory stays failed.
type ResponseFactory[T any] struct {
	success bool
	errors  []Error
	data    T
}

func NewResponseFactory[T any](initial T) *ResponseFactory[T] {
	return &ResponseFactory[T]{success: true, data: initial}
}

// AddResponseData shallow-merges partial into the accumulated data:
// every exported non-zero field of partial overwrites the accumulated
// field, zero-valued fields leave the existing value intact. The
// success flag is untouched.
func (f *ResponseFactory[T]) AddResponseData(partial T) {
	dst := reflect.ValueOf(&f.data).Elem()
	src := reflect.ValueOf(partial)
	if src.Kind() != reflect.Struct {
		f.data = partial
		return
	}
	for i := 0; i < src.NumField(); i++ {
		field := src.Field(i)
		if field.IsZero() || !dst.Field(i).CanSet() {
			continue
		}
		dst.Field(i).Set(field)
	}
}

func (f *ResponseFactory[T]) AddError(err Error) {
	f.errors = append(f.errors, err)
	f.success = false
}

func (f *ResponseFactory[T]) AddErrors(errs []Error) {
	if len(errs) == 0 {
		return
	}
	f.errors = append(f.errors, errs...)
	f.success = false
}

// Failed reports whether any error has been added.
func (f *ResponseFactory[T]) Failed() bool { return !f.success }

// Body returns a snapshot of the envelope. The errors slice is copied
// so later factory mutations cannot reach a returned response.
func (f *ResponseFactory[T]) Body() ClientResponse[T] {
	errs := make([]Error, len(f.errors))
	copy(errs, f.errors)
	return ClientResponse[T]{
		Success: f.success,
		Errors:  errs,
		Data:    f.data,
	}
}
