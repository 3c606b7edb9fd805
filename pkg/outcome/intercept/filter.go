package intercept

import (
	"errors"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Filter decides whether a failure is eligible for recovery by a handler.
// A nil Filter matches everything.
type Filter interface {
	Matches(cause error) bool
}

type anyFilter struct{}

func (anyFilter) Matches(error) bool { return true }

// MatchAny matches every failure unconditionally, including panic payloads
// that were not errors (a thrown string still reaches the handler, wrapped
// in outcome.Panic).
func MatchAny() Filter { return anyFilter{} }

type errorsFilter struct{}

func (errorsFilter) Matches(cause error) bool {
	var p outcome.Panic
	return !errors.As(cause, &p)
}

// MatchErrors matches failures that originate from genuine error values.
// Non-error panic payloads do not match and propagate unchanged.
func MatchErrors() Filter { return errorsFilter{} }

type asFilter[E error] struct{}

func (asFilter[E]) Matches(cause error) bool {
	var target E
	return errors.As(cause, &target)
}

// MatchAs matches the declared error type E and anything in cause's wrap
// chain convertible to it.
func MatchAs[E error]() Filter { return asFilter[E]{} }

type codeFilter struct {
	code int
}

func (f codeFilter) Matches(cause error) bool {
	var tagged interface{ ErrorCode() int }
	return errors.As(cause, &tagged) && tagged.ErrorCode() == f.code
}

// MatchCode matches failures carrying the given structural fault tag, such
// as outcome.Fault values with that code.
func MatchCode(code int) Filter { return codeFilter{code: code} }

// platformShaped reports the external platform error shape: a numeric code
// plus a message, as carried by outcome.Fault.
func platformShaped(cause error) bool {
	var fault interface {
		ErrorCode() int
		ErrorMessage() string
	}
	return errors.As(cause, &fault)
}

// matched applies the shared eligibility rule of every interception entry
// point: no filter matches everything; otherwise the declared filter or the
// platform fault shape.
func matched(f Filter, cause error) bool {
	if f == nil {
		return true
	}
	return f.Matches(cause) || platformShaped(cause)
}
