package outcome

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyOption reports an Unwrap on a None option.
	ErrEmptyOption = errors.New("outcome: option is empty")

	// ErrNilSome reports a Some constructed from a nil value.
	ErrNilSome = errors.New("outcome: Some requires a non-nil value")

	// ErrFlattenEmpty reports a Flatten of a Some whose inner option is None.
	ErrFlattenEmpty = errors.New("outcome: flatten of empty inner option")
)

// Fault is a structural error carrying a numeric code and a message. It
// mirrors the error objects of external platforms that report failures as
// plain {code, message} records instead of typed exceptions. A Fault is
// eligible for recovery under every typed filter of the intercept package.
type Fault struct {
	Code    int
	Message string
}

func (f Fault) Error() string {
	return fmt.Sprintf("fault %d: %s", f.Code, f.Message)
}

// ErrorCode returns the numeric fault tag.
func (f Fault) ErrorCode() int {
	return f.Code
}

// ErrorMessage returns the human-readable fault text.
func (f Fault) ErrorMessage() string {
	return f.Message
}

// Panic wraps a recovered panic payload that was not itself an error, so
// that any thrown value (strings included) can travel the error channel.
type Panic struct {
	Value any
}

func (p Panic) Error() string {
	return fmt.Sprintf("panic: %v", p.Value)
}

// AsError converts a recovered panic payload into an error: error payloads
// pass through unchanged, anything else is wrapped in Panic.
func AsError(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return Panic{Value: v}
}
