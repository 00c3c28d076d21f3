// internal/domain/homework/errors.go
package homework

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures of the poll cycle.
type ErrorKind string

const (
	KindConfiguration ErrorKind = "configuration"
	KindTransport     ErrorKind = "transport"
	KindEndpoint      ErrorKind = "endpoint"
	KindSchema        ErrorKind = "schema"
	KindUnknownStatus ErrorKind = "unknown_status"
	KindDelivery      ErrorKind = "delivery"
	KindOther         ErrorKind = "other"
)

// Error is a classified failure. StatusCode is set only for KindEndpoint.
type Error struct {
	Kind       ErrorKind
	Message    string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func ConfigurationError(err error) *Error {
	return &Error{Kind: KindConfiguration, Message: "invalid configuration", Err: err}
}

func TransportError(msg string, err error) *Error {
	return &Error{Kind: KindTransport, Message: msg, Err: err}
}

func EndpointError(statusCode int) *Error {
	return &Error{
		Kind:       KindEndpoint,
		Message:    fmt.Sprintf("endpoint returned status %d", statusCode),
		StatusCode: statusCode,
	}
}

func SchemaError(format string, args ...any) *Error {
	return &Error{Kind: KindSchema, Message: fmt.Sprintf(format, args...)}
}

func UnknownStatusError(status string) *Error {
	return &Error{Kind: KindUnknownStatus, Message: fmt.Sprintf("unknown homework status %q", status)}
}

func DeliveryError(err error) *Error {
	return &Error{Kind: KindDelivery, Message: "failed to deliver message", Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or KindOther.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindOther
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}
