package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Standard sentinel errors for failures raised on the client side
var (
	// ErrInvalidArgument indicates a request or option failed validation before any I/O
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrTransport indicates the request could not be delivered or the response not read
	ErrTransport = errors.New("transport failure")

	// ErrSerialization indicates a payload could not be encoded or decoded
	ErrSerialization = errors.New("serialization failure")

	// ErrCredentials indicates credentials could not be resolved or used for signing
	ErrCredentials = errors.New("credentials unavailable")

	// ErrIntegrity indicates returned content does not match its object id
	ErrIntegrity = errors.New("content integrity check failed")

	// ErrConfig indicates a configuration error
	ErrConfig = errors.New("configuration error")
)

// ArgumentError describes a rejected request field.
type ArgumentError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *ArgumentError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrInvalidArgument, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", ErrInvalidArgument, e.Field, e.Message)
}

// Is reports ErrInvalidArgument as a match so callers can test for the class.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// InvalidArgument creates a new validation error with field details
func InvalidArgument(field, message string) error {
	return &ArgumentError{Field: field, Message: message}
}

// OperationError wraps any failure of a service operation with the context of the call.
type OperationError struct {
	Operation  string `json:"operation"`
	StatusCode int    `json:"statusCode,omitempty"`
	RequestID  string `json:"requestId,omitempty"`
	Err        error  `json:"-"`
}

// Error implements the error interface
func (e *OperationError) Error() string {
	msg := "operation " + e.Operation
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(", status %d", e.StatusCode)
	}
	if e.RequestID != "" {
		msg += ", request id " + e.RequestID
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error
func (e *OperationError) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the HTTP status code of the failed call, or 0 if no response was received
func (e *OperationError) HTTPStatus() int {
	return e.StatusCode
}

// IsServerSide reports whether the service answered with a 5xx status.
func (e *OperationError) IsServerSide() bool {
	return e.StatusCode >= http.StatusInternalServerError
}

// NewOperationError creates a new OperationError for the given operation and underlying error
func NewOperationError(operation string, err error) *OperationError {
	return &OperationError{
		Operation: operation,
		Err:       err,
	}
}

// IsInvalidArgument checks if an error is a client-side validation error
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsTransport checks if an error is a transport failure
func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}

// IsSerialization checks if an error is a serialization failure
func IsSerialization(err error) bool {
	return errors.Is(err, ErrSerialization)
}

// IsIntegrity checks if an error is a content integrity failure
func IsIntegrity(err error) bool {
	return errors.Is(err, ErrIntegrity)
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// WrapClass wraps err so that it matches class under errors.Is while keeping err in the chain.
func WrapClass(class, err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %w", class, message, err)
}

// Re-exported standard library helpers so callers need a single errors import.
var (
	Is  = errors.Is
	As  = errors.As
	New = errors.New
)
