package types

import (
	"strings"

	"github.com/bravo68web/codecommit/pkg/errors"
)

// ErrorKind identifies a fault reported by the service.
type ErrorKind string

// ErrorKinds returns every cataloged kind, excluding ErrorKindServiceFault.
func ErrorKinds() []ErrorKind {
	out := make([]ErrorKind, len(errorKinds))
	copy(out, errorKinds)
	return out
}

func (k ErrorKind) String() string { return string(k) }

// IsKnown reports whether k is a cataloged kind or ErrorKindServiceFault.
func (k ErrorKind) IsKnown() bool {
	if k == ErrorKindServiceFault {
		return true
	}
	_, ok := errorKindIndex[k]
	return ok
}

// ParseErrorKind maps a discriminator to its kind. The discriminator is
// normalized first, so "com.amazonaws.codecommit#FooException:http://..." works.
func ParseErrorKind(discriminator string) (ErrorKind, error) {
	d := NormalizeDiscriminator(discriminator)
	if d == "" {
		return "", errors.InvalidArgument("ErrorKind", "value is empty")
	}
	k := ErrorKind(d)
	if !k.IsKnown() {
		return "", errors.InvalidArgument("ErrorKind", "unknown value "+d)
	}
	return k, nil
}

var errorKindIndex = func() map[ErrorKind]struct{} {
	m := make(map[ErrorKind]struct{}, len(errorKinds))
	for _, k := range errorKinds {
		m[k] = struct{}{}
	}
	return m
}()

// NormalizeDiscriminator strips a namespace prefix ending in '#' and any
// suffix starting at ':'.
func NormalizeDiscriminator(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.LastIndexByte(s, '#'); i >= 0 {
		s = s[i+1:]
	}
	if i := strings.IndexByte(s, ':'); i >= 0 {
		s = s[:i]
	}
	return s
}

// ServiceError is a fault reported by the service.
type ServiceError struct {
	Kind ErrorKind
	// Code is the discriminator as received, before normalization.
	Code    string
	Message string
}

func (e *ServiceError) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return string(e.Kind) + ": " + e.Message
}

// Is matches another *ServiceError of the same kind, so that
// errors.Is(err, &ServiceError{Kind: k}) works through wrapping.
func (e *ServiceError) Is(target error) bool {
	t, ok := target.(*ServiceError)
	return ok && t.Kind == e.Kind
}

// NewServiceError returns a ServiceError of the given kind.
func NewServiceError(kind ErrorKind, message string) *ServiceError {
	return &ServiceError{Kind: kind, Code: string(kind), Message: message}
}

// DecodeServiceError builds the ServiceError for a discriminator. Unknown or
// empty discriminators yield ErrorKindServiceFault; message is kept verbatim.
func DecodeServiceError(discriminator, message string) *ServiceError {
	kind := ErrorKind(NormalizeDiscriminator(discriminator))
	if _, ok := errorKindIndex[kind]; !ok {
		kind = ErrorKindServiceFault
	}
	return &ServiceError{Kind: kind, Code: discriminator, Message: message}
}

// IsKind reports whether err carries a ServiceError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var se *ServiceError
	return errors.As(err, &se) && se.Kind == kind
}

// AsServiceError returns the ServiceError in err's chain, if any.
func AsServiceError(err error) (*ServiceError, bool) {
	var se *ServiceError
	ok := errors.As(err, &se)
	return se, ok
}
