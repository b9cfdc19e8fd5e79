package fishtext

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConfiguration is the sentinel wrapped by every [ConfigError].
	ErrConfiguration = errors.New("invalid configuration")
	// ErrTextFormatRequired is returned by [New] when no text format is given.
	ErrTextFormatRequired = fmt.Errorf("%w: text format required", ErrConfiguration)

	// ErrTooManyContent means the requested number exceeds the service's
	// per-call limit for the text type.
	ErrTooManyContent = errors.New("too many content exceeded")
	// ErrCallLimitExceeded means the caller exceeded the service's rate limit.
	ErrCallLimitExceeded = errors.New("call limit exceeded")
	// ErrBannedForever means the caller's address is permanently blocked.
	ErrBannedForever = errors.New("banned forever")
	// ErrInternalServer is joined onto errors for responses outside the 2xx range.
	ErrInternalServer = errors.New("internal server error")

	// ErrNotImplemented is returned by operations of unimplemented formats.
	ErrNotImplemented = errors.New("not implemented")
)

// Service error codes embedded in response bodies.
const (
	CodeTooManyContent = 11
	CodeCallLimit      = 21
	CodeBanned         = 22
	CodeBannedServer   = 31
)

// serviceErrors maps a service error code to the failure it signals.
// Codes missing from the table are not treated as failures.
var serviceErrors = map[int]error{
	CodeTooManyContent: ErrTooManyContent,
	CodeCallLimit:      ErrCallLimitExceeded,
	CodeBanned:         ErrBannedForever,
	CodeBannedServer:   ErrBannedForever,
}

// ServiceError is returned when the service reports a known error code
// inside an otherwise successful response. Text is the response text as
// received, usually empty.
type ServiceError struct {
	Code int
	Text string
	Err  error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%v: code %d, text: %s", e.Err, e.Code, e.Text)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// FieldError is a single configuration field that failed validation.
type FieldError struct {
	Field string
	Err   string
}

// ConfigError is returned at construction when the configuration is invalid.
type ConfigError struct {
	Fields []FieldError
	Err    error
}

func (e *ConfigError) Error() string {
	if len(e.Fields) == 0 {
		return e.Err.Error()
	}

	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Err
	}

	return fmt.Sprintf("%v: %s", e.Err, strings.Join(parts, "; "))
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
