package icondeck

import (
	"errors"
	"fmt"
)

// Application error codes. They map classes of failure to the pipeline's
// degradation policy: EUNAVAILABLE and EINVALID errors from a discovery
// strategy mean "try the next one", never "abort the run".
const (
	ECONFLICT      = "conflict"       // action cannot be performed right now
	EINTERNAL      = "internal"       // unexpected internal error
	EINVALID       = "invalid"        // malformed input or response
	ENOTCONFIGURED = "notconfigured"  // repository identity undetermined
	ENOTFOUND      = "notfound"       // entity does not exist
	EUNAVAILABLE   = "unavailable"    // network failure or non-success status
)

// Error represents an application error with a machine-readable code and a
// human-readable message.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface. Not used by the application
// otherwise; use ErrorCode and ErrorMessage to inspect errors.
func (e *Error) Error() string {
	return fmt.Sprintf("icondeck error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper to construct an Error with formatted message text.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors return EINTERNAL; nil returns an empty string.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors return a generic message; nil returns an empty string.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}
