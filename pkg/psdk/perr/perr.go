package perr

import "fmt"

// Code represents a stable error category that callers can switch on.
type Code string

const (
	CodeUnknown       Code = "unknown"
	CodeUnauthorized  Code = "unauthorized"
	CodeExpiredToken  Code = "expired_token"
	CodeRefreshFailed Code = "refresh_failed"
	CodeTokenDecode   Code = "token_decode"
	CodeNetwork       Code = "network"
	CodeTimeout       Code = "timeout"
)

// Error is a simple value type that carries a Code plus the underlying error.
type Error struct {
	Code Code
	err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.err == nil {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %v", e.Code, e.err)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.err
}

// New wraps an error with the provided code. If err is nil a nil is returned.
func New(code Code, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, err: err}
}

// IsCode helps callers compare codes without type assertions.
func IsCode(err error, code Code) bool {
	if err == nil {
		return false
	}
	if e, ok := err.(*Error); ok {
		return e.Code == code
	}
	return false
}

// Message returns user-facing text for transport-level failures. Other codes
// fall back to the error string itself.
func Message(err error) string {
	switch {
	case IsCode(err, CodeTimeout):
		return "the server took too long to respond, please try again"
	case IsCode(err, CodeNetwork):
		return "could not reach the server, check your connection"
	case IsCode(err, CodeUnauthorized), IsCode(err, CodeRefreshFailed):
		return "your session has expired, please log in again"
	default:
		if err == nil {
			return ""
		}
		return err.Error()
	}
}
