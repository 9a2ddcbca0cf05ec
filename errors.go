package jwsx

import "fmt"

// ErrorCode represents signing error categories.
type ErrorCode string

const (
	ErrCodeUnsupportedAlgorithm ErrorCode = "unsupported_algorithm"
	ErrCodeKeyMaterial          ErrorCode = "invalid_key_material"
	ErrCodeSigning              ErrorCode = "signing_failed"
)

var errorMessages = map[ErrorCode]string{
	ErrCodeUnsupportedAlgorithm: "Unsupported signature algorithm",
	ErrCodeKeyMaterial:          "Invalid private key material",
	ErrCodeSigning:              "Signature computation failed",
}

// Error wraps signing errors with a stable code and message.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	base := e.Message
	if base == "" {
		base = string(e.Code)
	}
	if e.Err == nil {
		return base
	}
	return fmt.Sprintf("%s: %v", base, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

func newError(code ErrorCode, err error) error {
	msg, ok := errorMessages[code]
	if !ok {
		msg = string(code)
	}
	return &Error{Code: code, Message: msg, Err: err}
}
