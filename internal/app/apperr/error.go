// Package apperr defines the application-layer error shape shared by the
// app services and mapped to HTTP responses by the adapter layer.
package apperr

// Error is an application-layer error that can be mapped to an HTTP response.
type Error struct {
	Status  int
	Code    string
	Message string
	Details map[string]any
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

// New builds an Error without details.
func New(status int, code, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}
