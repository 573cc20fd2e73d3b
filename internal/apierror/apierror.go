// Package apierror provides the error envelope returned to API clients.
// Services return *Error for every anticipated condition; anything else is
// treated as an internal failure and never shown to the client verbatim.
package apierror

import (
	"errors"
	"net/http"
)

// Error is a client-facing failure carrying a stable machine code.
type Error struct {
	Code   string
	Status int
	// Extra is merged into the response body next to "ok" and "error".
	Extra map[string]any
}

func (e *Error) Error() string { return e.Code }

// With returns a copy of e with an extra body field.
func (e *Error) With(key string, value any) *Error {
	extra := make(map[string]any, len(e.Extra)+1)
	for k, v := range e.Extra {
		extra[k] = v
	}
	extra[key] = value
	return &Error{Code: e.Code, Status: e.Status, Extra: extra}
}

// Body renders the {ok:false, error:CODE, ...} envelope.
func (e *Error) Body() map[string]any {
	body := map[string]any{"ok": false, "error": e.Code}
	for k, v := range e.Extra {
		body[k] = v
	}
	return body
}

func New(status int, code string) *Error {
	return &Error{Code: code, Status: status}
}

func BadRequest(code string) *Error   { return New(http.StatusBadRequest, code) }
func NotFound(code string) *Error     { return New(http.StatusNotFound, code) }
func Unauthorized(code string) *Error { return New(http.StatusUnauthorized, code) }
func Forbidden(code string) *Error    { return New(http.StatusForbidden, code) }
func Internal(code string) *Error     { return New(http.StatusInternalServerError, code) }

// Validation wraps field-level binding failures under the given code.
func Validation(code string, fields map[string]string) *Error {
	return BadRequest(code).With("fields", fields)
}

// As extracts an *Error from err's chain.
func As(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// Is reports whether err carries the given code.
func Is(err error, code string) bool {
	apiErr, ok := As(err)
	return ok && apiErr.Code == code
}
