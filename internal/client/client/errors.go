package client

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Under67/stellar-burgers/internal/common"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is an application-level rejection: either a non-2xx status or a
// body with "success": false. Message is the server's text, if any.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error (%d)", e.StatusCode)
	}
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

// Unwrap lets callers match auth, expiry and availability failures with
// errors.Is.
func (e *APIError) Unwrap() []error {
	var errs []error
	switch {
	case e.StatusCode == http.StatusUnauthorized, e.StatusCode == http.StatusForbidden:
		errs = append(errs, ErrUnauthorized)
	case e.StatusCode >= http.StatusInternalServerError:
		errs = append(errs, ErrUnavailable)
	}
	if e.Message == common.TokenExpiredMessage {
		errs = append(errs, common.ErrTokenExpired)
	}
	return errs
}

// Message extracts the server-provided text from err, or "" when err carries
// none.
func Message(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}
