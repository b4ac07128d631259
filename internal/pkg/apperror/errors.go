// Package apperror holds the error kinds the HTTP layer knows how to map.
// Services wrap them with fmt.Errorf("%w: ...") and callers use errors.Is.
package apperror

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation failed")
	ErrConflict        = errors.New("conflict")
	ErrUpstream        = errors.New("upstream AI service failed")
	ErrUpstreamTimeout = errors.New("upstream AI service timed out")
	ErrStore           = errors.New("data store unavailable")
)

// StatusCode returns the HTTP status for err, 500 when err is not one of ours.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrUpstreamTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, ErrUpstream):
		return http.StatusBadGateway
	case errors.Is(err, ErrStore):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
