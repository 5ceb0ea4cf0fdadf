package errs

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// Error kinds. Every caller-facing failure in the services wraps one of
// these so handlers can map it to a status code without string matching.
var (
	ErrValidation    = errors.New("validation failed")
	ErrNotFound      = errors.New("not found")
	ErrAuthorization = errors.New("not authorized")
	ErrConflict      = errors.New("conflict")
	ErrStorage       = errors.New("storage failure")
)

func Validationf(format string, args ...any) error {
	return errors.Wrapf(ErrValidation, format, args...)
}

func NotFoundf(format string, args ...any) error {
	return errors.Wrapf(ErrNotFound, format, args...)
}

func Authorizationf(format string, args ...any) error {
	return errors.Wrapf(ErrAuthorization, format, args...)
}

func Conflictf(format string, args ...any) error {
	return errors.Wrapf(ErrConflict, format, args...)
}

// Storage tags an underlying I/O failure with the storage kind while
// keeping the original error in the chain.
func Storage(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", msg, ErrStorage, err)
}

// HTTPStatus maps an error kind to its response code. Unrecognized errors
// are treated as storage-level failures.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAuthorization):
		return http.StatusForbidden
	case errors.Is(err, ErrConflict):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
