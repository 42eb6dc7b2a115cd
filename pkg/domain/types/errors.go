package types

import (
	"errors"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
)

var (
	ErrInvalidOption = goerr.New("invalid option")

	ErrValidationFailed     = goerr.New("validation failed")
	ErrUnsupportedEvent     = goerr.New("Event type not supported!!")
	ErrUnknownAccount       = goerr.New("Account does not exist!!")
	ErrCredentialExpired    = goerr.New("Access token expired!!")
	ErrInvalidSignature     = goerr.New("invalid webhook signature")
	ErrInvalidConfiguration = goerr.New("invalid configuration")
	ErrDuplicateTarget      = goerr.New("Cannot select more than one target branch")

	ErrExternalService  = goerr.New("external service error")
	ErrMalformedRewrite = goerr.New("malformed rewrite response")
	ErrRefAlreadyExists = goerr.New("reference already exists")
)

// validationErrors are caller-facing; each carries the HTTP status returned
// to the webhook sender or API client.
var validationErrors = []struct {
	err    error
	status int
}{
	{ErrUnsupportedEvent, http.StatusBadRequest},
	{ErrUnknownAccount, http.StatusNotFound},
	{ErrCredentialExpired, http.StatusUnauthorized},
	{ErrInvalidSignature, http.StatusUnauthorized},
	{ErrInvalidConfiguration, http.StatusBadRequest},
	{ErrDuplicateTarget, http.StatusBadRequest},
	{ErrValidationFailed, http.StatusBadRequest},
}

// AsValidationError returns the validation sentinel found in err's chain and
// its HTTP status.
func AsValidationError(err error) (error, int, bool) {
	for _, v := range validationErrors {
		if errors.Is(err, v.err) {
			return v.err, v.status, true
		}
	}
	return nil, 0, false
}

// IsExternalError reports whether err came from GitHub or the rewrite
// endpoint.
func IsExternalError(err error) bool {
	return errors.Is(err, ErrExternalService) ||
		errors.Is(err, ErrMalformedRewrite) ||
		errors.Is(err, ErrRefAlreadyExists)
}

// AsExternal tags err as an external service failure and keeps it in the
// chain.
func AsExternal(err error) error {
	if err == nil {
		return nil
	}
	return errors.Join(ErrExternalService, err)
}
