package controllers

import (
	"errors"
	"net/http"

	"github.com/fincontrol/backend/pkg/auth"
	"github.com/fincontrol/backend/pkg/models"
)

// status returns the appropriate status for an error
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrGeneral):
		return http.StatusInternalServerError
	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrWrongTokenType),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized
	}

	return http.StatusBadRequest
}

var (
	errMonthInvalid     = errors.New("the month query parameter must be formatted as YYYY-MM")
	errEmailInvalid     = errors.New("the email address is not valid")
	errPasswordTooShort = errors.New("the password must be at least 8 characters long")
	errRefreshMissing   = errors.New("the refreshToken must be set")
	errDateRange        = errors.New("the from date must not be after the to date")
)
