package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMissingToken       = errors.New("the request is missing a bearer token")
	ErrInvalidToken       = errors.New("the token is invalid or expired")
	ErrWrongTokenType     = errors.New("the token cannot be used for this request")
)
