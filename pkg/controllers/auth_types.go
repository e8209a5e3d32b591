package controllers

import (
	"net/mail"
	"strings"

	"github.com/fincontrol/backend/pkg/auth"
	"github.com/fincontrol/backend/pkg/models"
)

type RegisterEditable struct {
	Email    string `json:"email" example:"jane@example.com"`
	Password string `json:"password" example:"correct horse battery staple"` // At least 8 characters
	Name     string `json:"name" example:"Jane Doe"`
}

func (e RegisterEditable) validate() error {
	if _, err := mail.ParseAddress(strings.TrimSpace(e.Email)); err != nil {
		return errEmailInvalid
	}

	if len(e.Password) < auth.MinPasswordLength {
		return errPasswordTooShort
	}

	if strings.TrimSpace(e.Name) == "" {
		return models.ErrNameEmpty
	}

	return nil
}

type LoginEditable struct {
	Email    string `json:"email" example:"jane@example.com"`
	Password string `json:"password" example:"correct horse battery staple"`
}

func (e LoginEditable) validate() error {
	if strings.TrimSpace(e.Email) == "" || e.Password == "" {
		return auth.ErrInvalidCredentials
	}
	return nil
}

type RefreshEditable struct {
	RefreshToken string `json:"refreshToken" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

func (e RefreshEditable) validate() error {
	if strings.TrimSpace(e.RefreshToken) == "" {
		return errRefreshMissing
	}
	return nil
}

// Session is the authenticated user together with a fresh token pair.
type Session struct {
	User   models.User    `json:"user"`
	Tokens auth.TokenPair `json:"tokens"`
}

type SessionResponse struct {
	Error *string  `json:"error" example:"invalid email or password"` // The error, if any occurred
	Data  *Session `json:"data"`                                      // The session, if the request was successful
}

type UserResponse struct {
	Error *string      `json:"error" example:"the token is invalid or expired"` // The error, if any occurred
	Data  *models.User `json:"data"`                                            // The authenticated user
}
