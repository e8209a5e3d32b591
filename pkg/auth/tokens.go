// Package auth implements password hashing and the JSON Web Tokens
// used to authenticate API requests.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Claims are the claims of both access and refresh tokens.
type Claims struct {
	jwt.RegisteredClaims
	Type TokenType `json:"typ"`
}

// TokenPair is issued on login, registration and refresh.
type TokenPair struct {
	AccessToken  string    `json:"accessToken" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	RefreshToken string    `json:"refreshToken" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType    string    `json:"tokenType" example:"Bearer"`
	ExpiresAt    time.Time `json:"expiresAt" example:"2026-10-19T12:15:00Z"` // Expiry of the access token
}

// Tokens issues and verifies HS256 signed tokens.
type Tokens struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// NewTokens returns a Tokens for the given secret and lifetimes.
func NewTokens(secret []byte, accessTTL, refreshTTL time.Duration) *Tokens {
	return &Tokens{
		secret:     secret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

// WithClock returns a copy of t using now as its clock.
func (t *Tokens) WithClock(now func() time.Time) *Tokens {
	c := *t
	c.now = now
	return &c
}

// Issue creates a new access and refresh token for the user.
func (t *Tokens) Issue(userID uuid.UUID) (TokenPair, error) {
	now := t.now()

	access, err := t.sign(userID, TokenTypeAccess, now, t.accessTTL)
	if err != nil {
		return TokenPair{}, err
	}

	refresh, err := t.sign(userID, TokenTypeRefresh, now, t.refreshTTL)
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresAt:    now.Add(t.accessTTL).UTC().Truncate(time.Second),
	}, nil
}

func (t *Tokens) sign(userID uuid.UUID, typ TokenType, now time.Time, ttl time.Duration) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Type: typ,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("signing %s token: %w", typ, err)
	}

	return signed, nil
}

// Parse verifies a token and returns the user ID it was issued for. Tokens of
// another type than want are rejected with ErrWrongTokenType.
func (t *Tokens) Parse(token string, want TokenType) (uuid.UUID, error) {
	var claims Claims

	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.Type != want {
		return uuid.Nil, ErrWrongTokenType
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: subject is not a user ID", ErrInvalidToken)
	}

	return userID, nil
}
