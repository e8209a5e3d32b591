package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/fincontrol/backend/pkg/httputil"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const userIDKey = "fincontrol-user-id"

// Middleware rejects requests without a valid access token and stores the
// authenticated user ID in the gin context.
func Middleware(tokens *Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			httputil.NewError(c, http.StatusUnauthorized, ErrMissingToken)
			return
		}

		userID, err := tokens.Parse(strings.TrimSpace(token), TokenTypeAccess)
		if err != nil {
			reason := ErrInvalidToken
			if errors.Is(err, ErrWrongTokenType) {
				reason = ErrWrongTokenType
			}

			httputil.NewError(c, http.StatusUnauthorized, reason)
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the ID of the authenticated user.
func UserID(c *gin.Context) (uuid.UUID, bool) {
	value, ok := c.Get(userIDKey)
	if !ok {
		return uuid.Nil, false
	}

	userID, ok := value.(uuid.UUID)
	return userID, ok
}

// SetUserID stores the user ID in the gin context.
func SetUserID(c *gin.Context, userID uuid.UUID) {
	c.Set(userIDKey, userID)
}
