package httputil

import "github.com/gin-gonic/gin"

type ContextKey string

// ContextURL is the key the base URL of the API is stored under in the gin context.
const ContextURL ContextKey = "fincontrol-url"

// BaseURL returns the base URL of the API without a trailing slash.
func BaseURL(c *gin.Context) string {
	return c.GetString(string(ContextURL))
}
