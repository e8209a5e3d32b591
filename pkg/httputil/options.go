package httputil

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Allow returns a handler answering OPTIONS requests with an empty response
// and the allowed methods in the "allow" header.
func Allow(methods ...string) gin.HandlerFunc {
	header := strings.Join(append([]string{http.MethodOptions}, methods...), ", ")

	return func(c *gin.Context) {
		c.Header("allow", header)
		c.Status(http.StatusNoContent)
		c.Writer.WriteHeaderNow()
	}
}

var (
	OptionsGet            = Allow(http.MethodGet)
	OptionsPost           = Allow(http.MethodPost)
	OptionsGetPost        = Allow(http.MethodGet, http.MethodPost)
	OptionsGetPatch       = Allow(http.MethodGet, http.MethodPatch)
	OptionsGetPatchDelete = Allow(http.MethodGet, http.MethodPatch, http.MethodDelete)
)
