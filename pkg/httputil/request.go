package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// BindData binds the JSON body of the request to data.
//
// Fields missing in the body keep their value, binding onto a loaded resource
// is therefore a partial update.
func BindData(c *gin.Context, data any) error {
	err := c.ShouldBindJSON(data)
	if err == nil {
		return nil
	}

	if errors.Is(err, io.EOF) {
		return ErrRequestBodyEmpty
	}

	// A value of the wrong type is reported with the field so that the
	// client knows what to fix
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return fmt.Errorf("%w: '%s' must be of type %s, got %s", ErrFieldType, typeErr.Field, typeErr.Type, typeErr.Value)
	}

	log.Debug().Str("request-id", requestid.Get(c)).Err(err).Msg("Binding request body")
	return ErrInvalidBody
}

// UUIDFromString parses an optional ID from a query string. The empty string
// is uuid.Nil.
//
// gin cannot bind query parameters to uuid.UUID, see
// https://github.com/gin-gonic/gin/pull/3045
func UUIDFromString(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, nil
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, ErrInvalidUUID
	}

	return id, nil
}
