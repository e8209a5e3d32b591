package httputil

import (
	"net/url"
	"reflect"
	"strconv"
)

// GetURLFields checks which fields of filter are set in the query string of url.
//
// queryFields are the names of the fields whose "form" tag is set as a
// parameter, ready to be passed to a gorm struct condition. Fields tagged
// with filterField:"false" are processed by explicit logic in the handler
// and only appear in setFields, which lists all set fields.
func GetURLFields(url *url.URL, filter any) ([]any, []string) {
	var queryFields []any
	var setFields []string

	val := reflect.Indirect(reflect.ValueOf(filter))
	for i := 0; i < val.NumField(); i++ {
		field := val.Type().Field(i)
		param := field.Tag.Get("form")

		if param == "" || !url.Query().Has(param) {
			continue
		}

		setFields = append(setFields, field.Name)

		if field.Tag.Get("filterField") != "false" {
			queryFields = append(queryFields, field.Name)
		}
	}

	return queryFields, setFields
}

// Pagination reads the offset and limit query parameters. The limit defaults
// to defaultLimit and is capped at maxLimit.
func Pagination(url *url.URL, defaultLimit, maxLimit int) (offset, limit int, err error) {
	limit = defaultLimit

	if value := url.Query().Get("offset"); value != "" {
		offset, err = strconv.Atoi(value)
		if err != nil || offset < 0 {
			return 0, 0, ErrInvalidQueryString
		}
	}

	if value := url.Query().Get("limit"); value != "" {
		limit, err = strconv.Atoi(value)
		if err != nil || limit < 1 {
			return 0, 0, ErrInvalidQueryString
		}
	}

	if limit > maxLimit {
		limit = maxLimit
	}

	return offset, limit, nil
}
