package controllers

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Default and maximum number of resources returned by list endpoints.
const (
	defaultLimit = 50
	maxLimit     = 500
)

// Pagination contains information about the pagination for collection endpoint responses.
type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset int   `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}

// DateRange filters resources by their date. Both ends are inclusive days.
type DateRange struct {
	From time.Time `form:"from" time_format:"2006-01-02" time_utc:"1" filterField:"false" example:"2026-10-01"` // First day to include
	To   time.Time `form:"to" time_format:"2006-01-02" time_utc:"1" filterField:"false" example:"2026-10-31"`   // Last day to include
}

func (r DateRange) validate() error {
	if !r.From.IsZero() && !r.To.IsZero() && r.From.After(r.To) {
		return errDateRange
	}
	return nil
}

// apply limits the column to the days of the range.
func (r DateRange) apply(q *gorm.DB, column string) *gorm.DB {
	if !r.From.IsZero() {
		q = q.Where(column+" >= ?", r.From)
	}

	if !r.To.IsZero() {
		q = q.Where(column+" < ?", r.To.AddDate(0, 0, 1))
	}

	return q
}

// optionalID turns the zero UUID into no ID. An empty query parameter
// therefore filters for resources without the reference.
func optionalID(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}
	return &id
}
