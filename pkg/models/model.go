package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Model is implemented by all resources so that error messages can name them.
type Model interface {
	Self() string
}

// DefaultModel is the base model for all user owned resources.
type DefaultModel struct {
	ID uuid.UUID `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"` // UUID for the resource
	Timestamps
}

// Timestamps only contains the timestamps that gorm sets automatically to enable other
// primary keys than ID.
type Timestamps struct {
	CreatedAt time.Time       `json:"createdAt" example:"2022-04-02T19:28:44.491514Z"`                                             // Time the resource was created
	UpdatedAt time.Time       `json:"updatedAt" example:"2022-04-17T20:14:01.048145Z"`                                             // Last time the resource was updated
	DeletedAt *gorm.DeletedAt `json:"deletedAt" gorm:"index" example:"2022-04-22T21:01:05.058161Z" swaggertype:"primitive,string"` // Time the resource was marked as deleted
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (m *DefaultModel) AfterFind(_ *gorm.DB) (err error) {
	m.CreatedAt = m.CreatedAt.In(time.UTC)
	m.UpdatedAt = m.UpdatedAt.In(time.UTC)

	if m.DeletedAt != nil {
		m.DeletedAt.Time = m.DeletedAt.Time.In(time.UTC)
	}

	return nil
}

// BeforeCreate is set to generate a UUID for the resource.
func (m *DefaultModel) BeforeCreate(_ *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// Owned is embedded by every resource that belongs to a user.
type Owned struct {
	UserID uuid.UUID `json:"userId" gorm:"index" example:"0c2b6a0e-3f32-4b2a-9f39-0d9a7a2c3e55"` // The user owning the resource
}

// checkReference verifies that the referenced resource exists and belongs to
// the user. A nil or zero ID is no reference.
func checkReference(tx *gorm.DB, resource Model, userID uuid.UUID, id *uuid.UUID) error {
	if id == nil || *id == uuid.Nil {
		return nil
	}

	err := tx.Session(&gorm.Session{NewDB: true}).
		Where("id = ? AND user_id = ?", *id, userID).
		First(resource).Error

	if errors.Is(err, ErrResourceNotFound) {
		return fmt.Errorf("%w: %s %s", ErrInvalidReference, resource.Self(), id)
	}

	return err
}

// normalizeID turns a zero UUID reference into no reference.
func normalizeID(id *uuid.UUID) *uuid.UUID {
	if id == nil || *id == uuid.Nil {
		return nil
	}
	return id
}

// utc converts a time to UTC, keeping the zero value.
func utc(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}
