package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	DefaultCurrency = "USD"
	DefaultLocale   = "en-US"
)

// UserSettings holds the display preferences of a user.
type UserSettings struct {
	UserID    uuid.UUID `json:"userId" gorm:"primaryKey" example:"0c2b6a0e-3f32-4b2a-9f39-0d9a7a2c3e55"`
	Currency  string    `json:"currency" example:"BRL"` // ISO 4217 currency code
	Locale    string    `json:"locale" example:"pt-BR"` // BCP 47 language tag
	CreatedAt time.Time `json:"createdAt" example:"2022-04-02T19:28:44.491514Z"`
	UpdatedAt time.Time `json:"updatedAt" example:"2022-04-17T20:14:01.048145Z"`
}

func (UserSettings) Self() string {
	return "Settings"
}

func (s *UserSettings) BeforeSave(_ *gorm.DB) error {
	s.Currency = strings.ToUpper(strings.TrimSpace(s.Currency))
	if s.Currency == "" {
		s.Currency = DefaultCurrency
	}

	if _, err := currency.ParseISO(s.Currency); err != nil {
		return ErrInvalidCurrency
	}

	s.Locale = strings.TrimSpace(s.Locale)
	if s.Locale == "" {
		s.Locale = DefaultLocale
	}

	tag, err := language.Parse(s.Locale)
	if err != nil {
		return ErrInvalidLocale
	}
	s.Locale = tag.String()

	return nil
}

// Unit returns the currency unit of the settings.
func (s UserSettings) Unit() currency.Unit {
	unit, err := currency.ParseISO(s.Currency)
	if err != nil {
		return currency.USD
	}
	return unit
}

// Tag returns the language tag of the settings.
func (s UserSettings) Tag() language.Tag {
	tag, err := language.Parse(s.Locale)
	if err != nil {
		return language.AmericanEnglish
	}
	return tag
}

// SettingsFor returns the settings of a user, creating them with defaults on
// first access. Concurrent first accesses all read the same row.
func SettingsFor(db *gorm.DB, userID uuid.UUID) (UserSettings, error) {
	err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&UserSettings{UserID: userID}).Error
	if err != nil {
		return UserSettings{}, err
	}

	var settings UserSettings
	err = db.Where(UserSettings{UserID: userID}).First(&settings).Error
	if err != nil {
		return UserSettings{}, err
	}

	return settings, nil
}
