package models

import (
	"strings"

	"gorm.io/gorm"
)

// User is an account that owns all other resources.
type User struct {
	DefaultModel
	Email        string `json:"email" gorm:"uniqueIndex" example:"jane@example.com"`
	PasswordHash string `json:"-"`
	Name         string `json:"name" example:"Jane Doe"`
}

func (User) Self() string {
	return "User"
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Email = NormalizeEmail(u.Email)
	u.Name = strings.TrimSpace(u.Name)

	return nil
}

// NormalizeEmail returns the canonical form of an email address used for lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
