package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type RecurringType string

const (
	RecurringTypeWeekly  RecurringType = "weekly"
	RecurringTypeMonthly RecurringType = "monthly"
	RecurringTypeYearly  RecurringType = "yearly"
)

func (t RecurringType) Valid() bool {
	switch t {
	case RecurringTypeWeekly, RecurringTypeMonthly, RecurringTypeYearly:
		return true
	}
	return false
}

// Receipt is an income.
type Receipt struct {
	DefaultModel
	Owned
	Description   string          `json:"description" example:"Salary"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"4200"`
	Date          time.Time       `json:"date" gorm:"index" example:"2026-10-05T00:00:00Z"`
	CategoryID    *uuid.UUID      `json:"categoryId" example:"1e777d24-3f5b-4c43-8000-04f65f895578"`
	BankID        *uuid.UUID      `json:"bankId" example:"9b3b9f3c-f1ad-4b8a-8f0e-54a1f8d6c3a2"`
	IsRecurring   bool            `json:"isRecurring" example:"true"`
	RecurringType RecurringType   `json:"recurringType" example:"monthly"`
}

func (Receipt) Self() string {
	return "Receipt"
}

func (r *Receipt) BeforeSave(tx *gorm.DB) error {
	r.Description = strings.TrimSpace(r.Description)
	r.Date = utc(r.Date)
	r.CategoryID = normalizeID(r.CategoryID)
	r.BankID = normalizeID(r.BankID)

	if !r.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if r.Date.IsZero() {
		return ErrDateMissing
	}

	err := checkRecurring(r.IsRecurring, &r.RecurringType)
	if err != nil {
		return err
	}

	err = checkReference(tx, &Bank{}, r.UserID, r.BankID)
	if err != nil {
		return err
	}

	return checkCategory(tx, r.UserID, r.CategoryID, CategoryTypeIncome)
}

// BeforeCreate categorizes receipts created without a category.
func (r *Receipt) BeforeCreate(tx *gorm.DB) (err error) {
	err = r.DefaultModel.BeforeCreate(tx)
	if err != nil || r.CategoryID != nil {
		return err
	}

	r.CategoryID, err = MatchCategory(tx, r.UserID, r.Description, CategoryTypeIncome)
	return err
}

func checkRecurring(isRecurring bool, recurringType *RecurringType) error {
	if !isRecurring {
		*recurringType = ""
		return nil
	}

	if *recurringType == "" {
		return ErrRecurringTypeMissing
	}

	if !recurringType.Valid() {
		return ErrInvalidRecurringType
	}

	return nil
}
