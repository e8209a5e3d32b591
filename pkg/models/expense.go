package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PaymentMethod string

const (
	PaymentMethodCash       PaymentMethod = "cash"
	PaymentMethodDebit      PaymentMethod = "debit"
	PaymentMethodPix        PaymentMethod = "pix"
	PaymentMethodTransfer   PaymentMethod = "transfer"
	PaymentMethodCreditCard PaymentMethod = "credit_card"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodDebit, PaymentMethodPix, PaymentMethodTransfer, PaymentMethodCreditCard:
		return true
	}
	return false
}

// Expense is a spending. Expenses paid by credit card are settled through
// their credit card bill, IsPaid marks single lines as already settled.
type Expense struct {
	DefaultModel
	Owned
	Description   string          `json:"description" example:"Supermarket"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"132.57"`
	Date          time.Time       `json:"date" gorm:"index" example:"2026-10-12T00:00:00Z"`
	PaymentDate   time.Time       `json:"paymentDate" example:"2026-10-12T00:00:00Z"` // Defaults to the date
	CategoryID    *uuid.UUID      `json:"categoryId" example:"1e777d24-3f5b-4c43-8000-04f65f895578"`
	BankID        *uuid.UUID      `json:"bankId" example:"9b3b9f3c-f1ad-4b8a-8f0e-54a1f8d6c3a2"`
	PaymentMethod PaymentMethod   `json:"paymentMethod" example:"credit_card"`
	IsFixed       bool            `json:"isFixed" example:"false"`
	IsRecurring   bool            `json:"isRecurring" example:"false"`
	IsPaid        bool            `json:"isPaid" example:"false"`
}

func (Expense) Self() string {
	return "Expense"
}

func (e *Expense) BeforeSave(tx *gorm.DB) error {
	e.Description = strings.TrimSpace(e.Description)
	e.Date = utc(e.Date)
	e.PaymentDate = utc(e.PaymentDate)
	e.CategoryID = normalizeID(e.CategoryID)
	e.BankID = normalizeID(e.BankID)

	if !e.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if e.Date.IsZero() {
		return ErrDateMissing
	}

	if e.PaymentDate.IsZero() {
		e.PaymentDate = e.Date
	}

	if e.PaymentMethod == "" {
		e.PaymentMethod = PaymentMethodCash
	}

	if !e.PaymentMethod.Valid() {
		return ErrInvalidPaymentMethod
	}

	err := checkReference(tx, &Bank{}, e.UserID, e.BankID)
	if err != nil {
		return err
	}

	return checkCategory(tx, e.UserID, e.CategoryID, CategoryTypeExpense)
}

// BeforeCreate categorizes expenses created without a category.
func (e *Expense) BeforeCreate(tx *gorm.DB) (err error) {
	err = e.DefaultModel.BeforeCreate(tx)
	if err != nil || e.CategoryID != nil {
		return err
	}

	e.CategoryID, err = MatchCategory(tx, e.UserID, e.Description, CategoryTypeExpense)
	return err
}
