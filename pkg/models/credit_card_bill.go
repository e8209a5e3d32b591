package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreditCardBill is the statement of a credit card for one billing cycle.
// Purchases before the closing date are due on the due date.
type CreditCardBill struct {
	DefaultModel
	Owned
	BankID           *uuid.UUID      `json:"bankId" gorm:"index" example:"9b3b9f3c-f1ad-4b8a-8f0e-54a1f8d6c3a2"` // The bank issuing the card
	Description      string          `json:"description" example:"Nubank October"`
	ClosingDate      time.Time       `json:"closingDate" example:"2026-10-03T00:00:00Z"`
	DueDate          time.Time       `json:"dueDate" example:"2026-10-10T00:00:00Z"`
	BestPurchaseDate *time.Time      `json:"bestPurchaseDate" example:"2026-10-04T00:00:00Z"`
	TotalAmount      decimal.Decimal `json:"totalAmount" gorm:"type:DECIMAL(20,8)" example:"1250.33"` // The statement total as printed by the issuer
	IsPaid           bool            `json:"isPaid" example:"false"`
}

func (CreditCardBill) Self() string {
	return "Credit Card Bill"
}

func (b *CreditCardBill) BeforeSave(tx *gorm.DB) error {
	b.Description = strings.TrimSpace(b.Description)
	b.ClosingDate = utc(b.ClosingDate)
	b.DueDate = utc(b.DueDate)
	b.BankID = normalizeID(b.BankID)

	if b.BestPurchaseDate != nil {
		t := utc(*b.BestPurchaseDate)
		b.BestPurchaseDate = &t
	}

	if b.ClosingDate.IsZero() || b.DueDate.IsZero() {
		return ErrBillDatesMissing
	}

	if b.DueDate.Before(b.ClosingDate) {
		return ErrDueDateBeforeClosing
	}

	if b.TotalAmount.IsNegative() {
		return ErrAmountNegative
	}

	return checkReference(tx, &Bank{}, b.UserID, b.BankID)
}
