package controllers

import (
	"time"

	"github.com/fincontrol/backend/pkg/httputil"
	"github.com/fincontrol/backend/pkg/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreditCardBillEditable struct {
	BankID           *uuid.UUID      `json:"bankId" example:"9b3b9f3c-f1ad-4b8a-8f0e-54a1f8d6c3a2"` // The bank issuing the card
	Description      string          `json:"description" example:"Nubank October"`
	ClosingDate      time.Time       `json:"closingDate" example:"2026-10-03T00:00:00Z"`
	DueDate          time.Time       `json:"dueDate" example:"2026-10-10T00:00:00Z"` // Must not be before the closing date
	BestPurchaseDate *time.Time      `json:"bestPurchaseDate" example:"2026-10-04T00:00:00Z"`
	TotalAmount      decimal.Decimal `json:"totalAmount" example:"1250.33"`
	IsPaid           bool            `json:"isPaid" example:"false"` // Marks all credit card expenses of the bill as paid
}

func newCreditCardBillEditable(b models.CreditCardBill) CreditCardBillEditable {
	return CreditCardBillEditable{
		BankID:           b.BankID,
		Description:      b.Description,
		ClosingDate:      b.ClosingDate,
		DueDate:          b.DueDate,
		BestPurchaseDate: b.BestPurchaseDate,
		TotalAmount:      b.TotalAmount,
		IsPaid:           b.IsPaid,
	}
}

func (e CreditCardBillEditable) validate() error {
	if e.ClosingDate.IsZero() || e.DueDate.IsZero() {
		return models.ErrBillDatesMissing
	}

	if e.DueDate.Before(e.ClosingDate) {
		return models.ErrDueDateBeforeClosing
	}

	if e.TotalAmount.IsNegative() {
		return models.ErrAmountNegative
	}

	return nil
}

func (e CreditCardBillEditable) apply(b *models.CreditCardBill) {
	b.BankID = e.BankID
	b.Description = e.Description
	b.ClosingDate = e.ClosingDate
	b.DueDate = e.DueDate
	b.BestPurchaseDate = e.BestPurchaseDate
	b.TotalAmount = e.TotalAmount
	b.IsPaid = e.IsPaid
}

type CreditCardBillQueryFilter struct {
	BankID string `form:"bank"`                       // ID of the bank
	IsPaid bool   `form:"isPaid"`                     // Is the bill paid?
	Search string `form:"search" filterField:"false"` // By string in description
	DateRange
}

func (f CreditCardBillQueryFilter) model() (models.CreditCardBill, error) {
	bankID, err := httputil.UUIDFromString(f.BankID)
	if err != nil {
		return models.CreditCardBill{}, err
	}

	return models.CreditCardBill{
		BankID: optionalID(bankID),
		IsPaid: f.IsPaid,
	}, nil
}

type CreditCardBillResponse struct {
	Error *string                `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *models.CreditCardBill `json:"data"`                                                          // The Credit Card Bill data, if the request was successful
}

type CreditCardBillListResponse struct {
	Data       []models.CreditCardBill `json:"data"`                                                          // List of Credit Card Bills
	Error      *string                 `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination             `json:"pagination"`                                                    // Pagination information
}
