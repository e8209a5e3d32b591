package controllers

import (
	"time"

	"github.com/fincontrol/backend/pkg/httputil"
	"github.com/fincontrol/backend/pkg/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReceiptEditable struct {
	Description   string               `json:"description" example:"Salary"`
	Amount        decimal.Decimal      `json:"amount" example:"4200"` // Must be larger than zero
	Date          time.Time            `json:"date" example:"2026-10-05T00:00:00Z"`
	CategoryID    *uuid.UUID           `json:"categoryId" example:"1e777d24-3f5b-4c43-8000-04f65f895578"` // Income category. Assigned by the category rules when not set on creation
	BankID        *uuid.UUID           `json:"bankId" example:"9b3b9f3c-f1ad-4b8a-8f0e-54a1f8d6c3a2"`
	IsRecurring   bool                 `json:"isRecurring" example:"true"`
	RecurringType models.RecurringType `json:"recurringType" example:"monthly"` // One of weekly, monthly, yearly. Required for recurring receipts
}

func newReceiptEditable(r models.Receipt) ReceiptEditable {
	return ReceiptEditable{
		Description:   r.Description,
		Amount:        r.Amount,
		Date:          r.Date,
		CategoryID:    r.CategoryID,
		BankID:        r.BankID,
		IsRecurring:   r.IsRecurring,
		RecurringType: r.RecurringType,
	}
}

func (e ReceiptEditable) validate() error {
	if !e.Amount.IsPositive() {
		return models.ErrAmountNotPositive
	}

	if e.Date.IsZero() {
		return models.ErrDateMissing
	}

	return nil
}

func (e ReceiptEditable) apply(r *models.Receipt) {
	r.Description = e.Description
	r.Amount = e.Amount
	r.Date = e.Date
	r.CategoryID = e.CategoryID
	r.BankID = e.BankID
	r.IsRecurring = e.IsRecurring
	r.RecurringType = e.RecurringType
}

type ReceiptQueryFilter struct {
	BankID      string `form:"bank"`                       // ID of the bank
	CategoryID  string `form:"category"`                   // ID of the category
	IsRecurring bool   `form:"isRecurring"`                // Is the receipt recurring?
	Search      string `form:"search" filterField:"false"` // By string in description
	DateRange
}

func (f ReceiptQueryFilter) model() (models.Receipt, error) {
	bankID, err := httputil.UUIDFromString(f.BankID)
	if err != nil {
		return models.Receipt{}, err
	}

	categoryID, err := httputil.UUIDFromString(f.CategoryID)
	if err != nil {
		return models.Receipt{}, err
	}

	return models.Receipt{
		BankID:      optionalID(bankID),
		CategoryID:  optionalID(categoryID),
		IsRecurring: f.IsRecurring,
	}, nil
}

type ReceiptResponse struct {
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *models.Receipt `json:"data"`                                                          // The Receipt data, if the request was successful
}

type ReceiptListResponse struct {
	Data       []models.Receipt `json:"data"`                                                          // List of Receipts
	Error      *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination      `json:"pagination"`                                                    // Pagination information
}
