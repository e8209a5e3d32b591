package controllers

import (
	"time"

	"github.com/fincontrol/backend/pkg/httputil"
	"github.com/fincontrol/backend/pkg/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ExpenseEditable struct {
	Description   string               `json:"description" example:"Supermarket"`
	Amount        decimal.Decimal      `json:"amount" example:"132.57"` // Must be larger than zero
	Date          time.Time            `json:"date" example:"2026-10-12T00:00:00Z"`
	PaymentDate   time.Time            `json:"paymentDate" example:"2026-10-12T00:00:00Z"`                // Defaults to the date
	CategoryID    *uuid.UUID           `json:"categoryId" example:"1e777d24-3f5b-4c43-8000-04f65f895578"` // Expense category. Assigned by the category rules when not set on creation
	BankID        *uuid.UUID           `json:"bankId" example:"9b3b9f3c-f1ad-4b8a-8f0e-54a1f8d6c3a2"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod" example:"credit_card"` // One of cash, debit, pix, transfer, credit_card. Defaults to cash
	IsFixed       bool                 `json:"isFixed" example:"false"`
	IsRecurring   bool                 `json:"isRecurring" example:"false"`
	IsPaid        bool                 `json:"isPaid" example:"false"`
}

func newExpenseEditable(e models.Expense) ExpenseEditable {
	return ExpenseEditable{
		Description:   e.Description,
		Amount:        e.Amount,
		Date:          e.Date,
		PaymentDate:   e.PaymentDate,
		CategoryID:    e.CategoryID,
		BankID:        e.BankID,
		PaymentMethod: e.PaymentMethod,
		IsFixed:       e.IsFixed,
		IsRecurring:   e.IsRecurring,
		IsPaid:        e.IsPaid,
	}
}

func (e ExpenseEditable) validate() error {
	if !e.Amount.IsPositive() {
		return models.ErrAmountNotPositive
	}

	if e.Date.IsZero() {
		return models.ErrDateMissing
	}

	if e.PaymentMethod != "" && !e.PaymentMethod.Valid() {
		return models.ErrInvalidPaymentMethod
	}

	return nil
}

func (e ExpenseEditable) apply(x *models.Expense) {
	x.Description = e.Description
	x.Amount = e.Amount
	x.Date = e.Date
	x.PaymentDate = e.PaymentDate
	x.CategoryID = e.CategoryID
	x.BankID = e.BankID
	x.PaymentMethod = e.PaymentMethod
	x.IsFixed = e.IsFixed
	x.IsRecurring = e.IsRecurring
	x.IsPaid = e.IsPaid
}

type ExpenseQueryFilter struct {
	BankID        string `form:"bank"`                       // ID of the bank
	CategoryID    string `form:"category"`                   // ID of the category
	PaymentMethod string `form:"paymentMethod"`              // Exact match for the payment method
	IsFixed       bool   `form:"isFixed"`                    // Is the expense fixed?
	IsRecurring   bool   `form:"isRecurring"`                // Is the expense recurring?
	IsPaid        bool   `form:"isPaid"`                     // Is the expense paid?
	Search        string `form:"search" filterField:"false"` // By string in description
	DateRange
}

func (f ExpenseQueryFilter) model() (models.Expense, error) {
	bankID, err := httputil.UUIDFromString(f.BankID)
	if err != nil {
		return models.Expense{}, err
	}

	categoryID, err := httputil.UUIDFromString(f.CategoryID)
	if err != nil {
		return models.Expense{}, err
	}

	return models.Expense{
		BankID:        optionalID(bankID),
		CategoryID:    optionalID(categoryID),
		PaymentMethod: models.PaymentMethod(f.PaymentMethod),
		IsFixed:       f.IsFixed,
		IsRecurring:   f.IsRecurring,
		IsPaid:        f.IsPaid,
	}, nil
}

type ExpenseResponse struct {
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *models.Expense `json:"data"`                                                          // The Expense data, if the request was successful
}

type ExpenseListResponse struct {
	Data       []models.Expense `json:"data"`                                                          // List of Expenses
	Error      *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination      `json:"pagination"`                                                    // Pagination information
}
