// Package insights summarizes a month of receipts and expenses and derives
// short textual insights from it.
package insights

import (
	"context"
	"strings"

	"github.com/fincontrol/backend/internal/types"
	"github.com/fincontrol/backend/pkg/models"
	"github.com/fincontrol/backend/pkg/projection"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Uncategorized is the category name used for lines without a category.
const Uncategorized = "Uncategorized"

var hundred = decimal.NewFromInt(100)

// CategoryShare is the spending of one category.
type CategoryShare struct {
	CategoryName string          `json:"categoryName" example:"Groceries"`
	Amount       decimal.Decimal `json:"amount" example:"432.10"`
	Percent      decimal.Decimal `json:"percent" example:"28.81"` // Share of all spending including credit card expenses
}

// Summary are the totals of one month.
type Summary struct {
	Month           types.Month     `json:"month" swaggertype:"string" example:"2026-10"`
	TotalReceipts   decimal.Decimal `json:"totalReceipts" example:"4200"`
	TotalExpenses   decimal.Decimal `json:"totalExpenses" example:"1500"` // Expenses not paid by credit card
	CreditCardTotal decimal.Decimal `json:"creditCardTotal" example:"800"`
	Balance         decimal.Decimal `json:"balance" example:"1900"`
	ByCategory      []CategoryShare `json:"byCategory"`
}

// Spending returns all expenses of the month, including credit card expenses.
func (s Summary) Spending() decimal.Decimal {
	return s.TotalExpenses.Add(s.CreditCardTotal)
}

// Summarize computes the summary of the month for the user.
func Summarize(ctx context.Context, transactions projection.TransactionLister, userID uuid.UUID, month types.Month) (Summary, error) {
	receipts, err := transactions.ListReceipts(ctx, userID, month.Start(), month.End())
	if err != nil {
		return Summary{}, err
	}

	expenses, err := transactions.ListExpenses(ctx, userID, month.Start(), month.End())
	if err != nil {
		return Summary{}, err
	}

	s := Summary{
		Month:           month,
		TotalReceipts:   decimal.Zero,
		TotalExpenses:   decimal.Zero,
		CreditCardTotal: decimal.Zero,
		ByCategory:      []CategoryShare{},
	}

	for _, r := range receipts {
		s.TotalReceipts = s.TotalReceipts.Add(r.Amount)
	}

	byCategory := map[string]decimal.Decimal{}
	for _, e := range expenses {
		if e.PaymentMethod == string(models.PaymentMethodCreditCard) {
			s.CreditCardTotal = s.CreditCardTotal.Add(e.Amount)
		} else {
			s.TotalExpenses = s.TotalExpenses.Add(e.Amount)
		}

		name := strings.TrimSpace(e.CategoryName)
		if name == "" {
			name = Uncategorized
		}
		byCategory[name] = byCategory[name].Add(e.Amount)
	}

	s.Balance = s.TotalReceipts.Sub(s.TotalExpenses).Sub(s.CreditCardTotal)

	spending := s.Spending()
	for name, amount := range byCategory {
		share := CategoryShare{CategoryName: name, Amount: amount, Percent: decimal.Zero}
		if spending.IsPositive() {
			share.Percent = amount.Mul(hundred).Div(spending).Round(2)
		}
		s.ByCategory = append(s.ByCategory, share)
	}

	slices.SortFunc(s.ByCategory, func(a, b CategoryShare) int {
		if c := b.Amount.Cmp(a.Amount); c != 0 {
			return c
		}
		return strings.Compare(a.CategoryName, b.CategoryName)
	})

	return s, nil
}
