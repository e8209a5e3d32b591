// Package projection computes the projected balance of a user for the
// current month.
//
// The computation gathers three independent inputs: the current balance of
// all banks, the receipts and expenses of the current month split at "now",
// and the credit card bill of the current billing cycle. Project folds them
// into four phases, each adding or subtracting one kind of expected cash movement.
package projection

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BankBalance is the current balance of one bank.
type BankBalance struct {
	ID      uuid.UUID       `json:"id"`
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
}

// Entry is a receipt or expense with its category and bank names resolved.
type Entry struct {
	ID            uuid.UUID       `json:"id" example:"3c3b7f5e-8a4f-4c5e-9d55-7f0d1f8a2b11"`
	Description   string          `json:"description" example:"Supermarket"`
	Amount        decimal.Decimal `json:"amount" example:"132.57"`
	Date          time.Time       `json:"date" example:"2026-10-12T00:00:00Z"`
	CategoryName  string          `json:"categoryName" example:"Groceries"`
	BankID        *uuid.UUID      `json:"bankId" example:"9b3b9f3c-f1ad-4b8a-8f0e-54a1f8d6c3a2"`
	BankName      string          `json:"bankName" example:"Nubank"`
	PaymentMethod string          `json:"paymentMethod,omitempty" example:"credit_card"` // Empty for receipts
	IsPaid        bool            `json:"isPaid" example:"false"`
}

// Bill is a credit card bill with its bank name resolved.
type Bill struct {
	ID               uuid.UUID       `json:"id" example:"6f1c1c8a-3b8e-4b8c-a8f7-0b2f5b8e2d44"`
	BankID           *uuid.UUID      `json:"bankId" example:"9b3b9f3c-f1ad-4b8a-8f0e-54a1f8d6c3a2"`
	BankName         string          `json:"bankName" example:"Nubank"`
	Description      string          `json:"description" example:"Nubank October"`
	ClosingDate      time.Time       `json:"closingDate" example:"2026-10-03T00:00:00Z"`
	DueDate          time.Time       `json:"dueDate" example:"2026-10-10T00:00:00Z"`
	BestPurchaseDate *time.Time      `json:"bestPurchaseDate" example:"2026-10-04T00:00:00Z"`
	TotalAmount      decimal.Decimal `json:"totalAmount" example:"150"`
	IsPaid           bool            `json:"isPaid" example:"false"`
}

// BillSummary is the current bill together with the start of its cycle.
type BillSummary struct {
	Bill
	CycleStart time.Time `json:"cycleStart" example:"2026-09-03T00:00:00Z"` // Purchases from here until the closing date belong to the bill
}

// BankLister lists the banks of a user.
type BankLister interface {
	ListBanks(ctx context.Context, userID uuid.UUID) ([]BankBalance, error)
}

// TransactionLister lists receipts and expenses dated between from and to, both inclusive.
type TransactionLister interface {
	ListReceipts(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]Entry, error)
	ListExpenses(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]Entry, error)
}

// BillLister lists the credit card bills of a user ordered by closing date.
type BillLister interface {
	ListBills(ctx context.Context, userID uuid.UUID) ([]Bill, error)
}

// Window is the current month's receipts and expenses, split at "now".
// Credit card expenses are not part of it.
type Window struct {
	MonthStart          time.Time
	MonthEnd            time.Time
	PastReceiptsTotal   decimal.Decimal
	FutureReceiptsTotal decimal.Decimal
	PastExpensesTotal   decimal.Decimal
	FutureExpensesTotal decimal.Decimal
	FutureReceipts      []Entry
	FutureExpenses      []Entry
	MonthlyExpenses     []Entry
}

// CardSummary is the outcome of resolving the current credit card bill.
type CardSummary struct {
	Bill            *BillSummary
	CreditCardTotal decimal.Decimal
	PaidTotal       decimal.Decimal
	UnpaidTotal     decimal.Decimal
	Details         []Entry
}

// Phase is one snapshot of the projected balance.
type Phase struct {
	Name        string          `json:"name" example:"After receipts"`
	Description string          `json:"description" example:"Adds income still expected this month"`
	Balance     decimal.Decimal `json:"balance" example:"1500"`
	Date        time.Time       `json:"date" example:"2026-10-25T00:00:00Z"`
}

// Phases are the four ordered phases of the projection.
type Phases struct {
	Phase1 Phase `json:"phase1"`
	Phase2 Phase `json:"phase2"`
	Phase3 Phase `json:"phase3"`
	Phase4 Phase `json:"phase4"`
}

// Result is the projected balance with all inputs needed to explain it.
type Result struct {
	CurrentBalance            decimal.Decimal `json:"currentBalance" example:"1000"`
	TotalReceipts             decimal.Decimal `json:"totalReceipts" example:"500"`
	TotalExpenses             decimal.Decimal `json:"totalExpenses" example:"200"`
	CreditCardTotal           decimal.Decimal `json:"creditCardTotal" example:"150"`
	CreditCardPaidTotal       decimal.Decimal `json:"creditCardPaidTotal" example:"0"`
	CreditCardUnpaidTotal     decimal.Decimal `json:"creditCardUnpaidTotal" example:"150"`
	MonthlyBalance            decimal.Decimal `json:"monthlyBalance" example:"150"`
	FutureReceiptsTotal       decimal.Decimal `json:"futureReceiptsTotal" example:"500"`
	FutureExpensesTotal       decimal.Decimal `json:"futureExpensesTotal" example:"200"`
	ProjectedBalance          decimal.Decimal `json:"projectedBalance" example:"1150"`
	Phases                    Phases          `json:"phases"`
	CreditCardBill            *BillSummary    `json:"creditCardBill"`
	FutureReceipts            []Entry         `json:"futureReceipts"`
	FutureExpenses            []Entry         `json:"futureExpenses"`
	MonthlyExpenses           []Entry         `json:"monthlyExpenses"`
	CreditCardExpensesDetails []Entry         `json:"creditCardExpensesDetails"`
}
