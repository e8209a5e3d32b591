package projection

import (
	"time"

	"github.com/shopspring/decimal"
)

// Project folds the gathered inputs into the four phases of the projection.
//
//  1. the current balance of all banks
//  2. phase 1 plus the receipts still expected this month
//  3. phase 2 minus the expenses still due this month
//  4. phase 3 minus the unpaid part of the current credit card bill
//
// Without a current bill, phase 4 equals phase 3.
func Project(now time.Time, currentBalance decimal.Decimal, w Window, card CardSummary) Result {
	phase1 := Phase{
		Name:        "Current balance",
		Description: "Snapshot of all bank balances today",
		Balance:     currentBalance,
		Date:        now,
	}

	phase2 := Phase{
		Name:        "After receipts",
		Description: "Adds income still expected this month",
		Balance:     phase1.Balance.Add(w.FutureReceiptsTotal),
		Date:        latest(phase1.Date, w.FutureReceipts),
	}

	phase3 := Phase{
		Name:        "After monthly expenses",
		Description: "Subtracts remaining cash and debit obligations this month",
		Balance:     phase2.Balance.Sub(w.FutureExpensesTotal),
		Date:        latest(phase2.Date, w.FutureExpenses),
	}

	phase4 := Phase{
		Name:        "After credit card bill",
		Description: "Final projected balance once the current billing cycle settles",
		Balance:     phase3.Balance,
		Date:        phase3.Date,
	}

	if card.Bill != nil {
		phase4.Balance = phase3.Balance.Sub(card.UnpaidTotal)
		phase4.Date = card.Bill.DueDate
	}

	totalReceipts := w.PastReceiptsTotal.Add(w.FutureReceiptsTotal)
	totalExpenses := w.PastExpensesTotal.Add(w.FutureExpensesTotal)

	return Result{
		CurrentBalance:        currentBalance,
		TotalReceipts:         totalReceipts,
		TotalExpenses:         totalExpenses,
		CreditCardTotal:       card.CreditCardTotal,
		CreditCardPaidTotal:   card.PaidTotal,
		CreditCardUnpaidTotal: card.UnpaidTotal,
		MonthlyBalance:        totalReceipts.Sub(totalExpenses).Sub(card.CreditCardTotal),
		FutureReceiptsTotal:   w.FutureReceiptsTotal,
		FutureExpensesTotal:   w.FutureExpensesTotal,
		ProjectedBalance:      phase4.Balance,
		Phases: Phases{
			Phase1: phase1,
			Phase2: phase2,
			Phase3: phase3,
			Phase4: phase4,
		},
		CreditCardBill:            card.Bill,
		FutureReceipts:            nonNil(w.FutureReceipts),
		FutureExpenses:            nonNil(w.FutureExpenses),
		MonthlyExpenses:           nonNil(w.MonthlyExpenses),
		CreditCardExpensesDetails: nonNil(card.Details),
	}
}

// latest returns the latest date of the entries, or fallback if it is later.
func latest(fallback time.Time, entries []Entry) time.Time {
	result := fallback
	for _, e := range entries {
		if e.Date.After(result) {
			result = e.Date
		}
	}
	return result
}

func nonNil(entries []Entry) []Entry {
	if entries == nil {
		return []Entry{}
	}
	return entries
}
