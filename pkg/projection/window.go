package projection

import (
	"context"
	"strings"
	"time"

	"github.com/fincontrol/backend/internal/types"
	"github.com/fincontrol/backend/pkg/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// SelectWindow returns the receipts and expenses of the month containing now
// in loc. Transactions dated before now are past, all others are future.
func SelectWindow(ctx context.Context, transactions TransactionLister, userID uuid.UUID, now time.Time, loc *time.Location) (Window, error) {
	month := types.MonthIn(now, loc)

	w := Window{
		MonthStart:          month.Start(),
		MonthEnd:            month.End(),
		PastReceiptsTotal:   decimal.Zero,
		FutureReceiptsTotal: decimal.Zero,
		PastExpensesTotal:   decimal.Zero,
		FutureExpensesTotal: decimal.Zero,
		FutureReceipts:      []Entry{},
		FutureExpenses:      []Entry{},
		MonthlyExpenses:     []Entry{},
	}

	receipts, err := transactions.ListReceipts(ctx, userID, w.MonthStart, w.MonthEnd)
	if err != nil {
		return Window{}, err
	}

	expenses, err := transactions.ListExpenses(ctx, userID, w.MonthStart, w.MonthEnd)
	if err != nil {
		return Window{}, err
	}

	for _, r := range receipts {
		if r.Date.Before(now) {
			w.PastReceiptsTotal = w.PastReceiptsTotal.Add(r.Amount)
			continue
		}

		w.FutureReceiptsTotal = w.FutureReceiptsTotal.Add(r.Amount)
		w.FutureReceipts = append(w.FutureReceipts, r)
	}

	for _, e := range expenses {
		if isCreditCard(e) {
			continue
		}

		w.MonthlyExpenses = append(w.MonthlyExpenses, e)

		if e.Date.Before(now) {
			w.PastExpensesTotal = w.PastExpensesTotal.Add(e.Amount)
			continue
		}

		w.FutureExpensesTotal = w.FutureExpensesTotal.Add(e.Amount)
		w.FutureExpenses = append(w.FutureExpenses, e)
	}

	sortEntries(w.FutureReceipts)
	sortEntries(w.FutureExpenses)
	sortEntries(w.MonthlyExpenses)

	return w, nil
}

func isCreditCard(e Entry) bool {
	return e.PaymentMethod == string(models.PaymentMethodCreditCard)
}

// sortEntries sorts by date, then by description.
func sortEntries(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		return strings.Compare(a.Description, b.Description)
	})
}
