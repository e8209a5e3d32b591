package projection

import (
	"context"
	"time"

	"github.com/fincontrol/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// firstCycleLength is the assumed length of a card's first billing cycle.
const firstCycleLength = 30 * 24 * time.Hour

// CurrentBill picks the bill of the billing cycle containing now.
//
// Bills are grouped by card. A bill's cycle starts at the closing date of the
// previous bill of the same card, or 30 days before its own closing date for
// the first bill. A bill is current when cycle start <= now <= due date. When
// several bills are current, the earliest due date wins, then the later
// closing date, then the smaller ID.
func CurrentBill(bills []Bill, now time.Time) *BillSummary {
	cards := map[uuid.UUID][]Bill{}
	for _, b := range bills {
		card := uuid.Nil
		if b.BankID != nil {
			card = *b.BankID
		}
		cards[card] = append(cards[card], b)
	}

	var current *BillSummary
	for _, cardBills := range cards {
		slices.SortStableFunc(cardBills, func(a, b Bill) int {
			if c := a.ClosingDate.Compare(b.ClosingDate); c != 0 {
				return c
			}
			return compareIDs(a.ID, b.ID)
		})

		for i, b := range cardBills {
			cycleStart := b.ClosingDate.Add(-firstCycleLength)
			if i > 0 {
				cycleStart = cardBills[i-1].ClosingDate
			}

			if now.Before(cycleStart) || now.After(b.DueDate) {
				continue
			}

			candidate := &BillSummary{Bill: b, CycleStart: cycleStart}
			if current == nil || preferBill(candidate, current) {
				current = candidate
			}
		}
	}

	return current
}

// preferBill reports whether a is preferred over b.
func preferBill(a, b *BillSummary) bool {
	if !a.DueDate.Equal(b.DueDate) {
		return a.DueDate.Before(b.DueDate)
	}

	if !a.ClosingDate.Equal(b.ClosingDate) {
		return a.ClosingDate.After(b.ClosingDate)
	}

	return compareIDs(a.ID, b.ID) < 0
}

func compareIDs(a, b uuid.UUID) int {
	switch {
	case a.String() < b.String():
		return -1
	case a.String() > b.String():
		return 1
	}
	return 0
}

// ResolveBill finds the current bill and sums the credit card expenses
// accrued in its cycle. Without a current bill, the credit card expenses of
// the month containing now in loc are summed instead.
//
// An expense is paid when its bill is paid or when it is flagged as paid itself.
func ResolveBill(ctx context.Context, bills BillLister, transactions TransactionLister, userID uuid.UUID, now time.Time, loc *time.Location) (CardSummary, error) {
	list, err := bills.ListBills(ctx, userID)
	if err != nil {
		return CardSummary{}, err
	}

	summary := CardSummary{
		Bill:            CurrentBill(list, now),
		CreditCardTotal: decimal.Zero,
		PaidTotal:       decimal.Zero,
		UnpaidTotal:     decimal.Zero,
		Details:         []Entry{},
	}

	var from, to time.Time
	if summary.Bill != nil {
		from, to = summary.Bill.CycleStart, summary.Bill.ClosingDate
	} else {
		month := types.MonthIn(now, loc)
		from, to = month.Start(), month.End()
	}

	expenses, err := transactions.ListExpenses(ctx, userID, from, to)
	if err != nil {
		return CardSummary{}, err
	}

	for _, e := range expenses {
		if !isCreditCard(e) || !summary.accrues(e) {
			continue
		}

		if summary.Bill != nil && summary.Bill.IsPaid {
			e.IsPaid = true
		}

		if e.IsPaid {
			summary.PaidTotal = summary.PaidTotal.Add(e.Amount)
		} else {
			summary.UnpaidTotal = summary.UnpaidTotal.Add(e.Amount)
		}

		summary.Details = append(summary.Details, e)
	}

	summary.CreditCardTotal = summary.PaidTotal.Add(summary.UnpaidTotal)
	sortEntries(summary.Details)

	return summary, nil
}

// accrues reports whether the credit card expense belongs to the summary's
// bill. Purchases on the closing date belong to the next bill. Bills of a
// bank only collect expenses of that bank and expenses without a bank.
func (s CardSummary) accrues(e Entry) bool {
	if s.Bill == nil {
		return true
	}

	if !e.Date.Before(s.Bill.ClosingDate) || e.Date.Before(s.Bill.CycleStart) {
		return false
	}

	return s.Bill.BankID == nil || e.BankID == nil || *e.BankID == *s.Bill.BankID
}
