package projection

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Service computes projections from its collaborators.
type Service struct {
	banks        BankLister
	transactions TransactionLister
	bills        BillLister
	loc          *time.Location
}

// NewService returns a Service. Month boundaries are computed in loc, which
// defaults to UTC.
func NewService(banks BankLister, transactions TransactionLister, bills BillLister, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}

	return &Service{
		banks:        banks,
		transactions: transactions,
		bills:        bills,
		loc:          loc,
	}
}

// Location returns the location month boundaries are computed in.
func (s *Service) Location() *time.Location {
	return s.loc
}

// Project computes the projection for the user at now. The three inputs are
// gathered concurrently, the first failure cancels the others and fails the
// projection.
func (s *Service) Project(ctx context.Context, userID uuid.UUID, now time.Time) (Result, error) {
	var (
		balance decimal.Decimal
		window  Window
		card    CardSummary
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		balance, err = CurrentBalance(ctx, s.banks, userID)
		return err
	})

	g.Go(func() (err error) {
		window, err = SelectWindow(ctx, s.transactions, userID, now, s.loc)
		return err
	})

	g.Go(func() (err error) {
		card, err = ResolveBill(ctx, s.bills, s.transactions, userID, now, s.loc)
		return err
	})

	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	return Project(now, balance, window, card), nil
}
