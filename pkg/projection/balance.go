package projection

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CurrentBalance returns the sum of the balances of all banks of the user.
func CurrentBalance(ctx context.Context, banks BankLister, userID uuid.UUID) (decimal.Decimal, error) {
	list, err := banks.ListBanks(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, b := range list {
		total = total.Add(b.Balance)
	}

	return total, nil
}
