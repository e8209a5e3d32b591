package projection_test

import (
	"context"
	"time"

	"github.com/fincontrol/backend/pkg/projection"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) ListBanks(ctx context.Context, userID uuid.UUID) ([]projection.BankBalance, error) {
	args := m.Called(ctx, userID)
	banks, _ := args.Get(0).([]projection.BankBalance)
	return banks, args.Error(1)
}

func (m *MockStore) ListReceipts(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]projection.Entry, error) {
	args := m.Called(ctx, userID, from, to)
	entries, _ := args.Get(0).([]projection.Entry)
	return entries, args.Error(1)
}

func (m *MockStore) ListExpenses(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]projection.Entry, error) {
	args := m.Called(ctx, userID, from, to)
	entries, _ := args.Get(0).([]projection.Entry)
	return entries, args.Error(1)
}

func (m *MockStore) ListBills(ctx context.Context, userID uuid.UUID) ([]projection.Bill, error) {
	args := m.Called(ctx, userID)
	bills, _ := args.Get(0).([]projection.Bill)
	return bills, args.Error(1)
}

func d(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func day(month time.Month, day, hour int) time.Time {
	return time.Date(2026, month, day, hour, 0, 0, 0, time.UTC)
}

func receipt(description, amount string, date time.Time) projection.Entry {
	return projection.Entry{ID: uuid.New(), Description: description, Amount: d(amount), Date: date}
}

func expense(description, amount string, date time.Time, method string) projection.Entry {
	return projection.Entry{ID: uuid.New(), Description: description, Amount: d(amount), Date: date, PaymentMethod: method}
}
