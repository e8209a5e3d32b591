package projection

import (
	"context"
	"time"

	"github.com/fincontrol/backend/pkg/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormStore reads the projection inputs from the database. Every query is
// filtered by the user and spells out its joins.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) GormStore {
	return GormStore{DB: db}
}

func (s GormStore) ListBanks(ctx context.Context, userID uuid.UUID) ([]BankBalance, error) {
	banks := []BankBalance{}

	err := s.DB.WithContext(ctx).
		Model(&models.Bank{}).
		Select("banks.id, banks.name, banks.balance").
		Where("banks.user_id = ?", userID).
		Order("banks.name, banks.id").
		Scan(&banks).Error
	if err != nil {
		return nil, err
	}

	return banks, nil
}

func (s GormStore) ListReceipts(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]Entry, error) {
	entries := []Entry{}

	err := s.DB.WithContext(ctx).
		Model(&models.Receipt{}).
		Select(`receipts.id, receipts.description, receipts.amount, receipts.date, receipts.bank_id,
			COALESCE(categories.name, '') AS category_name,
			COALESCE(banks.name, '') AS bank_name`).
		Joins("LEFT JOIN categories ON categories.id = receipts.category_id AND categories.deleted_at IS NULL").
		Joins("LEFT JOIN banks ON banks.id = receipts.bank_id AND banks.deleted_at IS NULL").
		Where("receipts.user_id = ? AND receipts.date >= ? AND receipts.date <= ?", userID, from.UTC(), to.UTC()).
		Order("receipts.date, receipts.description").
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (s GormStore) ListExpenses(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]Entry, error) {
	entries := []Entry{}

	err := s.DB.WithContext(ctx).
		Model(&models.Expense{}).
		Select(`expenses.id, expenses.description, expenses.amount, expenses.date, expenses.bank_id,
			expenses.payment_method, expenses.is_paid,
			COALESCE(categories.name, '') AS category_name,
			COALESCE(banks.name, '') AS bank_name`).
		Joins("LEFT JOIN categories ON categories.id = expenses.category_id AND categories.deleted_at IS NULL").
		Joins("LEFT JOIN banks ON banks.id = expenses.bank_id AND banks.deleted_at IS NULL").
		Where("expenses.user_id = ? AND expenses.date >= ? AND expenses.date <= ?", userID, from.UTC(), to.UTC()).
		Order("expenses.date, expenses.description").
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (s GormStore) ListBills(ctx context.Context, userID uuid.UUID) ([]Bill, error) {
	bills := []Bill{}

	err := s.DB.WithContext(ctx).
		Model(&models.CreditCardBill{}).
		Select(`credit_card_bills.id, credit_card_bills.bank_id, credit_card_bills.description,
			credit_card_bills.closing_date, credit_card_bills.due_date, credit_card_bills.best_purchase_date,
			credit_card_bills.total_amount, credit_card_bills.is_paid,
			COALESCE(banks.name, '') AS bank_name`).
		Joins("LEFT JOIN banks ON banks.id = credit_card_bills.bank_id AND banks.deleted_at IS NULL").
		Where("credit_card_bills.user_id = ?", userID).
		Order("credit_card_bills.closing_date, credit_card_bills.id").
		Scan(&bills).Error
	if err != nil {
		return nil, err
	}

	return bills, nil
}
