package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type BankType string

const (
	BankTypeChecking   BankType = "checking"
	BankTypeSavings    BankType = "savings"
	BankTypeInvestment BankType = "investment"
	BankTypeWallet     BankType = "wallet"
	BankTypeOther      BankType = "other"
)

func (t BankType) Valid() bool {
	switch t {
	case BankTypeChecking, BankTypeSavings, BankTypeInvestment, BankTypeWallet, BankTypeOther:
		return true
	}
	return false
}

// Bank is an account at a financial institution. Its balance is the user
// maintained current balance, the projection starts from the sum of all of them.
type Bank struct {
	DefaultModel
	Owned
	Name      string          `json:"name" example:"Nubank"`
	Type      BankType        `json:"type" example:"checking"`
	Balance   decimal.Decimal `json:"balance" gorm:"type:DECIMAL(20,8)" example:"1523.42"`
	IsPrimary bool            `json:"isPrimary" example:"true"`
	Color     string          `json:"color" example:"#8A05BE"`
	Icon      string          `json:"icon" example:"bank"`
}

func (Bank) Self() string {
	return "Bank"
}

func (b *Bank) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)
	if b.Name == "" {
		return ErrNameEmpty
	}

	if b.Type == "" {
		b.Type = BankTypeChecking
	}

	if !b.Type.Valid() {
		return ErrInvalidBankType
	}

	return nil
}

// AfterSave keeps at most one primary bank per user.
func (b *Bank) AfterSave(tx *gorm.DB) error {
	if !b.IsPrimary {
		return nil
	}

	return tx.Session(&gorm.Session{NewDB: true, SkipHooks: true}).
		Model(&Bank{}).
		Where("user_id = ? AND id <> ? AND is_primary", b.UserID, b.ID).
		Update("is_primary", false).Error
}
