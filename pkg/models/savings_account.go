package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SavingsAccount tracks money set aside, optionally towards a target.
type SavingsAccount struct {
	DefaultModel
	Owned
	BankID       *uuid.UUID       `json:"bankId" example:"9b3b9f3c-f1ad-4b8a-8f0e-54a1f8d6c3a2"`
	Name         string           `json:"name" example:"Emergency fund"`
	Balance      decimal.Decimal  `json:"balance" gorm:"type:DECIMAL(20,8)" example:"5000"`
	TargetAmount *decimal.Decimal `json:"targetAmount" gorm:"type:DECIMAL(20,8)" example:"15000"`
	InterestRate *decimal.Decimal `json:"interestRate" gorm:"type:DECIMAL(20,8)" example:"0.0105"` // Monthly interest rate as a fraction
	Color        string           `json:"color" example:"#FFB300"`
	Icon         string           `json:"icon" example:"piggy-bank"`
}

func (SavingsAccount) Self() string {
	return "Savings Account"
}

func (s *SavingsAccount) BeforeSave(tx *gorm.DB) error {
	s.Name = strings.TrimSpace(s.Name)
	s.BankID = normalizeID(s.BankID)

	if s.Name == "" {
		return ErrNameEmpty
	}

	if s.TargetAmount != nil && !s.TargetAmount.IsPositive() {
		return ErrAmountNotPositive
	}

	return checkReference(tx, &Bank{}, s.UserID, s.BankID)
}

// Progress returns the share of the target already saved, between 0 and 1.
// Accounts without a target report zero.
func (s SavingsAccount) Progress() decimal.Decimal {
	if s.TargetAmount == nil || !s.TargetAmount.IsPositive() {
		return decimal.Zero
	}

	progress := s.Balance.Div(*s.TargetAmount)
	if progress.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.NewFromInt(1)
	}
	if progress.IsNegative() {
		return decimal.Zero
	}
	return progress
}
