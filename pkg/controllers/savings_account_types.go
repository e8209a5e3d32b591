package controllers

import (
	"strings"

	"github.com/fincontrol/backend/pkg/httputil"
	"github.com/fincontrol/backend/pkg/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SavingsAccountEditable struct {
	BankID       *uuid.UUID       `json:"bankId" example:"9b3b9f3c-f1ad-4b8a-8f0e-54a1f8d6c3a2"`
	Name         string           `json:"name" example:"Emergency fund"`
	Balance      decimal.Decimal  `json:"balance" example:"5000"`
	TargetAmount *decimal.Decimal `json:"targetAmount" example:"15000"`  // Must be larger than zero if set
	InterestRate *decimal.Decimal `json:"interestRate" example:"0.0105"` // Monthly interest rate as a fraction
	Color        string           `json:"color" example:"#FFB300"`
	Icon         string           `json:"icon" example:"piggy-bank"`
}

func newSavingsAccountEditable(s models.SavingsAccount) SavingsAccountEditable {
	return SavingsAccountEditable{
		BankID:       s.BankID,
		Name:         s.Name,
		Balance:      s.Balance,
		TargetAmount: s.TargetAmount,
		InterestRate: s.InterestRate,
		Color:        s.Color,
		Icon:         s.Icon,
	}
}

func (e SavingsAccountEditable) validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return models.ErrNameEmpty
	}

	if e.TargetAmount != nil && !e.TargetAmount.IsPositive() {
		return models.ErrAmountNotPositive
	}

	return nil
}

func (e SavingsAccountEditable) apply(s *models.SavingsAccount) {
	s.BankID = e.BankID
	s.Name = e.Name
	s.Balance = e.Balance
	s.TargetAmount = e.TargetAmount
	s.InterestRate = e.InterestRate
	s.Color = e.Color
	s.Icon = e.Icon
}

type SavingsAccountQueryFilter struct {
	BankID string `form:"bank"`                       // ID of the bank
	Search string `form:"search" filterField:"false"` // By string in name
}

func (f SavingsAccountQueryFilter) model() (models.SavingsAccount, error) {
	bankID, err := httputil.UUIDFromString(f.BankID)
	if err != nil {
		return models.SavingsAccount{}, err
	}

	return models.SavingsAccount{
		BankID: optionalID(bankID),
	}, nil
}

// SavingsAccount is the API representation of a Savings Account.
type SavingsAccount struct {
	models.SavingsAccount
	Progress decimal.Decimal `json:"progress" example:"0.33"` // Share of the target amount already saved, between 0 and 1
}

func newSavingsAccount(model models.SavingsAccount) *SavingsAccount {
	return &SavingsAccount{
		SavingsAccount: model,
		Progress:       model.Progress(),
	}
}

func newSavingsAccounts(resources []models.SavingsAccount) []SavingsAccount {
	accounts := make([]SavingsAccount, 0, len(resources))
	for _, model := range resources {
		accounts = append(accounts, *newSavingsAccount(model))
	}
	return accounts
}

type SavingsAccountResponse struct {
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *SavingsAccount `json:"data"`                                                          // The Savings Account data, if the request was successful
}

type SavingsAccountListResponse struct {
	Data       []SavingsAccount `json:"data"`                                                          // List of Savings Accounts
	Error      *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination      `json:"pagination"`                                                    // Pagination information
}
