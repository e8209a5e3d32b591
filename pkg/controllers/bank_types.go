package controllers

import (
	"strings"

	"github.com/fincontrol/backend/pkg/models"
	"github.com/shopspring/decimal"
)

type BankEditable struct {
	Name      string          `json:"name" example:"Nubank"`
	Type      models.BankType `json:"type" example:"checking"` // One of checking, savings, investment, wallet, other. Defaults to checking
	Balance   decimal.Decimal `json:"balance" example:"1523.42"`
	IsPrimary bool            `json:"isPrimary" example:"true"` // Setting a bank as primary removes the flag from all other banks
	Color     string          `json:"color" example:"#8A05BE"`
	Icon      string          `json:"icon" example:"bank"`
}

func newBankEditable(b models.Bank) BankEditable {
	return BankEditable{
		Name:      b.Name,
		Type:      b.Type,
		Balance:   b.Balance,
		IsPrimary: b.IsPrimary,
		Color:     b.Color,
		Icon:      b.Icon,
	}
}

func (e BankEditable) validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return models.ErrNameEmpty
	}

	if e.Type != "" && !e.Type.Valid() {
		return models.ErrInvalidBankType
	}

	return nil
}

func (e BankEditable) apply(b *models.Bank) {
	b.Name = e.Name
	b.Type = e.Type
	b.Balance = e.Balance
	b.IsPrimary = e.IsPrimary
	b.Color = e.Color
	b.Icon = e.Icon
}

type BankQueryFilter struct {
	Type      string `form:"type"`                       // Exact match for the type
	IsPrimary bool   `form:"isPrimary"`                  // Is the bank the primary one?
	Search    string `form:"search" filterField:"false"` // By string in name
}

func (f BankQueryFilter) model() models.Bank {
	return models.Bank{
		Type:      models.BankType(f.Type),
		IsPrimary: f.IsPrimary,
	}
}

type BankResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *models.Bank `json:"data"`                                                          // The Bank data, if the request was successful
}

type BankListResponse struct {
	Data       []models.Bank `json:"data"`                                                          // List of Banks
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}
