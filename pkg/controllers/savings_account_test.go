package controllers_test

import (
	"net/http"

	"github.com/fincontrol/backend/pkg/controllers"
	"github.com/fincontrol/backend/pkg/models"
	"github.com/fincontrol/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestSavingsAccountsCreate() {
	r := suite.request(http.MethodPost, "/savings-accounts", map[string]any{
		"name":         "Emergency fund",
		"balance":      "2500",
		"targetAmount": "10000",
		"interestRate": "0.0105",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response controllers.SavingsAccountResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Emergency fund", response.Data.Name)
	assert.Equal(suite.T(), "0.25", response.Data.Progress.String())
	suite.Require().NotNil(response.Data.InterestRate)
	assert.Equal(suite.T(), "0.0105", response.Data.InterestRate.String())

	r = suite.request(http.MethodPost, "/savings-accounts", map[string]any{"name": "Goal", "targetAmount": "0"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = suite.request(http.MethodPost, "/savings-accounts", map[string]any{"balance": "10"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	assert.Contains(suite.T(), r.Body.String(), models.ErrNameEmpty.Error())
}

func (suite *TestSuiteStandard) TestSavingsAccountsList() {
	bank := suite.createTestBank(models.Bank{})
	target := d("1000")

	suite.create(&models.SavingsAccount{Owned: suite.owned(), Name: "Overflowing", Balance: d("1500"), TargetAmount: &target, BankID: &bank.ID})
	suite.create(&models.SavingsAccount{Owned: suite.owned(), Name: "Open ended", Balance: d("300")})
	suite.create(&models.SavingsAccount{Owned: models.Owned{UserID: suite.other.ID}, Name: "Foreign"})

	r := suite.request(http.MethodGet, "/savings-accounts", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.SavingsAccountListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 2)
	assert.Equal(suite.T(), "Open ended", response.Data[0].Name)
	assert.True(suite.T(), response.Data[0].Progress.IsZero(), "accounts without target have no progress")
	assert.Equal(suite.T(), "1", response.Data[1].Progress.String(), "progress is capped at the target")

	r = suite.request(http.MethodGet, "/savings-accounts?bank="+bank.ID.String(), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)
	assert.Equal(suite.T(), "Overflowing", response.Data[0].Name)
}

func (suite *TestSuiteStandard) TestSavingsAccountsUpdate() {
	target := d("1000")
	account := models.SavingsAccount{Owned: suite.owned(), Name: "Travel", Balance: d("100"), TargetAmount: &target}
	suite.create(&account)

	r := suite.request(http.MethodPatch, "/savings-accounts/"+account.ID.String(), map[string]any{"balance": "500"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.SavingsAccountResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "0.5", response.Data.Progress.String())
	assert.Equal(suite.T(), "Travel", response.Data.Name)

	r = suite.request(http.MethodGet, "/savings-accounts/"+account.ID.String(), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "500", response.Data.Balance.String())

	r = suite.request(http.MethodDelete, "/savings-accounts/"+account.ID.String(), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}
