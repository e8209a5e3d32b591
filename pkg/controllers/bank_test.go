package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/fincontrol/backend/pkg/controllers"
	"github.com/fincontrol/backend/pkg/models"
	"github.com/fincontrol/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestBanksCreate() {
	r := suite.request(http.MethodPost, "/banks", map[string]any{
		"name":    "  Nubank ",
		"balance": "1523.42",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response controllers.BankResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), "Nubank", response.Data.Name)
	assert.Equal(suite.T(), models.BankTypeChecking, response.Data.Type)
	assert.Equal(suite.T(), "1523.42", response.Data.Balance.String())
	assert.Equal(suite.T(), suite.user.ID, response.Data.UserID)
	assert.NotEqual(suite.T(), uuid.Nil, response.Data.ID)
}

func (suite *TestSuiteStandard) TestBanksCreateFails() {
	tests := []struct {
		name string
		body any
	}{
		{"No name", map[string]any{"balance": "10"}},
		{"Invalid type", map[string]any{"name": "Nubank", "type": "mattress"}},
		{"Broken body", `{ "name": 2 }`},
		{"Empty body", ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.engine, http.MethodPost, "http://example.com/banks", tt.body, test.Bearer(suite.token))
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestBanksList() {
	suite.createTestBank(models.Bank{Name: "B Wallet", Type: models.BankTypeWallet})
	suite.createTestBank(models.Bank{Name: "A Savings", Type: models.BankTypeSavings})
	suite.createTestBank(models.Bank{Name: "Z Primary", IsPrimary: true})
	suite.createTestBank(models.Bank{Owned: models.Owned{UserID: suite.other.ID}, Name: "Foreign"})

	tests := []struct {
		name  string
		query string
		names []string
		total int64
	}{
		{"All, primary first", "", []string{"Z Primary", "A Savings", "B Wallet"}, 3},
		{"Type", "type=wallet", []string{"B Wallet"}, 1},
		{"Primary", "isPrimary=true", []string{"Z Primary"}, 1},
		{"Not primary", "isPrimary=false", []string{"A Savings", "B Wallet"}, 2},
		{"Search", "search=sav", []string{"A Savings"}, 1},
		{"Limit", "limit=2", []string{"Z Primary", "A Savings"}, 3},
		{"Offset", "offset=2", []string{"B Wallet"}, 3},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.engine, http.MethodGet, fmt.Sprintf("http://example.com/banks?%s", tt.query), nil, test.Bearer(suite.token))
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response controllers.BankListResponse
			test.DecodeResponse(t, &r, &response)

			names := make([]string, 0, len(response.Data))
			for _, b := range response.Data {
				names = append(names, b.Name)
			}

			assert.Equal(t, tt.names, names)
			assert.Equal(t, tt.total, response.Pagination.Total)
			assert.Equal(t, len(tt.names), response.Pagination.Count)
		})
	}
}

func (suite *TestSuiteStandard) TestBanksListPaginationInvalid() {
	for _, query := range []string{"limit=0", "limit=abc", "offset=-1"} {
		r := suite.request(http.MethodGet, "/banks?"+query, nil)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	}
}

func (suite *TestSuiteStandard) TestBanksListEmpty() {
	r := suite.request(http.MethodGet, "/banks", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	assert.Contains(suite.T(), r.Body.String(), `"data":[]`)
}

func (suite *TestSuiteStandard) TestBanksUpdate() {
	bank := suite.createTestBank(models.Bank{Name: "Nubank", Balance: d("100"), Color: "#8A05BE"})

	r := suite.request(http.MethodPatch, "/banks/"+bank.ID.String(), map[string]any{"name": "Nu"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.BankResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), "Nu", response.Data.Name)
	assert.Equal(suite.T(), "100", response.Data.Balance.String(), "fields not in the body must keep their values")
	assert.Equal(suite.T(), "#8A05BE", response.Data.Color)

	r = suite.request(http.MethodPatch, "/banks/"+bank.ID.String(), map[string]any{"name": ""})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestBanksSinglePrimary() {
	first := suite.createTestBank(models.Bank{Name: "First", IsPrimary: true})

	r := suite.request(http.MethodPost, "/banks", map[string]any{"name": "Second", "isPrimary": true})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	r = suite.request(http.MethodGet, "/banks/"+first.ID.String(), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.BankResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.False(suite.T(), response.Data.IsPrimary)
}

func (suite *TestSuiteStandard) TestBanksDelete() {
	bank := suite.createTestBank(models.Bank{})

	r := suite.request(http.MethodDelete, "/banks/"+bank.ID.String(), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(http.MethodGet, "/banks/"+bank.ID.String(), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBanksOtherUser() {
	bank := suite.createTestBank(models.Bank{Owned: models.Owned{UserID: suite.other.ID}})
	path := "/banks/" + bank.ID.String()

	for _, method := range []string{http.MethodGet, http.MethodPatch, http.MethodDelete, http.MethodOptions} {
		r := suite.request(method, path, map[string]any{"name": "Stolen"})
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	}

	// The owner still sees the unchanged bank
	r := suite.requestAs(suite.otherToken, http.MethodGet, path, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	assert.Contains(suite.T(), r.Body.String(), "Test Bank")
}

func (suite *TestSuiteStandard) TestBanksInvalidID() {
	r := suite.request(http.MethodGet, "/banks/not-a-uuid", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = suite.request(http.MethodGet, "/banks/"+uuid.New().String(), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	assert.Contains(suite.T(), r.Body.String(), "there is no bank matching your query")
}
