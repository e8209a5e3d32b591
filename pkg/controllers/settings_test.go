package controllers_test

import (
	"net/http"

	"github.com/fincontrol/backend/pkg/controllers"
	"github.com/fincontrol/backend/pkg/models"
	"github.com/fincontrol/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestSettingsDefaults() {
	r := suite.request(http.MethodGet, "/settings", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.SettingsResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), models.DefaultCurrency, response.Data.Currency)
	assert.Equal(suite.T(), models.DefaultLocale, response.Data.Locale)
	assert.Equal(suite.T(), suite.user.ID, response.Data.UserID)
}

func (suite *TestSuiteStandard) TestSettingsUpdate() {
	r := suite.request(http.MethodPatch, "/settings", map[string]any{"currency": "brl", "locale": "pt-BR"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.SettingsResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "BRL", response.Data.Currency)
	assert.Equal(suite.T(), "pt-BR", response.Data.Locale)

	// Fields not in the body are kept
	r = suite.request(http.MethodPatch, "/settings", map[string]any{"currency": "EUR"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = suite.request(http.MethodGet, "/settings", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "EUR", response.Data.Currency)
	assert.Equal(suite.T(), "pt-BR", response.Data.Locale)

	// Settings are per user
	r = suite.requestAs(suite.otherToken, http.MethodGet, "/settings", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), models.DefaultCurrency, response.Data.Currency)
}

func (suite *TestSuiteStandard) TestSettingsUpdateFails() {
	tests := []struct {
		body  map[string]any
		error error
	}{
		{map[string]any{"currency": "DOUBLOONS"}, models.ErrInvalidCurrency},
		{map[string]any{"currency": ""}, models.ErrInvalidCurrency},
		{map[string]any{"locale": "not a locale!"}, models.ErrInvalidLocale},
		{map[string]any{"locale": " "}, models.ErrInvalidLocale},
	}

	for _, tt := range tests {
		r := suite.request(http.MethodPatch, "/settings", tt.body)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
		assert.Contains(suite.T(), r.Body.String(), tt.error.Error())
	}
}
