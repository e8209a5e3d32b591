package controllers_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/fincontrol/backend/pkg/auth"
	"github.com/fincontrol/backend/pkg/controllers"
	"github.com/fincontrol/backend/pkg/models"
	"github.com/fincontrol/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestRegister() {
	r := suite.requestAs("", http.MethodPost, "/auth/register", map[string]any{
		"email":    "  Jane@Example.com ",
		"password": testPassword,
		"name":     "Jane",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response controllers.SessionResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), "jane@example.com", response.Data.User.Email)
	assert.Equal(suite.T(), "Jane", response.Data.User.Name)
	assert.Equal(suite.T(), "Bearer", response.Data.Tokens.TokenType)
	assert.NotEmpty(suite.T(), response.Data.Tokens.AccessToken)
	assert.NotEmpty(suite.T(), response.Data.Tokens.RefreshToken)
	assert.NotContains(suite.T(), r.Body.String(), "password", "the password hash must never be serialized")

	// The new access token works right away
	r = suite.requestAs(response.Data.Tokens.AccessToken, http.MethodGet, "/auth/me", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestRegisterFails() {
	tests := []struct {
		name  string
		body  any
		error error
	}{
		{"Email in use", map[string]any{"email": "OWNER@example.com", "password": testPassword, "name": "Owner"}, models.ErrEmailInUse},
		{"Invalid email", map[string]any{"email": "not an email", "password": testPassword, "name": "Jane"}, nil},
		{"Short password", map[string]any{"email": "jane@example.com", "password": "short", "name": "Jane"}, nil},
		{"No name", map[string]any{"email": "jane@example.com", "password": testPassword, "name": " "}, models.ErrNameEmpty},
		{"Broken body", `{ "email": 2 `, nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.engine, http.MethodPost, "http://example.com/auth/register", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			if tt.error != nil {
				assert.Contains(t, r.Body.String(), tt.error.Error())
			}
		})
	}
}

func (suite *TestSuiteStandard) TestLogin() {
	r := suite.requestAs("", http.MethodPost, "/auth/login", map[string]any{
		"email":    "Owner@Example.com",
		"password": testPassword,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.SessionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), suite.user.ID, response.Data.User.ID)
	assert.NotEmpty(suite.T(), response.Data.Tokens.AccessToken)
}

func (suite *TestSuiteStandard) TestLoginFails() {
	tests := []struct {
		name   string
		body   map[string]any
		status int
	}{
		{"Wrong password", map[string]any{"email": "owner@example.com", "password": "wrong password"}, http.StatusUnauthorized},
		{"Unknown email", map[string]any{"email": "nobody@example.com", "password": testPassword}, http.StatusUnauthorized},
		{"Missing password", map[string]any{"email": "owner@example.com"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.engine, http.MethodPost, "http://example.com/auth/login", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.Contains(t, r.Body.String(), auth.ErrInvalidCredentials.Error())
		})
	}
}

func (suite *TestSuiteStandard) TestRefresh() {
	pair, err := suite.tokens.Issue(suite.user.ID)
	suite.Require().Nil(err)

	r := suite.requestAs("", http.MethodPost, "/auth/refresh", map[string]any{"refreshToken": pair.RefreshToken})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.SessionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), suite.user.ID, response.Data.User.ID)

	id, err := suite.tokens.Parse(response.Data.Tokens.AccessToken, auth.TokenTypeAccess)
	suite.Require().Nil(err)
	assert.Equal(suite.T(), suite.user.ID, id)
}

func (suite *TestSuiteStandard) TestRefreshFails() {
	pair, err := suite.tokens.Issue(suite.user.ID)
	suite.Require().Nil(err)

	tests := []struct {
		name   string
		token  string
		status int
	}{
		{"Access token", pair.AccessToken, http.StatusUnauthorized},
		{"Garbage", "not.a.token", http.StatusUnauthorized},
		{"Tampered", pair.RefreshToken + "x", http.StatusUnauthorized},
		{"Missing", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.engine, http.MethodPost, "http://example.com/auth/refresh", map[string]any{"refreshToken": tt.token})
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestRefreshDeletedUser() {
	pair, err := suite.tokens.Issue(suite.other.ID)
	suite.Require().Nil(err)
	suite.Require().Nil(suite.db.Delete(&suite.other).Error)

	r := suite.requestAs("", http.MethodPost, "/auth/refresh", map[string]any{"refreshToken": pair.RefreshToken})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestMe() {
	r := suite.request(http.MethodGet, "/auth/me", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.UserResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "owner@example.com", response.Data.Email)
}

func (suite *TestSuiteStandard) TestProtectedRoutes() {
	pair, err := suite.tokens.Issue(suite.user.ID)
	suite.Require().Nil(err)

	paths := []string{
		"/auth/me",
		"/banks",
		"/categories",
		"/category-rules",
		"/receipts",
		"/expenses",
		"/credit-card-bills",
		"/savings-accounts",
		"/goals",
		"/settings",
		"/dashboard/projected-balance",
		"/dashboard/summary",
		"/dashboard/insights",
	}

	for _, path := range paths {
		suite.T().Run(strings.TrimPrefix(path, "/"), func(t *testing.T) {
			r := test.Request(t, suite.engine, http.MethodGet, "http://example.com"+path, nil)
			test.AssertHTTPStatus(t, &r, http.StatusUnauthorized)
			assert.Contains(t, r.Body.String(), auth.ErrMissingToken.Error())

			r = test.Request(t, suite.engine, http.MethodGet, "http://example.com"+path, nil, test.Bearer(pair.RefreshToken))
			test.AssertHTTPStatus(t, &r, http.StatusUnauthorized)
			assert.Contains(t, r.Body.String(), auth.ErrWrongTokenType.Error())
		})
	}
}
