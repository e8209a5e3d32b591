package controllers_test

import (
	"net/http"

	"github.com/fincontrol/backend/pkg/controllers"
	"github.com/fincontrol/backend/pkg/models"
	"github.com/fincontrol/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCategoryRulesCreate() {
	groceries := suite.createTestCategory(models.Category{Name: "Groceries"})

	r := suite.request(http.MethodPost, "/category-rules", map[string]any{
		"pattern":    " *market* ",
		"categoryId": groceries.ID,
		"priority":   2,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response controllers.CategoryRuleResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "*market*", response.Data.Pattern)
	assert.Equal(suite.T(), uint(2), response.Data.Priority)
}

func (suite *TestSuiteStandard) TestCategoryRulesCreateFails() {
	foreign := suite.createTestCategory(models.Category{Owned: models.Owned{UserID: suite.other.ID}})
	groceries := suite.createTestCategory(models.Category{Name: "Groceries"})

	r := suite.request(http.MethodPost, "/category-rules", map[string]any{"pattern": "", "categoryId": groceries.ID})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	assert.Contains(suite.T(), r.Body.String(), models.ErrRulePatternEmpty.Error())

	r = suite.request(http.MethodPost, "/category-rules", map[string]any{"pattern": "*"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	assert.Contains(suite.T(), r.Body.String(), models.ErrInvalidReference.Error())

	r = suite.request(http.MethodPost, "/category-rules", map[string]any{"pattern": "*", "categoryId": foreign.ID})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	assert.Contains(suite.T(), r.Body.String(), models.ErrInvalidReference.Error())
}

func (suite *TestSuiteStandard) TestCategoryRulesListAndUpdate() {
	groceries := suite.createTestCategory(models.Category{Name: "Groceries"})
	transport := suite.createTestCategory(models.Category{Name: "Transport"})

	late := models.CategoryRule{Owned: suite.owned(), Pattern: "*uber*", CategoryID: transport.ID, Priority: 5}
	suite.create(&late)
	early := models.CategoryRule{Owned: suite.owned(), Pattern: "*market*", CategoryID: groceries.ID, Priority: 1}
	suite.create(&early)

	r := suite.request(http.MethodGet, "/category-rules", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list controllers.CategoryRuleListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Require().Len(list.Data, 2)
	assert.Equal(suite.T(), early.ID, list.Data[0].ID, "rules are ordered by priority")

	r = suite.request(http.MethodGet, "/category-rules?category="+transport.ID.String(), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Require().Len(list.Data, 1)
	assert.Equal(suite.T(), late.ID, list.Data[0].ID)

	r = suite.request(http.MethodPatch, "/category-rules/"+late.ID.String(), map[string]any{"priority": 0})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.CategoryRuleResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), uint(0), response.Data.Priority)
	assert.Equal(suite.T(), "*uber*", response.Data.Pattern)

	r = suite.request(http.MethodDelete, "/category-rules/"+late.ID.String(), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestCategoryRulesCategorize() {
	groceries := suite.createTestCategory(models.Category{Name: "Groceries"})
	food := suite.createTestCategory(models.Category{Name: "Food"})
	salary := suite.createTestCategory(models.Category{Name: "Salary", Type: models.CategoryTypeIncome})

	suite.create(&models.CategoryRule{Owned: suite.owned(), Pattern: "*market*", CategoryID: groceries.ID, Priority: 1})
	suite.create(&models.CategoryRule{Owned: suite.owned(), Pattern: "super*", CategoryID: food.ID, Priority: 2})
	suite.create(&models.CategoryRule{Owned: suite.owned(), Pattern: "*acme*", CategoryID: salary.ID, Priority: 1})

	// The rule with the lowest priority wins
	r := suite.request(http.MethodPost, "/expenses", map[string]any{"description": "SUPERMARKET Extra", "amount": "12.5", "date": "2026-10-12T00:00:00Z"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var expense controllers.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &expense)
	suite.Require().NotNil(expense.Data.CategoryID)
	assert.Equal(suite.T(), groceries.ID, *expense.Data.CategoryID)

	// An explicit category is kept
	r = suite.request(http.MethodPost, "/expenses", map[string]any{"description": "Supermarket", "amount": "3", "date": "2026-10-12T00:00:00Z", "categoryId": food.ID})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)
	test.DecodeResponse(suite.T(), &r, &expense)
	assert.Equal(suite.T(), food.ID, *expense.Data.CategoryID)

	// Only rules for income categories apply to receipts
	r = suite.request(http.MethodPost, "/receipts", map[string]any{"description": "ACME payroll market", "amount": "4200", "date": "2026-10-05T00:00:00Z"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var receipt controllers.ReceiptResponse
	test.DecodeResponse(suite.T(), &r, &receipt)
	suite.Require().NotNil(receipt.Data.CategoryID)
	assert.Equal(suite.T(), salary.ID, *receipt.Data.CategoryID)

	// No match leaves the expense uncategorized
	r = suite.request(http.MethodPost, "/expenses", map[string]any{"description": "Cinema", "amount": "30", "date": "2026-10-12T00:00:00Z"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var uncategorized controllers.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &uncategorized)
	assert.Nil(suite.T(), uncategorized.Data.CategoryID)
}
