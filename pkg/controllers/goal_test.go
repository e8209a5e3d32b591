package controllers_test

import (
	"net/http"
	"time"

	"github.com/fincontrol/backend/pkg/controllers"
	"github.com/fincontrol/backend/pkg/models"
	"github.com/fincontrol/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestGoalsCreate() {
	r := suite.request(http.MethodPost, "/goals", map[string]any{
		"name":          "Vacation",
		"targetAmount":  "3000",
		"currentAmount": "1200",
		"deadline":      "2027-01-31T00:00:00Z",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response controllers.GoalResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), models.GoalTypeSaving, response.Data.Type, "the type defaults to saving")
	assert.Equal(suite.T(), "0.4", response.Data.Progress.String())
	assert.False(suite.T(), response.Data.Reached)
	assert.False(suite.T(), response.Data.Overdue)
}

func (suite *TestSuiteStandard) TestGoalsCreateFails() {
	foreign := suite.createTestCategory(models.Category{Owned: models.Owned{UserID: suite.other.ID}})

	tests := []struct {
		body  map[string]any
		error error
	}{
		{map[string]any{"targetAmount": "10"}, models.ErrNameEmpty},
		{map[string]any{"name": "Car", "targetAmount": "0"}, models.ErrAmountNotPositive},
		{map[string]any{"name": "Car", "targetAmount": "10", "currentAmount": "-1"}, models.ErrAmountNegative},
		{map[string]any{"name": "Car", "targetAmount": "10", "type": "hoarding"}, models.ErrInvalidGoalType},
		{map[string]any{"name": "Car", "targetAmount": "10", "categoryId": foreign.ID}, models.ErrInvalidReference},
	}

	for _, tt := range tests {
		r := suite.request(http.MethodPost, "/goals", tt.body)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
		assert.Contains(suite.T(), r.Body.String(), tt.error.Error())
	}
}

func (suite *TestSuiteStandard) TestGoalsList() {
	groceries := suite.createTestCategory(models.Category{Name: "Groceries"})
	past := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	future := time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC)

	suite.create(&models.Goal{Owned: suite.owned(), Name: "Someday", TargetAmount: d("100")})
	suite.create(&models.Goal{Owned: suite.owned(), Name: "Christmas", TargetAmount: d("500"), CurrentAmount: d("500"), Deadline: &future})
	suite.create(&models.Goal{Owned: suite.owned(), Name: "Late", TargetAmount: d("1000"), CurrentAmount: d("250"), Deadline: &past})
	suite.create(&models.Goal{Owned: suite.owned(), Name: "Market limit", Type: models.GoalTypeSpending, TargetAmount: d("600"), CategoryID: &groceries.ID})
	suite.create(&models.Goal{Owned: models.Owned{UserID: suite.other.ID}, Name: "Foreign", TargetAmount: d("1")})

	r := suite.request(http.MethodGet, "/goals", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.GoalListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	names := make([]string, 0, len(response.Data))
	for _, g := range response.Data {
		names = append(names, g.Name)
	}
	suite.Require().Equal([]string{"Late", "Christmas", "Market limit", "Someday"}, names, "goals are ordered by deadline, goals without one last")

	assert.True(suite.T(), response.Data[0].Overdue)
	assert.Equal(suite.T(), "0.25", response.Data[0].Progress.String())
	assert.True(suite.T(), response.Data[1].Reached)
	assert.False(suite.T(), response.Data[1].Overdue)
	assert.False(suite.T(), response.Data[3].Overdue, "goals without deadline are never overdue")

	r = suite.request(http.MethodGet, "/goals?type=spending", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)
	assert.Equal(suite.T(), "Market limit", response.Data[0].Name)

	r = suite.request(http.MethodGet, "/goals?category="+groceries.ID.String(), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)
}

func (suite *TestSuiteStandard) TestGoalsUpdate() {
	goal := models.Goal{Owned: suite.owned(), Name: "Car", TargetAmount: d("1000"), CurrentAmount: d("100")}
	suite.create(&goal)

	r := suite.request(http.MethodPatch, "/goals/"+goal.ID.String(), map[string]any{"currentAmount": "1000"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.GoalResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.Reached)
	assert.Equal(suite.T(), "Car", response.Data.Name)

	r = suite.request(http.MethodDelete, "/goals/"+goal.ID.String(), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}
