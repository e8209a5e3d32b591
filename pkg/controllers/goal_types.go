package controllers

import (
	"strings"
	"time"

	"github.com/fincontrol/backend/pkg/httputil"
	"github.com/fincontrol/backend/pkg/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type GoalEditable struct {
	Name          string          `json:"name" example:"Vacation"`
	Type          models.GoalType `json:"type" example:"saving"` // One of saving, spending. Defaults to saving
	TargetAmount  decimal.Decimal `json:"targetAmount" example:"3000"`
	CurrentAmount decimal.Decimal `json:"currentAmount" example:"1200"`
	Deadline      *time.Time      `json:"deadline" example:"2027-01-31T00:00:00Z"`
	CategoryID    *uuid.UUID      `json:"categoryId" example:"1e777d24-3f5b-4c43-8000-04f65f895578"` // Spending goals can be limited to a category
}

func newGoalEditable(g models.Goal) GoalEditable {
	return GoalEditable{
		Name:          g.Name,
		Type:          g.Type,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		Deadline:      g.Deadline,
		CategoryID:    g.CategoryID,
	}
}

func (e GoalEditable) validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return models.ErrNameEmpty
	}

	if e.Type != "" && !e.Type.Valid() {
		return models.ErrInvalidGoalType
	}

	if !e.TargetAmount.IsPositive() {
		return models.ErrAmountNotPositive
	}

	if e.CurrentAmount.IsNegative() {
		return models.ErrAmountNegative
	}

	return nil
}

func (e GoalEditable) apply(g *models.Goal) {
	g.Name = e.Name
	g.Type = e.Type
	g.TargetAmount = e.TargetAmount
	g.CurrentAmount = e.CurrentAmount
	g.Deadline = e.Deadline
	g.CategoryID = e.CategoryID
}

type GoalQueryFilter struct {
	Type       string `form:"type"`                       // Exact match for the type
	CategoryID string `form:"category"`                   // ID of the category
	Search     string `form:"search" filterField:"false"` // By string in name
}

func (f GoalQueryFilter) model() (models.Goal, error) {
	categoryID, err := httputil.UUIDFromString(f.CategoryID)
	if err != nil {
		return models.Goal{}, err
	}

	return models.Goal{
		Type:       models.GoalType(f.Type),
		CategoryID: optionalID(categoryID),
	}, nil
}

// Goal is the API representation of a Goal.
type Goal struct {
	models.Goal
	Progress decimal.Decimal `json:"progress" example:"0.4"`   // Share of the target amount reached
	Reached  bool            `json:"reached" example:"false"`  // The current amount reached the target amount
	Overdue  bool            `json:"overdue" example:"false"`  // The deadline passed without reaching the target amount
	Exceeded bool            `json:"exceeded" example:"false"` // A spending goal went over its limit
}

func (co Controller) newGoal(model models.Goal) *Goal {
	return &Goal{
		Goal:     model,
		Progress: model.Progress().Round(4),
		Reached:  model.Reached(),
		Overdue:  model.Overdue(co.now()),
		Exceeded: model.Exceeded(),
	}
}

func (co Controller) newGoals(resources []models.Goal) []Goal {
	goals := make([]Goal, 0, len(resources))
	for _, model := range resources {
		goals = append(goals, *co.newGoal(model))
	}
	return goals
}

type GoalResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Goal   `json:"data"`                                                          // The Goal data, if the request was successful
}

type GoalListResponse struct {
	Data       []Goal      `json:"data"`                                                          // List of Goals
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}
