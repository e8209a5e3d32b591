package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GoalType string

const (
	GoalTypeSaving   GoalType = "saving"
	GoalTypeSpending GoalType = "spending"
)

func (t GoalType) Valid() bool {
	return t == GoalTypeSaving || t == GoalTypeSpending
}

// Goal is a saving target or a spending limit.
type Goal struct {
	DefaultModel
	Owned
	Name          string          `json:"name" example:"Vacation"`
	Type          GoalType        `json:"type" example:"saving"`
	TargetAmount  decimal.Decimal `json:"targetAmount" gorm:"type:DECIMAL(20,8)" example:"3000"`
	CurrentAmount decimal.Decimal `json:"currentAmount" gorm:"type:DECIMAL(20,8)" example:"1200"`
	Deadline      *time.Time      `json:"deadline" example:"2027-01-31T00:00:00Z"`
	CategoryID    *uuid.UUID      `json:"categoryId" example:"1e777d24-3f5b-4c43-8000-04f65f895578"` // Spending goals can be limited to a category
}

func (Goal) Self() string {
	return "Goal"
}

func (g *Goal) BeforeSave(tx *gorm.DB) error {
	g.Name = strings.TrimSpace(g.Name)
	g.CategoryID = normalizeID(g.CategoryID)

	if g.Deadline != nil {
		t := utc(*g.Deadline)
		g.Deadline = &t
	}

	if g.Name == "" {
		return ErrNameEmpty
	}

	if g.Type == "" {
		g.Type = GoalTypeSaving
	}

	if !g.Type.Valid() {
		return ErrInvalidGoalType
	}

	if !g.TargetAmount.IsPositive() {
		return ErrAmountNotPositive
	}

	if g.CurrentAmount.IsNegative() {
		return ErrAmountNegative
	}

	return checkReference(tx, &Category{}, g.UserID, g.CategoryID)
}

// Progress returns the share of the target reached.
func (g Goal) Progress() decimal.Decimal {
	if !g.TargetAmount.IsPositive() {
		return decimal.Zero
	}
	return g.CurrentAmount.Div(g.TargetAmount)
}

// Reached reports whether the current amount reached the target.
func (g Goal) Reached() bool {
	return g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}

// Exceeded reports whether a spending goal went over its limit. Saving goals
// are never exceeded.
func (g Goal) Exceeded() bool {
	return g.Type == GoalTypeSpending && g.CurrentAmount.GreaterThan(g.TargetAmount)
}

// Overdue reports whether a saving goal passed its deadline without reaching
// the target. A spending limit has nothing to reach.
func (g Goal) Overdue(now time.Time) bool {
	return g.Type != GoalTypeSpending && g.Deadline != nil && now.After(*g.Deadline) && !g.Reached()
}
