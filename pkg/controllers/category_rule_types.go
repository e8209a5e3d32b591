package controllers

import (
	"strings"

	"github.com/fincontrol/backend/pkg/httputil"
	"github.com/fincontrol/backend/pkg/models"
	"github.com/google/uuid"
)

type CategoryRuleEditable struct {
	Pattern    string    `json:"pattern" example:"*supermarket*"` // Glob pattern matched against the description, case insensitive
	CategoryID uuid.UUID `json:"categoryId" example:"1e777d24-3f5b-4c43-8000-04f65f895578"`
	Priority   uint      `json:"priority" example:"1"` // Rules with a lower priority are evaluated first
}

func newCategoryRuleEditable(r models.CategoryRule) CategoryRuleEditable {
	return CategoryRuleEditable{
		Pattern:    r.Pattern,
		CategoryID: r.CategoryID,
		Priority:   r.Priority,
	}
}

func (e CategoryRuleEditable) validate() error {
	if strings.TrimSpace(e.Pattern) == "" {
		return models.ErrRulePatternEmpty
	}
	return nil
}

func (e CategoryRuleEditable) apply(r *models.CategoryRule) {
	r.Pattern = e.Pattern
	r.CategoryID = e.CategoryID
	r.Priority = e.Priority
}

type CategoryRuleQueryFilter struct {
	CategoryID string `form:"category"`                   // ID of the category
	Priority   uint   `form:"priority"`                   // Exact match for the priority
	Search     string `form:"search" filterField:"false"` // By string in pattern
}

func (f CategoryRuleQueryFilter) model() (models.CategoryRule, error) {
	categoryID, err := httputil.UUIDFromString(f.CategoryID)
	if err != nil {
		return models.CategoryRule{}, err
	}

	return models.CategoryRule{
		CategoryID: categoryID,
		Priority:   f.Priority,
	}, nil
}

type CategoryRuleResponse struct {
	Error *string              `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *models.CategoryRule `json:"data"`                                                          // The Category Rule data, if the request was successful
}

type CategoryRuleListResponse struct {
	Data       []models.CategoryRule `json:"data"`                                                          // List of Category Rules
	Error      *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination           `json:"pagination"`                                                    // Pagination information
}
