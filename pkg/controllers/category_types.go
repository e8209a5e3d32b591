package controllers

import (
	"strings"

	"github.com/fincontrol/backend/pkg/httputil"
	"github.com/fincontrol/backend/pkg/models"
	"github.com/google/uuid"
)

type CategoryEditable struct {
	Name     string              `json:"name" example:"Groceries"`
	Type     models.CategoryType `json:"type" example:"expense"` // One of income, expense
	Color    string              `json:"color" example:"#2E7D32"`
	Icon     string              `json:"icon" example:"cart"`
	ParentID *uuid.UUID          `json:"parentId" example:"1e777d24-3f5b-4c43-8000-04f65f895578"` // Parent category. Only top level categories can be parents
}

func newCategoryEditable(c models.Category) CategoryEditable {
	return CategoryEditable{
		Name:     c.Name,
		Type:     c.Type,
		Color:    c.Color,
		Icon:     c.Icon,
		ParentID: c.ParentID,
	}
}

func (e CategoryEditable) validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return models.ErrNameEmpty
	}

	if !e.Type.Valid() {
		return models.ErrInvalidCategoryType
	}

	return nil
}

func (e CategoryEditable) apply(c *models.Category) {
	c.Name = e.Name
	c.Type = e.Type
	c.Color = e.Color
	c.Icon = e.Icon
	c.ParentID = e.ParentID
}

type CategoryQueryFilter struct {
	Type     string `form:"type"`                       // Exact match for the type
	ParentID string `form:"parent"`                     // ID of the parent category. Empty for top level categories
	Search   string `form:"search" filterField:"false"` // By string in name
}

func (f CategoryQueryFilter) model() (models.Category, error) {
	parentID, err := httputil.UUIDFromString(f.ParentID)
	if err != nil {
		return models.Category{}, err
	}

	return models.Category{
		Type:     models.CategoryType(f.Type),
		ParentID: optionalID(parentID),
	}, nil
}

type CategoryResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *models.Category `json:"data"`                                                          // The Category data, if the request was successful
}

type CategoryListResponse struct {
	Data       []models.Category `json:"data"`                                                          // List of Categories
	Error      *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination       `json:"pagination"`                                                    // Pagination information
}
