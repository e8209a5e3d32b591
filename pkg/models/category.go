package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

func (t CategoryType) Valid() bool {
	return t == CategoryTypeIncome || t == CategoryTypeExpense
}

// Category classifies receipts and expenses. Categories are at most two
// levels deep.
type Category struct {
	DefaultModel
	Owned
	Name     string       `json:"name" example:"Groceries"`
	Type     CategoryType `json:"type" example:"expense"`
	Color    string       `json:"color" example:"#2E7D32"`
	Icon     string       `json:"icon" example:"cart"`
	ParentID *uuid.UUID   `json:"parentId" gorm:"index" example:"1e777d24-3f5b-4c43-8000-04f65f895578"` // Parent category, only top level categories can be parents
}

func (Category) Self() string {
	return "Category"
}

func (c *Category) BeforeSave(tx *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return ErrNameEmpty
	}

	if !c.Type.Valid() {
		return ErrInvalidCategoryType
	}

	c.ParentID = normalizeID(c.ParentID)
	if c.ParentID == nil {
		return nil
	}

	if c.ID != uuid.Nil && *c.ParentID == c.ID {
		return ErrCategorySelfParent
	}

	var parent Category
	err := checkReference(tx, &parent, c.UserID, c.ParentID)
	if err != nil {
		return err
	}

	if parent.ParentID != nil {
		return ErrCategoryDepth
	}

	if parent.Type != c.Type {
		return ErrCategoryTypeMismatch
	}

	if c.ID != uuid.Nil {
		var children int64
		err = tx.Session(&gorm.Session{NewDB: true}).Model(&Category{}).Where("parent_id = ?", c.ID).Count(&children).Error
		if err != nil {
			return err
		}

		if children > 0 {
			return ErrCategoryHasChildren
		}
	}

	return nil
}

// BeforeDelete removes the subcategories together with their parent.
func (c *Category) BeforeDelete(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		return nil
	}

	return tx.Session(&gorm.Session{NewDB: true}).Where("parent_id = ?", c.ID).Delete(&Category{}).Error
}

// checkCategory verifies that the referenced category belongs to the user and
// has the expected type.
func checkCategory(tx *gorm.DB, userID uuid.UUID, id *uuid.UUID, want CategoryType) error {
	if id == nil {
		return nil
	}

	var category Category
	err := checkReference(tx, &category, userID, id)
	if err != nil {
		return err
	}

	if category.Type != want {
		return ErrCategoryWrongType
	}

	return nil
}
