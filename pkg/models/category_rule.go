package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"gorm.io/gorm"
)

// CategoryRule assigns its category to receipts and expenses created without
// one when their description matches the glob pattern.
type CategoryRule struct {
	DefaultModel
	Owned
	Pattern    string    `json:"pattern" example:"*supermarket*"` // Glob pattern, "*" matches any sequence of characters
	CategoryID uuid.UUID `json:"categoryId" example:"1e777d24-3f5b-4c43-8000-04f65f895578"`
	Priority   uint      `json:"priority" example:"1"` // Rules with a lower priority are evaluated first
}

func (CategoryRule) Self() string {
	return "Category Rule"
}

func (r *CategoryRule) BeforeSave(tx *gorm.DB) error {
	r.Pattern = strings.TrimSpace(r.Pattern)
	if r.Pattern == "" {
		return ErrRulePatternEmpty
	}

	if r.CategoryID == uuid.Nil {
		return ErrInvalidReference
	}

	return checkReference(tx, &Category{}, r.UserID, &r.CategoryID)
}

// Matches reports whether the description matches the rule. Matching ignores
// case and surrounding whitespace.
func (r CategoryRule) Matches(description string) bool {
	return glob.Glob(strings.ToLower(r.Pattern), strings.ToLower(strings.TrimSpace(description)))
}

// MatchCategory returns the category of the first rule matching the
// description, considering only rules whose category has the given type.
// Rules are evaluated by priority, then by creation time.
func MatchCategory(tx *gorm.DB, userID uuid.UUID, description string, categoryType CategoryType) (*uuid.UUID, error) {
	var rules []CategoryRule
	err := tx.Session(&gorm.Session{NewDB: true}).
		Joins("JOIN categories ON categories.id = category_rules.category_id AND categories.deleted_at IS NULL").
		Where("category_rules.user_id = ? AND categories.type = ?", userID, categoryType).
		Order("category_rules.priority ASC, category_rules.created_at ASC").
		Find(&rules).Error
	if err != nil {
		return nil, err
	}

	for _, rule := range rules {
		if rule.Matches(description) {
			id := rule.CategoryID
			return &id, nil
		}
	}

	return nil, nil
}
