package models_test

import (
	"strings"

	"github.com/fincontrol/backend/pkg/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCategoryTrimWhitespace() {
	name := "\t Whitespace galore!   "
	category := suite.createTestCategory(models.Category{Name: name})

	assert.Equal(suite.T(), strings.TrimSpace(name), category.Name)
}

func (suite *TestSuiteStandard) TestCategoryParentRules() {
	parent := suite.createTestCategory(models.Category{Name: "Home"})
	child := suite.createTestCategory(models.Category{Name: "Rent", ParentID: &parent.ID})
	income := suite.createTestCategory(models.Category{Name: "Salary", Type: models.CategoryTypeIncome})

	other := suite.createTestUser(models.User{})
	foreign := suite.createTestCategory(models.Category{Owned: models.Owned{UserID: other.ID}})

	unknown := uuid.New()

	tests := []struct {
		name     string
		category models.Category
		err      error
	}{
		{"Grandchild", models.Category{Name: "Deep", Type: models.CategoryTypeExpense, ParentID: &child.ID}, models.ErrCategoryDepth},
		{"Type mismatch", models.Category{Name: "Bonus", Type: models.CategoryTypeIncome, ParentID: &parent.ID}, models.ErrCategoryTypeMismatch},
		{"Parent of other user", models.Category{Name: "Sneaky", Type: models.CategoryTypeExpense, ParentID: &foreign.ID}, models.ErrInvalidReference},
		{"Unknown parent", models.Category{Name: "Lost", Type: models.CategoryTypeExpense, ParentID: &unknown}, models.ErrInvalidReference},
		{"Invalid type", models.Category{Name: "Odd", Type: "transfer"}, models.ErrInvalidCategoryType},
		{"Empty name", models.Category{Name: " ", Type: models.CategoryTypeIncome}, models.ErrNameEmpty},
		{"Valid child of income", models.Category{Name: "Bonus", Type: models.CategoryTypeIncome, ParentID: &income.ID}, nil},
	}

	for _, tt := range tests {
		tt.category.UserID = suite.user.ID
		err := suite.db.Create(&tt.category).Error
		assert.ErrorIs(suite.T(), err, tt.err, tt.name)
	}
}

func (suite *TestSuiteStandard) TestCategorySelfParent() {
	category := suite.createTestCategory(models.Category{})

	category.ParentID = &category.ID
	err := suite.db.Save(&category).Error
	assert.ErrorIs(suite.T(), err, models.ErrCategorySelfParent)
}

func (suite *TestSuiteStandard) TestCategoryWithChildrenCannotGetParent() {
	parent := suite.createTestCategory(models.Category{Name: "Home"})
	_ = suite.createTestCategory(models.Category{Name: "Rent", ParentID: &parent.ID})
	other := suite.createTestCategory(models.Category{Name: "Living"})

	parent.ParentID = &other.ID
	err := suite.db.Save(&parent).Error
	assert.ErrorIs(suite.T(), err, models.ErrCategoryHasChildren)
}

func (suite *TestSuiteStandard) TestCategoryDeleteRemovesChildren() {
	parent := suite.createTestCategory(models.Category{Name: "Home"})
	child := suite.createTestCategory(models.Category{Name: "Rent", ParentID: &parent.ID})

	require.Nil(suite.T(), suite.db.Delete(&parent).Error)

	err := suite.db.First(&models.Category{}, "id = ?", child.ID).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestCategoryRuleMatchesByPriority() {
	groceries := suite.createTestCategory(models.Category{Name: "Groceries"})
	food := suite.createTestCategory(models.Category{Name: "Food"})
	salary := suite.createTestCategory(models.Category{Name: "Salary", Type: models.CategoryTypeIncome})

	_ = suite.createTestCategoryRule(models.CategoryRule{Pattern: "*market*", CategoryID: food.ID, Priority: 5})
	_ = suite.createTestCategoryRule(models.CategoryRule{Pattern: "super*", CategoryID: groceries.ID, Priority: 1})
	_ = suite.createTestCategoryRule(models.CategoryRule{Pattern: "*", CategoryID: salary.ID, Priority: 0})

	expense := suite.createTestExpense(models.Expense{Description: "Supermarket Extra"})
	require.NotNil(suite.T(), expense.CategoryID)
	assert.Equal(suite.T(), groceries.ID, *expense.CategoryID, "the rule with the lowest priority must win")

	expense = suite.createTestExpense(models.Expense{Description: "Farmers market"})
	require.NotNil(suite.T(), expense.CategoryID)
	assert.Equal(suite.T(), food.ID, *expense.CategoryID)

	// The catch-all rule only applies to income
	expense = suite.createTestExpense(models.Expense{Description: "Cinema"})
	assert.Nil(suite.T(), expense.CategoryID)
}

func (suite *TestSuiteStandard) TestCategoryRuleExplicitCategoryWins() {
	groceries := suite.createTestCategory(models.Category{Name: "Groceries"})
	other := suite.createTestCategory(models.Category{Name: "Other"})
	_ = suite.createTestCategoryRule(models.CategoryRule{Pattern: "*", CategoryID: groceries.ID})

	expense := suite.createTestExpense(models.Expense{Description: "Anything", CategoryID: &other.ID})
	assert.Equal(suite.T(), other.ID, *expense.CategoryID)
}

func (suite *TestSuiteStandard) TestCategoryRuleValidation() {
	category := suite.createTestCategory(models.Category{})
	foreign := suite.createTestCategory(models.Category{Owned: models.Owned{UserID: suite.createTestUser(models.User{}).ID}})

	err := suite.db.Create(&models.CategoryRule{Owned: models.Owned{UserID: suite.user.ID}, Pattern: "  ", CategoryID: category.ID}).Error
	assert.ErrorIs(suite.T(), err, models.ErrRulePatternEmpty)

	err = suite.db.Create(&models.CategoryRule{Owned: models.Owned{UserID: suite.user.ID}, Pattern: "*", CategoryID: foreign.ID}).Error
	assert.ErrorIs(suite.T(), err, models.ErrInvalidReference)
}

func (suite *TestSuiteStandard) TestCategoryRuleMatches() {
	rule := models.CategoryRule{Pattern: "UBER*"}

	assert.True(suite.T(), rule.Matches(" uber trip "))
	assert.False(suite.T(), rule.Matches("A ride with uber"))
}
