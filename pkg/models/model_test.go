package models_test

import (
	"time"

	"github.com/fincontrol/backend/pkg/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestModelTimeUTC() {
	tz, _ := time.LoadLocation("Europe/Berlin")

	model := models.DefaultModel{
		Timestamps: models.Timestamps{
			CreatedAt: time.Date(2000, 1, 2, 3, 4, 5, 6, tz),
			UpdatedAt: time.Date(2001, 2, 3, 4, 5, 6, 7, tz),
			DeletedAt: &gorm.DeletedAt{Time: time.Now().In(tz)},
		},
	}

	err := model.AfterFind(suite.db)
	if err != nil {
		assert.Fail(suite.T(), "model.AfterFind failed")
	}

	assert.Equal(suite.T(), time.UTC, model.CreatedAt.Location(), "Timezone for model is not UTC")
	assert.Equal(suite.T(), time.UTC, model.UpdatedAt.Location(), "Timezone for model is not UTC")
	assert.Equal(suite.T(), time.UTC, model.DeletedAt.Time.Location(), "Timezone for model is not UTC")
}

func (suite *TestSuiteStandard) TestModelKeepsPresetID() {
	id := uuid.New()
	model := models.DefaultModel{ID: id}

	assert.Nil(suite.T(), model.BeforeCreate(suite.db))
	assert.Equal(suite.T(), id, model.ID)
}

func (suite *TestSuiteStandard) TestMigrateWithExistingDB() {
	assert.Nil(suite.T(), models.Migrate(suite.db))
}

func (suite *TestSuiteStandard) TestResourceNotFoundMessage() {
	err := suite.db.First(&models.CreditCardBill{}, "id = ?", uuid.New()).Error

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.Equal(suite.T(), "there is no credit card bill matching your query", err.Error())
}

func (suite *TestSuiteStandard) TestClosedDatabaseIsGeneralError() {
	suite.CloseDB()

	err := suite.db.Find(&[]models.Bank{}).Error
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}

func (suite *TestSuiteStandard) TestSelf() {
	tests := []struct {
		model models.Model
		name  string
	}{
		{models.User{}, "User"},
		{models.Bank{}, "Bank"},
		{models.Category{}, "Category"},
		{models.CategoryRule{}, "Category Rule"},
		{models.Receipt{}, "Receipt"},
		{models.Expense{}, "Expense"},
		{models.CreditCardBill{}, "Credit Card Bill"},
		{models.SavingsAccount{}, "Savings Account"},
		{models.Goal{}, "Goal"},
		{models.UserSettings{}, "Settings"},
	}

	for _, tt := range tests {
		assert.Equal(suite.T(), tt.name, tt.model.Self())
	}
}
