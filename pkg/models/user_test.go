package models_test

import (
	"testing"

	"github.com/fincontrol/backend/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestUserEmailNormalized() {
	user := suite.createTestUser(models.User{Email: "  Jane.Doe@Example.COM ", Name: " Jane "})

	assert.Equal(suite.T(), "jane.doe@example.com", user.Email)
	assert.Equal(suite.T(), "Jane", user.Name)
}

func (suite *TestSuiteStandard) TestUserEmailUnique() {
	_ = suite.createTestUser(models.User{Email: "jane@example.com"})

	err := suite.db.Create(&models.User{Email: "JANE@example.com"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrEmailInUse)
}

func (suite *TestSuiteStandard) TestUserSettingsDefaults() {
	settings, err := models.SettingsFor(suite.db, suite.user.ID)
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), models.DefaultCurrency, settings.Currency)
	assert.Equal(suite.T(), models.DefaultLocale, settings.Locale)

	// A second read returns the stored settings
	again, err := models.SettingsFor(suite.db, suite.user.ID)
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), settings.CreatedAt.Unix(), again.CreatedAt.Unix())
}

func (suite *TestSuiteStandard) TestUserSettingsExisting() {
	err := suite.db.Create(&models.UserSettings{UserID: suite.user.ID, Currency: "BRL", Locale: "pt-BR"}).Error
	require.Nil(suite.T(), err)

	// Settings stored by an earlier request are kept, not reset to defaults
	settings, err := models.SettingsFor(suite.db, suite.user.ID)
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), "BRL", settings.Currency)
	assert.Equal(suite.T(), "pt-BR", settings.Locale)

	var count int64
	suite.db.Model(&models.UserSettings{}).Where("user_id = ?", suite.user.ID).Count(&count)
	assert.Equal(suite.T(), int64(1), count)
}

func (suite *TestSuiteStandard) TestUserSettingsValidation() {
	tests := []struct {
		name     string
		currency string
		locale   string
		err      error
	}{
		{"Valid", "brl", "pt-BR", nil},
		{"Unknown currency", "ABC", "en-US", models.ErrInvalidCurrency},
		{"Broken locale", "EUR", "not a locale!", models.ErrInvalidLocale},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			settings := models.UserSettings{Currency: tt.currency, Locale: tt.locale}
			err := settings.BeforeSave(suite.db)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestUserSettingsUnit() {
	settings := models.UserSettings{Currency: "BRL", Locale: "pt-BR"}
	assert.Equal(suite.T(), "BRL", settings.Unit().String())
	assert.Equal(suite.T(), "pt-BR", settings.Tag().String())

	broken := models.UserSettings{Currency: "???", Locale: "???"}
	assert.Equal(suite.T(), "USD", broken.Unit().String())
	assert.Equal(suite.T(), "en-US", broken.Tag().String())
}
