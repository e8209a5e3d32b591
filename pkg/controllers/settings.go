package controllers

import (
	"net/http"
	"strings"

	"github.com/fincontrol/backend/pkg/httputil"
	"github.com/fincontrol/backend/pkg/models"
	"github.com/gin-gonic/gin"
)

type SettingsEditable struct {
	Currency string `json:"currency" example:"BRL"` // ISO 4217 currency code
	Locale   string `json:"locale" example:"pt-BR"` // BCP 47 language tag
}

func (e SettingsEditable) validate() error {
	if strings.TrimSpace(e.Currency) == "" {
		return models.ErrInvalidCurrency
	}

	if strings.TrimSpace(e.Locale) == "" {
		return models.ErrInvalidLocale
	}

	return nil
}

type SettingsResponse struct {
	Error *string              `json:"error" example:"the currency must be an ISO 4217 code"` // The error, if any occurred
	Data  *models.UserSettings `json:"data"`                                                  // The settings of the authenticated user
}

// RegisterSettingsRoutes registers the routes for the user settings with
// the RouterGroup that is passed.
func (co Controller) RegisterSettingsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPatch)
	r.GET("", co.GetSettings)
	r.PATCH("", co.UpdateSettings)
}

// @Summary		Get settings
// @Description	Returns the settings of the authenticated user. Settings are created with defaults on first access.
// @Tags			Settings
// @Produce		json
// @Success		200	{object}	SettingsResponse
// @Failure		500	{object}	httputil.HTTPError
// @Router			/settings [get]
func (co Controller) GetSettings(c *gin.Context) {
	settings, err := models.SettingsFor(co.db(c), userID(c))
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, SettingsResponse{Data: &settings})
}

// @Summary		Update settings
// @Description	Updates the settings of the authenticated user. Only values to be updated need to be specified.
// @Tags			Settings
// @Accept			json
// @Produce		json
// @Success		200			{object}	SettingsResponse
// @Failure		400			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			settings	body		SettingsEditable	true	"Settings"
// @Router			/settings [patch]
func (co Controller) UpdateSettings(c *gin.Context) {
	settings, err := models.SettingsFor(co.db(c), userID(c))
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	editable := SettingsEditable{
		Currency: settings.Currency,
		Locale:   settings.Locale,
	}
	if !bindEditable(c, &editable) {
		return
	}

	settings.Currency = editable.Currency
	settings.Locale = editable.Locale

	if !save(c, co, &settings) {
		return
	}

	c.JSON(http.StatusOK, SettingsResponse{Data: &settings})
}
