package controllers

import (
	"fmt"
	"net/http"

	"github.com/fincontrol/backend/pkg/httputil"
	"github.com/fincontrol/backend/pkg/models"
	"github.com/gin-gonic/gin"
)

// RegisterBankRoutes registers the routes for banks with
// the RouterGroup that is passed.
func (co Controller) RegisterBankRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetBanks)
		r.POST("", co.CreateBank)
	}

	// Bank with ID
	{
		r.OPTIONS("/:id", co.OptionsBankDetail)
		r.GET("/:id", co.GetBank)
		r.PATCH("/:id", co.UpdateBank)
		r.DELETE("/:id", co.DeleteBank)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Banks
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/banks/{id} [options]
func (co Controller) OptionsBankDetail(c *gin.Context) {
	optionsDetail[models.Bank](c, co)
}

// @Summary		Create bank
// @Description	Creates a new bank
// @Tags			Banks
// @Accept			json
// @Produce		json
// @Success		201		{object}	BankResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			bank	body		BankEditable	true	"Bank"
// @Router			/banks [post]
func (co Controller) CreateBank(c *gin.Context) {
	var editable BankEditable
	if !bindEditable(c, &editable) {
		return
	}

	bank := models.Bank{Owned: models.Owned{UserID: userID(c)}}
	editable.apply(&bank)

	if !create(c, co, &bank) {
		return
	}

	c.JSON(http.StatusCreated, BankResponse{Data: &bank})
}

// @Summary		Get banks
// @Description	Returns a list of banks
// @Tags			Banks
// @Produce		json
// @Success		200			{object}	BankListResponse
// @Failure		400			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			type		query		string	false	"Filter by type"
// @Param			isPrimary	query		bool	false	"Is the bank the primary one?"
// @Param			search		query		string	false	"Search for this text in the name"
// @Param			offset		query		int		false	"The offset of the first bank returned. Defaults to 0."
// @Param			limit		query		int		false	"Maximum number of banks to return. Defaults to 50."
// @Router			/banks [get]
func (co Controller) GetBanks(c *gin.Context) {
	var filter BankQueryFilter
	if !bindFilter(c, &filter) {
		return
	}

	q := co.owned(c).Order("is_primary DESC, name ASC")

	if queryFields, _ := httputil.GetURLFields(c.Request.URL, filter); len(queryFields) > 0 {
		model := filter.model()
		q = q.Where(&model, queryFields...)
	}

	if filter.Search != "" {
		q = q.Where("name LIKE ?", fmt.Sprintf("%%%s%%", filter.Search))
	}

	banks, pagination, ok := listOwned[models.Bank](c, q)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, BankListResponse{
		Data:       banks,
		Pagination: pagination,
	})
}

// @Summary		Get bank
// @Description	Returns a specific bank
// @Tags			Banks
// @Produce		json
// @Success		200	{object}	BankResponse
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/banks/{id} [get]
func (co Controller) GetBank(c *gin.Context) {
	bank, ok := getOwned[models.Bank](c, co)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, BankResponse{Data: &bank})
}

// @Summary		Update bank
// @Description	Updates a bank. Only values to be updated need to be specified.
// @Tags			Banks
// @Accept			json
// @Produce		json
// @Success		200		{object}	BankResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		404		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			id		path		string			true	"ID formatted as string"
// @Param			bank	body		BankEditable	true	"Bank"
// @Router			/banks/{id} [patch]
func (co Controller) UpdateBank(c *gin.Context) {
	bank, ok := getOwned[models.Bank](c, co)
	if !ok {
		return
	}

	editable := newBankEditable(bank)
	if !bindEditable(c, &editable) {
		return
	}
	editable.apply(&bank)

	if !save(c, co, &bank) {
		return
	}

	c.JSON(http.StatusOK, BankResponse{Data: &bank})
}

// @Summary		Delete bank
// @Description	Deletes a bank
// @Tags			Banks
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/banks/{id} [delete]
func (co Controller) DeleteBank(c *gin.Context) {
	deleteOwned[models.Bank](c, co)
}
