package controllers

import (
	"fmt"
	"net/http"

	"github.com/fincontrol/backend/pkg/httputil"
	"github.com/fincontrol/backend/pkg/models"
	"github.com/gin-gonic/gin"
)

// RegisterSavingsAccountRoutes registers the routes for savings accounts with
// the RouterGroup that is passed.
func (co Controller) RegisterSavingsAccountRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetSavingsAccounts)
		r.POST("", co.CreateSavingsAccount)
	}

	// Savings account with ID
	{
		r.OPTIONS("/:id", co.OptionsSavingsAccountDetail)
		r.GET("/:id", co.GetSavingsAccount)
		r.PATCH("/:id", co.UpdateSavingsAccount)
		r.DELETE("/:id", co.DeleteSavingsAccount)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			SavingsAccounts
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/savings-accounts/{id} [options]
func (co Controller) OptionsSavingsAccountDetail(c *gin.Context) {
	optionsDetail[models.SavingsAccount](c, co)
}

// @Summary		Create savings account
// @Description	Creates a new savings account
// @Tags			SavingsAccounts
// @Accept			json
// @Produce		json
// @Success		201		{object}	SavingsAccountResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			account	body		SavingsAccountEditable	true	"Savings Account"
// @Router			/savings-accounts [post]
func (co Controller) CreateSavingsAccount(c *gin.Context) {
	var editable SavingsAccountEditable
	if !bindEditable(c, &editable) {
		return
	}

	account := models.SavingsAccount{Owned: models.Owned{UserID: userID(c)}}
	editable.apply(&account)

	if !create(c, co, &account) {
		return
	}

	c.JSON(http.StatusCreated, SavingsAccountResponse{Data: newSavingsAccount(account)})
}

// @Summary		Get savings accounts
// @Description	Returns a list of savings accounts
// @Tags			SavingsAccounts
// @Produce		json
// @Success		200		{object}	SavingsAccountListResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			bank	query		string	false	"Filter by bank ID"
// @Param			search	query		string	false	"Search for this text in the name"
// @Param			offset	query		int		false	"The offset of the first savings account returned. Defaults to 0."
// @Param			limit	query		int		false	"Maximum number of savings accounts to return. Defaults to 50."
// @Router			/savings-accounts [get]
func (co Controller) GetSavingsAccounts(c *gin.Context) {
	var filter SavingsAccountQueryFilter
	if !bindFilter(c, &filter) {
		return
	}

	model, err := filter.model()
	if err != nil {
		httputil.NewError(c, http.StatusBadRequest, err)
		return
	}

	q := co.owned(c).Order("name ASC")

	if queryFields, _ := httputil.GetURLFields(c.Request.URL, filter); len(queryFields) > 0 {
		q = q.Where(&model, queryFields...)
	}

	if filter.Search != "" {
		q = q.Where("name LIKE ?", fmt.Sprintf("%%%s%%", filter.Search))
	}

	accounts, pagination, ok := listOwned[models.SavingsAccount](c, q)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, SavingsAccountListResponse{
		Data:       newSavingsAccounts(accounts),
		Pagination: pagination,
	})
}

// @Summary		Get savings account
// @Description	Returns a specific savings account
// @Tags			SavingsAccounts
// @Produce		json
// @Success		200	{object}	SavingsAccountResponse
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/savings-accounts/{id} [get]
func (co Controller) GetSavingsAccount(c *gin.Context) {
	account, ok := getOwned[models.SavingsAccount](c, co)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, SavingsAccountResponse{Data: newSavingsAccount(account)})
}

// @Summary		Update savings account
// @Description	Updates a savings account. Only values to be updated need to be specified.
// @Tags			SavingsAccounts
// @Accept			json
// @Produce		json
// @Success		200		{object}	SavingsAccountResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		404		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			id		path		string					true	"ID formatted as string"
// @Param			account	body		SavingsAccountEditable	true	"Savings Account"
// @Router			/savings-accounts/{id} [patch]
func (co Controller) UpdateSavingsAccount(c *gin.Context) {
	account, ok := getOwned[models.SavingsAccount](c, co)
	if !ok {
		return
	}

	editable := newSavingsAccountEditable(account)
	if !bindEditable(c, &editable) {
		return
	}
	editable.apply(&account)

	if !save(c, co, &account) {
		return
	}

	c.JSON(http.StatusOK, SavingsAccountResponse{Data: newSavingsAccount(account)})
}

// @Summary		Delete savings account
// @Description	Deletes a savings account
// @Tags			SavingsAccounts
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/savings-accounts/{id} [delete]
func (co Controller) DeleteSavingsAccount(c *gin.Context) {
	deleteOwned[models.SavingsAccount](c, co)
}
