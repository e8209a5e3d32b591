package controllers

import (
	"fmt"
	"net/http"

	"github.com/fincontrol/backend/pkg/httputil"
	"github.com/fincontrol/backend/pkg/models"
	"github.com/gin-gonic/gin"
)

// RegisterCreditCardBillRoutes registers the routes for credit card bills with
// the RouterGroup that is passed.
func (co Controller) RegisterCreditCardBillRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetCreditCardBills)
		r.POST("", co.CreateCreditCardBill)
	}

	// Credit card bill with ID
	{
		r.OPTIONS("/:id", co.OptionsCreditCardBillDetail)
		r.GET("/:id", co.GetCreditCardBill)
		r.PATCH("/:id", co.UpdateCreditCardBill)
		r.DELETE("/:id", co.DeleteCreditCardBill)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			CreditCardBills
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/credit-card-bills/{id} [options]
func (co Controller) OptionsCreditCardBillDetail(c *gin.Context) {
	optionsDetail[models.CreditCardBill](c, co)
}

// @Summary		Create credit card bill
// @Description	Creates a new credit card bill
// @Tags			CreditCardBills
// @Accept			json
// @Produce		json
// @Success		201		{object}	CreditCardBillResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			bill	body		CreditCardBillEditable	true	"Credit Card Bill"
// @Router			/credit-card-bills [post]
func (co Controller) CreateCreditCardBill(c *gin.Context) {
	var editable CreditCardBillEditable
	if !bindEditable(c, &editable) {
		return
	}

	bill := models.CreditCardBill{Owned: models.Owned{UserID: userID(c)}}
	editable.apply(&bill)

	if !create(c, co, &bill) {
		return
	}

	c.JSON(http.StatusCreated, CreditCardBillResponse{Data: &bill})
}

// @Summary		Get credit card bills
// @Description	Returns a list of credit card bills
// @Tags			CreditCardBills
// @Produce		json
// @Success		200		{object}	CreditCardBillListResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			bank	query		string	false	"Filter by bank ID"
// @Param			isPaid	query		bool	false	"Is the bill paid?"
// @Param			search	query		string	false	"Search for this text in the description"
// @Param			from	query		string	false	"First due date to include, formatted as YYYY-MM-DD"
// @Param			to		query		string	false	"Last due date to include, formatted as YYYY-MM-DD"
// @Param			offset	query		int		false	"The offset of the first credit card bill returned. Defaults to 0."
// @Param			limit	query		int		false	"Maximum number of credit card bills to return. Defaults to 50."
// @Router			/credit-card-bills [get]
func (co Controller) GetCreditCardBills(c *gin.Context) {
	var filter CreditCardBillQueryFilter
	if !bindFilter(c, &filter) {
		return
	}

	model, err := filter.model()
	if err != nil {
		httputil.NewError(c, http.StatusBadRequest, err)
		return
	}

	err = filter.DateRange.validate()
	if err != nil {
		httputil.NewError(c, http.StatusBadRequest, err)
		return
	}

	q := co.owned(c).Order("due_date DESC")

	if queryFields, _ := httputil.GetURLFields(c.Request.URL, filter); len(queryFields) > 0 {
		q = q.Where(&model, queryFields...)
	}

	if filter.Search != "" {
		q = q.Where("description LIKE ?", fmt.Sprintf("%%%s%%", filter.Search))
	}

	q = filter.DateRange.apply(q, "due_date")

	bills, pagination, ok := listOwned[models.CreditCardBill](c, q)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, CreditCardBillListResponse{
		Data:       bills,
		Pagination: pagination,
	})
}

// @Summary		Get credit card bill
// @Description	Returns a specific credit card bill
// @Tags			CreditCardBills
// @Produce		json
// @Success		200	{object}	CreditCardBillResponse
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/credit-card-bills/{id} [get]
func (co Controller) GetCreditCardBill(c *gin.Context) {
	bill, ok := getOwned[models.CreditCardBill](c, co)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, CreditCardBillResponse{Data: &bill})
}

// @Summary		Update credit card bill
// @Description	Updates a credit card bill. Only values to be updated need to be specified.
// @Tags			CreditCardBills
// @Accept			json
// @Produce		json
// @Success		200		{object}	CreditCardBillResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		404		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			id		path		string					true	"ID formatted as string"
// @Param			bill	body		CreditCardBillEditable	true	"Credit Card Bill"
// @Router			/credit-card-bills/{id} [patch]
func (co Controller) UpdateCreditCardBill(c *gin.Context) {
	bill, ok := getOwned[models.CreditCardBill](c, co)
	if !ok {
		return
	}

	editable := newCreditCardBillEditable(bill)
	if !bindEditable(c, &editable) {
		return
	}
	editable.apply(&bill)

	if !save(c, co, &bill) {
		return
	}

	c.JSON(http.StatusOK, CreditCardBillResponse{Data: &bill})
}

// @Summary		Delete credit card bill
// @Description	Deletes a credit card bill
// @Tags			CreditCardBills
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/credit-card-bills/{id} [delete]
func (co Controller) DeleteCreditCardBill(c *gin.Context) {
	deleteOwned[models.CreditCardBill](c, co)
}
