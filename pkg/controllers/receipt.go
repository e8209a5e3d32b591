package controllers

import (
	"fmt"
	"net/http"

	"github.com/fincontrol/backend/pkg/httputil"
	"github.com/fincontrol/backend/pkg/models"
	"github.com/gin-gonic/gin"
)

// RegisterReceiptRoutes registers the routes for receipts with
// the RouterGroup that is passed.
func (co Controller) RegisterReceiptRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetReceipts)
		r.POST("", co.CreateReceipt)
	}

	// Receipt with ID
	{
		r.OPTIONS("/:id", co.OptionsReceiptDetail)
		r.GET("/:id", co.GetReceipt)
		r.PATCH("/:id", co.UpdateReceipt)
		r.DELETE("/:id", co.DeleteReceipt)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Receipts
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/receipts/{id} [options]
func (co Controller) OptionsReceiptDetail(c *gin.Context) {
	optionsDetail[models.Receipt](c, co)
}

// @Summary		Create receipt
// @Description	Creates a new receipt. Receipts without a category are categorized by the first matching category rule.
// @Tags			Receipts
// @Accept			json
// @Produce		json
// @Success		201		{object}	ReceiptResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			receipt	body		ReceiptEditable	true	"Receipt"
// @Router			/receipts [post]
func (co Controller) CreateReceipt(c *gin.Context) {
	var editable ReceiptEditable
	if !bindEditable(c, &editable) {
		return
	}

	receipt := models.Receipt{Owned: models.Owned{UserID: userID(c)}}
	editable.apply(&receipt)

	if !create(c, co, &receipt) {
		return
	}

	c.JSON(http.StatusCreated, ReceiptResponse{Data: &receipt})
}

// @Summary		Get receipts
// @Description	Returns a list of receipts
// @Tags			Receipts
// @Produce		json
// @Success		200			{object}	ReceiptListResponse
// @Failure		400			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			bank		query		string	false	"Filter by bank ID"
// @Param			category	query		string	false	"Filter by category ID"
// @Param			isRecurring	query		bool	false	"Is the receipt recurring?"
// @Param			search		query		string	false	"Search for this text in the description"
// @Param			from		query		string	false	"First day to include, formatted as YYYY-MM-DD"
// @Param			to			query		string	false	"Last day to include, formatted as YYYY-MM-DD"
// @Param			offset		query		int		false	"The offset of the first receipt returned. Defaults to 0."
// @Param			limit		query		int		false	"Maximum number of receipts to return. Defaults to 50."
// @Router			/receipts [get]
func (co Controller) GetReceipts(c *gin.Context) {
	var filter ReceiptQueryFilter
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

	q := co.owned(c).Order("date DESC, description ASC")

	if queryFields, _ := httputil.GetURLFields(c.Request.URL, filter); len(queryFields) > 0 {
		q = q.Where(&model, queryFields...)
	}

	if filter.Search != "" {
		q = q.Where("description LIKE ?", fmt.Sprintf("%%%s%%", filter.Search))
	}

	q = filter.DateRange.apply(q, "date")

	receipts, pagination, ok := listOwned[models.Receipt](c, q)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, ReceiptListResponse{
		Data:       receipts,
		Pagination: pagination,
	})
}

// @Summary		Get receipt
// @Description	Returns a specific receipt
// @Tags			Receipts
// @Produce		json
// @Success		200	{object}	ReceiptResponse
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/receipts/{id} [get]
func (co Controller) GetReceipt(c *gin.Context) {
	receipt, ok := getOwned[models.Receipt](c, co)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, ReceiptResponse{Data: &receipt})
}

// @Summary		Update receipt
// @Description	Updates a receipt. Only values to be updated need to be specified.
// @Tags			Receipts
// @Accept			json
// @Produce		json
// @Success		200		{object}	ReceiptResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		404		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			id		path		string			true	"ID formatted as string"
// @Param			receipt	body		ReceiptEditable	true	"Receipt"
// @Router			/receipts/{id} [patch]
func (co Controller) UpdateReceipt(c *gin.Context) {
	receipt, ok := getOwned[models.Receipt](c, co)
	if !ok {
		return
	}

	editable := newReceiptEditable(receipt)
	if !bindEditable(c, &editable) {
		return
	}
	editable.apply(&receipt)

	if !save(c, co, &receipt) {
		return
	}

	c.JSON(http.StatusOK, ReceiptResponse{Data: &receipt})
}

// @Summary		Delete receipt
// @Description	Deletes a receipt
// @Tags			Receipts
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/receipts/{id} [delete]
func (co Controller) DeleteReceipt(c *gin.Context) {
	deleteOwned[models.Receipt](c, co)
}
