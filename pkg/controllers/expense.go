package controllers

import (
	"fmt"
	"net/http"

	"github.com/fincontrol/backend/pkg/httputil"
	"github.com/fincontrol/backend/pkg/models"
	"github.com/gin-gonic/gin"
)

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func (co Controller) RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetExpenses)
		r.POST("", co.CreateExpense)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", co.OptionsExpenseDetail)
		r.GET("/:id", co.GetExpense)
		r.PATCH("/:id", co.UpdateExpense)
		r.DELETE("/:id", co.DeleteExpense)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/expenses/{id} [options]
func (co Controller) OptionsExpenseDetail(c *gin.Context) {
	optionsDetail[models.Expense](c, co)
}

// @Summary		Create expense
// @Description	Creates a new expense. Expenses without a category are categorized by the first matching category rule.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		201		{object}	ExpenseResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/expenses [post]
func (co Controller) CreateExpense(c *gin.Context) {
	var editable ExpenseEditable
	if !bindEditable(c, &editable) {
		return
	}

	expense := models.Expense{Owned: models.Owned{UserID: userID(c)}}
	editable.apply(&expense)

	if !create(c, co, &expense) {
		return
	}

	c.JSON(http.StatusCreated, ExpenseResponse{Data: &expense})
}

// @Summary		Get expenses
// @Description	Returns a list of expenses
// @Tags			Expenses
// @Produce		json
// @Success		200				{object}	ExpenseListResponse
// @Failure		400				{object}	httputil.HTTPError
// @Failure		500				{object}	httputil.HTTPError
// @Param			bank			query		string	false	"Filter by bank ID"
// @Param			category		query		string	false	"Filter by category ID"
// @Param			paymentMethod	query		string	false	"Filter by payment method"
// @Param			isFixed			query		bool	false	"Is the expense fixed?"
// @Param			isRecurring		query		bool	false	"Is the expense recurring?"
// @Param			isPaid			query		bool	false	"Is the expense paid?"
// @Param			search			query		string	false	"Search for this text in the description"
// @Param			from			query		string	false	"First day to include, formatted as YYYY-MM-DD"
// @Param			to				query		string	false	"Last day to include, formatted as YYYY-MM-DD"
// @Param			offset			query		int		false	"The offset of the first expense returned. Defaults to 0."
// @Param			limit			query		int		false	"Maximum number of expenses to return. Defaults to 50."
// @Router			/expenses [get]
func (co Controller) GetExpenses(c *gin.Context) {
	var filter ExpenseQueryFilter
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

	expenses, pagination, ok := listOwned[models.Expense](c, q)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, ExpenseListResponse{
		Data:       expenses,
		Pagination: pagination,
	})
}

// @Summary		Get expense
// @Description	Returns a specific expense
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseResponse
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/expenses/{id} [get]
func (co Controller) GetExpense(c *gin.Context) {
	expense, ok := getOwned[models.Expense](c, co)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, ExpenseResponse{Data: &expense})
}

// @Summary		Update expense
// @Description	Updates a expense. Only values to be updated need to be specified.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	ExpenseResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		404		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			id		path		string			true	"ID formatted as string"
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/expenses/{id} [patch]
func (co Controller) UpdateExpense(c *gin.Context) {
	expense, ok := getOwned[models.Expense](c, co)
	if !ok {
		return
	}

	editable := newExpenseEditable(expense)
	if !bindEditable(c, &editable) {
		return
	}
	editable.apply(&expense)

	if !save(c, co, &expense) {
		return
	}

	c.JSON(http.StatusOK, ExpenseResponse{Data: &expense})
}

// @Summary		Delete expense
// @Description	Deletes a expense
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/expenses/{id} [delete]
func (co Controller) DeleteExpense(c *gin.Context) {
	deleteOwned[models.Expense](c, co)
}
