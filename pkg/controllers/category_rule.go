package controllers

import (
	"fmt"
	"net/http"

	"github.com/fincontrol/backend/pkg/httputil"
	"github.com/fincontrol/backend/pkg/models"
	"github.com/gin-gonic/gin"
)

// RegisterCategoryRuleRoutes registers the routes for category rules with
// the RouterGroup that is passed.
func (co Controller) RegisterCategoryRuleRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetCategoryRules)
		r.POST("", co.CreateCategoryRule)
	}

	// Category rule with ID
	{
		r.OPTIONS("/:id", co.OptionsCategoryRuleDetail)
		r.GET("/:id", co.GetCategoryRule)
		r.PATCH("/:id", co.UpdateCategoryRule)
		r.DELETE("/:id", co.DeleteCategoryRule)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			CategoryRules
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/category-rules/{id} [options]
func (co Controller) OptionsCategoryRuleDetail(c *gin.Context) {
	optionsDetail[models.CategoryRule](c, co)
}

// @Summary		Create category rule
// @Description	Creates a rule that assigns a category to new receipts and expenses whose description matches the pattern
// @Tags			CategoryRules
// @Accept			json
// @Produce		json
// @Success		201		{object}	CategoryRuleResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			rule	body		CategoryRuleEditable	true	"Category Rule"
// @Router			/category-rules [post]
func (co Controller) CreateCategoryRule(c *gin.Context) {
	var editable CategoryRuleEditable
	if !bindEditable(c, &editable) {
		return
	}

	rule := models.CategoryRule{Owned: models.Owned{UserID: userID(c)}}
	editable.apply(&rule)

	if !create(c, co, &rule) {
		return
	}

	c.JSON(http.StatusCreated, CategoryRuleResponse{Data: &rule})
}

// @Summary		Get category rules
// @Description	Returns a list of category rules in the order they are evaluated
// @Tags			CategoryRules
// @Produce		json
// @Success		200			{object}	CategoryRuleListResponse
// @Failure		400			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			category	query		string	false	"Filter by category ID"
// @Param			priority	query		uint	false	"Filter by priority"
// @Param			search		query		string	false	"Search for this text in the pattern"
// @Param			offset		query		int		false	"The offset of the first rule returned. Defaults to 0."
// @Param			limit		query		int		false	"Maximum number of rules to return. Defaults to 50."
// @Router			/category-rules [get]
func (co Controller) GetCategoryRules(c *gin.Context) {
	var filter CategoryRuleQueryFilter
	if !bindFilter(c, &filter) {
		return
	}

	model, err := filter.model()
	if err != nil {
		httputil.NewError(c, http.StatusBadRequest, err)
		return
	}

	q := co.owned(c).Order("priority ASC, created_at ASC")

	if queryFields, _ := httputil.GetURLFields(c.Request.URL, filter); len(queryFields) > 0 {
		q = q.Where(&model, queryFields...)
	}

	if filter.Search != "" {
		q = q.Where("pattern LIKE ?", fmt.Sprintf("%%%s%%", filter.Search))
	}

	rules, pagination, ok := listOwned[models.CategoryRule](c, q)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, CategoryRuleListResponse{
		Data:       rules,
		Pagination: pagination,
	})
}

// @Summary		Get category rule
// @Description	Returns a specific category rule
// @Tags			CategoryRules
// @Produce		json
// @Success		200	{object}	CategoryRuleResponse
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/category-rules/{id} [get]
func (co Controller) GetCategoryRule(c *gin.Context) {
	rule, ok := getOwned[models.CategoryRule](c, co)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, CategoryRuleResponse{Data: &rule})
}

// @Summary		Update category rule
// @Description	Updates a category rule. Only values to be updated need to be specified.
// @Tags			CategoryRules
// @Accept			json
// @Produce		json
// @Success		200		{object}	CategoryRuleResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		404		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			id		path		string					true	"ID formatted as string"
// @Param			rule	body		CategoryRuleEditable	true	"Category Rule"
// @Router			/category-rules/{id} [patch]
func (co Controller) UpdateCategoryRule(c *gin.Context) {
	rule, ok := getOwned[models.CategoryRule](c, co)
	if !ok {
		return
	}

	editable := newCategoryRuleEditable(rule)
	if !bindEditable(c, &editable) {
		return
	}
	editable.apply(&rule)

	if !save(c, co, &rule) {
		return
	}

	c.JSON(http.StatusOK, CategoryRuleResponse{Data: &rule})
}

// @Summary		Delete category rule
// @Description	Deletes a category rule
// @Tags			CategoryRules
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/category-rules/{id} [delete]
func (co Controller) DeleteCategoryRule(c *gin.Context) {
	deleteOwned[models.CategoryRule](c, co)
}
