package controllers

import (
	"fmt"
	"net/http"

	"github.com/fincontrol/backend/pkg/httputil"
	"github.com/fincontrol/backend/pkg/models"
	"github.com/gin-gonic/gin"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetCategories)
		r.POST("", co.CreateCategory)
	}

	// Category with ID
	{
		r.OPTIONS("/:id", co.OptionsCategoryDetail)
		r.GET("/:id", co.GetCategory)
		r.PATCH("/:id", co.UpdateCategory)
		r.DELETE("/:id", co.DeleteCategory)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/categories/{id} [options]
func (co Controller) OptionsCategoryDetail(c *gin.Context) {
	optionsDetail[models.Category](c, co)
}

// @Summary		Create category
// @Description	Creates a new category. Subcategories must have the same type as their parent.
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		201			{object}	CategoryResponse
// @Failure		400			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/categories [post]
func (co Controller) CreateCategory(c *gin.Context) {
	var editable CategoryEditable
	if !bindEditable(c, &editable) {
		return
	}

	category := models.Category{Owned: models.Owned{UserID: userID(c)}}
	editable.apply(&category)

	if !create(c, co, &category) {
		return
	}

	c.JSON(http.StatusCreated, CategoryResponse{Data: &category})
}

// @Summary		Get categories
// @Description	Returns a list of categories
// @Tags			Categories
// @Produce		json
// @Success		200		{object}	CategoryListResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			type	query		string	false	"Filter by type"
// @Param			parent	query		string	false	"Filter by parent ID. Set to an empty value for top level categories"
// @Param			search	query		string	false	"Search for this text in the name"
// @Param			offset	query		int		false	"The offset of the first category returned. Defaults to 0."
// @Param			limit	query		int		false	"Maximum number of categories to return. Defaults to 50."
// @Router			/categories [get]
func (co Controller) GetCategories(c *gin.Context) {
	var filter CategoryQueryFilter
	if !bindFilter(c, &filter) {
		return
	}

	model, err := filter.model()
	if err != nil {
		httputil.NewError(c, http.StatusBadRequest, err)
		return
	}

	q := co.owned(c).Order("type ASC, name ASC")

	if queryFields, _ := httputil.GetURLFields(c.Request.URL, filter); len(queryFields) > 0 {
		q = q.Where(&model, queryFields...)
	}

	if filter.Search != "" {
		q = q.Where("name LIKE ?", fmt.Sprintf("%%%s%%", filter.Search))
	}

	categories, pagination, ok := listOwned[models.Category](c, q)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, CategoryListResponse{
		Data:       categories,
		Pagination: pagination,
	})
}

// @Summary		Get category
// @Description	Returns a specific category
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryResponse
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/categories/{id} [get]
func (co Controller) GetCategory(c *gin.Context) {
	category, ok := getOwned[models.Category](c, co)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, CategoryResponse{Data: &category})
}

// @Summary		Update category
// @Description	Updates a category. Only values to be updated need to be specified.
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		200			{object}	CategoryResponse
// @Failure		400			{object}	httputil.HTTPError
// @Failure		404			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			id			path		string				true	"ID formatted as string"
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/categories/{id} [patch]
func (co Controller) UpdateCategory(c *gin.Context) {
	category, ok := getOwned[models.Category](c, co)
	if !ok {
		return
	}

	editable := newCategoryEditable(category)
	if !bindEditable(c, &editable) {
		return
	}
	editable.apply(&category)

	if !save(c, co, &category) {
		return
	}

	c.JSON(http.StatusOK, CategoryResponse{Data: &category})
}

// @Summary		Delete category
// @Description	Deletes a category together with its subcategories
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/categories/{id} [delete]
func (co Controller) DeleteCategory(c *gin.Context) {
	deleteOwned[models.Category](c, co)
}
