package controllers

import (
	"fmt"
	"net/http"

	"github.com/fincontrol/backend/pkg/httputil"
	"github.com/fincontrol/backend/pkg/models"
	"github.com/gin-gonic/gin"
)

// RegisterGoalRoutes registers the routes for goals with
// the RouterGroup that is passed.
func (co Controller) RegisterGoalRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetGoals)
		r.POST("", co.CreateGoal)
	}

	// Goal with ID
	{
		r.OPTIONS("/:id", co.OptionsGoalDetail)
		r.GET("/:id", co.GetGoal)
		r.PATCH("/:id", co.UpdateGoal)
		r.DELETE("/:id", co.DeleteGoal)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/goals/{id} [options]
func (co Controller) OptionsGoalDetail(c *gin.Context) {
	optionsDetail[models.Goal](c, co)
}

// @Summary		Create goal
// @Description	Creates a new goal
// @Tags			Goals
// @Accept			json
// @Produce		json
// @Success		201		{object}	GoalResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			goal	body		GoalEditable	true	"Goal"
// @Router			/goals [post]
func (co Controller) CreateGoal(c *gin.Context) {
	var editable GoalEditable
	if !bindEditable(c, &editable) {
		return
	}

	goal := models.Goal{Owned: models.Owned{UserID: userID(c)}}
	editable.apply(&goal)

	if !create(c, co, &goal) {
		return
	}

	c.JSON(http.StatusCreated, GoalResponse{Data: co.newGoal(goal)})
}

// @Summary		Get goals
// @Description	Returns a list of goals
// @Tags			Goals
// @Produce		json
// @Success		200			{object}	GoalListResponse
// @Failure		400			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			type		query		string	false	"Filter by type"
// @Param			category	query		string	false	"Filter by category ID"
// @Param			search		query		string	false	"Search for this text in the name"
// @Param			offset		query		int		false	"The offset of the first goal returned. Defaults to 0."
// @Param			limit		query		int		false	"Maximum number of goals to return. Defaults to 50."
// @Router			/goals [get]
func (co Controller) GetGoals(c *gin.Context) {
	var filter GoalQueryFilter
	if !bindFilter(c, &filter) {
		return
	}

	model, err := filter.model()
	if err != nil {
		httputil.NewError(c, http.StatusBadRequest, err)
		return
	}

	q := co.owned(c).Order("deadline IS NULL, deadline ASC, name ASC")

	if queryFields, _ := httputil.GetURLFields(c.Request.URL, filter); len(queryFields) > 0 {
		q = q.Where(&model, queryFields...)
	}

	if filter.Search != "" {
		q = q.Where("name LIKE ?", fmt.Sprintf("%%%s%%", filter.Search))
	}

	goals, pagination, ok := listOwned[models.Goal](c, q)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, GoalListResponse{
		Data:       co.newGoals(goals),
		Pagination: pagination,
	})
}

// @Summary		Get goal
// @Description	Returns a specific goal
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	GoalResponse
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/goals/{id} [get]
func (co Controller) GetGoal(c *gin.Context) {
	goal, ok := getOwned[models.Goal](c, co)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, GoalResponse{Data: co.newGoal(goal)})
}

// @Summary		Update goal
// @Description	Updates a goal. Only values to be updated need to be specified.
// @Tags			Goals
// @Accept			json
// @Produce		json
// @Success		200		{object}	GoalResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		404		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			id		path		string			true	"ID formatted as string"
// @Param			goal	body		GoalEditable	true	"Goal"
// @Router			/goals/{id} [patch]
func (co Controller) UpdateGoal(c *gin.Context) {
	goal, ok := getOwned[models.Goal](c, co)
	if !ok {
		return
	}

	editable := newGoalEditable(goal)
	if !bindEditable(c, &editable) {
		return
	}
	editable.apply(&goal)

	if !save(c, co, &goal) {
		return
	}

	c.JSON(http.StatusOK, GoalResponse{Data: co.newGoal(goal)})
}

// @Summary		Delete goal
// @Description	Deletes a goal
// @Tags			Goals
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/goals/{id} [delete]
func (co Controller) DeleteGoal(c *gin.Context) {
	deleteOwned[models.Goal](c, co)
}
