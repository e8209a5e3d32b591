package controllers

import (
	"fmt"
	"net/http"

	"github.com/fincontrol/backend/internal/types"
	"github.com/fincontrol/backend/pkg/httputil"
	"github.com/fincontrol/backend/pkg/insights"
	"github.com/fincontrol/backend/pkg/models"
	"github.com/fincontrol/backend/pkg/projection"
	"github.com/getsentry/sentry-go"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type SummaryResponse struct {
	Error *string           `json:"error" example:"the month query parameter must be formatted as YYYY-MM"` // The error, if any occurred
	Data  *insights.Summary `json:"data"`                                                                   // The summary of the month
}

type InsightListResponse struct {
	Error *string            `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
	Data  []insights.Insight `json:"data"`                                                                // The insights, most relevant first
}

// RegisterDashboardRoutes registers the routes for the dashboard with
// the RouterGroup that is passed.
func (co Controller) RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/projected-balance", httputil.OptionsGet)
	r.GET("/projected-balance", co.GetProjectedBalance)
	r.OPTIONS("/summary", httputil.OptionsGet)
	r.GET("/summary", co.GetSummary)
	r.OPTIONS("/insights", httputil.OptionsGet)
	r.GET("/insights", co.GetInsights)
}

// @Summary		Projected balance
// @Description	Returns the balance projected to the end of the current month in four phases: the current balance, after expected receipts, after planned expenses and after paying the current credit card bill.
// @Tags			Dashboard
// @Produce		json
// @Success		200	{object}	projection.Result
// @Failure		401	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Router			/dashboard/projected-balance [get]
func (co Controller) GetProjectedBalance(c *gin.Context) {
	result, err := co.Projection.Project(c.Request.Context(), userID(c), co.now())
	if err != nil {
		co.internalError(c, err, "projecting balance")
		return
	}

	c.JSON(http.StatusOK, result)
}

// @Summary		Monthly summary
// @Description	Returns the totals of a month and the spending per category
// @Tags			Dashboard
// @Produce		json
// @Success		200		{object}	SummaryResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		401		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			month	query		string	false	"Month formatted as YYYY-MM. Defaults to the current month"
// @Router			/dashboard/summary [get]
func (co Controller) GetSummary(c *gin.Context) {
	month, ok := co.queryMonth(c)
	if !ok {
		return
	}

	summary, err := insights.Summarize(c.Request.Context(), co.Transactions, userID(c), month)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, SummaryResponse{Data: &summary})
}

// @Summary		Insights
// @Description	Returns textual insights comparing the current with the previous month, the projected balance and the progress of goals
// @Tags			Dashboard
// @Produce		json
// @Success		200	{object}	InsightListResponse
// @Failure		401	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Router			/dashboard/insights [get]
func (co Controller) GetInsights(c *gin.Context) {
	now := co.now()
	id := userID(c)
	month := types.MonthIn(now, co.location())

	var (
		current, previous insights.Summary
		result            projection.Result
		goals             []models.Goal
		settings          models.UserSettings
	)

	g, ctx := errgroup.WithContext(c.Request.Context())

	g.Go(func() (err error) {
		current, err = insights.Summarize(ctx, co.Transactions, id, month)
		return err
	})

	g.Go(func() (err error) {
		previous, err = insights.Summarize(ctx, co.Transactions, id, month.AddDate(0, -1))
		return err
	})

	g.Go(func() (err error) {
		result, err = co.Projection.Project(ctx, id, now)
		return err
	})

	g.Go(func() error {
		return co.DB.WithContext(ctx).Where("user_id = ?", id).Order("name ASC").Find(&goals).Error
	})

	g.Go(func() (err error) {
		settings, err = models.SettingsFor(co.DB.WithContext(ctx), id)
		return err
	})

	if err := g.Wait(); err != nil {
		co.internalError(c, err, "generating insights")
		return
	}

	c.JSON(http.StatusOK, InsightListResponse{
		Data: insights.Generate(current, previous, result.ProjectedBalance, goals, now, insights.NewFormatter(settings)),
	})
}

// queryMonth returns the month from the query string, defaulting to the current one.
func (co Controller) queryMonth(c *gin.Context) (types.Month, bool) {
	value := c.Query("month")
	if value == "" {
		return types.MonthIn(co.now(), co.location()), true
	}

	month, err := types.ParseMonth(value, co.location())
	if err != nil {
		httputil.NewError(c, http.StatusBadRequest, errMonthInvalid)
		return types.Month{}, false
	}

	return month, true
}

// internalError logs and reports the error and responds with a generic
// message carrying the request ID.
func (co Controller) internalError(c *gin.Context, err error, action string) {
	id := requestid.Get(c)

	log.Error().Err(err).Str("request-id", id).Str("user", userID(c).String()).Msg(action)

	hub := sentry.GetHubFromContext(c.Request.Context())
	if hub == nil {
		hub = sentry.CurrentHub()
	}

	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("request_id", id)
		scope.SetUser(sentry.User{ID: userID(c).String()})
		hub.CaptureException(err)
	})

	httputil.NewError(c, http.StatusInternalServerError, fmt.Errorf("%w. Request ID: %s", models.ErrGeneral, id))
}
