package root

import (
	"net/http"

	"github.com/fincontrol/backend/pkg/httputil"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Links Links `json:"links"`
}

type Links struct {
	Docs           string `json:"docs" example:"https://example.com/api/docs/index.html"`                         // Swagger API documentation
	Healthz        string `json:"healthz" example:"https://example.com/api/healthz"`                              // Healthz endpoint
	Version        string `json:"version" example:"https://example.com/api/version"`                              // Endpoint returning the version of the backend
	Metrics        string `json:"metrics" example:"https://example.com/api/metrics"`                              // Endpoint returning Prometheus metrics
	Auth           string `json:"auth" example:"https://example.com/api/auth"`                                    // Registration, login and token refresh
	Banks          string `json:"banks" example:"https://example.com/api/banks"`                                  // Bank list endpoint
	Categories     string `json:"categories" example:"https://example.com/api/categories"`                        // Category list endpoint
	CategoryRules  string `json:"categoryRules" example:"https://example.com/api/category-rules"`                 // Category rule list endpoint
	Receipts       string `json:"receipts" example:"https://example.com/api/receipts"`                            // Receipt list endpoint
	Expenses       string `json:"expenses" example:"https://example.com/api/expenses"`                            // Expense list endpoint
	Bills          string `json:"creditCardBills" example:"https://example.com/api/credit-card-bills"`            // Credit card bill list endpoint
	SavingsAccount string `json:"savingsAccounts" example:"https://example.com/api/savings-accounts"`             // Savings account list endpoint
	Goals          string `json:"goals" example:"https://example.com/api/goals"`                                  // Goal list endpoint
	Settings       string `json:"settings" example:"https://example.com/api/settings"`                            // Settings of the authenticated user
	Projection     string `json:"projectedBalance" example:"https://example.com/api/dashboard/projected-balance"` // Projected balance of the current month
}

func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

// @Summary		API root
// @Description	Entrypoint for the API, listing all endpoints
// @Tags			General
// @Success		200	{object}	Response
// @Router			/ [get]
func Get(c *gin.Context) {
	url := httputil.BaseURL(c)

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Docs:           url + "/docs/index.html",
			Healthz:        url + "/healthz",
			Version:        url + "/version",
			Metrics:        url + "/metrics",
			Auth:           url + "/auth",
			Banks:          url + "/banks",
			Categories:     url + "/categories",
			CategoryRules:  url + "/category-rules",
			Receipts:       url + "/receipts",
			Expenses:       url + "/expenses",
			Bills:          url + "/credit-card-bills",
			SavingsAccount: url + "/savings-accounts",
			Goals:          url + "/goals",
			Settings:       url + "/settings",
			Projection:     url + "/dashboard/projected-balance",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
