// Package controllers implements the HTTP handlers of the API.
package controllers

import (
	"time"

	"github.com/fincontrol/backend/pkg/auth"
	"github.com/fincontrol/backend/pkg/projection"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Controller carries the dependencies of all handlers.
type Controller struct {
	DB           *gorm.DB
	Projection   *projection.Service
	Transactions projection.TransactionLister
	Tokens       *auth.Tokens

	// Now is the clock handlers read the current time from. time.Now is used when it is nil.
	Now func() time.Time
}

// New returns a Controller with the projection wired to the database.
func New(db *gorm.DB, tokens *auth.Tokens, loc *time.Location) Controller {
	store := projection.NewGormStore(db)

	return Controller{
		DB:           db,
		Projection:   projection.NewService(store, store, store, loc),
		Transactions: store,
		Tokens:       tokens,
		Now:          time.Now,
	}
}

// RegisterRoutes attaches all routes of the controller to the group. Everything
// but registration, login and token refresh requires an access token.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	co.RegisterAuthRoutes(r.Group("/auth"))

	protected := r.Group("")
	protected.Use(auth.Middleware(co.Tokens))

	co.RegisterBankRoutes(protected.Group("/banks"))
	co.RegisterCategoryRoutes(protected.Group("/categories"))
	co.RegisterCategoryRuleRoutes(protected.Group("/category-rules"))
	co.RegisterReceiptRoutes(protected.Group("/receipts"))
	co.RegisterExpenseRoutes(protected.Group("/expenses"))
	co.RegisterCreditCardBillRoutes(protected.Group("/credit-card-bills"))
	co.RegisterSavingsAccountRoutes(protected.Group("/savings-accounts"))
	co.RegisterGoalRoutes(protected.Group("/goals"))
	co.RegisterSettingsRoutes(protected.Group("/settings"))
	co.RegisterDashboardRoutes(protected.Group("/dashboard"))
}

func (co Controller) now() time.Time {
	if co.Now == nil {
		return time.Now()
	}
	return co.Now()
}

func (co Controller) location() *time.Location {
	return co.Projection.Location()
}

// db returns the database bound to the request context.
func (co Controller) db(c *gin.Context) *gorm.DB {
	return co.DB.WithContext(c.Request.Context())
}

// owned returns a query limited to the resources of the authenticated user.
func (co Controller) owned(c *gin.Context) *gorm.DB {
	return co.db(c).Where("user_id = ?", userID(c))
}

// userID returns the authenticated user. The auth middleware guarantees it is set.
func userID(c *gin.Context) uuid.UUID {
	id, _ := auth.UserID(c)
	return id
}
