package controllers

import (
	"errors"
	"net/http"

	"github.com/fincontrol/backend/pkg/auth"
	"github.com/fincontrol/backend/pkg/httputil"
	"github.com/fincontrol/backend/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RegisterAuthRoutes registers the routes for registration, login and token
// handling with the RouterGroup that is passed.
func (co Controller) RegisterAuthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/register", httputil.OptionsPost)
	r.POST("/register", co.Register)
	r.OPTIONS("/login", httputil.OptionsPost)
	r.POST("/login", co.Login)
	r.OPTIONS("/refresh", httputil.OptionsPost)
	r.POST("/refresh", co.Refresh)

	r.OPTIONS("/me", httputil.OptionsGet)
	r.GET("/me", auth.Middleware(co.Tokens), co.GetMe)
}

// @Summary		Register
// @Description	Creates a user and returns a token pair for it
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		201		{object}	SessionResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			user	body		RegisterEditable	true	"User"
// @Router			/auth/register [post]
func (co Controller) Register(c *gin.Context) {
	var editable RegisterEditable
	if !bindEditable(c, &editable) {
		return
	}

	hash, err := auth.HashPassword(editable.Password)
	if err != nil {
		log.Error().Err(err).Msg("hashing password")
		httputil.NewError(c, http.StatusInternalServerError, models.ErrGeneral)
		return
	}

	user := models.User{
		Email:        editable.Email,
		Name:         editable.Name,
		PasswordHash: hash,
	}

	if !create(c, co, &user) {
		return
	}

	co.issue(c, http.StatusCreated, user)
}

// @Summary		Login
// @Description	Returns a token pair for valid credentials
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200			{object}	SessionResponse
// @Failure		400			{object}	httputil.HTTPError
// @Failure		401			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			credentials	body		LoginEditable	true	"Credentials"
// @Router			/auth/login [post]
func (co Controller) Login(c *gin.Context) {
	var editable LoginEditable
	if !bindEditable(c, &editable) {
		return
	}

	var user models.User
	err := co.db(c).Where(&models.User{Email: models.NormalizeEmail(editable.Email)}).First(&user).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		httputil.NewError(c, http.StatusUnauthorized, auth.ErrInvalidCredentials)
		return
	} else if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	err = auth.CheckPassword(user.PasswordHash, editable.Password)
	if err != nil {
		httputil.NewError(c, http.StatusUnauthorized, auth.ErrInvalidCredentials)
		return
	}

	co.issue(c, http.StatusOK, user)
}

// @Summary		Refresh tokens
// @Description	Exchanges a refresh token for a new token pair
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200		{object}	SessionResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		401		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			token	body		RefreshEditable	true	"Refresh token"
// @Router			/auth/refresh [post]
func (co Controller) Refresh(c *gin.Context) {
	var editable RefreshEditable
	if !bindEditable(c, &editable) {
		return
	}

	id, err := co.Tokens.Parse(editable.RefreshToken, auth.TokenTypeRefresh)
	if err != nil {
		httputil.NewError(c, http.StatusUnauthorized, err)
		return
	}

	// Users deleted after the token was issued cannot refresh it
	var user models.User
	err = co.db(c).First(&user, "id = ?", id).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		httputil.NewError(c, http.StatusUnauthorized, auth.ErrInvalidToken)
		return
	} else if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	co.issue(c, http.StatusOK, user)
}

// @Summary		Current user
// @Description	Returns the authenticated user
// @Tags			Auth
// @Produce		json
// @Success		200	{object}	UserResponse
// @Failure		401	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Router			/auth/me [get]
func (co Controller) GetMe(c *gin.Context) {
	var user models.User
	err := co.db(c).First(&user, "id = ?", userID(c)).Error
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, UserResponse{Data: &user})
}

func (co Controller) issue(c *gin.Context, code int, user models.User) {
	pair, err := co.Tokens.Issue(user.ID)
	if err != nil {
		log.Error().Err(err).Str("user", user.ID.String()).Msg("issuing tokens")
		httputil.NewError(c, http.StatusInternalServerError, models.ErrGeneral)
		return
	}

	c.JSON(code, SessionResponse{
		Data: &Session{
			User:   user,
			Tokens: pair,
		},
	})
}
