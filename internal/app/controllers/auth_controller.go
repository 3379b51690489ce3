// Package controllers handles HTTP request handling
package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/alumnet/internal/app/models/dto"
	"github.com/yigit/alumnet/internal/middleware"
	"github.com/yigit/alumnet/internal/pkg/apperrors"
	"github.com/yigit/alumnet/internal/pkg/session"
)

// AuthService is the part of the auth service the controller needs
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (int64, error)
	Login(ctx context.Context, req *dto.LoginRequest) (session.Session, error)
	Logout(ctx context.Context, sessionID string) error
	SessionTTL() time.Duration
}

// AuthController handles registration, login and logout
type AuthController struct {
	authService AuthService
	cookie      *middleware.SessionCookie
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService AuthService, cookie *middleware.SessionCookie, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		cookie:      cookie,
		logger:      logger,
	}
}

// Register handles person registration
// @Summary Register a new person
// @Description Creates a person with the student or alumni role. Names start empty and are filled in from the profile page.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration information"
// @Success 201 {object} dto.APIResponse{data=dto.RegisterResponse} "Person registered"
// @Failure 400 {object} dto.APIResponse "Missing or invalid fields"
// @Failure 409 {object} dto.APIResponse "Username or email already exists"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid registration request payload")
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("username, email, password, and role (student|alumni) are required"))
		return
	}

	personID, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.RegisterResponse{PersonID: personID}, "registration successful"))
}

// Login handles login by username or email
// @Summary Log in
// @Description Checks credentials and sets the session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse} "Login successful"
// @Failure 400 {object} dto.APIResponse "Missing identifier or password"
// @Failure 401 {object} dto.APIResponse "Invalid credentials"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid login request payload")
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("username/email and password are required"))
		return
	}

	sess, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.cookie.Issue(ctx, sess, c.authService.SessionTTL()); err != nil {
		c.logger.Error().Err(err).Msg("Failed to sign session cookie")
		_ = c.authService.Logout(ctx.Request.Context(), sess.ID())
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.LoginResponse{
		PersonID: sess.PersonID(),
		Role:     string(sess.Role()),
	}, "login successful"))
}

// Logout ends the session and answers with JSON
// @Summary Log out
// @Description Deletes the server-side session and clears the cookie
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse "Logged out"
// @Router /api/auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	if !c.endSession(ctx) {
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "logged out"))
}

// LogoutRedirect ends the session and sends the browser to the home page
func (c *AuthController) LogoutRedirect(ctx *gin.Context) {
	if !c.endSession(ctx) {
		return
	}
	ctx.Redirect(http.StatusFound, "/")
}

func (c *AuthController) endSession(ctx *gin.Context) bool {
	if err := c.authService.Logout(ctx.Request.Context(), c.cookie.SessionID(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return false
	}
	c.cookie.Clear(ctx)
	return true
}
