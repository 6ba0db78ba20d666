package controllers

import (
	"net/http"

	"storefront-api/config"
	"storefront-api/middleware"
	"storefront-api/models"
	"storefront-api/services"
	"storefront-api/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	authService *services.AuthService
}

func NewAuthController() *AuthController {
	return &AuthController{authService: services.NewAuthService()}
}

func NewAuthControllerWithService(svc *services.AuthService) *AuthController {
	return &AuthController{authService: svc}
}

func setAuthCookie(c *gin.Context, token string, maxAge int) {
	secure := config.AppConfig.AppEnv == "production"
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AuthCookieName, token, maxAge, "/", config.AppConfig.CookieDomain, secure, true)
}

// Login godoc
// @Summary Log in
// @Description Authenticate with email and password; sets the authToken HTTP-only cookie
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} models.LoginResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Email and password are required",
			Error:   err.Error(),
		})
		return
	}

	token, user, err := ctrl.authService.Login(req)
	if err != nil {
		if err == services.ErrInvalidCredentials {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid email or password",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Login failed",
			Error:   err.Error(),
		})
		return
	}

	setAuthCookie(c, token, int(utils.SessionDuration.Seconds()))
	c.JSON(http.StatusOK, models.LoginResponse{Success: true, User: *user})
}

// Register godoc
// @Summary Register
// @Description Create a customer account and start a session
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration data"
// @Success 201 {object} models.LoginResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid registration data",
			Error:   err.Error(),
		})
		return
	}

	token, user, err := ctrl.authService.Register(req)
	if err != nil {
		if err == services.ErrEmailTaken {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Success: false,
				Message: "Email already registered",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Registration failed",
			Error:   err.Error(),
		})
		return
	}

	setAuthCookie(c, token, int(utils.SessionDuration.Seconds()))
	c.JSON(http.StatusCreated, models.LoginResponse{Success: true, User: *user})
}

// Logout godoc
// @Summary Log out
// @Description Clear the session cookie
// @Tags Authentication
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	setAuthCookie(c, "", -1)
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Logged out"})
}

// Me godoc
// @Summary Current session
// @Description Return the claims of the authenticated user
// @Tags Authentication
// @Produce json
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/me [get]
func (ctrl *AuthController) Me(c *gin.Context) {
	user := models.SessionUser{
		ID:       c.GetInt("user_id"),
		Email:    c.GetString("user_email"),
		FullName: c.GetString("user_full_name"),
		Role:     c.GetString("user_role"),
	}
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Session retrieved",
		Data:    user,
	})
}
