package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fuelsquad/manquants_app/internal/apperrors"
	portssvc "github.com/fuelsquad/manquants_app/internal/core/ports/services"
	"github.com/fuelsquad/manquants_app/internal/dto"
	"github.com/fuelsquad/manquants_app/internal/middleware"
	"github.com/fuelsquad/manquants_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// authHandler handles authentication related requests.
type authHandler struct {
	authService portssvc.AuthSvc
}

// registerAuthRoutes sets up the public login route, rate limited per client IP.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, authService portssvc.AuthSvc) error {
	h := &authHandler{authService: authService}

	ipLimiter, err := middleware.NewMemoryRateLimiter(cfg.LoginRateLimit)
	if err != nil {
		return err
	}

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", middleware.RateLimit(ipLimiter), h.login)
	}
	return nil
}

// login godoc
// @Summary User login
// @Description Authenticates a user and returns a JWT token with the menu visible to its role.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			logger.Warn("Login rejected", slog.String("username", req.Username))
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid username or password"})
			return
		}
		respondError(c, err, "Failed to log in")
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
		Menu:  dto.ToMenuResponse(user.Role),
	})
}
