package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"donations-api/internal/application/ports"
	"donations-api/internal/application/services"
	userDB "donations-api/internal/infrastructure/db/postgres/user"
	"donations-api/internal/interface/api/rest/dto/auth"
	"donations-api/internal/interface/api/rest/dto/user"
	"donations-api/internal/interface/api/rest/validator"
)

type AuthController struct {
	logger      *zap.Logger
	authService ports.Auth
}

func NewAuthController(
	r *gin.Engine,
	logger *zap.Logger,
	authService ports.Auth,
) *AuthController {
	ac := &AuthController{
		logger:      logger,
		authService: authService,
	}

	r.POST(RouteRegister, ac.RegisterHandler)
	r.POST(RouteLogin, ac.LoginHandler)
	r.PUT(RouteResetPassword, ac.ResetPasswordHandler)

	return ac
}

func (ac *AuthController) RegisterHandler(c *gin.Context) {
	var req auth.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return
	}

	if errs := validator.ValidateRegister(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	u, err := ac.authService.Register(c.Request.Context(), auth.ToDomainUser(req), req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		case errors.Is(err, userDB.ErrUserAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to register a user"},
			)
			ac.logger.Error("Register() error", zap.Error(err))
		}
		return
	}

	c.JSON(http.StatusCreated, auth.RegisterResponse{
		UUID: u.UUID,
		Code: u.Code,
	})
}

func (ac *AuthController) LoginHandler(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return
	}

	if errs := validator.ValidateLogin(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	token, u, err := ac.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		// One body for unknown correo and wrong password; answering 404 for
		// the former would expose which correos are registered.
		case errors.Is(err, services.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		case errors.Is(err, services.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		default:
			c.JSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to log in"},
			)
			ac.logger.Error("Login() error", zap.Error(err))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "Bearer",
		"usuario":      user.ToResponseUser(*u),
	})
}

func (ac *AuthController) ResetPasswordHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("user_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "user_id must be a valid UUID"},
		)
		return
	}

	var req auth.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return
	}

	if errs := validator.ValidateResetPassword(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	if err := ac.authService.ResetPassword(c.Request.Context(), uuid, req.Password); err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		case errors.Is(err, services.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		default:
			c.JSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to reset password"},
			)
			ac.logger.Error("ResetPassword() error", zap.Error(err))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}
