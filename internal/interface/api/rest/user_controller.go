package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"donations-api/internal/application/ports"
	"donations-api/internal/application/services"
	domain "donations-api/internal/domain/user"
	"donations-api/internal/infrastructure/jwt"
	"donations-api/internal/interface/api/rest/dto/user"
	"donations-api/internal/interface/api/rest/middleware"
	"donations-api/internal/interface/api/rest/validator"
)

// maxPhotoSizeBytes caps photo uploads.
const maxPhotoSizeBytes = 5 << 20 // 5 MB

type UserController struct {
	userService ports.UserService
	logger      *zap.Logger
}

func NewUserController(
	r *gin.Engine,
	userService ports.UserService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *UserController {
	uc := &UserController{
		userService: userService,
		logger:      logger,
	}

	r.GET(RouteUsers, uc.GetUsersHandler)
	r.GET(RouteUser, uc.GetUserHandler)
	r.PUT(RouteUser, middleware.AuthMiddleware(jwtService), uc.UpdateUserHandler)
	r.PUT(RouteUserPhoto, middleware.AuthMiddleware(jwtService), uc.UpdateUserPhotoHandler)
	r.DELETE(RouteUser, middleware.AuthMiddleware(jwtService), uc.DeleteUserHandler)

	return uc
}

// GetUsersHandler lists users. codigo and dni narrow the result to a single
// user, rol and ciudad to a filtered list; with no filters the collection is
// paged.
func (uc *UserController) GetUsersHandler(c *gin.Context) {
	if code := c.Query("codigo"); code != "" {
		if !validator.IsCode(code) {
			c.JSON(
				http.StatusBadRequest,
				gin.H{"error": "codigo must look like D-1234 or B-1234"},
			)
			return
		}
		uc.respondSingle(c, func() (*domain.User, error) {
			return uc.userService.FindUserByCode(c.Request.Context(), code)
		})
		return
	}

	if dni := c.Query("dni"); dni != "" {
		uc.respondSingle(c, func() (*domain.User, error) {
			return uc.userService.FindUserByNationalID(c.Request.Context(), dni)
		})
		return
	}

	if role := c.Query("rol"); role != "" {
		users, err := uc.userService.FindUsersByRole(c.Request.Context(), role)
		if err != nil {
			if errors.Is(err, services.ErrInvalidInput) {
				c.JSON(
					http.StatusBadRequest,
					gin.H{"error": "rol must be Donante or Beneficiario"},
				)
				return
			}
			c.JSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to get users"},
			)
			uc.logger.Error("FindUsersByRole() error", zap.Error(err))
			return
		}
		c.JSON(http.StatusOK, user.ResponseData{Data: user.ToResponseUsers(users)})
		return
	}

	if city := c.Query("ciudad"); city != "" {
		users, err := uc.userService.FindUsersByCity(c.Request.Context(), city)
		if err != nil {
			c.JSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to get users"},
			)
			uc.logger.Error("FindUsersByCity() error", zap.Error(err))
			return
		}
		c.JSON(http.StatusOK, user.ResponseData{Data: user.ToResponseUsers(users)})
		return
	}

	page, err := validator.ValidatePage(c.Query("page"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}

	users, err := uc.userService.FindUsers(c.Request.Context(), page)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get users"},
		)
		uc.logger.Error("FindUsers() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, user.ResponseData{
		Data: user.ToResponseUsers(users),
	})
}

func (uc *UserController) respondSingle(c *gin.Context, fetch func() (*domain.User, error)) {
	u, err := fetch()
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a user"},
		)
		uc.logger.Error("user lookup error", zap.Error(err))
		return
	}

	if u == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "user not found"},
		)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (uc *UserController) GetUserHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("user_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "user_id must be a valid UUID"},
		)
		return
	}

	u, err := uc.userService.FindUserByID(c.Request.Context(), uuid)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a user"},
		)
		uc.logger.Error("FindUserByID() error", zap.Error(err))
		return
	}

	if u == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "user not found"},
		)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (uc *UserController) UpdateUserHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("user_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "user_id must be a valid UUID"},
		)
		return
	}

	var req user.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateUserUpdate(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	uDomain := user.ToDomainUser(req)
	uDomain.UUID = uuid

	u, err := uc.userService.UpdateUser(c.Request.Context(), uDomain)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to update a user"},
		)
		uc.logger.Error("UpdateUser() error", zap.Error(err))
		return
	}

	if u == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "user not found"},
		)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (uc *UserController) UpdateUserPhotoHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("user_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "user_id must be a valid UUID"},
		)
		return
	}

	fh, err := c.FormFile("foto")
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "foto file is required"},
		)
		return
	}
	if fh.Size > maxPhotoSizeBytes {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "foto must be at most 5 MB"},
		)
		return
	}

	u, err := uc.userService.UpdateUserPhoto(c.Request.Context(), uuid, fh)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to update photo"},
		)
		uc.logger.Error("UpdateUserPhoto() error", zap.Error(err))
		return
	}

	if u == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "user not found"},
		)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (uc *UserController) DeleteUserHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("user_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "user_id must be a valid UUID"},
		)
		return
	}

	err := uc.userService.DeleteUser(c.Request.Context(), uuid)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to delete user"},
		)
		uc.logger.Error("DeleteUser() error", zap.Error(err))
		return
	}

	c.Status(http.StatusNoContent)
}
