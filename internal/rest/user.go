package rest

import (
	"context"
	"myMiloStore/domain"
	"myMiloStore/pkg/logger"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type UserService interface {
	Register(ctx context.Context, username, password string) (domain.User, error)
	Authenticate(ctx context.Context, username, password string) (domain.User, error)
}

type UserHandler struct {
	userService UserService
	validator   *validator.Validate
	timeout     time.Duration
}

func NewUserHandler(userService UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
		validator:   validator.New(),
		timeout:     10 * time.Second,
	}
}

type CredentialsRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *UserHandler) Register(c echo.Context) error {
	var req CredentialsRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid register request body", err)
		return c.JSON(http.StatusOK, StatusResponse{Success: false})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate register request", err)
		return c.JSON(http.StatusOK, StatusResponse{Success: false})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if _, err := h.userService.Register(ctx, req.Username, req.Password); err != nil {
		logger.Error("Failed to register user", err)
		return c.JSON(http.StatusOK, StatusResponse{Success: false})
	}

	return c.JSON(http.StatusOK, StatusResponse{Success: true})
}

func (h *UserHandler) Login(c echo.Context) error {
	var req CredentialsRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid login request body", err)
		return c.JSON(http.StatusOK, LoginResponse{Success: false})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	user, err := h.userService.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		return c.JSON(http.StatusOK, LoginResponse{Success: false})
	}

	return c.JSON(http.StatusOK, LoginResponse{Success: true, User: &user})
}
