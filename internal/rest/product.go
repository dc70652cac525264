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

type ProductService interface {
	GetAllProducts(ctx context.Context) ([]domain.Product, error)
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product) error
	DeleteProduct(ctx context.Context, id uint) error
}

type ProductHandler struct {
	productService ProductService
	validator      *validator.Validate
	timeout        time.Duration
}

func NewProductHandler(productService ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		validator:      validator.New(),
		timeout:        10 * time.Second,
	}
}

type AddProductRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Image       string `json:"image"`
}

type UpdateProductRequest struct {
	ID          uint   `json:"id" validate:"required"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Image       string `json:"image"`
}

type DeleteProductRequest struct {
	ID uint `json:"id" validate:"required"`
}

// GetAllProducts responds with the bare product array, no envelope.
func (h *ProductHandler) GetAllProducts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	products, err := h.productService.GetAllProducts(ctx)
	if err != nil {
		logger.Error("Failed to find all products", err)
		return c.JSON(http.StatusInternalServerError, StatusResponse{Success: false})
	}

	if products == nil {
		products = []domain.Product{}
	}

	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) AddProduct(c echo.Context) error {
	var req AddProductRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid add-product request body", err)
		return c.JSON(http.StatusOK, StatusResponse{Success: false})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate add-product request", err)
		return c.JSON(http.StatusOK, StatusResponse{Success: false})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	product := &domain.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
	}

	if _, err := h.productService.CreateProduct(ctx, product); err != nil {
		logger.Error("Failed to create product", err)
		return c.JSON(http.StatusOK, StatusResponse{Success: false})
	}

	return c.JSON(http.StatusOK, StatusResponse{Success: true})
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	var req UpdateProductRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid update-product request body", err)
		return c.JSON(http.StatusOK, StatusResponse{Success: false})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate update-product request", err)
		return c.JSON(http.StatusOK, StatusResponse{Success: false})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	product := &domain.Product{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
	}

	if err := h.productService.UpdateProduct(ctx, product); err != nil {
		logger.Error("Failed to update product", err)
		return c.JSON(http.StatusOK, StatusResponse{Success: false})
	}

	return c.JSON(http.StatusOK, StatusResponse{Success: true})
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	var req DeleteProductRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid delete-product request body", err)
		return c.JSON(http.StatusOK, StatusResponse{Success: false})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate delete-product request", err)
		return c.JSON(http.StatusOK, StatusResponse{Success: false})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.productService.DeleteProduct(ctx, req.ID); err != nil {
		logger.Error("Failed to delete product", err)
		return c.JSON(http.StatusOK, StatusResponse{Success: false})
	}

	return c.JSON(http.StatusOK, StatusResponse{Success: true})
}
