package rest

import (
	"context"
	"myMiloStore/domain"
	"myMiloStore/pkg/logger"
	"myMiloStore/pkg/metrics"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type OrdersService interface {
	Checkout(ctx context.Context, userID, productID uint, qty int) (domain.Order, error)
	UpdateStatus(ctx context.Context, orderID uint, status string) error
	ListOrders(ctx context.Context) ([]domain.OrderView, error)
}

type OrdersHandler struct {
	ordersService OrdersService
	timeout       time.Duration
}

func NewOrdersHandler(ordersService OrdersService) *OrdersHandler {
	return &OrdersHandler{
		ordersService: ordersService,
		timeout:       10 * time.Second,
	}
}

type CheckoutRequest struct {
	UserID    uint `json:"user_id"`
	ProductID uint `json:"product_id"`
	Qty       int  `json:"qty"`
}

type UpdateOrderStatusRequest struct {
	ID     uint   `json:"id"`
	Status string `json:"status"`
}

func (h *OrdersHandler) Checkout(c echo.Context) error {
	start := time.Now()
	defer func() {
		metrics.CheckoutLatency.Observe(time.Since(start).Seconds())
	}()

	var req CheckoutRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid checkout request body", err)
		return c.JSON(http.StatusOK, CheckoutResponse{Success: false, Error: msgJSONError})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if _, err := h.ordersService.Checkout(ctx, req.UserID, req.ProductID, req.Qty); err != nil {
		return c.JSON(http.StatusOK, CheckoutResponse{Success: false})
	}

	return c.JSON(http.StatusOK, CheckoutResponse{Success: true})
}

// ListOrders responds with the bare joined view array, no envelope.
func (h *OrdersHandler) ListOrders(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	rows, err := h.ordersService.ListOrders(ctx)
	if err != nil {
		logger.Error("Failed to list orders", err)
		return c.JSON(http.StatusInternalServerError, StatusResponse{Success: false})
	}

	if rows == nil {
		rows = []domain.OrderView{}
	}

	return c.JSON(http.StatusOK, rows)
}

func (h *OrdersHandler) UpdateOrderStatus(c echo.Context) error {
	var req UpdateOrderStatusRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid update-order-status request body", err)
		return c.JSON(http.StatusOK, CheckoutResponse{Success: false, Error: msgJSONError})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.ordersService.UpdateStatus(ctx, req.ID, req.Status); err != nil {
		logger.Error("Failed to update order status", err)
		return c.JSON(http.StatusOK, StatusResponse{Success: false})
	}

	return c.JSON(http.StatusOK, StatusResponse{Success: true})
}
