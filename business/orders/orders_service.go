package orders

import (
	"context"
	"errors"
	"myMiloStore/domain"
	"myMiloStore/pkg/config"
	"myMiloStore/pkg/logger"
	"myMiloStore/pkg/metrics"
	"time"
)

type OrdersRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	FindAllJoined(ctx context.Context) ([]domain.OrderView, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
}

type ProductRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Product, error)
}

type UserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
}

type OrdersService struct {
	orderRepo    OrdersRepository
	productsRepo ProductRepository
	userRepo     UserRepository
	cfg          config.OrdersConfig
}

func NewOrdersService(orderRepo OrdersRepository, productsRepo ProductRepository, userRepo UserRepository, cfg config.OrdersConfig) *OrdersService {
	return &OrdersService{
		orderRepo:    orderRepo,
		productsRepo: productsRepo,
		userRepo:     userRepo,
		cfg:          cfg,
	}
}

// Checkout turns a (user, product, qty) triple into a persisted order. The
// total is the product price visible at read time multiplied by qty; it is a
// snapshot and is never recomputed. The product read and the order insert are
// separate statements, matching the source's relaxed semantics: a concurrent
// price change between them goes undetected.
//
// The user id is accepted unchecked unless EnforceUserRef is set.
func (s *OrdersService) Checkout(ctx context.Context, userID, productID uint, qty int) (domain.Order, error) {
	if qty < 1 {
		metrics.CheckoutTotal.WithLabelValues("invalid").Inc()
		return domain.Order{}, domain.ErrInvalidQuantity
	}

	if s.cfg.EnforceUserRef {
		if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
			logger.Error("Checkout for unknown user", "user_id", userID)
			metrics.CheckoutTotal.WithLabelValues("user_not_found").Inc()
			return domain.Order{}, domain.ErrUserNotFound
		}
	}

	product, err := s.productsRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			metrics.CheckoutTotal.WithLabelValues("product_not_found").Inc()
			return domain.Order{}, domain.ErrProductNotFound
		}
		logger.Error("Failed to read product at checkout", err)
		metrics.CheckoutTotal.WithLabelValues("error").Inc()
		return domain.Order{}, err
	}

	order := domain.Order{
		UserID:    userID,
		ProductID: productID,
		Qty:       qty,
		Total:     product.Price * int64(qty),
		Status:    domain.StatusProcessing,
		CreatedAt: time.Now(),
	}

	if err := s.orderRepo.Create(ctx, &order); err != nil {
		logger.Error("Failed to create order", err)
		metrics.CheckoutTotal.WithLabelValues("error").Inc()
		return domain.Order{}, err
	}

	metrics.CheckoutTotal.WithLabelValues("success").Inc()
	logger.Info("Order created", "order_id", order.ID, "total", order.Total)

	return order, nil
}

// UpdateStatus sets the order's status to the supplied string verbatim. Any
// value is accepted and any transition is allowed. A missing order is a
// silent no-op unless StrictStatusUpdate is set.
func (s *OrdersService) UpdateStatus(ctx context.Context, orderID uint, status string) error {
	err := s.orderRepo.UpdateStatus(ctx, orderID, status)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) && !s.cfg.StrictStatusUpdate {
			logger.Warn("Status update for missing order", "order_id", orderID)
			return nil
		}
		logger.Error("Failed to update order status", err)
		return err
	}

	metrics.StatusUpdateTotal.Inc()

	return nil
}

// ListOrders returns the joined admin view. Orders whose user or product has
// been deleted are absent from the result.
func (s *OrdersService) ListOrders(ctx context.Context) ([]domain.OrderView, error) {
	rows, err := s.orderRepo.FindAllJoined(ctx)
	if err != nil {
		logger.Error("Failed to list orders", err)
		return nil, err
	}

	return rows, nil
}
