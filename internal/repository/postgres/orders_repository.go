package postgres

import (
	"context"
	"fmt"
	"myMiloStore/domain"

	"gorm.io/gorm"
)

type OrdersRepository struct {
	DB *gorm.DB
}

func NewOrdersRepository(db *gorm.DB) *OrdersRepository {
	return &OrdersRepository{
		DB: db,
	}
}

func (r *OrdersRepository) Create(ctx context.Context, order *domain.Order) error {
	if err := r.DB.WithContext(ctx).Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	return nil
}

// FindAllJoined returns the admin listing rows. Inner joins, so orders whose
// user or product has since been deleted drop out of the view.
func (r *OrdersRepository) FindAllJoined(ctx context.Context) ([]domain.OrderView, error) {
	var rows []domain.OrderView

	err := r.DB.WithContext(ctx).
		Table("orders").
		Select("orders.id, users.username, products.name, orders.qty, orders.total, orders.status, orders.created_at").
		Joins("JOIN users ON users.id = orders.user_id").
		Joins("JOIN products ON products.id = orders.product_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return rows, nil
}

func (r *OrdersRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	result := r.DB.WithContext(ctx).Model(&domain.Order{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update order status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrOrderNotFound
	}

	return nil
}
