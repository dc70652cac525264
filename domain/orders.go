package domain

import "time"

// StatusProcessing is the initial status of every order. The status column
// carries free-form text, any transition to any value is allowed.
const StatusProcessing = "Diproses"

type Order struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"column:user_id" json:"user_id"`
	ProductID uint      `gorm:"column:product_id" json:"product_id"`
	Qty       int       `gorm:"column:qty" json:"qty"`
	Total     int64     `gorm:"column:total" json:"total"`
	Status    string    `gorm:"column:status;default:Diproses" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderView is one row of the admin listing: orders joined with the
// referencing user and product.
type OrderView struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Qty       int       `json:"qty"`
	Total     int64     `json:"total"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
