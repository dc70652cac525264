package domain

// CREATE TABLE public.products (
//     id          BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     name        TEXT,
//     description TEXT,
//     price       BIGINT,
//     image       TEXT
// );

type Product struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"column:name;type:text" json:"name"`
	Description string `gorm:"column:description;type:text" json:"description"`
	Price       int64  `gorm:"column:price" json:"price"`
	Image       string `gorm:"column:image;type:text" json:"image"`
}

func (Product) TableName() string {
	return "products"
}
