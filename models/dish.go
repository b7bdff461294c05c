package models

import "time"

const (
	CatalogStatusOnSale  = "on_sale"
	CatalogStatusOffSale = "off_sale"
)

// Dish adalah item katalog. CRUD katalog berada di luar modul ini; model
// hanya dibaca untuk resolusi harga saat submit dan "pesan lagi".
type Dish struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CategoryID  uint      `gorm:"index" json:"category_id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Price       float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Description string    `gorm:"type:text" json:"description"`
	Status      string    `gorm:"type:varchar(20);not null;default:'on_sale'" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
