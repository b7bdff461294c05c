package models

import "time"

// Setmeal adalah paket berisi beberapa dish yang dijual sebagai satu item.
type Setmeal struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CategoryID  uint      `gorm:"index" json:"category_id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Price       float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Description string    `gorm:"type:text" json:"description"`
	Status      string    `gorm:"type:varchar(20);not null;default:'on_sale'" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Dishes []SetmealDish `gorm:"foreignKey:SetmealID" json:"dishes"`
}

type SetmealDish struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	SetmealID uint    `gorm:"not null;index" json:"setmeal_id"`
	DishID    uint    `gorm:"not null" json:"dish_id"`
	Name      string  `gorm:"type:varchar(100)" json:"name"`
	Price     float64 `gorm:"type:decimal(10,2)" json:"price"`
	Copies    int     `gorm:"not null;default:1" json:"copies"`
}
