package models

import (
	"time"
)

// OrderDetail adalah snapshot satu baris pesanan. Nama dan harga dibekukan
// saat order dibuat; DishID/SetmealID hanya dipakai untuk "pesan lagi".
type OrderDetail struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OrderID uint `gorm:"not null;index" json:"order_id"`
	// Omitting Order field from JSON to avoid recursive nesting
	Order     Order   `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	DishID    *uint   `json:"dish_id,omitempty"`
	SetmealID *uint   `json:"setmeal_id,omitempty"`
	Name      string  `gorm:"type:varchar(100);not null" json:"name"`
	Flavor    string  `gorm:"type:varchar(100)" json:"flavor"`
	Number    int     `gorm:"not null" json:"number"`
	Amount    float64 `gorm:"type:decimal(10,2);not null" json:"amount"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
