package models

import (
	"time"
)

// ShoppingCart menyimpan satu baris per kombinasi (item, flavor) per user.
// Quantity diakumulasi saat item yang sama ditambahkan lagi; seluruh baris
// milik user dihapus saat submit order berhasil.
type ShoppingCart struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	DishID    *uint     `json:"dish_id,omitempty"`
	SetmealID *uint     `json:"setmeal_id,omitempty"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Flavor    string    `gorm:"type:varchar(100)" json:"flavor"`
	Amount    float64   `gorm:"type:decimal(10,2);not null" json:"amount"` // harga satuan saat ditambahkan
	Number    int       `gorm:"not null" json:"number"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
