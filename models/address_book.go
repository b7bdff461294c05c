package models

import "time"

// AddressBook milik satu user; order hanya menyimpan snapshot string-nya.
type AddressBook struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Consignee string    `gorm:"type:varchar(100);not null" json:"consignee"`
	Phone     string    `gorm:"type:varchar(20);not null" json:"phone"`
	Detail    string    `gorm:"type:varchar(255);not null" json:"detail"`
	Label     string    `gorm:"type:varchar(50)" json:"label"`
	IsDefault bool      `gorm:"not null;default:false" json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
