package models

import "time"

type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"type:varchar(255); not null" json:"name"`
	Email     string `gorm:"type:varchar(255); unique;not null" json:"email"`
	Phone     string `gorm:"type:varchar(20)" json:"phone"`
	Password  string `gorm:"type:varchar(255); not null" json:"-"`
	Role      string `gorm:"type:varchar(255); not null" json:"role"`
	CreatedAt time.Time `json:"created_at"` // dipakai laporan user sebagai waktu registrasi
	UpdatedAt time.Time `json:"updated_at"`
}
