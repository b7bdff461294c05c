package models

import (
	"time"
)

// Status order mengikuti pipeline pengantaran
const (
	OrderStatusPendingPayment     = "pending_payment"
	OrderStatusToBeConfirmed      = "to_be_confirmed"
	OrderStatusConfirmed          = "confirmed"
	OrderStatusDeliveryInProgress = "delivery_in_progress"
	OrderStatusCompleted          = "completed"
	OrderStatusCancelled          = "cancelled"
)

// Status pembayaran
const (
	PayStatusUnpaid   = "unpaid"
	PayStatusPaid     = "paid"
	PayStatusRefunded = "refund"
)

var validNext = map[string]map[string]bool{
	OrderStatusPendingPayment:     {OrderStatusToBeConfirmed: true, OrderStatusCancelled: true},
	OrderStatusToBeConfirmed:      {OrderStatusConfirmed: true, OrderStatusCancelled: true},
	OrderStatusConfirmed:          {OrderStatusDeliveryInProgress: true, OrderStatusCancelled: true},
	OrderStatusDeliveryInProgress: {OrderStatusCompleted: true},
	OrderStatusCompleted:          {},
	OrderStatusCancelled:          {},
}

// CanTransition melaporkan apakah perpindahan status from -> to sah.
func CanTransition(from, to string) bool {
	return validNext[from][to]
}

type Order struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	Number        string  `gorm:"type:varchar(50);uniqueIndex;not null" json:"number"`
	UserID        uint    `gorm:"not null;index" json:"user_id"`
	AddressBookID uint    `gorm:"not null" json:"address_book_id"`
	Status        string  `gorm:"type:varchar(30);not null;default:'pending_payment';index" json:"status"`
	Amount        float64 `gorm:"type:decimal(10,2);not null;default:0.00" json:"amount"`
	PayMethod     string  `gorm:"type:varchar(20)" json:"pay_method"`
	PayStatus     string  `gorm:"type:varchar(20);not null;default:'unpaid'" json:"pay_status"`
	Remark        string  `gorm:"type:text" json:"remark"`

	// Snapshot alamat/kontak saat submit; tidak ikut berubah kalau
	// address book diedit belakangan.
	Consignee string `gorm:"type:varchar(100)" json:"consignee"`
	Phone     string `gorm:"type:varchar(20)" json:"phone"`
	Address   string `gorm:"type:varchar(255)" json:"address"`

	OrderTime             time.Time  `gorm:"not null;index" json:"order_time"`
	CheckoutTime          *time.Time `json:"checkout_time,omitempty"`
	EstimatedDeliveryTime *time.Time `json:"estimated_delivery_time,omitempty"`
	// DeliveryTime diisi saat dispatch (awal window pengantaran) dan
	// ditimpa dengan waktu aktual saat pesanan selesai diantar.
	DeliveryTime *time.Time `json:"delivery_time,omitempty"`

	CancelTime      *time.Time `json:"cancel_time,omitempty"`
	CancelReason    string     `gorm:"type:varchar(255)" json:"cancel_reason"`
	RejectionReason string     `gorm:"type:varchar(255)" json:"rejection_reason"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`

	OrderDetails []OrderDetail `gorm:"foreignKey:OrderID" json:"order_details"`
}
