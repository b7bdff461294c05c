package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/langitrasa/takeout-app/models"
	"github.com/langitrasa/takeout-app/push"
	"github.com/langitrasa/takeout-app/utils"
)

// PaymentService menangani konfirmasi pembayaran dari gateway eksternal.
// Callback dianggap sudah terverifikasi sebelum sampai ke sini.
type PaymentService struct {
	db *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{db: db}
}

// PaySuccess memindahkan order dari pending_payment ke antrian merchant
// (to_be_confirmed). Idempoten terhadap callback ganda: konfirmasi kedua
// untuk order yang sudah paid adalah no-op, bukan error.
func (s *PaymentService) PaySuccess(orderNumber, reference string) (*models.Order, error) {
	var order models.Order
	if err := s.db.Where("number = ?", orderNumber).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	orderLocks.Lock(order.ID)
	defer orderLocks.Unlock(order.ID)

	// Baca ulang di dalam lock supaya keputusan idempoten tidak basi.
	if err := s.db.First(&order, order.ID).Error; err != nil {
		return nil, err
	}

	if order.PayStatus == models.PayStatusPaid || order.PayStatus == models.PayStatusRefunded {
		utils.InfoLogger.Printf("Duplicate payment confirmation for order %s ignored", order.Number)
		return &order, nil
	}
	if order.Status != models.OrderStatusPendingPayment {
		return nil, ErrAlreadyPaid
	}

	now := time.Now()
	updated, err := applyTransitionLocked(s.db, order.ID, models.OrderStatusToBeConfirmed, map[string]interface{}{
		"pay_status":    models.PayStatusPaid,
		"checkout_time": now,
	})
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Order %s paid (ref=%s), entering merchant queue", updated.Number, reference)

	// Beri tahu merchant ada order baru masuk antrian.
	push.BroadcastNewOrder(*updated)

	return updated, nil
}
