package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/langitrasa/takeout-app/models"
	"github.com/langitrasa/takeout-app/utils"
)

// orderLocks menserialisasi transisi per order id. Dipakai oleh handler
// request, payment handler, dan sweeper; dua transisi pada order yang sama
// tidak pernah berjalan bersamaan.
var orderLocks = utils.NewKeyedLock()

// applyTransition memvalidasi lalu menerapkan satu transisi status sebagai
// conditional update (compare-and-swap pada kolom status). Caller TIDAK
// boleh memegang lock order tersebut.
func (s *OrderService) applyTransition(orderID uint, to string, updates map[string]interface{}) (*models.Order, error) {
	orderLocks.Lock(orderID)
	defer orderLocks.Unlock(orderID)
	return applyTransitionLocked(s.db, orderID, to, updates)
}

// applyTransitionLocked mengasumsikan caller sudah memegang lock order.
func applyTransitionLocked(db *gorm.DB, orderID uint, to string, updates map[string]interface{}) (*models.Order, error) {
	var order models.Order
	if err := db.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if !models.CanTransition(order.Status, to) {
		return nil, &IllegalTransitionError{From: order.Status, To: to}
	}

	if updates == nil {
		updates = map[string]interface{}{}
	}
	updates["status"] = to

	// Guard pada status lama: kalau ada penulis lain yang menang duluan,
	// RowsAffected 0 dan transisi ini dianggap ilegal terhadap status baru.
	res := db.Model(&models.Order{}).
		Where("id = ? AND status = ?", orderID, order.Status).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		var current models.Order
		if err := db.First(&current, orderID).Error; err != nil {
			return nil, ErrOrderNotFound
		}
		return nil, &IllegalTransitionError{From: current.Status, To: to}
	}

	if err := db.First(&order, orderID).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// UserCancel membatalkan order atas permintaan user. Hanya sah dari
// pending_payment, to_be_confirmed, dan confirmed; kalau sudah dibayar,
// refund dipanggil lewat gateway.
func (s *OrderService) UserCancel(userID, orderID uint, reason string) (*models.Order, error) {
	orderLocks.Lock(orderID)
	defer orderLocks.Unlock(orderID)

	var order models.Order
	if err := s.db.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if order.UserID != userID {
		return nil, ErrOrderNotFound
	}

	switch order.Status {
	case models.OrderStatusPendingPayment,
		models.OrderStatusToBeConfirmed,
		models.OrderStatusConfirmed:
		// boleh dibatalkan
	default:
		return nil, ErrCancelNotAllowed
	}

	if reason == "" {
		reason = "user cancelled"
	}
	now := time.Now()
	updated, err := applyTransitionLocked(s.db, orderID, models.OrderStatusCancelled, map[string]interface{}{
		"cancel_reason": reason,
		"cancel_time":   now,
	})
	if err != nil {
		return nil, err
	}

	if updated.PayStatus == models.PayStatusPaid {
		s.refund(updated)
	}

	utils.InfoLogger.Printf("Order %s cancelled by user %d: %s", updated.Number, userID, reason)
	return updated, nil
}

// Confirm -> merchant menerima order (to_be_confirmed -> confirmed).
func (s *OrderService) Confirm(orderID uint) (*models.Order, error) {
	return s.applyTransition(orderID, models.OrderStatusConfirmed, nil)
}

// Reject -> merchant menolak order dari antrian; refund kalau sudah dibayar.
func (s *OrderService) Reject(orderID uint, reason string) (*models.Order, error) {
	orderLocks.Lock(orderID)
	defer orderLocks.Unlock(orderID)

	var order models.Order
	if err := s.db.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if order.Status != models.OrderStatusToBeConfirmed {
		return nil, &IllegalTransitionError{From: order.Status, To: models.OrderStatusCancelled}
	}

	now := time.Now()
	updated, err := applyTransitionLocked(s.db, orderID, models.OrderStatusCancelled, map[string]interface{}{
		"rejection_reason": reason,
		"cancel_time":      now,
	})
	if err != nil {
		return nil, err
	}

	if updated.PayStatus == models.PayStatusPaid {
		s.refund(updated)
	}

	utils.InfoLogger.Printf("Order %s rejected: %s", updated.Number, reason)
	return updated, nil
}

// Delivery -> order mulai diantar; delivery_time menandai awal window.
func (s *OrderService) Delivery(orderID uint) (*models.Order, error) {
	now := time.Now()
	return s.applyTransition(orderID, models.OrderStatusDeliveryInProgress, map[string]interface{}{
		"delivery_time": now,
	})
}

// Complete -> pesanan sampai; delivery_time diisi waktu aktual.
func (s *OrderService) Complete(orderID uint) (*models.Order, error) {
	now := time.Now()
	return s.applyTransition(orderID, models.OrderStatusCompleted, map[string]interface{}{
		"delivery_time": now,
	})
}

// refund memanggil gateway eksternal dan menandai pay_status. Kegagalan
// refund dicatat, tidak membatalkan transisi yang sudah terjadi.
func (s *OrderService) refund(order *models.Order) {
	ref, err := s.gateway.Refund(order.Number, order.Amount)
	if err != nil {
		utils.ErrorLogger.Printf("Refund failed for order %s: %v", order.Number, err)
		return
	}
	if err := s.db.Model(order).Update("pay_status", models.PayStatusRefunded).Error; err != nil {
		utils.ErrorLogger.Printf("Error marking order %s refunded: %v", order.Number, err)
		return
	}
	utils.InfoLogger.Printf("Refund %s issued for order %s (%.2f)", ref, order.Number, order.Amount)
}
