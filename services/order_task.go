package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/langitrasa/takeout-app/models"
	"github.com/langitrasa/takeout-app/utils"
)

// OrderTask adalah sweep berkala untuk order yang "nyangkut":
//   - tiap interval: order pending_payment yang melewati deadline bayar
//     dibatalkan otomatis;
//   - sekali sehari (jam sepi): order delivery_in_progress yang sudah terlalu
//     lama dianggap selesai diantar (kurir tidak melapor).
type OrderTask struct {
	DB       *gorm.DB
	StopChan chan struct{}

	Interval        time.Duration // interval scan pembayaran
	PaymentTimeout  time.Duration // deadline bayar sejak order_time
	DeliveryTimeout time.Duration // deadline antar sejak dispatch
	DeliveryHour    int           // jam lokal untuk sweep harian
}

func NewOrderTask(db *gorm.DB) *OrderTask {
	return &OrderTask{
		DB:              db,
		StopChan:        make(chan struct{}),
		Interval:        5 * time.Minute,
		PaymentTimeout:  15 * time.Minute,
		DeliveryTimeout: 1 * time.Hour,
		DeliveryHour:    1,
	}
}

func (t *OrderTask) Start() {
	go t.runPaymentSweep()
	go t.runDeliverySweep()
	utils.InfoLogger.Println("Order reconciliation task started")
}

func (t *OrderTask) Stop() {
	close(t.StopChan)
}

func (t *OrderTask) runPaymentSweep() {
	ticker := time.NewTicker(t.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			t.processTimeoutOrders()
		case <-t.StopChan:
			return
		}
	}
}

func (t *OrderTask) runDeliverySweep() {
	for {
		timer := time.NewTimer(time.Until(nextRunAt(t.DeliveryHour)))
		select {
		case <-timer.C:
			t.processDeliveryOrders()
		case <-t.StopChan:
			timer.Stop()
			return
		}
	}
}

// nextRunAt memberi kemunculan berikutnya dari jam `hour` waktu lokal.
func nextRunAt(hour int) time.Time {
	now := time.Now()
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// processTimeoutOrders membatalkan order yang belum dibayar melewati deadline.
func (t *OrderTask) processTimeoutOrders() {
	deadline := time.Now().Add(-t.PaymentTimeout)

	var orders []models.Order
	if err := t.DB.Where("status = ? AND order_time < ?",
		models.OrderStatusPendingPayment, deadline).Find(&orders).Error; err != nil {
		utils.ErrorLogger.Printf("Payment sweep query failed: %v", err)
		return
	}

	for _, order := range orders {
		t.cancelTimedOut(order)
	}
}

// cancelTimedOut menerapkan pembatalan satu order dengan guard status:
// kalau order keburu dibayar di jendela balapan, update tidak kena baris
// apapun dan order dilewati tanpa error.
func (t *OrderTask) cancelTimedOut(order models.Order) {
	orderLocks.Lock(order.ID)
	defer orderLocks.Unlock(order.ID)

	now := time.Now()
	res := t.DB.Model(&models.Order{}).
		Where("id = ? AND status = ?", order.ID, models.OrderStatusPendingPayment).
		Updates(map[string]interface{}{
			"status":        models.OrderStatusCancelled,
			"cancel_reason": "payment timeout - auto cancelled",
			"cancel_time":   now,
		})
	if res.Error != nil {
		utils.ErrorLogger.Printf("Error auto-cancelling order %s: %v", order.Number, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		// Status berubah sejak scan; skip, bukan error.
		return
	}
	utils.InfoLogger.Printf("Order %s auto-cancelled after payment timeout", order.Number)
}

// processDeliveryOrders menyelesaikan order yang macet di delivery_in_progress.
func (t *OrderTask) processDeliveryOrders() {
	deadline := time.Now().Add(-t.DeliveryTimeout)

	var orders []models.Order
	if err := t.DB.Where("status = ? AND delivery_time < ?",
		models.OrderStatusDeliveryInProgress, deadline).Find(&orders).Error; err != nil {
		utils.ErrorLogger.Printf("Delivery sweep query failed: %v", err)
		return
	}

	for _, order := range orders {
		t.completeStaleDelivery(order)
	}
}

func (t *OrderTask) completeStaleDelivery(order models.Order) {
	orderLocks.Lock(order.ID)
	defer orderLocks.Unlock(order.ID)

	res := t.DB.Model(&models.Order{}).
		Where("id = ? AND status = ?", order.ID, models.OrderStatusDeliveryInProgress).
		Update("status", models.OrderStatusCompleted)
	if res.Error != nil {
		utils.ErrorLogger.Printf("Error completing stale delivery %s: %v", order.Number, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		return
	}
	utils.InfoLogger.Printf("Order %s marked completed by delivery sweep", order.Number)
}
