package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/langitrasa/takeout-app/models"
	"github.com/langitrasa/takeout-app/push"
	"github.com/langitrasa/takeout-app/utils"
)

// DeliveryFee adalah ongkos kirim tetap per order.
const DeliveryFee = 6.0

// OrderService menangani konversi keranjang -> order dan operasi order user.
type OrderService struct {
	db      *gorm.DB
	carts   *CartService
	gateway PaymentGateway
}

func NewOrderService(db *gorm.DB, gateway PaymentGateway) *OrderService {
	return &OrderService{
		db:      db,
		carts:   NewCartService(db),
		gateway: gateway,
	}
}

type SubmitRequest struct {
	AddressBookID         uint       `json:"address_book_id" binding:"required"`
	PayMethod             string     `json:"pay_method"`
	Remark                string     `json:"remark"`
	EstimatedDeliveryTime *time.Time `json:"estimated_delivery_time"`
}

type SubmitResult struct {
	OrderID   uint      `json:"order_id"`
	Number    string    `json:"number"`
	Amount    float64   `json:"amount"`
	OrderTime time.Time `json:"order_time"`
}

// Submit mengubah keranjang user menjadi order berstatus pending_payment.
// Insert order, insert detail, dan pengosongan keranjang terjadi dalam satu
// transaksi: semuanya commit atau tidak sama sekali.
func (s *OrderService) Submit(userID uint, req SubmitRequest) (*SubmitResult, error) {
	var address models.AddressBook
	if err := s.db.Where("id = ? AND user_id = ?", req.AddressBookID, userID).
		First(&address).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAddressNotFound
		}
		return nil, err
	}

	carts, err := s.carts.List(userID)
	if err != nil {
		return nil, err
	}
	if len(carts) == 0 {
		return nil, ErrEmptyCart
	}

	amount := DeliveryFee
	for _, item := range carts {
		amount += item.Amount * float64(item.Number)
	}

	order := models.Order{
		Number:                s.generateOrderNumber(userID),
		UserID:                userID,
		AddressBookID:         address.ID,
		Status:                models.OrderStatusPendingPayment,
		Amount:                amount,
		PayMethod:             req.PayMethod,
		PayStatus:             models.PayStatusUnpaid,
		Remark:                req.Remark,
		Consignee:             address.Consignee,
		Phone:                 address.Phone,
		Address:               address.Detail,
		OrderTime:             time.Now(),
		EstimatedDeliveryTime: req.EstimatedDeliveryTime,
	}

	tx := s.db.Begin()
	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	details := make([]models.OrderDetail, 0, len(carts))
	for _, item := range carts {
		details = append(details, models.OrderDetail{
			OrderID:   order.ID,
			DishID:    item.DishID,
			SetmealID: item.SetmealID,
			Name:      item.Name,
			Flavor:    item.Flavor,
			Number:    item.Number,
			Amount:    item.Amount,
			CreatedAt: time.Now(),
		})
	}
	if err := tx.Create(&details).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Where("user_id = ?", userID).Delete(&models.ShoppingCart{}).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Order %s submitted by user %d, amount %.2f", order.Number, userID, amount)

	return &SubmitResult{
		OrderID:   order.ID,
		Number:    order.Number,
		Amount:    order.Amount,
		OrderTime: order.OrderTime,
	}, nil
}

// generateOrderNumber membuat nomor order timestamp+userID dan memastikan
// belum pernah dipakai.
func (s *OrderService) generateOrderNumber(userID uint) string {
	base := time.Now().Format("20060102150405")
	number := fmt.Sprintf("%s%d", base, userID)
	for i := 1; ; i++ {
		var count int64
		s.db.Model(&models.Order{}).Where("number = ?", number).Count(&count)
		if count == 0 {
			return number
		}
		number = fmt.Sprintf("%s%d%02d", base, userID, i)
	}
}

// Details mengambil satu order beserta line item-nya.
func (s *OrderService) Details(orderID uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("OrderDetails").First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// History mengembalikan order milik user, terbaru dulu, dengan offset/limit
// eksplisit (tidak ada state pagination tersembunyi).
func (s *OrderService) History(userID uint, page, pageSize int, status string) ([]models.Order, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	query := s.db.Model(&models.Order{}).Where("user_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.Order
	err := query.Preload("OrderDetails").
		Order("order_time desc").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&orders).Error
	return orders, total, err
}

// Repetition ("pesan lagi") menyalin line item order yang sudah selesai atau
// batal ke keranjang baru. Harga dibaca ulang dari katalog saat ini, bukan
// dari snapshot order lama.
func (s *OrderService) Repetition(userID, orderID uint) error {
	order, err := s.Details(orderID)
	if err != nil {
		return err
	}
	if order.UserID != userID {
		return ErrOrderNotFound
	}
	if order.Status != models.OrderStatusCompleted && order.Status != models.OrderStatusCancelled {
		return ErrOrderNotFinished
	}

	for _, detail := range order.OrderDetails {
		if err := s.carts.Add(userID, detail.DishID, detail.SetmealID, detail.Flavor, detail.Number); err != nil {
			return err
		}
	}
	return nil
}

// Reminder meneruskan catatan "tolong dipercepat" ke merchant lewat websocket.
// Status order tidak berubah.
func (s *OrderService) Reminder(userID, orderID uint) error {
	order, err := s.Details(orderID)
	if err != nil {
		return err
	}
	if order.UserID != userID {
		return ErrOrderNotFound
	}

	push.BroadcastReminder(*order)
	utils.InfoLogger.Printf("Reminder sent for order %s", order.Number)
	return nil
}

// OrderStatistics berisi jumlah order per status aktif untuk dashboard merchant.
type OrderStatistics struct {
	ToBeConfirmed      int64 `json:"to_be_confirmed"`
	Confirmed          int64 `json:"confirmed"`
	DeliveryInProgress int64 `json:"delivery_in_progress"`
}

func (s *OrderService) Statistics() (*OrderStatistics, error) {
	stats := &OrderStatistics{}
	counts := []struct {
		status string
		dest   *int64
	}{
		{models.OrderStatusToBeConfirmed, &stats.ToBeConfirmed},
		{models.OrderStatusConfirmed, &stats.Confirmed},
		{models.OrderStatusDeliveryInProgress, &stats.DeliveryInProgress},
	}
	for _, c := range counts {
		if err := s.db.Model(&models.Order{}).Where("status = ?", c.status).Count(c.dest).Error; err != nil {
			return nil, err
		}
	}
	return stats, nil
}

// ConditionSearch adalah listing order untuk merchant dengan filter opsional.
func (s *OrderService) ConditionSearch(status, number, phone string, page, pageSize int) ([]models.Order, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	query := s.db.Model(&models.Order{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if number != "" {
		query = query.Where("number LIKE ?", "%"+number+"%")
	}
	if phone != "" {
		query = query.Where("phone LIKE ?", "%"+phone+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.Order
	err := query.Preload("OrderDetails").
		Order("order_time desc").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&orders).Error
	return orders, total, err
}
