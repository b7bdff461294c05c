package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/langitrasa/takeout-app/models"
)

func TestSubmitCreatesOrderAtomically(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "budi@example.com")
	address := seedAddress(t, db, user.ID)
	nasi := seedDish(t, db, "Nasi Goreng", 15.0)
	teh := seedDish(t, db, "Es Teh", 5.0)

	carts := NewCartService(db)
	assert.NoError(t, carts.Add(user.ID, &nasi.ID, nil, "pedas", 2))
	assert.NoError(t, carts.Add(user.ID, &teh.ID, nil, "", 1))

	svc := NewOrderService(db, &recordingGateway{})
	result, err := svc.Submit(user.ID, SubmitRequest{AddressBookID: address.ID, PayMethod: "wallet"})
	assert.NoError(t, err)
	assert.NotEmpty(t, result.Number)
	// 2x15 + 1x5 + ongkir
	assert.Equal(t, 35.0+DeliveryFee, result.Amount)

	order, err := svc.Details(result.OrderID)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusPendingPayment, order.Status)
	assert.Equal(t, models.PayStatusUnpaid, order.PayStatus)
	assert.Len(t, order.OrderDetails, 2)
	assert.Equal(t, "Budi", order.Consignee)
	assert.Equal(t, "Jl. Melati No. 1", order.Address)

	// Keranjang harus kosong setelah submit berhasil
	remaining, err := carts.List(user.ID)
	assert.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestSubmitEmptyCart(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "budi@example.com")
	address := seedAddress(t, db, user.ID)

	svc := NewOrderService(db, &recordingGateway{})
	_, err := svc.Submit(user.ID, SubmitRequest{AddressBookID: address.ID})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestSubmitUnknownAddress(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "budi@example.com")
	dish := seedDish(t, db, "Nasi Goreng", 15.0)

	carts := NewCartService(db)
	assert.NoError(t, carts.Add(user.ID, &dish.ID, nil, "", 1))

	svc := NewOrderService(db, &recordingGateway{})
	_, err := svc.Submit(user.ID, SubmitRequest{AddressBookID: 999})
	assert.ErrorIs(t, err, ErrAddressNotFound)

	// Keranjang tidak boleh ikut terhapus
	remaining, _ := carts.List(user.ID)
	assert.Len(t, remaining, 1)
}

func TestSubmitGeneratesUniqueNumbers(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "budi@example.com")
	address := seedAddress(t, db, user.ID)
	dish := seedDish(t, db, "Nasi Goreng", 15.0)

	carts := NewCartService(db)
	svc := NewOrderService(db, &recordingGateway{})

	numbers := map[string]bool{}
	for i := 0; i < 3; i++ {
		assert.NoError(t, carts.Add(user.ID, &dish.ID, nil, "", 1))
		result, err := svc.Submit(user.ID, SubmitRequest{AddressBookID: address.ID})
		assert.NoError(t, err)
		assert.False(t, numbers[result.Number], "order number %s reused", result.Number)
		numbers[result.Number] = true
	}
}

func TestCartMergesSameItem(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "budi@example.com")
	dish := seedDish(t, db, "Nasi Goreng", 15.0)

	carts := NewCartService(db)
	assert.NoError(t, carts.Add(user.ID, &dish.ID, nil, "pedas", 1))
	assert.NoError(t, carts.Add(user.ID, &dish.ID, nil, "pedas", 2))
	// Flavor beda -> baris terpisah
	assert.NoError(t, carts.Add(user.ID, &dish.ID, nil, "", 1))

	items, err := carts.List(user.ID)
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, 3, items[0].Number)
}

func TestRepetitionReadsCurrentPrices(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "budi@example.com")
	dish := seedDish(t, db, "Nasi Goreng", 15.0)

	order := seedOrder(t, db, user.ID, models.OrderStatusCompleted, models.PayStatusPaid, nowLocal())
	detail := models.OrderDetail{
		OrderID: order.ID,
		DishID:  &dish.ID,
		Name:    dish.Name,
		Number:  2,
		Amount:  15.0, // harga saat order lama dibuat
	}
	assert.NoError(t, db.Create(&detail).Error)

	// Harga katalog naik setelah order lama selesai
	assert.NoError(t, db.Model(&dish).Update("price", 18.0).Error)

	svc := NewOrderService(db, &recordingGateway{})
	assert.NoError(t, svc.Repetition(user.ID, order.ID))

	items, err := NewCartService(db).List(user.ID)
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 18.0, items[0].Amount)
	assert.Equal(t, 2, items[0].Number)
}

func TestRepetitionRequiresFinishedOrder(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "budi@example.com")
	order := seedOrder(t, db, user.ID, models.OrderStatusConfirmed, models.PayStatusPaid, nowLocal())

	svc := NewOrderService(db, &recordingGateway{})
	assert.ErrorIs(t, svc.Repetition(user.ID, order.ID), ErrOrderNotFinished)
}

func TestHistoryFiltersByStatus(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "budi@example.com")
	other := seedUser(t, db, "siti@example.com")

	seedOrder(t, db, user.ID, models.OrderStatusCompleted, models.PayStatusPaid, nowLocal())
	seedOrder(t, db, user.ID, models.OrderStatusCompleted, models.PayStatusPaid, nowLocal())
	seedOrder(t, db, user.ID, models.OrderStatusCancelled, models.PayStatusUnpaid, nowLocal())
	seedOrder(t, db, other.ID, models.OrderStatusCompleted, models.PayStatusPaid, nowLocal())

	svc := NewOrderService(db, &recordingGateway{})

	all, total, err := svc.History(user.ID, 1, 10, "")
	assert.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, all, 3)

	completed, total, err := svc.History(user.ID, 1, 10, models.OrderStatusCompleted)
	assert.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, completed, 2)
}

func TestConditionSearch(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "budi@example.com")

	target := seedOrder(t, db, user.ID, models.OrderStatusToBeConfirmed, models.PayStatusPaid, nowLocal())
	seedOrder(t, db, user.ID, models.OrderStatusCompleted, models.PayStatusPaid, nowLocal())

	svc := NewOrderService(db, &recordingGateway{})

	byStatus, total, err := svc.ConditionSearch(models.OrderStatusToBeConfirmed, "", "", 1, 10)
	assert.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, target.ID, byStatus[0].ID)

	byPhone, total, err := svc.ConditionSearch("", "", "0812", 1, 10)
	assert.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, byPhone, 2)
}

func TestStatistics(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "budi@example.com")

	seedOrder(t, db, user.ID, models.OrderStatusToBeConfirmed, models.PayStatusPaid, nowLocal())
	seedOrder(t, db, user.ID, models.OrderStatusToBeConfirmed, models.PayStatusPaid, nowLocal())
	seedOrder(t, db, user.ID, models.OrderStatusConfirmed, models.PayStatusPaid, nowLocal())
	seedOrder(t, db, user.ID, models.OrderStatusCompleted, models.PayStatusPaid, nowLocal())

	svc := NewOrderService(db, &recordingGateway{})
	stats, err := svc.Statistics()
	assert.NoError(t, err)
	assert.EqualValues(t, 2, stats.ToBeConfirmed)
	assert.EqualValues(t, 1, stats.Confirmed)
	assert.EqualValues(t, 0, stats.DeliveryInProgress)
}
