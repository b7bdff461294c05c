package services

import (
	"fmt"
	"os"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/langitrasa/takeout-app/models"
	"github.com/langitrasa/takeout-app/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

// newTestDB -> SQLite in-memory + migrasi semua model
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.AddressBook{},
		&models.Dish{},
		&models.Setmeal{},
		&models.SetmealDish{},
		&models.ShoppingCart{},
		&models.Order{},
		&models.OrderDetail{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	user := models.User{
		Name:     "Test User",
		Email:    email,
		Password: "hashed",
		Role:     "user",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func seedAddress(t *testing.T, db *gorm.DB, userID uint) models.AddressBook {
	t.Helper()
	address := models.AddressBook{
		UserID:    userID,
		Consignee: "Budi",
		Phone:     "0812345678",
		Detail:    "Jl. Melati No. 1",
	}
	if err := db.Create(&address).Error; err != nil {
		t.Fatalf("failed to seed address: %v", err)
	}
	return address
}

func seedDish(t *testing.T, db *gorm.DB, name string, price float64) models.Dish {
	t.Helper()
	dish := models.Dish{
		CategoryID: 1,
		Name:       name,
		Price:      price,
		Status:     models.CatalogStatusOnSale,
	}
	if err := db.Create(&dish).Error; err != nil {
		t.Fatalf("failed to seed dish: %v", err)
	}
	return dish
}

// seedOrder membuat order langsung di status/pay status tertentu.
func seedOrder(t *testing.T, db *gorm.DB, userID uint, status, payStatus string, orderTime time.Time) models.Order {
	t.Helper()
	order := models.Order{
		Number:        fmt.Sprintf("T%d-%d", userID, time.Now().UnixNano()),
		UserID:        userID,
		AddressBookID: 1,
		Status:        status,
		Amount:        26.0,
		PayStatus:     payStatus,
		Consignee:     "Budi",
		Phone:         "0812345678",
		Address:       "Jl. Melati No. 1",
		OrderTime:     orderTime,
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("failed to seed order: %v", err)
	}
	return order
}

func nowLocal() time.Time {
	return time.Now().Local()
}

// recordingGateway mencatat panggilan refund untuk assertion.
type recordingGateway struct {
	refunds []string
}

func (g *recordingGateway) Refund(orderNumber string, amount float64) (string, error) {
	g.refunds = append(g.refunds, orderNumber)
	return "ref-test", nil
}
