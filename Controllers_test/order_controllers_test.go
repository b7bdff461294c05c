package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/langitrasa/takeout-app/controllers"
	"github.com/langitrasa/takeout-app/models"
	"github.com/langitrasa/takeout-app/services"
	"github.com/langitrasa/takeout-app/utils"
)

func setupTestDBForOrders(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
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

	// Seed data: user, alamat, dan satu dish
	db.Create(&models.User{Name: "Budi", Email: "budi@example.com", Password: "x", Role: "user"})
	db.Create(&models.AddressBook{UserID: 1, Consignee: "Budi", Phone: "0812345678", Detail: "Jl. Melati No. 1"})
	db.Create(&models.Dish{CategoryID: 1, Name: "Nasi Goreng", Price: 15.0, Status: models.CatalogStatusOnSale})
	return db
}

// fakeAuth menyuntikkan identitas tanpa perlu JWT asli.
func fakeAuth(userID uint, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("role", role)
		c.Next()
	}
}

func setupOrderRouter(db *gorm.DB, userID uint, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	router.Use(fakeAuth(userID, role))

	gateway := services.LogGateway{}
	cartCtrl := controllers.NewCartController(db)
	orderCtrl := controllers.NewOrderController(db, gateway)
	adminCtrl := controllers.NewAdminOrderController(db, gateway)

	router.POST("/user/shoppingCart/add", cartCtrl.Add)
	router.POST("/user/order/submit", orderCtrl.Submit)
	router.PUT("/user/order/payment", orderCtrl.Payment)
	router.GET("/user/order/orderDetail/:order_id", orderCtrl.Detail)
	router.PUT("/user/order/cancel/:order_id", orderCtrl.Cancel)
	router.PUT("/admin/order/confirm/:order_id", adminCtrl.Confirm)
	router.GET("/admin/order/statistics", adminCtrl.Statistics)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, url string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		data, err := json.Marshal(payload)
		assert.NoError(t, err)
		body = bytes.NewBuffer(data)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req, err := http.NewRequest(method, url, body)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSubmitAndPayOrder(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForOrders(t)
	router := setupOrderRouter(db, 1, "user")

	// Isi keranjang
	w := doJSON(t, router, "POST", "/user/shoppingCart/add", map[string]interface{}{
		"dish_id": 1,
		"number":  2,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// Submit
	w = doJSON(t, router, "POST", "/user/order/submit", map[string]interface{}{
		"address_book_id": 1,
		"pay_method":      "wallet",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var submitResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &submitResp))
	data := submitResp["data"].(map[string]interface{})
	number := data["number"].(string)
	assert.NotEmpty(t, number)
	// 2x15 + ongkir 6
	assert.Equal(t, 36.0, data["amount"].(float64))

	// Bayar
	w = doJSON(t, router, "PUT", "/user/order/payment", map[string]interface{}{
		"order_number": number,
		"reference":    "ref-001",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var payResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &payResp))
	order := payResp["data"].(map[string]interface{})
	assert.Equal(t, "to_be_confirmed", order["status"])
	assert.Equal(t, "paid", order["pay_status"])
}

func TestSubmitEmptyCartReturnsBadRequest(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForOrders(t)
	router := setupOrderRouter(db, 1, "user")

	w := doJSON(t, router, "POST", "/user/order/submit", map[string]interface{}{
		"address_book_id": 1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDetailHidesOtherUsersOrder(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForOrders(t)

	order := models.Order{
		Number:        fmt.Sprintf("T%d", time.Now().UnixNano()),
		UserID:        1,
		AddressBookID: 1,
		Status:        models.OrderStatusCompleted,
		Amount:        21.0,
		PayStatus:     models.PayStatusPaid,
		OrderTime:     time.Now(),
	}
	assert.NoError(t, db.Create(&order).Error)

	// User lain mencoba membaca order milik user 1
	router := setupOrderRouter(db, 2, "user")
	w := doJSON(t, router, "GET", fmt.Sprintf("/user/order/orderDetail/%d", order.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Pemiliknya sendiri bisa
	router = setupOrderRouter(db, 1, "user")
	w = doJSON(t, router, "GET", fmt.Sprintf("/user/order/orderDetail/%d", order.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestIllegalTransitionReturnsConflict(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForOrders(t)

	order := models.Order{
		Number:        fmt.Sprintf("T%d", time.Now().UnixNano()),
		UserID:        1,
		AddressBookID: 1,
		Status:        models.OrderStatusPendingPayment,
		Amount:        21.0,
		PayStatus:     models.PayStatusUnpaid,
		OrderTime:     time.Now(),
	}
	assert.NoError(t, db.Create(&order).Error)

	// Confirm langsung dari pending_payment tidak sah
	router := setupOrderRouter(db, 1, "admin")
	w := doJSON(t, router, "PUT", fmt.Sprintf("/admin/order/confirm/%d", order.ID), nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestStatisticsRequiresAdminRole(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForOrders(t)

	router := setupOrderRouter(db, 1, "user")
	w := doJSON(t, router, "GET", "/admin/order/statistics", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	router = setupOrderRouter(db, 1, "admin")
	w = doJSON(t, router, "GET", "/admin/order/statistics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
