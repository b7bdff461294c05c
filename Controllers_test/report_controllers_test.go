package Controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/langitrasa/takeout-app/controllers"
	"github.com/langitrasa/takeout-app/models"
	"github.com/langitrasa/takeout-app/utils"
)

func setupReportRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	router.Use(fakeAuth(1, "admin"))

	reportCtrl := controllers.NewReportController(db)
	router.GET("/admin/report/turnover", reportCtrl.Turnover)
	router.GET("/admin/report/orders", reportCtrl.Orders)
	router.GET("/admin/report/top10", reportCtrl.Top10)
	return router
}

func TestTurnoverEndpoint(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForOrders(t)

	today := time.Now().Format("2006-01-02")
	order := models.Order{
		Number:        fmt.Sprintf("T%d", time.Now().UnixNano()),
		UserID:        1,
		AddressBookID: 1,
		Status:        models.OrderStatusCompleted,
		Amount:        10.0,
		PayStatus:     models.PayStatusPaid,
		OrderTime:     time.Now(),
	}
	assert.NoError(t, db.Create(&order).Error)

	router := setupReportRouter(db)
	url := fmt.Sprintf("/admin/report/turnover?begin=%s&end=%s", today, today)
	w := doJSON(t, router, "GET", url, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, today, data["date_list"])
	assert.Equal(t, "10.0", data["turnover_list"])
}

func TestReportRejectsBadDates(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForOrders(t)
	router := setupReportRouter(db)

	// Format salah
	w := doJSON(t, router, "GET", "/admin/report/orders?begin=01-02-2026&end=2026-02-03", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// begin setelah end
	w = doJSON(t, router, "GET", "/admin/report/top10?begin=2026-02-03&end=2026-02-01", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
