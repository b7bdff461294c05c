package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/langitrasa/takeout-app/services"
	"github.com/langitrasa/takeout-app/utils"
)

// AdminOrderController melayani operasi merchant pada order.
type AdminOrderController struct {
	Orders *services.OrderService
}

func NewAdminOrderController(db *gorm.DB, gateway services.PaymentGateway) *AdminOrderController {
	return &AdminOrderController{Orders: services.NewOrderService(db, gateway)}
}

// ConditionSearch -> listing order dengan filter status/nomor/telepon
func (ac *AdminOrderController) ConditionSearch(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	orders, total, err := ac.Orders.ConditionSearch(
		c.Query("status"), c.Query("number"), c.Query("phone"), page, pageSize)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order list", gin.H{
		"total":   total,
		"records": orders,
	})
}

// Statistics -> jumlah order per status aktif untuk dashboard
func (ac *AdminOrderController) Statistics(c *gin.Context) {
	roleInterface, _ := c.Get("role")
	if roleInterface != "admin" {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	stats, err := ac.Orders.Statistics()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order statistics", stats)
}

// Detail -> detail satu order (tanpa batasan pemilik)
func (ac *AdminOrderController) Detail(c *gin.Context) {
	orderID := parseIDParam(c, "order_id")
	if orderID == 0 {
		return
	}

	order, err := ac.Orders.Details(orderID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// Confirm -> merchant menerima order
func (ac *AdminOrderController) Confirm(c *gin.Context) {
	orderID := parseIDParam(c, "order_id")
	if orderID == 0 {
		return
	}

	order, err := ac.Orders.Confirm(orderID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order confirmed", order)
}

// Rejection -> merchant menolak order dari antrian
func (ac *AdminOrderController) Rejection(c *gin.Context) {
	orderID := parseIDParam(c, "order_id")
	if orderID == 0 {
		return
	}

	var req struct {
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := ac.Orders.Reject(orderID, req.Reason)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order rejected", order)
}

// Delivery -> order mulai diantar
func (ac *AdminOrderController) Delivery(c *gin.Context) {
	orderID := parseIDParam(c, "order_id")
	if orderID == 0 {
		return
	}

	order, err := ac.Orders.Delivery(orderID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order out for delivery", order)
}

// Complete -> pesanan selesai diantar
func (ac *AdminOrderController) Complete(c *gin.Context) {
	orderID := parseIDParam(c, "order_id")
	if orderID == 0 {
		return
	}

	order, err := ac.Orders.Complete(orderID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order completed", order)
}
