package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/langitrasa/takeout-app/services"
	"github.com/langitrasa/takeout-app/utils"
)

// OrderController melayani endpoint order sisi user.
type OrderController struct {
	Orders   *services.OrderService
	Payments *services.PaymentService
}

func NewOrderController(db *gorm.DB, gateway services.PaymentGateway) *OrderController {
	return &OrderController{
		Orders:   services.NewOrderService(db, gateway),
		Payments: services.NewPaymentService(db),
	}
}

// Submit -> keranjang jadi order (status pending_payment)
func (oc *OrderController) Submit(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req services.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	result, err := oc.Orders.Submit(userID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Order submitted", result)
}

// Payment -> callback gateway menandai order sudah dibayar
func (oc *OrderController) Payment(c *gin.Context) {
	var req struct {
		OrderNumber string `json:"order_number" binding:"required"`
		Reference   string `json:"reference"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Payments.PaySuccess(req.OrderNumber, req.Reference)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order paid", order)
}

// Detail -> satu order milik user beserta item-nya
func (oc *OrderController) Detail(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	orderID := parseIDParam(c, "order_id")
	if orderID == 0 {
		return
	}

	order, err := oc.Orders.Details(orderID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if order.UserID != userID {
		respondServiceError(c, services.ErrOrderNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// History -> riwayat order user dengan paging eksplisit
func (oc *OrderController) History(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	status := c.Query("status")

	orders, total, err := oc.Orders.History(userID, page, pageSize, status)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order history", gin.H{
		"total":   total,
		"records": orders,
	})
}

// Cancel -> user membatalkan order
func (oc *OrderController) Cancel(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	orderID := parseIDParam(c, "order_id")
	if orderID == 0 {
		return
	}

	var req struct {
		Reason string `json:"reason"`
	}
	// Body opsional
	_ = c.ShouldBindJSON(&req)

	order, err := oc.Orders.UserCancel(userID, orderID, req.Reason)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order cancelled", order)
}

// Repetition -> "pesan lagi", isi keranjang dari order lama
func (oc *OrderController) Repetition(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	orderID := parseIDParam(c, "order_id")
	if orderID == 0 {
		return
	}

	if err := oc.Orders.Repetition(userID, orderID); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Items copied to cart", nil)
}

// Reminder -> user menagih merchant
func (oc *OrderController) Reminder(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	orderID := parseIDParam(c, "order_id")
	if orderID == 0 {
		return
	}

	if err := oc.Orders.Reminder(userID, orderID); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reminder sent", nil)
}

// parseIDParam membaca path param sebagai uint; 0 berarti sudah direspon error.
func parseIDParam(c *gin.Context, name string) uint {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		utils.RespondError(c, http.StatusBadRequest, ErrInvalidID)
		return 0
	}
	return uint(id)
}
