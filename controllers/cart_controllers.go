package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/langitrasa/takeout-app/services"
	"github.com/langitrasa/takeout-app/utils"
)

type CartController struct {
	Carts *services.CartService
}

func NewCartController(db *gorm.DB) *CartController {
	return &CartController{Carts: services.NewCartService(db)}
}

// Add -> tambahkan dish/setmeal ke keranjang user
func (cc *CartController) Add(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		DishID    *uint  `json:"dish_id"`
		SetmealID *uint  `json:"setmeal_id"`
		Flavor    string `json:"flavor"`
		Number    int    `json:"number"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := cc.Carts.Add(userID, req.DishID, req.SetmealID, req.Flavor, req.Number); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Item added to cart", nil)
}

// List -> isi keranjang user
func (cc *CartController) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	carts, err := cc.Carts.List(userID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Shopping cart", carts)
}

// Clean -> kosongkan keranjang
func (cc *CartController) Clean(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := cc.Carts.Clean(userID); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Shopping cart cleaned", nil)
}
