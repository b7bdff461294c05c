package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/langitrasa/takeout-app/models"
	"github.com/langitrasa/takeout-app/utils"
)

type AddressBookController struct {
	DB *gorm.DB
}

func NewAddressBookController(db *gorm.DB) *AddressBookController {
	return &AddressBookController{DB: db}
}

// Create -> simpan alamat pengiriman baru milik user
func (ac *AddressBookController) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		Consignee string `json:"consignee" binding:"required"`
		Phone     string `json:"phone" binding:"required"`
		Detail    string `json:"detail" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	address := models.AddressBook{
		UserID:    userID,
		Consignee: req.Consignee,
		Phone:     req.Phone,
		Detail:    req.Detail,
	}
	if err := ac.DB.Create(&address).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Address created", address)
}

// List -> semua alamat milik user
func (ac *AddressBookController) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var addresses []models.AddressBook
	if err := ac.DB.Where("user_id = ?", userID).Find(&addresses).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Address list", addresses)
}
