package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/langitrasa/takeout-app/services"
	"github.com/langitrasa/takeout-app/utils"
)

// ErrNoPermission dipakai handler admin saat role tidak cocok.
var ErrNoPermission = errors.New("you do not have permission")

// ErrInvalidID untuk path param id yang bukan angka positif.
var ErrInvalidID = errors.New("invalid id parameter")

// respondServiceError memetakan error dari layer service ke kode HTTP.
func respondServiceError(c *gin.Context, err error) {
	var transitionErr *services.IllegalTransitionError
	switch {
	case errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrAddressNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.As(err, &transitionErr):
		utils.RespondError(c, http.StatusConflict, err)
	case errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrAlreadyPaid),
		errors.Is(err, services.ErrCancelNotAllowed),
		errors.Is(err, services.ErrOrderNotFinished),
		errors.Is(err, services.ErrInvalidRange):
		utils.RespondError(c, http.StatusBadRequest, err)
	default:
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}

// currentUserID mengambil user id yang diset AuthMiddleware.
func currentUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return 0, false
	}
	userID, ok := value.(uint)
	if !ok {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("invalid user id type"))
		return 0, false
	}
	return userID, true
}
