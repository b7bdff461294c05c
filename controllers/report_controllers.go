package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/langitrasa/takeout-app/services"
	"github.com/langitrasa/takeout-app/utils"
)

// ReportController melayani laporan harian untuk admin.
type ReportController struct {
	Reports *services.ReportService
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{Reports: services.NewReportService(db)}
}

// parseDateRange membaca query begin/end dengan format 2006-01-02.
func parseDateRange(c *gin.Context) (time.Time, time.Time, bool) {
	const layout = "2006-01-02"

	begin, err := time.ParseInLocation(layout, c.Query("begin"), time.Local)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("begin must be formatted as 2006-01-02"))
		return time.Time{}, time.Time{}, false
	}
	end, err := time.ParseInLocation(layout, c.Query("end"), time.Local)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("end must be formatted as 2006-01-02"))
		return time.Time{}, time.Time{}, false
	}
	return begin, end, true
}

// Turnover -> omzet harian
func (rc *ReportController) Turnover(c *gin.Context) {
	begin, end, ok := parseDateRange(c)
	if !ok {
		return
	}

	report, err := rc.Reports.Turnover(begin, end)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Turnover report", report)
}

// Users -> pertumbuhan user harian
func (rc *ReportController) Users(c *gin.Context) {
	begin, end, ok := parseDateRange(c)
	if !ok {
		return
	}

	report, err := rc.Reports.Users(begin, end)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "User report", report)
}

// Orders -> jumlah order dan completion rate
func (rc *ReportController) Orders(c *gin.Context) {
	begin, end, ok := parseDateRange(c)
	if !ok {
		return
	}

	report, err := rc.Reports.Orders(begin, end)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order report", report)
}

// Top10 -> 10 item terlaris dalam rentang
func (rc *ReportController) Top10(c *gin.Context) {
	begin, end, ok := parseDateRange(c)
	if !ok {
		return
	}

	report, err := rc.Reports.SalesTop10(begin, end)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Sales top 10 report", report)
}
