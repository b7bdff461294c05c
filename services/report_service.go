package services

import (
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/langitrasa/takeout-app/models"
)

// ReportService menghitung statistik harian dari order store. Semua laporan
// read-only dan aman berjalan bersamaan dengan mutasi order.
type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// TurnoverReport: omzet harian dari order completed.
type TurnoverReport struct {
	DateList     string `json:"date_list"`
	TurnoverList string `json:"turnover_list"`
}

// UserReport: total user kumulatif dan user baru per hari.
type UserReport struct {
	DateList      string `json:"date_list"`
	TotalUserList string `json:"total_user_list"`
	NewUserList   string `json:"new_user_list"`
}

// OrderReport: jumlah order per hari plus total dan completion rate.
type OrderReport struct {
	DateList            string  `json:"date_list"`
	OrderCountList      string  `json:"order_count_list"`
	ValidOrderCountList string  `json:"valid_order_count_list"`
	TotalOrderCount     int64   `json:"total_order_count"`
	ValidOrderCount     int64   `json:"valid_order_count"`
	OrderCompletionRate float64 `json:"order_completion_rate"`
}

// SalesTop10Report: 10 item terlaris dalam rentang, bukan per hari.
type SalesTop10Report struct {
	NameList   string `json:"name_list"`
	NumberList string `json:"number_list"`
}

// dateListBetween memberi daftar awal-hari dari begin sampai end (inklusif).
func dateListBetween(begin, end time.Time) ([]time.Time, error) {
	beginDay := dayStart(begin)
	endDay := dayStart(end)
	if beginDay.After(endDay) {
		return nil, ErrInvalidRange
	}

	var days []time.Time
	for d := beginDay; !d.After(endDay); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days, nil
}

// dayStart memotong t ke tengah malam lokal.
func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Turnover menjumlahkan amount order completed per hari kalender.
// Hari tanpa order melaporkan 0.0, bukan kosong.
func (s *ReportService) Turnover(begin, end time.Time) (*TurnoverReport, error) {
	days, err := dateListBetween(begin, end)
	if err != nil {
		return nil, err
	}

	dates := make([]string, 0, len(days))
	turnovers := make([]string, 0, len(days))
	for _, day := range days {
		next := day.AddDate(0, 0, 1)

		var turnover float64
		row := s.db.Model(&models.Order{}).
			Select("COALESCE(SUM(amount), 0)").
			Where("status = ? AND order_time >= ? AND order_time < ?",
				models.OrderStatusCompleted, day, next).
			Row()
		if err := row.Scan(&turnover); err != nil {
			return nil, err
		}

		dates = append(dates, day.Format("2006-01-02"))
		turnovers = append(turnovers, formatAmount(turnover))
	}

	return &TurnoverReport{
		DateList:     strings.Join(dates, ","),
		TurnoverList: strings.Join(turnovers, ","),
	}, nil
}

// Users menghitung total user (registrasi <= akhir hari) dan user baru per hari.
func (s *ReportService) Users(begin, end time.Time) (*UserReport, error) {
	days, err := dateListBetween(begin, end)
	if err != nil {
		return nil, err
	}

	dates := make([]string, 0, len(days))
	totals := make([]string, 0, len(days))
	news := make([]string, 0, len(days))
	for _, day := range days {
		next := day.AddDate(0, 0, 1)

		var totalUser, newUser int64
		if err := s.db.Model(&models.User{}).
			Where("created_at < ?", next).
			Count(&totalUser).Error; err != nil {
			return nil, err
		}
		if err := s.db.Model(&models.User{}).
			Where("created_at >= ? AND created_at < ?", day, next).
			Count(&newUser).Error; err != nil {
			return nil, err
		}

		dates = append(dates, day.Format("2006-01-02"))
		totals = append(totals, strconv.FormatInt(totalUser, 10))
		news = append(news, strconv.FormatInt(newUser, 10))
	}

	return &UserReport{
		DateList:      strings.Join(dates, ","),
		TotalUserList: strings.Join(totals, ","),
		NewUserList:   strings.Join(news, ","),
	}, nil
}

// Orders menghitung jumlah order per hari (semua status, termasuk cancelled)
// dan order valid (completed), plus completion rate rentang.
func (s *ReportService) Orders(begin, end time.Time) (*OrderReport, error) {
	days, err := dateListBetween(begin, end)
	if err != nil {
		return nil, err
	}

	dates := make([]string, 0, len(days))
	orderCounts := make([]string, 0, len(days))
	validCounts := make([]string, 0, len(days))
	var totalOrders, validOrders int64
	for _, day := range days {
		next := day.AddDate(0, 0, 1)

		orderCount, err := s.orderCount(day, next, "")
		if err != nil {
			return nil, err
		}
		validCount, err := s.orderCount(day, next, models.OrderStatusCompleted)
		if err != nil {
			return nil, err
		}

		totalOrders += orderCount
		validOrders += validCount
		dates = append(dates, day.Format("2006-01-02"))
		orderCounts = append(orderCounts, strconv.FormatInt(orderCount, 10))
		validCounts = append(validCounts, strconv.FormatInt(validCount, 10))
	}

	// Rate 0.0 saat tidak ada order sama sekali.
	completionRate := 0.0
	if totalOrders != 0 {
		completionRate = float64(validOrders) / float64(totalOrders)
	}

	return &OrderReport{
		DateList:            strings.Join(dates, ","),
		OrderCountList:      strings.Join(orderCounts, ","),
		ValidOrderCountList: strings.Join(validCounts, ","),
		TotalOrderCount:     totalOrders,
		ValidOrderCount:     validOrders,
		OrderCompletionRate: completionRate,
	}, nil
}

// orderCount menghitung order dalam [begin, end) dengan status tertentu,
// atau semua status kalau kosong.
func (s *ReportService) orderCount(begin, end time.Time, status string) (int64, error) {
	query := s.db.Model(&models.Order{}).
		Where("order_time >= ? AND order_time < ?", begin, end)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var count int64
	err := query.Count(&count).Error
	return count, err
}

// SalesTop10 menjumlahkan quantity per nama item di seluruh rentang, hanya
// dari order completed; urut quantity turun lalu nama naik (tie-break
// deterministik), dipotong 10 besar.
func (s *ReportService) SalesTop10(begin, end time.Time) (*SalesTop10Report, error) {
	if dayStart(begin).After(dayStart(end)) {
		return nil, ErrInvalidRange
	}
	rangeBegin := dayStart(begin)
	rangeEnd := dayStart(end).AddDate(0, 0, 1)

	type goodsSales struct {
		Name   string
		Number int
	}
	var rows []goodsSales
	err := s.db.Table("order_details").
		Select("order_details.name AS name, SUM(order_details.number) AS number").
		Joins("JOIN orders ON orders.id = order_details.order_id").
		Where("orders.status = ? AND orders.order_time >= ? AND orders.order_time < ?",
			models.OrderStatusCompleted, rangeBegin, rangeEnd).
		Group("order_details.name").
		Order("SUM(order_details.number) DESC, order_details.name ASC").
		Limit(10).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(rows))
	numbers := make([]string, 0, len(rows))
	for _, r := range rows {
		names = append(names, r.Name)
		numbers = append(numbers, strconv.Itoa(r.Number))
	}

	return &SalesTop10Report{
		NameList:   strings.Join(names, ","),
		NumberList: strings.Join(numbers, ","),
	}, nil
}

// formatAmount memformat nominal dengan minimal satu digit desimal:
// 10 -> "10.0", 10.50 -> "10.5", 10.55 -> "10.55".
func formatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	if strings.HasSuffix(s, ".") {
		s += "0"
	}
	return s
}
