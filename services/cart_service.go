package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/langitrasa/takeout-app/models"
)

// CartService menangani keranjang belanja per user.
type CartService struct {
	db *gorm.DB
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{db: db}
}

// Add menambahkan dish atau setmeal ke keranjang. Kombinasi (item, flavor)
// yang sudah ada hanya dinaikkan jumlahnya, tidak dibuat baris baru.
func (s *CartService) Add(userID uint, dishID, setmealID *uint, flavor string, number int) error {
	if number <= 0 {
		number = 1
	}

	name, price, err := s.resolveItem(dishID, setmealID)
	if err != nil {
		return err
	}

	query := s.db.Where("user_id = ?", userID)
	if dishID != nil {
		query = query.Where("dish_id = ? AND flavor = ?", *dishID, flavor)
	} else {
		query = query.Where("setmeal_id = ?", *setmealID)
	}

	var cart models.ShoppingCart
	if err := query.First(&cart).Error; err == nil {
		// Sudah ada di keranjang -> gabungkan
		cart.Number += number
		return s.db.Save(&cart).Error
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	cart = models.ShoppingCart{
		UserID:    userID,
		DishID:    dishID,
		SetmealID: setmealID,
		Name:      name,
		Flavor:    flavor,
		Amount:    price,
		Number:    number,
		CreatedAt: time.Now(),
	}
	return s.db.Create(&cart).Error
}

// List mengembalikan isi keranjang user.
func (s *CartService) List(userID uint) ([]models.ShoppingCart, error) {
	var carts []models.ShoppingCart
	err := s.db.Where("user_id = ?", userID).Order("created_at asc").Find(&carts).Error
	return carts, err
}

// Clean mengosongkan keranjang user.
func (s *CartService) Clean(userID uint) error {
	return s.db.Where("user_id = ?", userID).Delete(&models.ShoppingCart{}).Error
}

// resolveItem membaca nama + harga katalog saat ini untuk dish/setmeal.
func (s *CartService) resolveItem(dishID, setmealID *uint) (string, float64, error) {
	switch {
	case dishID != nil:
		var dish models.Dish
		if err := s.db.First(&dish, *dishID).Error; err != nil {
			return "", 0, fmt.Errorf("dish %d not found", *dishID)
		}
		return dish.Name, dish.Price, nil
	case setmealID != nil:
		var setmeal models.Setmeal
		if err := s.db.First(&setmeal, *setmealID).Error; err != nil {
			return "", 0, fmt.Errorf("setmeal %d not found", *setmealID)
		}
		return setmeal.Name, setmeal.Price, nil
	default:
		return "", 0, errors.New("either dish_id or setmeal_id is required")
	}
}
