package repositories

import (
	"strings"
	"time"

	"github.com/shashiranjanraj/platter/app/models"
	"github.com/shashiranjanraj/platter/pkg/orm"
)

// RestaurantRepository handles database operations for Restaurant.
type RestaurantRepository struct{}

func NewRestaurantRepository() *RestaurantRepository {
	return &RestaurantRepository{}
}

// FindByID looks up a restaurant by primary key.
func (r *RestaurantRepository) FindByID(id uint) (models.Restaurant, error) {
	var restaurant models.Restaurant
	err := orm.DB().Model(&models.Restaurant{}).Where("id = ?", id).First(&restaurant)
	return restaurant, err
}

// FindByIDWithMenu loads a restaurant together with its dishes and category.
func (r *RestaurantRepository) FindByIDWithMenu(id uint) (models.Restaurant, error) {
	var restaurant models.Restaurant
	err := orm.DB().Model(&models.Restaurant{}).
		Preload("Dishes").
		Preload("Category").
		Where("id = ?", id).
		First(&restaurant)
	return restaurant, err
}

// Create persists a new restaurant.
func (r *RestaurantRepository) Create(restaurant *models.Restaurant) error {
	return orm.DB().Create(restaurant)
}

// Update persists changes to an existing restaurant.
func (r *RestaurantRepository) Update(restaurant *models.Restaurant) error {
	return orm.DB().Save(restaurant)
}

// Delete removes a restaurant.
func (r *RestaurantRepository) Delete(restaurant *models.Restaurant) error {
	return orm.DB().Delete(restaurant)
}

// All returns one page of restaurants, promoted rows first.
func (r *RestaurantRepository) All(page int) ([]models.Restaurant, orm.Pagination, error) {
	var restaurants []models.Restaurant
	pagination, err := orm.DB().Model(&models.Restaurant{}).
		Order("is_promoted desc, id desc").
		Paginate(&restaurants, page)
	return restaurants, pagination, err
}

// SearchByName returns one page of restaurants whose name contains the
// query, case-insensitively, promoted rows first.
func (r *RestaurantRepository) SearchByName(query string, page int) ([]models.Restaurant, orm.Pagination, error) {
	var restaurants []models.Restaurant
	needle := "%" + strings.ToLower(query) + "%"
	pagination, err := orm.DB().Model(&models.Restaurant{}).
		Where("lower(name) LIKE ?", needle).
		Order("is_promoted desc, id desc").
		Paginate(&restaurants, page)
	return restaurants, pagination, err
}

// ByCategory returns one page of a category's restaurants, promoted first.
func (r *RestaurantRepository) ByCategory(categoryID uint, page int) ([]models.Restaurant, orm.Pagination, error) {
	var restaurants []models.Restaurant
	pagination, err := orm.DB().Model(&models.Restaurant{}).
		Where("category_id = ?", categoryID).
		Order("is_promoted desc, id desc").
		Paginate(&restaurants, page)
	return restaurants, pagination, err
}

// ByOwner returns every restaurant owned by the user.
func (r *RestaurantRepository) ByOwner(ownerID uint) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	err := orm.DB().Model(&models.Restaurant{}).
		Where("owner_id = ?", ownerID).
		Order("id desc").
		Get(&restaurants)
	return restaurants, err
}

// ClearExpiredPromotions unsets the promoted flag on every restaurant
// whose paid window has lapsed. Returns the number of rows touched.
func (r *RestaurantRepository) ClearExpiredPromotions(now time.Time) (int64, error) {
	res := orm.DB().Gorm().
		Model(&models.Restaurant{}).
		Where("is_promoted = ? AND promoted_until < ?", true, now).
		Updates(map[string]interface{}{
			"is_promoted":    false,
			"promoted_until": nil,
		})
	return res.RowsAffected, res.Error
}

// OwnedIDs returns the ids of every restaurant the user owns.
func (r *RestaurantRepository) OwnedIDs(ownerID uint) ([]uint, error) {
	var ids []uint
	err := orm.DB().Model(&models.Restaurant{}).
		Where("owner_id = ?", ownerID).
		Gorm().
		Pluck("id", &ids).Error
	return ids, err
}
