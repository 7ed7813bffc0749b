package repositories

import (
	"github.com/shashiranjanraj/platter/app/models"
	"github.com/shashiranjanraj/platter/pkg/orm"
)

// DishRepository handles database operations for Dish.
type DishRepository struct{}

func NewDishRepository() *DishRepository {
	return &DishRepository{}
}

// FindByID looks up a dish by primary key.
func (r *DishRepository) FindByID(id uint) (models.Dish, error) {
	var dish models.Dish
	err := orm.DB().Model(&models.Dish{}).Where("id = ?", id).First(&dish)
	return dish, err
}

// Create persists a new dish.
func (r *DishRepository) Create(dish *models.Dish) error {
	return orm.DB().Create(dish)
}

// Update persists changes to an existing dish.
func (r *DishRepository) Update(dish *models.Dish) error {
	return orm.DB().Save(dish)
}

// Delete removes a dish.
func (r *DishRepository) Delete(dish *models.Dish) error {
	return orm.DB().Delete(dish)
}
