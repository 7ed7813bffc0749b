package repositories

import (
	"github.com/shashiranjanraj/platter/app/models"
	"github.com/shashiranjanraj/platter/pkg/orm"
)

// OrderRepository handles database operations for Order.
type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// FindByID loads an order with its restaurant and items.
func (r *OrderRepository) FindByID(id uint) (models.Order, error) {
	var order models.Order
	err := orm.DB().Model(&models.Order{}).
		Preload("Restaurant").
		Preload("Items").
		Preload("Items.Dish").
		Where("id = ?", id).
		First(&order)
	return order, err
}

// Create persists a new order together with its items.
func (r *OrderRepository) Create(order *models.Order) error {
	return orm.DB().Create(order)
}

// Update persists changes to an existing order.
func (r *OrderRepository) Update(order *models.Order) error {
	return orm.DB().Save(order)
}

// scoped applies the optional status filter on top of an existing query.
func scoped(q *orm.Query, status string) *orm.Query {
	if status != "" {
		return q.Where("status = ?", status)
	}
	return q
}

// ByCustomer returns a customer's orders, newest first.
func (r *OrderRepository) ByCustomer(customerID uint, status string) ([]models.Order, error) {
	var orders []models.Order
	q := orm.DB().Model(&models.Order{}).Where("customer_id = ?", customerID)
	err := scoped(q, status).Order("id desc").Get(&orders)
	return orders, err
}

// ByDriver returns a driver's orders, newest first.
func (r *OrderRepository) ByDriver(driverID uint, status string) ([]models.Order, error) {
	var orders []models.Order
	q := orm.DB().Model(&models.Order{}).Where("driver_id = ?", driverID)
	err := scoped(q, status).Order("id desc").Get(&orders)
	return orders, err
}

// ByRestaurants returns every order placed at the given restaurants,
// newest first. Used to scope an owner's view to their own stores.
func (r *OrderRepository) ByRestaurants(restaurantIDs []uint, status string) ([]models.Order, error) {
	var orders []models.Order
	if len(restaurantIDs) == 0 {
		return orders, nil
	}
	q := orm.DB().Model(&models.Order{}).Where("restaurant_id IN ?", restaurantIDs)
	err := scoped(q, status).Order("id desc").Get(&orders)
	return orders, err
}
