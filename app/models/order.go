package models

import "gorm.io/gorm"

// Order status values as stored and exposed on the wire. "Deleverd" is
// the historical stored value for the terminal state and must not be
// corrected without a data migration.
const (
	StatusPending   = "Pending"
	StatusCooking   = "Cooking"
	StatusCooked    = "Cooked"
	StatusPickedUp  = "PickedUp"
	StatusDelivered = "Deleverd"
)

// OrderItemOption is the customer's selection for one dish option,
// copied verbatim at order time.
type OrderItemOption struct {
	Name   string `json:"name"`
	Choice string `json:"choice,omitempty"`
}

// OrderItem is an immutable snapshot of one ordered dish plus the
// option selections made for it.
type OrderItem struct {
	gorm.Model
	DishID  uint              `gorm:"not null;index" json:"dish_id"`
	Dish    Dish              `json:"dish,omitempty"`
	Options []OrderItemOption `gorm:"serializer:json" json:"options,omitempty"`
}

// Order is one purchase: a customer, a restaurant, the items, the total
// computed at creation, and the delivery status. The driver is bound on
// the first PickedUp/Deleverd edit by a Delivery user.
type Order struct {
	gorm.Model
	CustomerID uint `gorm:"not null;index" json:"customer_id"`
	Customer   User `json:"-"`

	DriverID *uint `gorm:"index" json:"driver_id,omitempty"`
	Driver   *User `json:"-"`

	RestaurantID uint       `gorm:"not null;index" json:"restaurant_id"`
	Restaurant   Restaurant `json:"-"`

	Items []OrderItem `gorm:"many2many:order_items_join" json:"items,omitempty"`

	Total  int    `gorm:"not null;default:0" json:"total"`
	Status string `gorm:"size:50;not null;default:Pending;index" json:"status"`
}
