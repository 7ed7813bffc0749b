package models

import "gorm.io/gorm"

// DishChoice is one selectable value inside an option, optionally
// carrying its own surcharge.
type DishChoice struct {
	Name  string `json:"name"`
	Extra int    `json:"extra,omitempty"`
}

// DishOption is a configurable aspect of a dish ("Spice Level", "Size").
// Either the option itself or one of its choices may carry an extra.
type DishOption struct {
	Name    string       `json:"name"`
	Extra   int          `json:"extra,omitempty"`
	Choices []DishChoice `json:"choices,omitempty"`
}

// Dish is a menu item. Options are stored as a JSON document verbatim;
// they are priced at order time, never validated at order time.
type Dish struct {
	gorm.Model
	Name        string `gorm:"size:255;not null;index" json:"name"`
	Price       int    `gorm:"not null;default:0" json:"price"`
	Description string `gorm:"type:text" json:"description"`
	Photo       string `gorm:"size:512" json:"photo"`

	Options []DishOption `gorm:"serializer:json" json:"options,omitempty"`

	RestaurantID uint       `gorm:"not null;index" json:"restaurant_id"`
	Restaurant   Restaurant `json:"-"`
}
