package models

import (
	"time"

	"gorm.io/gorm"
)

// Restaurant is a storefront owned by a single Owner user. Ownership is
// fixed at creation and every mutation re-checks it.
type Restaurant struct {
	gorm.Model
	Name       string `gorm:"size:255;not null;index" json:"name"`
	Address    string `gorm:"size:255;not null" json:"address"`
	CoverImage string `gorm:"size:512" json:"coverImage"`

	OwnerID uint `gorm:"not null;index" json:"owner_id"`
	Owner   User `json:"-"`

	CategoryID uint     `gorm:"index" json:"category_id"`
	Category   Category `json:"category,omitempty"`

	Dishes []Dish  `gorm:"foreignKey:RestaurantID" json:"menu,omitempty"`
	Orders []Order `gorm:"foreignKey:RestaurantID" json:"orders,omitempty"`

	// Promoted restaurants sort first in listings until PromotedUntil.
	IsPromoted    bool       `gorm:"default:false;index" json:"isPromoted"`
	PromotedUntil *time.Time `json:"promotedUntil,omitempty"`
}
