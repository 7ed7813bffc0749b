package models

import "gorm.io/gorm"

// Payment records a promotion purchase by a restaurant owner. The
// transaction id comes from the payment provider; nothing beyond it is
// stored. A successful payment promotes the restaurant for seven days.
type Payment struct {
	gorm.Model
	TransactionID string `gorm:"size:255;not null" json:"transactionId"`

	UserID uint `gorm:"not null;index" json:"user_id"`
	User   User `json:"-"`

	RestaurantID uint       `gorm:"not null;index" json:"restaurant_id"`
	Restaurant   Restaurant `json:"-"`
}
