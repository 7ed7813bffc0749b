package models

import "gorm.io/gorm"

// Roles a user can hold. The role decides which GraphQL operations are
// open to them and how order listings are scoped.
const (
	RoleClient   = "Client"
	RoleOwner    = "Owner"
	RoleDelivery = "Delivery"
)

// User is an account on the marketplace: a customer, a restaurant owner
// or a delivery driver.
type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"` // bcrypt hash, never serialised
	Role     string `gorm:"size:50;not null" json:"role"`
	Verified bool   `gorm:"default:false" json:"verified"`

	Restaurants []Restaurant `gorm:"foreignKey:OwnerID" json:"restaurants,omitempty"`
	Orders      []Order      `gorm:"foreignKey:CustomerID" json:"orders,omitempty"`
	Rides       []Order      `gorm:"foreignKey:DriverID" json:"rides,omitempty"`
	Payments    []Payment    `gorm:"foreignKey:UserID" json:"payments,omitempty"`
}

// RoleName satisfies rbac.Subject.
func (u *User) RoleName() string { return u.Role }

// ValidRole reports whether role is one of the three known roles.
func ValidRole(role string) bool {
	return role == RoleClient || role == RoleOwner || role == RoleDelivery
}

// Verification is the one-time email confirmation code. It is deleted
// the moment it is consumed.
type Verification struct {
	gorm.Model
	Code   string `gorm:"uniqueIndex;size:64;not null" json:"code"`
	UserID uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User   `json:"-"`
}
