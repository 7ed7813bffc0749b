package models

import (
	"strings"

	"gorm.io/gorm"
)

// Category groups restaurants. Categories are created on demand when a
// restaurant names one, never by a dedicated mutation; the unique slug
// index keeps concurrent get-or-create races down to one winner.
type Category struct {
	gorm.Model
	Name       string `gorm:"size:255;not null" json:"name"`
	Slug       string `gorm:"uniqueIndex;size:255;not null" json:"slug"`
	CoverImage string `gorm:"size:512" json:"coverImage"`

	Restaurants []Restaurant `gorm:"foreignKey:CategoryID" json:"restaurants,omitempty"`
}

// NormalizeCategoryName trims and lowercases a raw category name so
// "Fast  Food", "fast food" and " FAST FOOD " all collapse to one row.
func NormalizeCategoryName(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// CategorySlug derives the URL slug from a normalized name.
func CategorySlug(normalized string) string {
	return strings.ReplaceAll(normalized, " ", "-")
}
