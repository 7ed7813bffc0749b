package repositories

import (
	"gorm.io/gorm/clause"

	"github.com/shashiranjanraj/platter/app/models"
	"github.com/shashiranjanraj/platter/pkg/orm"
)

// CategoryRepository handles database operations for Category,
// including the get-or-create path used whenever a restaurant names a
// category.
type CategoryRepository struct{}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{}
}

// GetOrCreate resolves a raw category name to its canonical row,
// creating it when absent. The insert is ON CONFLICT DO NOTHING over
// the unique slug index, then the row is re-read, so two concurrent
// callers with the same name both land on the single winner.
func (r *CategoryRepository) GetOrCreate(rawName string) (models.Category, error) {
	name := models.NormalizeCategoryName(rawName)
	slug := models.CategorySlug(name)

	category := models.Category{Name: name, Slug: slug}
	err := orm.DB().Gorm().
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoNothing: true,
		}).
		Create(&category).Error
	if err != nil {
		return models.Category{}, err
	}

	return r.FindBySlug(slug)
}

// FindBySlug looks up a category by its slug.
func (r *CategoryRepository) FindBySlug(slug string) (models.Category, error) {
	var category models.Category
	err := orm.DB().Model(&models.Category{}).Where("slug = ?", slug).First(&category)
	return category, err
}

// All returns every category.
func (r *CategoryRepository) All() ([]models.Category, error) {
	var categories []models.Category
	err := orm.DB().Model(&models.Category{}).Order("slug asc").Get(&categories)
	return categories, err
}

// CountRestaurants returns how many restaurants sit in the category.
func (r *CategoryRepository) CountRestaurants(categoryID uint) (int64, error) {
	var n int64
	err := orm.DB().Model(&models.Restaurant{}).Where("category_id = ?", categoryID).Count(&n)
	return n, err
}
