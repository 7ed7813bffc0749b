package seeders

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/platter/app/models"
)

func init() {
	Register("categories", SeedCategories)
	Register("demo-users", SeedDemoUsers)
	Register("demo-restaurant", SeedDemoRestaurant)
}

// SeedCategories inserts the starter browse categories.
func SeedCategories(db *gorm.DB) error {
	for _, name := range []string{"Fast Food", "Pizza", "Sushi", "Desserts", "Indian"} {
		normalized := models.NormalizeCategoryName(name)
		category := models.Category{
			Name: normalized,
			Slug: models.CategorySlug(normalized),
		}
		if err := db.Where(models.Category{Slug: category.Slug}).
			FirstOrCreate(&category).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedDemoUsers creates one verified account per role, all with the
// password "password".
func SeedDemoUsers(db *gorm.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := []models.User{
		{Email: "owner@platter.test", Role: models.RoleOwner},
		{Email: "client@platter.test", Role: models.RoleClient},
		{Email: "driver@platter.test", Role: models.RoleDelivery},
	}
	for _, u := range users {
		u.Password = string(hash)
		u.Verified = true
		if err := db.Where(models.User{Email: u.Email}).FirstOrCreate(&u).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedDemoRestaurant creates a restaurant with a small menu under the
// demo owner account.
func SeedDemoRestaurant(db *gorm.DB) error {
	var owner models.User
	if err := db.Where("email = ?", "owner@platter.test").First(&owner).Error; err != nil {
		return err
	}

	var category models.Category
	if err := db.Where("slug = ?", "pizza").First(&category).Error; err != nil {
		return err
	}

	restaurant := models.Restaurant{
		Name:       "Demo Pizzeria",
		Address:    "1 Demo Street",
		OwnerID:    owner.ID,
		CategoryID: category.ID,
	}
	if err := db.Where(models.Restaurant{Name: restaurant.Name, OwnerID: owner.ID}).
		FirstOrCreate(&restaurant).Error; err != nil {
		return err
	}

	dishes := []models.Dish{
		{
			Name:         "Margherita",
			Price:        12,
			Description:  "Tomato, mozzarella, basil",
			RestaurantID: restaurant.ID,
			Options: []models.DishOption{
				{Name: "Size", Choices: []models.DishChoice{
					{Name: "Medium"},
					{Name: "Large", Extra: 3},
				}},
				{Name: "Extra Cheese", Extra: 2},
			},
		},
		{
			Name:         "Pepperoni",
			Price:        14,
			Description:  "Tomato, mozzarella, pepperoni",
			RestaurantID: restaurant.ID,
		},
	}
	for _, d := range dishes {
		existing := models.Dish{Name: d.Name, RestaurantID: restaurant.ID}
		if err := db.Where(existing).Attrs(d).FirstOrCreate(&d).Error; err != nil {
			return err
		}
	}
	return nil
}
