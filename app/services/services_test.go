package services_test

import (
	"fmt"
	"sync/atomic"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/shashiranjanraj/platter/app/models"
	"github.com/shashiranjanraj/platter/pkg/database"
)

var dbSeq atomic.Int64

// setupDB points the shared connection at a fresh in-memory sqlite
// database. Each test gets its own named database so state never leaks
// between tests.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:services_test_%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Verification{},
		&models.Category{},
		&models.Restaurant{},
		&models.Dish{},
		&models.OrderItem{},
		&models.Order{},
		&models.Payment{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	database.Use(db)
	return db
}

func mustUser(t *testing.T, db *gorm.DB, email, role string) models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := models.User{Email: email, Password: string(hash), Role: role, Verified: true}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return user
}

func mustRestaurant(t *testing.T, db *gorm.DB, ownerID uint, name string) models.Restaurant {
	t.Helper()

	category := models.Category{Name: "test food", Slug: fmt.Sprintf("test-food-%d", dbSeq.Add(1))}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}
	restaurant := models.Restaurant{
		Name:       name,
		Address:    "1 Test Street",
		OwnerID:    ownerID,
		CategoryID: category.ID,
	}
	if err := db.Create(&restaurant).Error; err != nil {
		t.Fatalf("create restaurant %s: %v", name, err)
	}
	return restaurant
}

func mustDish(t *testing.T, db *gorm.DB, restaurantID uint, name string, price int, options ...models.DishOption) models.Dish {
	t.Helper()

	dish := models.Dish{
		Name:         name,
		Price:        price,
		RestaurantID: restaurantID,
		Options:      options,
	}
	if err := db.Create(&dish).Error; err != nil {
		t.Fatalf("create dish %s: %v", name, err)
	}
	return dish
}
