package migrations

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/platter/app/models"
	"github.com/shashiranjanraj/platter/pkg/migration"
	"github.com/shashiranjanraj/platter/pkg/queue"
)

func init() {
	migration.Register("20260301000000_create_users_table", &CreateUsersTable{})
	migration.Register("20260301000001_create_categories_table", &CreateCategoriesTable{})
	migration.Register("20260301000002_create_restaurants_table", &CreateRestaurantsTable{})
	migration.Register("20260301000003_create_dishes_table", &CreateDishesTable{})
	migration.Register("20260301000004_create_orders_table", &CreateOrdersTable{})
	migration.Register("20260301000005_create_payments_table", &CreatePaymentsTable{})
	migration.Register("20260301000006_create_failed_jobs_table", &CreateFailedJobsTable{})
}

// -------- 0000: users + verifications --------

type CreateUsersTable struct{}

func (m *CreateUsersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Verification{})
}

func (m *CreateUsersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("verifications", "users")
}

// -------- 0001: categories --------

type CreateCategoriesTable struct{}

func (m *CreateCategoriesTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Category{})
}

func (m *CreateCategoriesTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("categories")
}

// -------- 0002: restaurants --------

type CreateRestaurantsTable struct{}

func (m *CreateRestaurantsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Restaurant{})
}

func (m *CreateRestaurantsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("restaurants")
}

// -------- 0003: dishes --------

type CreateDishesTable struct{}

func (m *CreateDishesTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Dish{})
}

func (m *CreateDishesTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("dishes")
}

// -------- 0004: orders + items --------

type CreateOrdersTable struct{}

func (m *CreateOrdersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.OrderItem{}, &models.Order{})
}

func (m *CreateOrdersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("order_items_join", "orders", "order_items")
}

// -------- 0005: payments --------

type CreatePaymentsTable struct{}

func (m *CreatePaymentsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Payment{})
}

func (m *CreatePaymentsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("payments")
}

// -------- 0006: failed queue jobs --------

type CreateFailedJobsTable struct{}

func (m *CreateFailedJobsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&queue.FailedJobRecord{})
}

func (m *CreateFailedJobsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("failed_jobs")
}
