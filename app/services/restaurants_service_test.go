package services_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/shashiranjanraj/platter/app/models"
	"github.com/shashiranjanraj/platter/app/services"
	"github.com/shashiranjanraj/platter/pkg/faults"
	"github.com/shashiranjanraj/platter/pkg/orm"
)

func TestCreateRestaurantNormalizesCategory(t *testing.T) {
	db := setupDB(t)
	svc := services.NewRestaurantsService()
	owner := mustUser(t, db, "owner@example.com", models.RoleOwner)

	first, ferr := svc.CreateRestaurant(owner.ID, services.CreateRestaurantInput{
		Name:         "Burger Barn",
		Address:      "1 Main St",
		CategoryName: "  Fast Food ",
	})
	if ferr != nil {
		t.Fatalf("create restaurant: %v", ferr)
	}

	var category models.Category
	if err := db.First(&category, first.CategoryID).Error; err != nil {
		t.Fatalf("load category: %v", err)
	}
	if category.Name != "fast food" {
		t.Errorf("category name = %q, want %q", category.Name, "fast food")
	}
	if category.Slug != "fast-food" {
		t.Errorf("category slug = %q, want %q", category.Slug, "fast-food")
	}

	// Any spelling of the same name resolves to the same category.
	second, ferr := svc.CreateRestaurant(owner.ID, services.CreateRestaurantInput{
		Name:         "Fry Shack",
		Address:      "2 Main St",
		CategoryName: "FAST FOOD",
	})
	if ferr != nil {
		t.Fatalf("create second restaurant: %v", ferr)
	}
	if second.CategoryID != first.CategoryID {
		t.Errorf("category ids differ: %d vs %d", second.CategoryID, first.CategoryID)
	}

	var count int64
	db.Model(&models.Category{}).Count(&count)
	if count != 1 {
		t.Errorf("categories = %d, want 1", count)
	}
}

func TestEditRestaurantOwnership(t *testing.T) {
	db := setupDB(t)
	svc := services.NewRestaurantsService()
	owner := mustUser(t, db, "owner@example.com", models.RoleOwner)
	other := mustUser(t, db, "other@example.com", models.RoleOwner)
	restaurant := mustRestaurant(t, db, owner.ID, "Burger Barn")

	if ferr := svc.EditRestaurant(other.ID, restaurant.ID, services.EditRestaurantInput{Name: "Stolen"}); ferr == nil || ferr.Kind != faults.NotOwner {
		t.Fatalf("edit by non-owner = %v, want NotOwner", ferr)
	}

	if ferr := svc.EditRestaurant(owner.ID, restaurant.ID, services.EditRestaurantInput{Name: "Renamed"}); ferr != nil {
		t.Fatalf("edit by owner: %v", ferr)
	}

	var fresh models.Restaurant
	db.First(&fresh, restaurant.ID)
	if fresh.Name != "Renamed" {
		t.Errorf("name = %q, want Renamed", fresh.Name)
	}

	if ferr := svc.EditRestaurant(owner.ID, 9999, services.EditRestaurantInput{Name: "x"}); ferr == nil || ferr.Kind != faults.NotFound {
		t.Errorf("edit missing = %v, want NotFound", ferr)
	}
}

func TestDishOwnershipIsTransitive(t *testing.T) {
	db := setupDB(t)
	svc := services.NewRestaurantsService()
	owner := mustUser(t, db, "owner@example.com", models.RoleOwner)
	other := mustUser(t, db, "other@example.com", models.RoleOwner)
	restaurant := mustRestaurant(t, db, owner.ID, "Burger Barn")

	dish, ferr := svc.CreateDish(owner.ID, services.CreateDishInput{
		RestaurantID: restaurant.ID,
		Name:         "Cheeseburger",
		Price:        9,
	})
	if ferr != nil {
		t.Fatalf("create dish: %v", ferr)
	}

	if _, ferr := svc.CreateDish(other.ID, services.CreateDishInput{
		RestaurantID: restaurant.ID,
		Name:         "Impostor",
		Price:        1,
	}); ferr == nil || ferr.Kind != faults.NotOwner {
		t.Fatalf("create dish on foreign restaurant = %v, want NotOwner", ferr)
	}

	if ferr := svc.EditDish(other.ID, dish.ID, services.EditDishInput{Name: "Hacked"}); ferr == nil || ferr.Kind != faults.NotOwner {
		t.Fatalf("edit dish by non-owner = %v, want NotOwner", ferr)
	}

	if ferr := svc.DeleteDish(owner.ID, dish.ID); ferr != nil {
		t.Fatalf("delete dish by owner: %v", ferr)
	}
}

func TestEditDishRejectsNegativePrice(t *testing.T) {
	db := setupDB(t)
	svc := services.NewRestaurantsService()
	owner := mustUser(t, db, "owner@example.com", models.RoleOwner)
	restaurant := mustRestaurant(t, db, owner.ID, "Burger Barn")
	dish := mustDish(t, db, restaurant.ID, "Cheeseburger", 9)

	bad := -1
	if ferr := svc.EditDish(owner.ID, dish.ID, services.EditDishInput{Price: &bad}); ferr == nil || ferr.Kind != faults.Invalid {
		t.Fatalf("negative price = %v, want Invalid", ferr)
	}
}

func TestAllRestaurantsPagination(t *testing.T) {
	db := setupDB(t)
	svc := services.NewRestaurantsService()
	owner := mustUser(t, db, "owner@example.com", models.RoleOwner)

	for i := 0; i < orm.PerPage+5; i++ {
		mustRestaurant(t, db, owner.ID, fmt.Sprintf("Place %02d", i))
	}
	// Promote the oldest restaurant; it must surface on page one.
	until := time.Now().Add(time.Hour)
	db.Model(&models.Restaurant{}).Where("name = ?", "Place 00").
		Updates(map[string]interface{}{"is_promoted": true, "promoted_until": until})

	page1, pagination, ferr := svc.AllRestaurants(1)
	if ferr != nil {
		t.Fatalf("list page 1: %v", ferr)
	}
	if len(page1) != orm.PerPage {
		t.Fatalf("page 1 size = %d, want %d", len(page1), orm.PerPage)
	}
	if !page1[0].IsPromoted || page1[0].Name != "Place 00" {
		t.Errorf("first result = %q promoted=%v, want promoted Place 00", page1[0].Name, page1[0].IsPromoted)
	}
	if pagination.TotalPages != 2 {
		t.Errorf("total pages = %d, want 2", pagination.TotalPages)
	}
	if pagination.Total != int64(orm.PerPage+5) {
		t.Errorf("total = %d, want %d", pagination.Total, orm.PerPage+5)
	}

	page2, _, ferr := svc.AllRestaurants(2)
	if ferr != nil {
		t.Fatalf("list page 2: %v", ferr)
	}
	if len(page2) != 5 {
		t.Errorf("page 2 size = %d, want 5", len(page2))
	}
}

func TestSearchRestaurantByNameIsCaseInsensitive(t *testing.T) {
	db := setupDB(t)
	svc := services.NewRestaurantsService()
	owner := mustUser(t, db, "owner@example.com", models.RoleOwner)
	mustRestaurant(t, db, owner.ID, "Burger Barn")
	mustRestaurant(t, db, owner.ID, "Sushi Spot")

	results, _, ferr := svc.SearchRestaurantByName("bUrGeR", 1)
	if ferr != nil {
		t.Fatalf("search: %v", ferr)
	}
	if len(results) != 1 || results[0].Name != "Burger Barn" {
		t.Fatalf("results = %+v, want just Burger Barn", results)
	}
}

func TestFindCategoryBySlug(t *testing.T) {
	db := setupDB(t)
	svc := services.NewRestaurantsService()
	owner := mustUser(t, db, "owner@example.com", models.RoleOwner)

	if _, ferr := svc.CreateRestaurant(owner.ID, services.CreateRestaurantInput{
		Name:         "Burger Barn",
		Address:      "1 Main St",
		CategoryName: "Fast Food",
	}); ferr != nil {
		t.Fatalf("create restaurant: %v", ferr)
	}

	category, restaurants, pagination, ferr := svc.FindCategoryBySlug("fast-food", 1)
	if ferr != nil {
		t.Fatalf("find category: %v", ferr)
	}
	if category.Slug != "fast-food" {
		t.Errorf("slug = %q", category.Slug)
	}
	if len(restaurants) != 1 || pagination.Total != 1 {
		t.Errorf("restaurants = %d total = %d, want 1/1", len(restaurants), pagination.Total)
	}

	if _, _, _, ferr := svc.FindCategoryBySlug("missing", 1); ferr == nil || ferr.Kind != faults.NotFound {
		t.Errorf("missing slug = %v, want NotFound", ferr)
	}
}
