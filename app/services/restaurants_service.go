package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/platter/app/models"
	"github.com/shashiranjanraj/platter/app/repositories"
	"github.com/shashiranjanraj/platter/pkg/cache"
	"github.com/shashiranjanraj/platter/pkg/faults"
	"github.com/shashiranjanraj/platter/pkg/orm"
)

// cache keys invalidated whenever a restaurant or category changes
const categoriesCacheKey = "platter:categories:all"

// RestaurantsService manages restaurants, their menus and categories.
type RestaurantsService struct {
	restaurants *repositories.RestaurantRepository
	categories  *repositories.CategoryRepository
	dishes      *repositories.DishRepository
}

func NewRestaurantsService() *RestaurantsService {
	return &RestaurantsService{
		restaurants: repositories.NewRestaurantRepository(),
		categories:  repositories.NewCategoryRepository(),
		dishes:      repositories.NewDishRepository(),
	}
}

// CreateRestaurantInput carries the fields for a new restaurant.
type CreateRestaurantInput struct {
	Name         string `json:"name" validate:"required,min=2,max=255"`
	Address      string `json:"address" validate:"required"`
	CoverImage   string `json:"coverImage" validate:"nullable,url"`
	CategoryName string `json:"categoryName" validate:"required"`
}

// CreateRestaurant registers a restaurant under the owner, resolving
// the category by name (created on demand).
func (s *RestaurantsService) CreateRestaurant(ownerID uint, in CreateRestaurantInput) (*models.Restaurant, *faults.Error) {
	if errs := validateInput(in); errs != nil {
		return nil, errs
	}

	category, err := s.categories.GetOrCreate(in.CategoryName)
	if err != nil {
		return nil, faults.Wrap(err, "Could not create restaurant")
	}

	restaurant := models.Restaurant{
		Name:       in.Name,
		Address:    in.Address,
		CoverImage: in.CoverImage,
		OwnerID:    ownerID,
		CategoryID: category.ID,
	}
	if err := s.restaurants.Create(&restaurant); err != nil {
		return nil, faults.Wrap(err, "Could not create restaurant")
	}

	cache.Del(categoriesCacheKey)
	return &restaurant, nil
}

// canEdit loads a restaurant and checks the caller owns it. Every
// restaurant and dish mutation goes through here first.
func (s *RestaurantsService) canEdit(ownerID, restaurantID uint) (models.Restaurant, *faults.Error) {
	restaurant, err := s.restaurants.FindByID(restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Restaurant{}, faults.New(faults.NotFound, "Restaurant not found")
		}
		return models.Restaurant{}, faults.Wrap(err, "Could not load restaurant")
	}
	if restaurant.OwnerID != ownerID {
		return models.Restaurant{}, faults.New(faults.NotOwner, "You can't edit a restaurant that you don't own")
	}
	return restaurant, nil
}

// EditRestaurantInput carries the optional restaurant changes. Empty
// fields are left untouched.
type EditRestaurantInput struct {
	Name         string `json:"name"`
	Address      string `json:"address"`
	CoverImage   string `json:"coverImage"`
	CategoryName string `json:"categoryName"`
}

// EditRestaurant applies a partial update to an owned restaurant. The
// category is re-resolved only when a name is supplied.
func (s *RestaurantsService) EditRestaurant(ownerID, restaurantID uint, in EditRestaurantInput) *faults.Error {
	restaurant, ferr := s.canEdit(ownerID, restaurantID)
	if ferr != nil {
		return ferr
	}

	if in.Name != "" {
		restaurant.Name = in.Name
	}
	if in.Address != "" {
		restaurant.Address = in.Address
	}
	if in.CoverImage != "" {
		restaurant.CoverImage = in.CoverImage
	}
	if in.CategoryName != "" {
		category, err := s.categories.GetOrCreate(in.CategoryName)
		if err != nil {
			return faults.Wrap(err, "Could not edit restaurant")
		}
		restaurant.CategoryID = category.ID
	}

	if err := s.restaurants.Update(&restaurant); err != nil {
		return faults.Wrap(err, "Could not edit restaurant")
	}

	cache.Del(categoriesCacheKey)
	return nil
}

// DeleteRestaurant removes an owned restaurant.
func (s *RestaurantsService) DeleteRestaurant(ownerID, restaurantID uint) *faults.Error {
	restaurant, ferr := s.canEdit(ownerID, restaurantID)
	if ferr != nil {
		return ferr
	}
	if err := s.restaurants.Delete(&restaurant); err != nil {
		return faults.Wrap(err, "Could not delete restaurant")
	}
	cache.Del(categoriesCacheKey)
	return nil
}

// AllRestaurants returns one page of restaurants, promoted first.
func (s *RestaurantsService) AllRestaurants(page int) ([]models.Restaurant, orm.Pagination, *faults.Error) {
	restaurants, pagination, err := s.restaurants.All(page)
	if err != nil {
		return nil, orm.Pagination{}, faults.Wrap(err, "Could not load restaurants")
	}
	return restaurants, pagination, nil
}

// FindRestaurantByID returns one restaurant with its menu.
func (s *RestaurantsService) FindRestaurantByID(id uint) (*models.Restaurant, *faults.Error) {
	restaurant, err := s.restaurants.FindByIDWithMenu(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, faults.New(faults.NotFound, "Restaurant not found")
		}
		return nil, faults.Wrap(err, "Could not find restaurant")
	}
	return &restaurant, nil
}

// SearchRestaurantByName returns one page of restaurants whose name
// contains the query, case-insensitively.
func (s *RestaurantsService) SearchRestaurantByName(query string, page int) ([]models.Restaurant, orm.Pagination, *faults.Error) {
	restaurants, pagination, err := s.restaurants.SearchByName(query, page)
	if err != nil {
		return nil, orm.Pagination{}, faults.Wrap(err, "Could not search for restaurants")
	}
	return restaurants, pagination, nil
}

// MyRestaurants returns every restaurant the caller owns.
func (s *RestaurantsService) MyRestaurants(ownerID uint) ([]models.Restaurant, *faults.Error) {
	restaurants, err := s.restaurants.ByOwner(ownerID)
	if err != nil {
		return nil, faults.Wrap(err, "Could not find restaurants")
	}
	return restaurants, nil
}

// CategoryWithCount pairs a category with its restaurant count.
type CategoryWithCount struct {
	models.Category
	RestaurantCount int64 `json:"restaurantCount"`
}

// AllCategories lists every category with its restaurant count. The
// result is cached; restaurant and category writes invalidate it.
func (s *RestaurantsService) AllCategories() ([]CategoryWithCount, *faults.Error) {
	var cached []CategoryWithCount
	if cache.Get(categoriesCacheKey, &cached) {
		return cached, nil
	}

	categories, err := s.categories.All()
	if err != nil {
		return nil, faults.Wrap(err, "Could not load categories")
	}

	out := make([]CategoryWithCount, 0, len(categories))
	for _, c := range categories {
		n, err := s.categories.CountRestaurants(c.ID)
		if err != nil {
			return nil, faults.Wrap(err, "Could not load categories")
		}
		out = append(out, CategoryWithCount{Category: c, RestaurantCount: n})
	}

	cache.Set(categoriesCacheKey, out, 10*time.Minute)
	return out, nil
}

// FindCategoryBySlug returns a category and one page of its restaurants.
func (s *RestaurantsService) FindCategoryBySlug(slug string, page int) (*models.Category, []models.Restaurant, orm.Pagination, *faults.Error) {
	category, err := s.categories.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, orm.Pagination{}, faults.New(faults.NotFound, "Category not found")
		}
		return nil, nil, orm.Pagination{}, faults.Wrap(err, "Could not load category")
	}

	restaurants, pagination, err := s.restaurants.ByCategory(category.ID, page)
	if err != nil {
		return nil, nil, orm.Pagination{}, faults.Wrap(err, "Could not load category")
	}
	return &category, restaurants, pagination, nil
}

// CreateDishInput carries the fields for a new menu item.
type CreateDishInput struct {
	RestaurantID uint                `json:"restaurantId" validate:"required"`
	Name         string              `json:"name" validate:"required,min=2,max=255"`
	Price        int                 `json:"price" validate:"required,gte=0"`
	Description  string              `json:"description"`
	Photo        string              `json:"photo" validate:"nullable,url"`
	Options      []models.DishOption `json:"options"`
}

// CreateDish adds a dish to an owned restaurant's menu.
func (s *RestaurantsService) CreateDish(ownerID uint, in CreateDishInput) (*models.Dish, *faults.Error) {
	if errs := validateInput(in); errs != nil {
		return nil, errs
	}

	if _, ferr := s.canEdit(ownerID, in.RestaurantID); ferr != nil {
		return nil, ferr
	}

	dish := models.Dish{
		Name:         in.Name,
		Price:        in.Price,
		Description:  in.Description,
		Photo:        in.Photo,
		Options:      in.Options,
		RestaurantID: in.RestaurantID,
	}
	if err := s.dishes.Create(&dish); err != nil {
		return nil, faults.Wrap(err, "Could not create dish")
	}
	return &dish, nil
}

// canEditDish resolves a dish and checks ownership transitively through
// its restaurant.
func (s *RestaurantsService) canEditDish(ownerID, dishID uint) (models.Dish, *faults.Error) {
	dish, err := s.dishes.FindByID(dishID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Dish{}, faults.New(faults.NotFound, "Dish not found")
		}
		return models.Dish{}, faults.Wrap(err, "Could not load dish")
	}
	if _, ferr := s.canEdit(ownerID, dish.RestaurantID); ferr != nil {
		return models.Dish{}, ferr
	}
	return dish, nil
}

// EditDishInput carries the optional dish changes.
type EditDishInput struct {
	Name        string              `json:"name"`
	Price       *int                `json:"price"`
	Description string              `json:"description"`
	Photo       string              `json:"photo"`
	Options     []models.DishOption `json:"options"`
}

// EditDish applies a partial update to a dish on an owned restaurant.
func (s *RestaurantsService) EditDish(ownerID, dishID uint, in EditDishInput) *faults.Error {
	dish, ferr := s.canEditDish(ownerID, dishID)
	if ferr != nil {
		return ferr
	}

	if in.Name != "" {
		dish.Name = in.Name
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return faults.New(faults.Invalid, "The price must be greater than or equal to 0.")
		}
		dish.Price = *in.Price
	}
	if in.Description != "" {
		dish.Description = in.Description
	}
	if in.Photo != "" {
		dish.Photo = in.Photo
	}
	if in.Options != nil {
		dish.Options = in.Options
	}

	if err := s.dishes.Update(&dish); err != nil {
		return faults.Wrap(err, "Could not edit dish")
	}
	return nil
}

// DeleteDish removes a dish from an owned restaurant's menu.
func (s *RestaurantsService) DeleteDish(ownerID, dishID uint) *faults.Error {
	dish, ferr := s.canEditDish(ownerID, dishID)
	if ferr != nil {
		return ferr
	}
	if err := s.dishes.Delete(&dish); err != nil {
		return faults.Wrap(err, "Could not delete dish")
	}
	return nil
}

// Promote marks a restaurant promoted until the given time. Called by
// the payments service after the ownership check has already passed.
func (s *RestaurantsService) Promote(restaurant *models.Restaurant, until time.Time) *faults.Error {
	restaurant.IsPromoted = true
	restaurant.PromotedUntil = &until
	if err := s.restaurants.Update(restaurant); err != nil {
		return faults.Wrap(err, "Could not promote restaurant")
	}
	return nil
}
