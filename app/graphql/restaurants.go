package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/shashiranjanraj/platter/app/models"
	"github.com/shashiranjanraj/platter/app/services"
)

var (
	restaurantsResult = result("Restaurants", graphql.Fields{
		"results":      &graphql.Field{Type: graphql.NewList(restaurantType)},
		"totalPages":   &graphql.Field{Type: graphql.Int},
		"totalResults": &graphql.Field{Type: graphql.Int},
	})
	restaurantResult = result("Restaurant", graphql.Fields{
		"restaurant": &graphql.Field{Type: restaurantType},
	})
	searchRestaurantResult = result("SearchRestaurant", graphql.Fields{
		"restaurants":  &graphql.Field{Type: graphql.NewList(restaurantType)},
		"totalPages":   &graphql.Field{Type: graphql.Int},
		"totalResults": &graphql.Field{Type: graphql.Int},
	})
	myRestaurantsResult = result("MyRestaurants", graphql.Fields{
		"restaurants": &graphql.Field{Type: graphql.NewList(restaurantType)},
	})
	allCategoriesResult = result("AllCategories", graphql.Fields{
		"categories": &graphql.Field{Type: graphql.NewList(categoryType)},
	})
	categoryResult = result("Category", graphql.Fields{
		"category":     &graphql.Field{Type: categoryType},
		"restaurants":  &graphql.Field{Type: graphql.NewList(restaurantType)},
		"totalPages":   &graphql.Field{Type: graphql.Int},
		"totalResults": &graphql.Field{Type: graphql.Int},
	})
	createRestaurantResult = result("CreateRestaurant", graphql.Fields{
		"restaurantId": &graphql.Field{Type: graphql.Int},
	})
	editRestaurantResult   = result("EditRestaurant", nil)
	deleteRestaurantResult = result("DeleteRestaurant", nil)
	createDishResult       = result("CreateDish", graphql.Fields{
		"dishId": &graphql.Field{Type: graphql.Int},
	})
	editDishResult   = result("EditDish", nil)
	deleteDishResult = result("DeleteDish", nil)
)

func (r *Resolver) restaurantQueries() graphql.Fields {
	return graphql.Fields{
		"allRestaurants": &graphql.Field{
			Type: restaurantsResult,
			Args: graphql.FieldConfigArgument{
				"page": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 1},
			},
			Resolve: operation("allRestaurants", func(p graphql.ResolveParams) (interface{}, error) {
				restaurants, pagination, err := r.Restaurants.AllRestaurants(argInt(p, "page"))
				if err != nil {
					return failed(p, "allRestaurants", err), nil
				}
				return ok(map[string]interface{}{
					"results":      restaurantMaps(restaurants),
					"totalPages":   pagination.TotalPages,
					"totalResults": pagination.Total,
				}), nil
			}),
		},

		"restaurant": &graphql.Field{
			Type: restaurantResult,
			Args: graphql.FieldConfigArgument{
				"restaurantId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			},
			Resolve: operation("restaurant", func(p graphql.ResolveParams) (interface{}, error) {
				restaurant, err := r.Restaurants.FindRestaurantByID(argUint(p, "restaurantId"))
				if err != nil {
					return failed(p, "restaurant", err), nil
				}
				return ok(map[string]interface{}{"restaurant": restaurantMap(restaurant)}), nil
			}),
		},

		"searchRestaurant": &graphql.Field{
			Type: searchRestaurantResult,
			Args: graphql.FieldConfigArgument{
				"query": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"page":  &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 1},
			},
			Resolve: operation("searchRestaurant", func(p graphql.ResolveParams) (interface{}, error) {
				restaurants, pagination, err := r.Restaurants.SearchRestaurantByName(
					argString(p, "query"), argInt(p, "page"))
				if err != nil {
					return failed(p, "searchRestaurant", err), nil
				}
				return ok(map[string]interface{}{
					"restaurants":  restaurantMaps(restaurants),
					"totalPages":   pagination.TotalPages,
					"totalResults": pagination.Total,
				}), nil
			}),
		},

		"myRestaurants": &graphql.Field{
			Type: myRestaurantsResult,
			Resolve: operation("myRestaurants", func(p graphql.ResolveParams) (interface{}, error) {
				restaurants, err := r.Restaurants.MyRestaurants(currentUser(p).ID)
				if err != nil {
					return failed(p, "myRestaurants", err), nil
				}
				return ok(map[string]interface{}{"restaurants": restaurantMaps(restaurants)}), nil
			}, models.RoleOwner),
		},

		"allCategories": &graphql.Field{
			Type: allCategoriesResult,
			Resolve: operation("allCategories", func(p graphql.ResolveParams) (interface{}, error) {
				categories, err := r.Restaurants.AllCategories()
				if err != nil {
					return failed(p, "allCategories", err), nil
				}
				out := make([]map[string]interface{}, 0, len(categories))
				for _, c := range categories {
					out = append(out, categoryCountMap(c))
				}
				return ok(map[string]interface{}{"categories": out}), nil
			}),
		},

		"category": &graphql.Field{
			Type: categoryResult,
			Args: graphql.FieldConfigArgument{
				"slug": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"page": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 1},
			},
			Resolve: operation("category", func(p graphql.ResolveParams) (interface{}, error) {
				category, restaurants, pagination, err := r.Restaurants.FindCategoryBySlug(
					argString(p, "slug"), argInt(p, "page"))
				if err != nil {
					return failed(p, "category", err), nil
				}
				return ok(map[string]interface{}{
					"category":     categoryMap(category),
					"restaurants":  restaurantMaps(restaurants),
					"totalPages":   pagination.TotalPages,
					"totalResults": pagination.Total,
				}), nil
			}),
		},
	}
}

func (r *Resolver) restaurantMutations() graphql.Fields {
	return graphql.Fields{
		"createRestaurant": &graphql.Field{
			Type: createRestaurantResult,
			Args: graphql.FieldConfigArgument{
				"name":         &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"address":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"coverImage":   &graphql.ArgumentConfig{Type: graphql.String},
				"categoryName": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: operation("createRestaurant", func(p graphql.ResolveParams) (interface{}, error) {
				restaurant, err := r.Restaurants.CreateRestaurant(currentUser(p).ID, services.CreateRestaurantInput{
					Name:         argString(p, "name"),
					Address:      argString(p, "address"),
					CoverImage:   argString(p, "coverImage"),
					CategoryName: argString(p, "categoryName"),
				})
				if err != nil {
					return failed(p, "createRestaurant", err), nil
				}
				return ok(map[string]interface{}{"restaurantId": restaurant.ID}), nil
			}, models.RoleOwner),
		},

		"editRestaurant": &graphql.Field{
			Type: editRestaurantResult,
			Args: graphql.FieldConfigArgument{
				"restaurantId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				"name":         &graphql.ArgumentConfig{Type: graphql.String},
				"address":      &graphql.ArgumentConfig{Type: graphql.String},
				"coverImage":   &graphql.ArgumentConfig{Type: graphql.String},
				"categoryName": &graphql.ArgumentConfig{Type: graphql.String},
			},
			Resolve: operation("editRestaurant", func(p graphql.ResolveParams) (interface{}, error) {
				err := r.Restaurants.EditRestaurant(currentUser(p).ID, argUint(p, "restaurantId"),
					services.EditRestaurantInput{
						Name:         argString(p, "name"),
						Address:      argString(p, "address"),
						CoverImage:   argString(p, "coverImage"),
						CategoryName: argString(p, "categoryName"),
					})
				if err != nil {
					return failed(p, "editRestaurant", err), nil
				}
				return ok(nil), nil
			}, models.RoleOwner),
		},

		"deleteRestaurant": &graphql.Field{
			Type: deleteRestaurantResult,
			Args: graphql.FieldConfigArgument{
				"restaurantId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			},
			Resolve: operation("deleteRestaurant", func(p graphql.ResolveParams) (interface{}, error) {
				if err := r.Restaurants.DeleteRestaurant(currentUser(p).ID, argUint(p, "restaurantId")); err != nil {
					return failed(p, "deleteRestaurant", err), nil
				}
				return ok(nil), nil
			}, models.RoleOwner),
		},

		"createDish": &graphql.Field{
			Type: createDishResult,
			Args: graphql.FieldConfigArgument{
				"restaurantId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				"name":         &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"price":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				"description":  &graphql.ArgumentConfig{Type: graphql.String},
				"photo":        &graphql.ArgumentConfig{Type: graphql.String},
				"options":      &graphql.ArgumentConfig{Type: graphql.NewList(dishOptionInput)},
			},
			Resolve: operation("createDish", func(p graphql.ResolveParams) (interface{}, error) {
				dish, err := r.Restaurants.CreateDish(currentUser(p).ID, services.CreateDishInput{
					RestaurantID: argUint(p, "restaurantId"),
					Name:         argString(p, "name"),
					Price:        argInt(p, "price"),
					Description:  argString(p, "description"),
					Photo:        argString(p, "photo"),
					Options:      decodeDishOptions(p.Args["options"]),
				})
				if err != nil {
					return failed(p, "createDish", err), nil
				}
				return ok(map[string]interface{}{"dishId": dish.ID}), nil
			}, models.RoleOwner),
		},

		"editDish": &graphql.Field{
			Type: editDishResult,
			Args: graphql.FieldConfigArgument{
				"dishId":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				"name":        &graphql.ArgumentConfig{Type: graphql.String},
				"price":       &graphql.ArgumentConfig{Type: graphql.Int},
				"description": &graphql.ArgumentConfig{Type: graphql.String},
				"photo":       &graphql.ArgumentConfig{Type: graphql.String},
				"options":     &graphql.ArgumentConfig{Type: graphql.NewList(dishOptionInput)},
			},
			Resolve: operation("editDish", func(p graphql.ResolveParams) (interface{}, error) {
				in := services.EditDishInput{
					Name:        argString(p, "name"),
					Description: argString(p, "description"),
					Photo:       argString(p, "photo"),
				}
				if price, given := p.Args["price"].(int); given {
					in.Price = &price
				}
				if _, given := p.Args["options"]; given {
					in.Options = decodeDishOptions(p.Args["options"])
				}
				if err := r.Restaurants.EditDish(currentUser(p).ID, argUint(p, "dishId"), in); err != nil {
					return failed(p, "editDish", err), nil
				}
				return ok(nil), nil
			}, models.RoleOwner),
		},

		"deleteDish": &graphql.Field{
			Type: deleteDishResult,
			Args: graphql.FieldConfigArgument{
				"dishId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			},
			Resolve: operation("deleteDish", func(p graphql.ResolveParams) (interface{}, error) {
				if err := r.Restaurants.DeleteDish(currentUser(p).ID, argUint(p, "dishId")); err != nil {
					return failed(p, "deleteDish", err), nil
				}
				return ok(nil), nil
			}, models.RoleOwner),
		},
	}
}
