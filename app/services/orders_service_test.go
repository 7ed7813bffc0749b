package services_test

import (
	"testing"

	"github.com/shashiranjanraj/platter/app/models"
	"github.com/shashiranjanraj/platter/app/services"
	"github.com/shashiranjanraj/platter/pkg/faults"
)

func TestCreateOrderTotal(t *testing.T) {
	db := setupDB(t)
	svc := services.NewOrdersService()
	owner := mustUser(t, db, "owner@example.com", models.RoleOwner)
	client := mustUser(t, db, "client@example.com", models.RoleClient)
	restaurant := mustRestaurant(t, db, owner.ID, "Burger Barn")

	burger := mustDish(t, db, restaurant.ID, "Cheeseburger", 9,
		models.DishOption{Name: "Size", Choices: []models.DishChoice{
			{Name: "Regular"},
			{Name: "Large", Extra: 3},
		}},
		models.DishOption{Name: "Bacon", Extra: 2},
	)
	fries := mustDish(t, db, restaurant.ID, "Fries", 4)

	order, ferr := svc.CreateOrder(client.ID, restaurant.ID, []services.OrderItemInput{
		{DishID: burger.ID, Options: []models.OrderItemOption{
			{Name: "Size", Choice: "Large"},
			{Name: "Bacon"},
			{Name: "Nonexistent"}, // unknown selections cost nothing
		}},
		{DishID: fries.ID},
	})
	if ferr != nil {
		t.Fatalf("create order: %v", ferr)
	}

	// 9 + 3 (Large) + 2 (Bacon) + 4 (Fries) = 18
	if order.Total != 18 {
		t.Errorf("total = %d, want 18", order.Total)
	}
	if order.Status != models.StatusPending {
		t.Errorf("status = %q, want %q", order.Status, models.StatusPending)
	}
	if len(order.Items) != 2 {
		t.Errorf("items = %d, want 2", len(order.Items))
	}
}

func TestCreateOrderMissingDishAborts(t *testing.T) {
	db := setupDB(t)
	svc := services.NewOrdersService()
	owner := mustUser(t, db, "owner@example.com", models.RoleOwner)
	client := mustUser(t, db, "client@example.com", models.RoleClient)
	restaurant := mustRestaurant(t, db, owner.ID, "Burger Barn")
	dish := mustDish(t, db, restaurant.ID, "Cheeseburger", 9)

	_, ferr := svc.CreateOrder(client.ID, restaurant.ID, []services.OrderItemInput{
		{DishID: dish.ID},
		{DishID: 9999},
	})
	if ferr == nil || ferr.Kind != faults.NotFound {
		t.Fatalf("order with missing dish = %v, want NotFound", ferr)
	}

	var count int64
	db.Model(&models.Order{}).Count(&count)
	if count != 0 {
		t.Errorf("orders persisted = %d, want 0", count)
	}
}

func TestGetOrdersIsRoleScoped(t *testing.T) {
	db := setupDB(t)
	svc := services.NewOrdersService()
	owner := mustUser(t, db, "owner@example.com", models.RoleOwner)
	otherOwner := mustUser(t, db, "other@example.com", models.RoleOwner)
	client := mustUser(t, db, "client@example.com", models.RoleClient)
	driver := mustUser(t, db, "driver@example.com", models.RoleDelivery)

	mine := mustRestaurant(t, db, owner.ID, "Burger Barn")
	theirs := mustRestaurant(t, db, otherOwner.ID, "Sushi Spot")
	myDish := mustDish(t, db, mine.ID, "Cheeseburger", 9)
	theirDish := mustDish(t, db, theirs.ID, "Nigiri", 12)

	first, ferr := svc.CreateOrder(client.ID, mine.ID, []services.OrderItemInput{{DishID: myDish.ID}})
	if ferr != nil {
		t.Fatalf("create order: %v", ferr)
	}
	if _, ferr := svc.CreateOrder(client.ID, theirs.ID, []services.OrderItemInput{{DishID: theirDish.ID}}); ferr != nil {
		t.Fatalf("create second order: %v", ferr)
	}

	clientOrders, ferr := svc.GetOrders(&client, "")
	if ferr != nil {
		t.Fatalf("client orders: %v", ferr)
	}
	if len(clientOrders) != 2 {
		t.Errorf("client sees %d orders, want 2", len(clientOrders))
	}

	ownerOrders, ferr := svc.GetOrders(&owner, "")
	if ferr != nil {
		t.Fatalf("owner orders: %v", ferr)
	}
	if len(ownerOrders) != 1 || ownerOrders[0].RestaurantID != mine.ID {
		t.Errorf("owner sees %d orders, want only their restaurant's", len(ownerOrders))
	}

	driverOrders, ferr := svc.GetOrders(&driver, "")
	if ferr != nil {
		t.Fatalf("driver orders: %v", ferr)
	}
	if len(driverOrders) != 0 {
		t.Errorf("unassigned driver sees %d orders, want 0", len(driverOrders))
	}

	// After claiming, the driver sees the order.
	if _, ferr := svc.EditOrder(&driver, first.ID, models.StatusPickedUp); ferr != nil {
		t.Fatalf("claim order: %v", ferr)
	}
	driverOrders, _ = svc.GetOrders(&driver, "")
	if len(driverOrders) != 1 {
		t.Errorf("driver sees %d orders after claiming, want 1", len(driverOrders))
	}

	// Status filter applies after role scoping.
	pending, _ := svc.GetOrders(&client, models.StatusPending)
	if len(pending) != 1 {
		t.Errorf("pending orders = %d, want 1", len(pending))
	}
}

func TestGetOrderVisibility(t *testing.T) {
	db := setupDB(t)
	svc := services.NewOrdersService()
	owner := mustUser(t, db, "owner@example.com", models.RoleOwner)
	client := mustUser(t, db, "client@example.com", models.RoleClient)
	stranger := mustUser(t, db, "stranger@example.com", models.RoleClient)
	restaurant := mustRestaurant(t, db, owner.ID, "Burger Barn")
	dish := mustDish(t, db, restaurant.ID, "Cheeseburger", 9)

	order, ferr := svc.CreateOrder(client.ID, restaurant.ID, []services.OrderItemInput{{DishID: dish.ID}})
	if ferr != nil {
		t.Fatalf("create order: %v", ferr)
	}

	if _, ferr := svc.GetOrder(&client, order.ID); ferr != nil {
		t.Errorf("customer blocked: %v", ferr)
	}
	if _, ferr := svc.GetOrder(&owner, order.ID); ferr != nil {
		t.Errorf("owner blocked: %v", ferr)
	}
	if _, ferr := svc.GetOrder(&stranger, order.ID); ferr == nil || ferr.Kind != faults.NotAllowed {
		t.Errorf("stranger = %v, want NotAllowed", ferr)
	}
	if _, ferr := svc.GetOrder(&client, 9999); ferr == nil || ferr.Kind != faults.NotFound {
		t.Errorf("missing order = %v, want NotFound", ferr)
	}
}

func TestEditOrderTransitions(t *testing.T) {
	db := setupDB(t)
	svc := services.NewOrdersService()
	owner := mustUser(t, db, "owner@example.com", models.RoleOwner)
	otherOwner := mustUser(t, db, "other@example.com", models.RoleOwner)
	client := mustUser(t, db, "client@example.com", models.RoleClient)
	driver := mustUser(t, db, "driver@example.com", models.RoleDelivery)
	rival := mustUser(t, db, "rival@example.com", models.RoleDelivery)
	restaurant := mustRestaurant(t, db, owner.ID, "Burger Barn")
	dish := mustDish(t, db, restaurant.ID, "Cheeseburger", 9)

	order, ferr := svc.CreateOrder(client.ID, restaurant.ID, []services.OrderItemInput{{DishID: dish.ID}})
	if ferr != nil {
		t.Fatalf("create order: %v", ferr)
	}

	// Customers never edit status.
	if _, ferr := svc.EditOrder(&client, order.ID, models.StatusCooking); ferr == nil || ferr.Kind != faults.NotAllowed {
		t.Errorf("client edit = %v, want NotAllowed", ferr)
	}
	// Owners only their own restaurant's orders.
	if _, ferr := svc.EditOrder(&otherOwner, order.ID, models.StatusCooking); ferr == nil || ferr.Kind != faults.NotAllowed {
		t.Errorf("foreign owner edit = %v, want NotAllowed", ferr)
	}
	// Owners may not set delivery statuses.
	if _, ferr := svc.EditOrder(&owner, order.ID, models.StatusPickedUp); ferr == nil || ferr.Kind != faults.NotAllowed {
		t.Errorf("owner PickedUp = %v, want NotAllowed", ferr)
	}
	if _, ferr := svc.EditOrder(&owner, order.ID, models.StatusCooking); ferr != nil {
		t.Fatalf("owner Cooking: %v", ferr)
	}
	// Drivers may not set kitchen statuses.
	if _, ferr := svc.EditOrder(&driver, order.ID, models.StatusCooked); ferr == nil || ferr.Kind != faults.NotAllowed {
		t.Errorf("driver Cooked = %v, want NotAllowed", ferr)
	}

	// First delivery touch claims the order.
	updated, ferr := svc.EditOrder(&driver, order.ID, models.StatusPickedUp)
	if ferr != nil {
		t.Fatalf("driver claim: %v", ferr)
	}
	if updated.DriverID == nil || *updated.DriverID != driver.ID {
		t.Fatal("claim did not bind the driver")
	}

	// A second driver cannot take over.
	if _, ferr := svc.EditOrder(&rival, order.ID, models.StatusDelivered); ferr == nil || ferr.Kind != faults.NotAllowed {
		t.Errorf("rival driver = %v, want NotAllowed", ferr)
	}

	// The bound driver completes the delivery.
	final, ferr := svc.EditOrder(&driver, order.ID, models.StatusDelivered)
	if ferr != nil {
		t.Fatalf("driver deliver: %v", ferr)
	}
	if final.Status != models.StatusDelivered {
		t.Errorf("status = %q, want %q", final.Status, models.StatusDelivered)
	}
}
