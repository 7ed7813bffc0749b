package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/platter/app/models"
	"github.com/shashiranjanraj/platter/app/repositories"
	"github.com/shashiranjanraj/platter/pkg/event"
	"github.com/shashiranjanraj/platter/pkg/faults"
)

// Event names fired on order lifecycle changes. The websocket order
// feed subscribes to both.
const (
	EventOrderCreated = "order.created"
	EventOrderUpdated = "order.updated"
)

// OrdersService runs the order lifecycle: creation, role-scoped reads
// and the role-gated status transitions.
type OrdersService struct {
	orders      *repositories.OrderRepository
	restaurants *repositories.RestaurantRepository
	dishes      *repositories.DishRepository
}

func NewOrdersService() *OrdersService {
	return &OrdersService{
		orders:      repositories.NewOrderRepository(),
		restaurants: repositories.NewRestaurantRepository(),
		dishes:      repositories.NewDishRepository(),
	}
}

// OrderItemInput is one dish plus the customer's option selections.
type OrderItemInput struct {
	DishID  uint                     `json:"dishId"`
	Options []models.OrderItemOption `json:"options"`
}

// CreateOrder places an order: prices every item against the current
// menu, persists the order with its item snapshots and fires
// order.created.
func (s *OrdersService) CreateOrder(customerID, restaurantID uint, items []OrderItemInput) (*models.Order, *faults.Error) {
	if _, err := s.restaurants.FindByID(restaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, faults.New(faults.NotFound, "Restaurant not found")
		}
		return nil, faults.Wrap(err, "Could not create order")
	}

	var total int
	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		dish, err := s.dishes.FindByID(item.DishID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Abort the whole order on any missing dish.
				return nil, faults.New(faults.NotFound, "Dish not found")
			}
			return nil, faults.Wrap(err, "Could not create order")
		}

		total += priceItem(dish, item.Options)
		orderItems = append(orderItems, models.OrderItem{
			DishID:  dish.ID,
			Options: item.Options,
		})
	}

	order := models.Order{
		CustomerID:   customerID,
		RestaurantID: restaurantID,
		Items:        orderItems,
		Total:        total,
		Status:       models.StatusPending,
	}
	if err := s.orders.Create(&order); err != nil {
		return nil, faults.Wrap(err, "Could not create order")
	}

	event.FireAsync(EventOrderCreated, order)
	return &order, nil
}

// priceItem computes dish price plus the extras of every selection that
// matches an option (and choice) on the dish. Selections that match
// nothing cost nothing.
func priceItem(dish models.Dish, selections []models.OrderItemOption) int {
	price := dish.Price
	for _, sel := range selections {
		for _, opt := range dish.Options {
			if opt.Name != sel.Name {
				continue
			}
			price += opt.Extra
			for _, choice := range opt.Choices {
				if choice.Name == sel.Choice {
					price += choice.Extra
					break
				}
			}
			break
		}
	}
	return price
}

// GetOrders lists the orders visible to the user: customers see their
// own, drivers the ones they deliver, owners every order placed at any
// restaurant they own. The optional status filters after scoping.
func (s *OrdersService) GetOrders(user *models.User, status string) ([]models.Order, *faults.Error) {
	var (
		orders []models.Order
		err    error
	)

	switch user.Role {
	case models.RoleClient:
		orders, err = s.orders.ByCustomer(user.ID, status)
	case models.RoleDelivery:
		orders, err = s.orders.ByDriver(user.ID, status)
	case models.RoleOwner:
		var ids []uint
		ids, err = s.restaurants.OwnedIDs(user.ID)
		if err == nil {
			orders, err = s.orders.ByRestaurants(ids, status)
		}
	default:
		return nil, faults.New(faults.NotAllowed, "You can't see orders")
	}

	if err != nil {
		return nil, faults.Wrap(err, "Could not get orders")
	}
	return orders, nil
}

// canSee reports whether the user is the order's customer, its driver
// or the owner of its restaurant.
func canSee(user *models.User, order *models.Order) bool {
	if order.CustomerID == user.ID {
		return true
	}
	if order.DriverID != nil && *order.DriverID == user.ID {
		return true
	}
	return order.Restaurant.OwnerID == user.ID
}

// GetOrder loads one order the user is allowed to see.
func (s *OrdersService) GetOrder(user *models.User, id uint) (*models.Order, *faults.Error) {
	order, err := s.orders.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, faults.New(faults.NotFound, "Order not found.")
		}
		return nil, faults.Wrap(err, "Could not load order")
	}
	if !canSee(user, &order) {
		return nil, faults.New(faults.NotAllowed, "You can't see that")
	}
	return &order, nil
}

// EditOrder moves an order to a new status. Owners of the order's
// restaurant may set Cooking or Cooked; delivery drivers may set
// PickedUp or Deleverd, claiming the order on first touch. Any other
// combination is rejected.
func (s *OrdersService) EditOrder(user *models.User, id uint, status string) (*models.Order, *faults.Error) {
	order, err := s.orders.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, faults.New(faults.NotFound, "Order not found.")
		}
		return nil, faults.Wrap(err, "Could not load order")
	}
	switch user.Role {
	case models.RoleOwner:
		if order.Restaurant.OwnerID != user.ID {
			return nil, faults.New(faults.NotAllowed, "You can't do that.")
		}
		if status != models.StatusCooking && status != models.StatusCooked {
			return nil, faults.New(faults.NotAllowed, "You can't do that.")
		}

	case models.RoleDelivery:
		if status != models.StatusPickedUp && status != models.StatusDelivered {
			return nil, faults.New(faults.NotAllowed, "You can't do that.")
		}
		// First touch claims the order; afterwards only that driver may
		// keep editing it.
		if order.DriverID == nil {
			order.DriverID = &user.ID
		} else if *order.DriverID != user.ID {
			return nil, faults.New(faults.NotAllowed, "You can't do that.")
		}

	default:
		return nil, faults.New(faults.NotAllowed, "You can't do that.")
	}

	order.Status = status
	if err := s.orders.Update(&order); err != nil {
		return nil, faults.Wrap(err, "Could not edit order")
	}

	event.FireAsync(EventOrderUpdated, order)
	return &order, nil
}
