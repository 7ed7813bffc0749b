package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/shashiranjanraj/platter/app/models"
	"github.com/shashiranjanraj/platter/pkg/rbac"
)

var (
	createOrderResult = result("CreateOrder", graphql.Fields{
		"orderId": &graphql.Field{Type: graphql.Int},
	})
	getOrdersResult = result("GetOrders", graphql.Fields{
		"orders": &graphql.Field{Type: graphql.NewList(orderType)},
	})
	getOrderResult = result("GetOrder", graphql.Fields{
		"order": &graphql.Field{Type: orderType},
	})
	editOrderResult = result("EditOrder", nil)
)

func (r *Resolver) orderQueries() graphql.Fields {
	return graphql.Fields{
		"getOrders": &graphql.Field{
			Type: getOrdersResult,
			Args: graphql.FieldConfigArgument{
				"status": &graphql.ArgumentConfig{Type: graphql.String},
			},
			Resolve: operation("getOrders", func(p graphql.ResolveParams) (interface{}, error) {
				orders, err := r.Orders.GetOrders(currentUser(p), argString(p, "status"))
				if err != nil {
					return failed(p, "getOrders", err), nil
				}
				return ok(map[string]interface{}{"orders": orderMaps(orders)}), nil
			}, rbac.Any),
		},

		"getOrder": &graphql.Field{
			Type: getOrderResult,
			Args: graphql.FieldConfigArgument{
				"orderId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			},
			Resolve: operation("getOrder", func(p graphql.ResolveParams) (interface{}, error) {
				order, err := r.Orders.GetOrder(currentUser(p), argUint(p, "orderId"))
				if err != nil {
					return failed(p, "getOrder", err), nil
				}
				return ok(map[string]interface{}{"order": orderMap(order)}), nil
			}, rbac.Any),
		},
	}
}

func (r *Resolver) orderMutations() graphql.Fields {
	return graphql.Fields{
		"createOrder": &graphql.Field{
			Type: createOrderResult,
			Args: graphql.FieldConfigArgument{
				"restaurantId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				"items":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.NewList(orderItemInput))},
			},
			Resolve: operation("createOrder", func(p graphql.ResolveParams) (interface{}, error) {
				order, err := r.Orders.CreateOrder(
					currentUser(p).ID,
					argUint(p, "restaurantId"),
					decodeOrderItems(p.Args["items"]),
				)
				if err != nil {
					return failed(p, "createOrder", err), nil
				}
				return ok(map[string]interface{}{"orderId": order.ID}), nil
			}, models.RoleClient),
		},

		"editOrder": &graphql.Field{
			Type: editOrderResult,
			Args: graphql.FieldConfigArgument{
				"orderId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				"status":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: operation("editOrder", func(p graphql.ResolveParams) (interface{}, error) {
				_, err := r.Orders.EditOrder(currentUser(p), argUint(p, "orderId"), argString(p, "status"))
				if err != nil {
					return failed(p, "editOrder", err), nil
				}
				return ok(nil), nil
			}, models.RoleOwner, models.RoleDelivery),
		},
	}
}
