package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/shashiranjanraj/platter/app/models"
)

var (
	createPaymentResult = result("CreatePayment", nil)
	getPaymentsResult   = result("GetPayments", graphql.Fields{
		"payments": &graphql.Field{Type: graphql.NewList(paymentType)},
	})
)

func (r *Resolver) paymentQueries() graphql.Fields {
	return graphql.Fields{
		"getPayments": &graphql.Field{
			Type: getPaymentsResult,
			Resolve: operation("getPayments", func(p graphql.ResolveParams) (interface{}, error) {
				payments, err := r.Payments.GetPayments(currentUser(p).ID)
				if err != nil {
					return failed(p, "getPayments", err), nil
				}
				out := make([]map[string]interface{}, 0, len(payments))
				for i := range payments {
					out = append(out, paymentMap(&payments[i]))
				}
				return ok(map[string]interface{}{"payments": out}), nil
			}, models.RoleOwner),
		},
	}
}

func (r *Resolver) paymentMutations() graphql.Fields {
	return graphql.Fields{
		"createPayment": &graphql.Field{
			Type: createPaymentResult,
			Args: graphql.FieldConfigArgument{
				"transactionId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"restaurantId":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			},
			Resolve: operation("createPayment", func(p graphql.ResolveParams) (interface{}, error) {
				_, err := r.Payments.CreatePayment(
					currentUser(p).ID,
					argString(p, "transactionId"),
					argUint(p, "restaurantId"),
				)
				if err != nil {
					return failed(p, "createPayment", err), nil
				}
				return ok(nil), nil
			}, models.RoleOwner),
		},
	}
}
