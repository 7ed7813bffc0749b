package graphql

import (
	"github.com/graphql-go/graphql"

	gql "github.com/shashiranjanraj/platter/pkg/graphql"
)

// BuildSchema assembles the full query and mutation surface.
func BuildSchema(r *Resolver) (graphql.Schema, error) {
	queries := graphql.Fields{}
	for _, group := range []graphql.Fields{
		r.userQueries(),
		r.restaurantQueries(),
		r.orderQueries(),
		r.paymentQueries(),
	} {
		for name, field := range group {
			queries[name] = field
		}
	}

	mutations := graphql.Fields{}
	for _, group := range []graphql.Fields{
		r.userMutations(),
		r.restaurantMutations(),
		r.orderMutations(),
		r.paymentMutations(),
	} {
		for name, field := range group {
			mutations[name] = field
		}
	}

	query := graphql.NewObject(graphql.ObjectConfig{Name: "Query", Fields: queries})
	mutation := graphql.NewObject(graphql.ObjectConfig{Name: "Mutation", Fields: mutations})
	return gql.NewSchema(query, mutation)
}
