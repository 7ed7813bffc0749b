package graphql

import (
	"time"

	"github.com/graphql-go/graphql"

	"github.com/shashiranjanraj/platter/app/models"
	"github.com/shashiranjanraj/platter/app/services"
	"github.com/shashiranjanraj/platter/pkg/faults"
	"github.com/shashiranjanraj/platter/pkg/logger"
	"github.com/shashiranjanraj/platter/pkg/metrics"
	"github.com/shashiranjanraj/platter/pkg/rbac"
)

// Resolver holds the domain services the operations delegate to.
type Resolver struct {
	Users       *services.UsersService
	Restaurants *services.RestaurantsService
	Orders      *services.OrdersService
	Payments    *services.PaymentsService
}

func NewResolver() *Resolver {
	return &Resolver{
		Users:       services.NewUsersService(),
		Restaurants: services.NewRestaurantsService(),
		Orders:      services.NewOrdersService(),
		Payments:    services.NewPaymentsService(),
	}
}

// currentUser returns the authenticated user placed on the context by
// the HTTP handler. Only called inside role-gated resolvers, where a
// subject is guaranteed.
func currentUser(p graphql.ResolveParams) *models.User {
	subject, _ := rbac.SubjectFrom(p.Context)
	user, _ := subject.(*models.User)
	return user
}

// operation wraps a resolver with per-operation metrics and failure
// logging, then applies the role gate. An empty roles list leaves the
// operation public.
func operation(name string, resolve graphql.FieldResolveFn, roles ...string) graphql.FieldResolveFn {
	instrumented := func(p graphql.ResolveParams) (interface{}, error) {
		defer metrics.ObserveGraphQL(name, time.Now())

		out, err := resolve(p)
		if err != nil {
			metrics.RecordGraphQL(name, false)
			return out, err
		}

		succeeded := true
		if envelope, isMap := out.(map[string]interface{}); isMap {
			if okv, isBool := envelope["ok"].(bool); isBool {
				succeeded = okv
			}
		}
		metrics.RecordGraphQL(name, succeeded)
		return out, nil
	}
	return rbac.Require(instrumented, roles...)
}

// failed funnels a domain failure into the envelope, logging internal
// causes on the way.
func failed(p graphql.ResolveParams, op string, err *faults.Error) map[string]interface{} {
	if err.Kind == faults.Internal {
		logger.WithCtx(p.Context).Error("graphql: "+op, "error", err)
	}
	return fail(err)
}
