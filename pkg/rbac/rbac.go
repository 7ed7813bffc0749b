// Package rbac gates GraphQL operations by user role.
//
// The HTTP layer resolves the bearer token into a subject and stores it
// on the context; Require then wraps individual resolvers:
//
//	"createRestaurant": &graphql.Field{
//	    Type:    restaurantOutputType,
//	    Resolve: rbac.Require(createRestaurant, "Owner"),
//	}
//
// The pseudo-role Any admits every authenticated subject.
package rbac

import (
	"context"

	"github.com/graphql-go/graphql"
)

// Any matches any authenticated subject regardless of role.
const Any = "Any"

// Subject is an authenticated principal with a role.
type Subject interface {
	RoleName() string
}

type subjectKey struct{}

// WithSubject stores the authenticated subject in ctx.
func WithSubject(ctx context.Context, s Subject) context.Context {
	return context.WithValue(ctx, subjectKey{}, s)
}

// SubjectFrom returns the authenticated subject, if any.
func SubjectFrom(ctx context.Context) (Subject, bool) {
	s, ok := ctx.Value(subjectKey{}).(Subject)
	return s, ok
}

// ErrDenied is returned by gated resolvers when no subject is present
// or the subject's role is not in the allowed set.
type DeniedError struct{}

func (DeniedError) Error() string { return "Forbidden resource" }

// Require wraps resolve so it only runs for subjects holding one of the
// given roles. An operation with no roles listed is public.
func Require(resolve graphql.FieldResolveFn, roles ...string) graphql.FieldResolveFn {
	if len(roles) == 0 {
		return resolve
	}

	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(p graphql.ResolveParams) (interface{}, error) {
		subject, ok := SubjectFrom(p.Context)
		if !ok {
			return nil, DeniedError{}
		}
		if allowed[Any] || allowed[subject.RoleName()] {
			return resolve(p)
		}
		return nil, DeniedError{}
	}
}
