// Package graphql holds small helpers over graphql-go shared by the
// resolver layer.
package graphql

import (
	"github.com/graphql-go/graphql"
)

// NewSchema builds a schema from root query and mutation objects.
// Pass a nil mutation for a read-only schema.
func NewSchema(query, mutation *graphql.Object) (graphql.Schema, error) {
	cfg := graphql.SchemaConfig{Query: query}
	if mutation != nil {
		cfg.Mutation = mutation
	}
	return graphql.NewSchema(cfg)
}
