package graphql

import (
	"encoding/json"
	"net/http"

	"github.com/graphql-go/graphql"

	"github.com/shashiranjanraj/platter/pkg/middleware"
	"github.com/shashiranjanraj/platter/pkg/rbac"
)

// request is the standard GraphQL-over-HTTP POST body.
type request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Handler executes GraphQL documents. Executed documents always answer
// 200; failures travel in the payload envelope or the errors array.
func Handler(schema graphql.Schema, r *Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		var body request
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]interface{}{ //nolint:errcheck
				"errors": []map[string]string{{"message": "malformed request body"}},
			})
			return
		}

		ctx := req.Context()
		// A valid bearer token became a user id in middleware.Auth; here
		// it becomes a full subject so role gates can read the role.
		if userID, authed := middleware.UserID(ctx); authed {
			if user, ferr := r.Users.FindByID(userID); ferr == nil {
				ctx = rbac.WithSubject(ctx, user)
			}
		}

		out := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  body.Query,
			VariableValues: body.Variables,
			OperationName:  body.OperationName,
			Context:        ctx,
		})

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(out) //nolint:errcheck
	}
}
