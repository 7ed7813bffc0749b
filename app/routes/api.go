// Package routes wires every HTTP endpoint onto the router.
package routes

import (
	"encoding/json"
	"net/http"

	graphqlgo "github.com/graphql-go/graphql"

	"github.com/shashiranjanraj/platter/app/controllers"
	appgraphql "github.com/shashiranjanraj/platter/app/graphql"
	"github.com/shashiranjanraj/platter/app/services"
	"github.com/shashiranjanraj/platter/config"
	"github.com/shashiranjanraj/platter/pkg/event"
	"github.com/shashiranjanraj/platter/pkg/metrics"
	"github.com/shashiranjanraj/platter/pkg/middleware"
	"github.com/shashiranjanraj/platter/pkg/response"
	"github.com/shashiranjanraj/platter/pkg/router"
	"github.com/shashiranjanraj/platter/pkg/ws"
)

// OrderFeed pushes order lifecycle events to connected dashboards.
var OrderFeed = ws.NewHub()

// RegisterAPI mounts the GraphQL endpoint, the REST side-endpoints and
// the websocket order feed.
func RegisterAPI(r *router.Router, schema graphqlgo.Schema, resolver *appgraphql.Resolver) {
	uploads := controllers.NewUploadsController()

	r.Post("/graphql", "graphql", appgraphql.Handler(schema, resolver), middleware.Auth)
	r.Post("/uploads", "uploads.store", uploads.Store, middleware.Auth)

	r.Get("/ws/orders", "ws.orders", func(w http.ResponseWriter, req *http.Request) {
		if _, authed := middleware.UserID(req.Context()); !authed {
			response.Unauthorized(w)
			return
		}
		ws.Upgrade(w, req, OrderFeed)
	}, middleware.Auth)

	r.Get("/health", "health", func(w http.ResponseWriter, _ *http.Request) {
		response.Success(w, map[string]string{"status": "up"})
	})

	r.Get("/metrics", "metrics", metrics.Handler())

	// Local-disk uploads are served back under /storage.
	fs := http.StripPrefix("/storage/", http.FileServer(http.Dir(config.StorageLocalRoot())))
	r.Mount("/storage", fs)
}

// StartOrderFeed runs the hub and bridges order events onto it.
func StartOrderFeed() {
	go OrderFeed.Run()

	push := func(kind string) event.Handler {
		return func(payload interface{}) {
			msg, err := json.Marshal(map[string]interface{}{
				"event": kind,
				"order": payload,
			})
			if err != nil {
				return
			}
			OrderFeed.Broadcast <- msg
		}
	}

	event.Listen(services.EventOrderCreated, push(services.EventOrderCreated))
	event.Listen(services.EventOrderUpdated, push(services.EventOrderUpdated))
}
