package graphql_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	appgraphql "github.com/shashiranjanraj/platter/app/graphql"
	"github.com/shashiranjanraj/platter/app/models"
	"github.com/shashiranjanraj/platter/pkg/database"
	"github.com/shashiranjanraj/platter/pkg/middleware"
)

func newHandler(t *testing.T) http.Handler {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:graphql_test?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Verification{},
		&models.Category{},
		&models.Restaurant{},
		&models.Dish{},
		&models.OrderItem{},
		&models.Order{},
		&models.Payment{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	database.Use(db)

	resolver := appgraphql.NewResolver()
	schema, err := appgraphql.BuildSchema(resolver)
	if err != nil {
		t.Fatalf("build schema: %v", err)
	}
	return middleware.Auth(appgraphql.Handler(schema, resolver))
}

// post executes a GraphQL document and decodes the JSON response.
func post(t *testing.T, h http.Handler, query, token string) map[string]interface{} {
	t.Helper()

	body, err := json.Marshal(map[string]interface{}{"query": query})
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var out map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func field(t *testing.T, out map[string]interface{}, path ...string) interface{} {
	t.Helper()

	var cur interface{} = out
	for _, key := range path {
		m, ok := cur.(map[string]interface{})
		if !ok {
			t.Fatalf("no object at %v in %v", key, out)
		}
		cur = m[key]
	}
	return cur
}

func TestGraphQLAccountLifecycle(t *testing.T) {
	h := newHandler(t)

	out := post(t, h, `mutation {
		createAccount(email: "gql@example.com", password: "secret", role: "Owner") {
			ok
			error
		}
	}`, "")
	if ok := field(t, out, "data", "createAccount", "ok"); ok != true {
		t.Fatalf("createAccount = %v", out)
	}

	// Same email again travels back in the envelope, not as a transport error.
	out = post(t, h, `mutation {
		createAccount(email: "gql@example.com", password: "secret", role: "Owner") {
			ok
			error
		}
	}`, "")
	if ok := field(t, out, "data", "createAccount", "ok"); ok != false {
		t.Fatalf("duplicate createAccount ok = %v, want false", ok)
	}
	if msg := field(t, out, "data", "createAccount", "error"); msg != "There is a user with that email already" {
		t.Errorf("duplicate error = %v", msg)
	}

	out = post(t, h, `mutation {
		login(email: "gql@example.com", password: "secret") {
			ok
			error
			token
		}
	}`, "")
	if ok := field(t, out, "data", "login", "ok"); ok != true {
		t.Fatalf("login = %v", out)
	}
	token, _ := field(t, out, "data", "login", "token").(string)
	if token == "" {
		t.Fatal("login returned no token")
	}

	out = post(t, h, `{ me { email role } }`, token)
	if email := field(t, out, "data", "me", "email"); email != "gql@example.com" {
		t.Errorf("me.email = %v", email)
	}
	if role := field(t, out, "data", "me", "role"); role != models.RoleOwner {
		t.Errorf("me.role = %v", role)
	}
}

func TestGraphQLRoleGates(t *testing.T) {
	h := newHandler(t)

	// Anonymous request to a gated operation.
	out := post(t, h, `{ me { email } }`, "")
	errs, _ := out["errors"].([]interface{})
	if len(errs) == 0 {
		t.Fatalf("anonymous me = %v, want errors", out)
	}
	first, _ := errs[0].(map[string]interface{})
	if msg, _ := first["message"].(string); !strings.Contains(msg, "Forbidden resource") {
		t.Errorf("error message = %q, want Forbidden resource", msg)
	}

	// A Client cannot reach an Owner-only operation.
	post(t, h, `mutation {
		createAccount(email: "client@example.com", password: "secret", role: "Client") { ok }
	}`, "")
	out = post(t, h, `mutation {
		login(email: "client@example.com", password: "secret") { ok token }
	}`, "")
	token, _ := field(t, out, "data", "login", "token").(string)
	if token == "" {
		t.Fatal("login returned no token")
	}

	out = post(t, h, `{ myRestaurants { ok error } }`, token)
	errs, _ = out["errors"].([]interface{})
	if len(errs) == 0 {
		t.Fatalf("client myRestaurants = %v, want errors", out)
	}
}

func TestGraphQLMalformedBodyIsBadRequest(t *testing.T) {
	h := newHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
