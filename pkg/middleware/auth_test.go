package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shashiranjanraj/platter/pkg/auth"
	"github.com/shashiranjanraj/platter/pkg/middleware"
)

func authProbe(t *testing.T, header string) (uint, bool) {
	t.Helper()

	var (
		gotID  uint
		authed bool
	)
	h := middleware.Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, authed = middleware.UserID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	h.ServeHTTP(httptest.NewRecorder(), req)
	return gotID, authed
}

func TestAuthResolvesBearerToken(t *testing.T) {
	token, err := auth.Sign(7)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	id, authed := authProbe(t, "Bearer "+token)
	if !authed || id != 7 {
		t.Errorf("got id=%d authed=%v, want 7/true", id, authed)
	}
}

func TestAuthPassesThroughUnauthenticated(t *testing.T) {
	cases := map[string]string{
		"no header":     "",
		"wrong scheme":  "Basic abc",
		"invalid token": "Bearer not-a-token",
		"missing space": "Bearertoken",
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			if _, authed := authProbe(t, header); authed {
				t.Error("request should stay unauthenticated")
			}
		})
	}
}
