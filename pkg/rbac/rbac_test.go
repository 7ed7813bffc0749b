package rbac_test

import (
	"context"
	"errors"
	"testing"

	"github.com/graphql-go/graphql"

	"github.com/shashiranjanraj/platter/pkg/rbac"
)

type fakeSubject struct{ role string }

func (s fakeSubject) RoleName() string { return s.role }

func resolveOK(graphql.ResolveParams) (interface{}, error) { return "ran", nil }

func params(ctx context.Context) graphql.ResolveParams {
	return graphql.ResolveParams{Context: ctx}
}

func TestRequireWithoutRolesIsPublic(t *testing.T) {
	out, err := rbac.Require(resolveOK)(params(context.Background()))
	if err != nil || out != "ran" {
		t.Fatalf("public resolver blocked: %v %v", out, err)
	}
}

func TestRequireBlocksAnonymous(t *testing.T) {
	_, err := rbac.Require(resolveOK, "Owner")(params(context.Background()))
	var denied rbac.DeniedError
	if !errors.As(err, &denied) {
		t.Fatalf("err = %v, want DeniedError", err)
	}
}

func TestRequireMatchesRole(t *testing.T) {
	ctx := rbac.WithSubject(context.Background(), fakeSubject{role: "Owner"})

	if _, err := rbac.Require(resolveOK, "Owner")(params(ctx)); err != nil {
		t.Errorf("matching role blocked: %v", err)
	}
	if _, err := rbac.Require(resolveOK, "Delivery")(params(ctx)); err == nil {
		t.Error("mismatched role admitted")
	}
	if _, err := rbac.Require(resolveOK, "Delivery", "Owner")(params(ctx)); err != nil {
		t.Errorf("multi-role gate blocked a listed role: %v", err)
	}
}

func TestRequireAnyAdmitsEveryAuthenticatedSubject(t *testing.T) {
	ctx := rbac.WithSubject(context.Background(), fakeSubject{role: "Client"})
	if _, err := rbac.Require(resolveOK, rbac.Any)(params(ctx)); err != nil {
		t.Errorf("Any gate blocked an authenticated subject: %v", err)
	}
	if _, err := rbac.Require(resolveOK, rbac.Any)(params(context.Background())); err == nil {
		t.Error("Any gate admitted an anonymous request")
	}
}
