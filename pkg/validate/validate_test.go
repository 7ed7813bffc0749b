package validate_test

import (
	"testing"

	"github.com/shashiranjanraj/platter/pkg/validate"
)

type createAccountInput struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=4"`
	Role     string `json:"role"     validate:"required,in=Client,Owner,Delivery"`
	Website  string `json:"website"  validate:"nullable,url"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(createAccountInput{
		Email:    "owner@example.com",
		Password: "secret123",
		Role:     "Owner",
		Website:  "", // nullable, allowed to be empty
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(createAccountInput{})
	if !validate.HasErrors(errs) {
		t.Error("expected required errors")
	}
	if _, ok := errs["email"]; !ok {
		t.Error("expected email to be required")
	}
	if _, ok := errs["password"]; !ok {
		t.Error("expected password to be required")
	}
}

func TestEmailRule(t *testing.T) {
	type in struct {
		Email string `json:"email" validate:"required,email"`
	}
	errs := validate.Struct(in{Email: "not-an-email"})
	if _, ok := errs["email"]; !ok {
		t.Error("expected email validation error")
	}
	errs = validate.Struct(in{Email: "valid@example.com"})
	if validate.HasErrors(errs) {
		t.Errorf("expected valid email to pass, got: %v", errs)
	}
}

func TestNumericBounds(t *testing.T) {
	type in struct {
		Extra int `json:"extra" validate:"gte=0,lte=10000"`
	}
	if errs := validate.Struct(in{Extra: -5}); !validate.HasErrors(errs) {
		t.Error("expected negative extra to fail")
	}
	if errs := validate.Struct(in{Extra: 200}); validate.HasErrors(errs) {
		t.Errorf("expected extra 200 to pass, got: %v", errs)
	}
}

func TestInRule(t *testing.T) {
	type in struct {
		Role string `json:"role" validate:"required,in=Client,Owner,Delivery"`
	}
	if errs := validate.Struct(in{Role: "Admin"}); !validate.HasErrors(errs) {
		t.Error("expected unknown role to fail")
	}
	if errs := validate.Struct(in{Role: "Delivery"}); validate.HasErrors(errs) {
		t.Errorf("expected Delivery to pass: %v", errs)
	}
}

func TestInFollowedByAnotherRule(t *testing.T) {
	type in struct {
		Role string `json:"role" validate:"required,in=Client,Owner,Delivery,max=20"`
	}
	if errs := validate.Struct(in{Role: "Owner"}); validate.HasErrors(errs) {
		t.Errorf("expected Owner to pass with trailing rule: %v", errs)
	}
}

func TestNullableSkipsRules(t *testing.T) {
	type in struct {
		Website string `json:"website" validate:"nullable,url"`
	}
	if errs := validate.Struct(in{Website: ""}); validate.HasErrors(errs) {
		t.Errorf("expected empty nullable to pass: %v", errs)
	}
	if errs := validate.Struct(in{Website: "not-a-url"}); !validate.HasErrors(errs) {
		t.Error("expected invalid URL to fail")
	}
}

func TestMinLength(t *testing.T) {
	type in struct {
		Password string `json:"password" validate:"required,min=4"`
	}
	if errs := validate.Struct(in{Password: "abc"}); !validate.HasErrors(errs) {
		t.Error("expected short password to fail")
	}
	if errs := validate.Struct(in{Password: "abcd"}); validate.HasErrors(errs) {
		t.Errorf("expected 4-char password to pass: %v", errs)
	}
}
