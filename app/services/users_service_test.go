package services_test

import (
	"testing"

	"github.com/shashiranjanraj/platter/app/models"
	"github.com/shashiranjanraj/platter/app/services"
	"github.com/shashiranjanraj/platter/pkg/auth"
	"github.com/shashiranjanraj/platter/pkg/faults"
)

func TestCreateAccountAndLogin(t *testing.T) {
	setupDB(t)
	svc := services.NewUsersService()

	user, ferr := svc.CreateAccount(services.CreateAccountInput{
		Email:    "client@example.com",
		Password: "secret",
		Role:     models.RoleClient,
	})
	if ferr != nil {
		t.Fatalf("create account: %v", ferr)
	}
	if user.Verified {
		t.Error("new accounts must start unverified")
	}

	token, ferr := svc.Login("client@example.com", "secret")
	if ferr != nil {
		t.Fatalf("login: %v", ferr)
	}
	id, err := auth.Verify(token)
	if err != nil {
		t.Fatalf("verify token: %v", err)
	}
	if id != user.ID {
		t.Errorf("token user id = %d, want %d", id, user.ID)
	}
}

func TestCreateAccountDuplicateEmail(t *testing.T) {
	setupDB(t)
	svc := services.NewUsersService()

	in := services.CreateAccountInput{Email: "dup@example.com", Password: "secret", Role: models.RoleOwner}
	if _, ferr := svc.CreateAccount(in); ferr != nil {
		t.Fatalf("first create: %v", ferr)
	}

	_, ferr := svc.CreateAccount(in)
	if ferr == nil || ferr.Kind != faults.AlreadyExists {
		t.Fatalf("duplicate create = %v, want AlreadyExists", ferr)
	}
}

func TestCreateAccountValidation(t *testing.T) {
	setupDB(t)
	svc := services.NewUsersService()

	cases := []struct {
		name string
		in   services.CreateAccountInput
	}{
		{"bad email", services.CreateAccountInput{Email: "not-an-email", Password: "secret", Role: models.RoleClient}},
		{"short password", services.CreateAccountInput{Email: "a@b.com", Password: "abc", Role: models.RoleClient}},
		{"unknown role", services.CreateAccountInput{Email: "a@b.com", Password: "secret", Role: "Admin"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, ferr := svc.CreateAccount(tc.in); ferr == nil || ferr.Kind != faults.Invalid {
				t.Errorf("got %v, want Invalid", ferr)
			}
		})
	}
}

func TestLoginFailures(t *testing.T) {
	db := setupDB(t)
	svc := services.NewUsersService()
	mustUser(t, db, "owner@example.com", models.RoleOwner)

	if _, ferr := svc.Login("nobody@example.com", "password"); ferr == nil || ferr.Kind != faults.NotFound {
		t.Errorf("unknown email = %v, want NotFound", ferr)
	}
	if _, ferr := svc.Login("owner@example.com", "wrong"); ferr == nil || ferr.Kind != faults.WrongPassword {
		t.Errorf("bad password = %v, want WrongPassword", ferr)
	}
}

func TestVerifyEmailIsSingleUse(t *testing.T) {
	db := setupDB(t)
	svc := services.NewUsersService()

	user, ferr := svc.CreateAccount(services.CreateAccountInput{
		Email:    "verify@example.com",
		Password: "secret",
		Role:     models.RoleClient,
	})
	if ferr != nil {
		t.Fatalf("create account: %v", ferr)
	}

	var v models.Verification
	if err := db.Where("user_id = ?", user.ID).First(&v).Error; err != nil {
		t.Fatalf("load verification: %v", err)
	}

	if ferr := svc.VerifyEmail(v.Code); ferr != nil {
		t.Fatalf("verify: %v", ferr)
	}

	fresh, ferr := svc.FindByID(user.ID)
	if ferr != nil {
		t.Fatalf("reload user: %v", ferr)
	}
	if !fresh.Verified {
		t.Error("user should be verified after consuming the code")
	}

	if ferr := svc.VerifyEmail(v.Code); ferr == nil || ferr.Kind != faults.NotFound {
		t.Errorf("second use = %v, want NotFound", ferr)
	}
}

func TestEditProfileEmailChangeResetsVerification(t *testing.T) {
	db := setupDB(t)
	svc := services.NewUsersService()
	user := mustUser(t, db, "old@example.com", models.RoleClient)

	updated, ferr := svc.EditProfile(user.ID, services.EditProfileInput{Email: "new@example.com"})
	if ferr != nil {
		t.Fatalf("edit profile: %v", ferr)
	}
	if updated.Email != "new@example.com" {
		t.Errorf("email = %q, want new@example.com", updated.Email)
	}
	if updated.Verified {
		t.Error("email change must reset the verified flag")
	}

	var count int64
	db.Model(&models.Verification{}).Where("user_id = ?", user.ID).Count(&count)
	if count != 1 {
		t.Errorf("verification rows = %d, want 1", count)
	}
}

func TestEditProfileRejectsTakenEmail(t *testing.T) {
	db := setupDB(t)
	svc := services.NewUsersService()
	mustUser(t, db, "taken@example.com", models.RoleClient)
	user := mustUser(t, db, "me@example.com", models.RoleClient)

	_, ferr := svc.EditProfile(user.ID, services.EditProfileInput{Email: "taken@example.com"})
	if ferr == nil || ferr.Kind != faults.AlreadyExists {
		t.Fatalf("edit to taken email = %v, want AlreadyExists", ferr)
	}
}
