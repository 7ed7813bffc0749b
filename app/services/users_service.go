// Package services holds the domain logic. Every method returns either
// a result or a *faults.Error; the GraphQL layer maps the failure kind
// to the {ok, error} envelope.
package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/platter/app/jobs"
	"github.com/shashiranjanraj/platter/app/models"
	"github.com/shashiranjanraj/platter/app/repositories"
	"github.com/shashiranjanraj/platter/pkg/auth"
	"github.com/shashiranjanraj/platter/pkg/faults"
	"github.com/shashiranjanraj/platter/pkg/logger"
	"github.com/shashiranjanraj/platter/pkg/queue"
	"github.com/shashiranjanraj/platter/pkg/validate"
)

// UsersService is the account manager: signup, login, profile edits and
// email verification.
type UsersService struct {
	users         *repositories.UserRepository
	verifications *repositories.VerificationRepository
}

func NewUsersService() *UsersService {
	return &UsersService{
		users:         repositories.NewUserRepository(),
		verifications: repositories.NewVerificationRepository(),
	}
}

// CreateAccountInput carries the signup fields.
type CreateAccountInput struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=4"`
	Role     string `json:"role"     validate:"required,in=Client,Owner,Delivery"`
}

// CreateAccount registers a new user and kicks off email verification.
func (s *UsersService) CreateAccount(in CreateAccountInput) (*models.User, *faults.Error) {
	if errs := validate.Struct(in); validate.HasErrors(errs) {
		return nil, faults.New(faults.Invalid, firstError(errs))
	}

	exists, err := s.users.ExistsByEmail(in.Email)
	if err != nil {
		return nil, faults.Wrap(err, "Couldn't create account")
	}
	if exists {
		return nil, faults.New(faults.AlreadyExists, "There is a user with that email already")
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, faults.Wrap(err, "Couldn't create account")
	}

	user := models.User{Email: in.Email, Password: hash, Role: in.Role}
	if err := s.users.Create(&user); err != nil {
		return nil, faults.Wrap(err, "Couldn't create account")
	}

	s.issueVerification(&user)
	return &user, nil
}

// issueVerification creates a fresh code and queues the email. Failures
// here never fail the calling mutation.
func (s *UsersService) issueVerification(user *models.User) {
	v, err := s.verifications.Issue(user.ID)
	if err != nil {
		logger.Error("users: issue verification", "user_id", user.ID, "error", err)
		return
	}
	if err := queue.Dispatch(jobs.VerificationEmail{Email: user.Email, Code: v.Code}); err != nil {
		logger.Error("users: dispatch verification email", "user_id", user.ID, "error", err)
	}
}

// Login checks the credentials and returns a signed token.
func (s *UsersService) Login(email, password string) (string, *faults.Error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", faults.New(faults.NotFound, "User not found")
		}
		return "", faults.Wrap(err, "Couldn't log in")
	}

	if !auth.CheckPassword(user.Password, password) {
		return "", faults.New(faults.WrongPassword, "Wrong password")
	}

	token, err := auth.Sign(user.ID)
	if err != nil {
		return "", faults.Wrap(err, "Couldn't log in")
	}
	return token, nil
}

// FindByID loads a user profile.
func (s *UsersService) FindByID(id uint) (*models.User, *faults.Error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, faults.New(faults.NotFound, "User Not Found")
		}
		return nil, faults.Wrap(err, "Couldn't load user")
	}
	return &user, nil
}

// EditProfileInput carries the optional profile changes.
type EditProfileInput struct {
	Email    string `json:"email"    validate:"nullable,email"`
	Password string `json:"password" validate:"nullable,min=4"`
}

// EditProfile updates email and/or password. An email change resets the
// verified flag and re-issues the verification email.
func (s *UsersService) EditProfile(userID uint, in EditProfileInput) (*models.User, *faults.Error) {
	if errs := validate.Struct(in); validate.HasErrors(errs) {
		return nil, faults.New(faults.Invalid, firstError(errs))
	}

	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, faults.New(faults.NotFound, "Could not update profile")
		}
		return nil, faults.Wrap(err, "Could not update profile")
	}

	emailChanged := in.Email != "" && in.Email != user.Email
	if emailChanged {
		taken, err := s.users.ExistsByEmail(in.Email)
		if err != nil {
			return nil, faults.Wrap(err, "Could not update profile")
		}
		if taken {
			return nil, faults.New(faults.AlreadyExists, "There is a user with that email already")
		}
		user.Email = in.Email
		user.Verified = false
	}

	if in.Password != "" {
		hash, err := auth.HashPassword(in.Password)
		if err != nil {
			return nil, faults.Wrap(err, "Could not update profile")
		}
		user.Password = hash
	}

	if err := s.users.Update(&user); err != nil {
		return nil, faults.Wrap(err, "Could not update profile")
	}

	if emailChanged {
		s.issueVerification(&user)
	}
	return &user, nil
}

// VerifyEmail consumes a confirmation code and marks the user verified.
func (s *UsersService) VerifyEmail(code string) *faults.Error {
	v, err := s.verifications.FindByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return faults.New(faults.NotFound, "Verification not found.")
		}
		return faults.Wrap(err, "Could not verify email")
	}

	v.User.Verified = true
	if err := s.users.Update(&v.User); err != nil {
		return faults.Wrap(err, "Could not verify email")
	}
	if err := s.verifications.Consume(&v); err != nil {
		return faults.Wrap(err, "Could not verify email")
	}
	return nil
}

// firstError flattens a validation error map to one message.
func firstError(errs map[string]string) string {
	for _, msg := range errs {
		return msg
	}
	return "Invalid input"
}

// validateInput runs struct-tag validation and wraps the first failure.
func validateInput(in interface{}) *faults.Error {
	if errs := validate.Struct(in); validate.HasErrors(errs) {
		return faults.New(faults.Invalid, firstError(errs))
	}
	return nil
}
