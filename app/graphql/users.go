package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/shashiranjanraj/platter/app/services"
	"github.com/shashiranjanraj/platter/pkg/rbac"
)

var (
	createAccountResult = result("CreateAccount", nil)
	loginResult         = result("Login", graphql.Fields{
		"token": &graphql.Field{Type: graphql.String},
	})
	userProfileResult = result("UserProfile", graphql.Fields{
		"user": &graphql.Field{Type: userType},
	})
	editProfileResult = result("EditProfile", nil)
	verifyEmailResult = result("VerifyEmail", nil)
)

func (r *Resolver) userQueries() graphql.Fields {
	return graphql.Fields{
		"me": &graphql.Field{
			Type: userType,
			Resolve: operation("me", func(p graphql.ResolveParams) (interface{}, error) {
				return userMap(currentUser(p)), nil
			}, rbac.Any),
		},

		"userProfile": &graphql.Field{
			Type: userProfileResult,
			Args: graphql.FieldConfigArgument{
				"userId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			},
			Resolve: operation("userProfile", func(p graphql.ResolveParams) (interface{}, error) {
				user, err := r.Users.FindByID(argUint(p, "userId"))
				if err != nil {
					return failed(p, "userProfile", err), nil
				}
				return ok(map[string]interface{}{"user": userMap(user)}), nil
			}, rbac.Any),
		},
	}
}

func (r *Resolver) userMutations() graphql.Fields {
	return graphql.Fields{
		"createAccount": &graphql.Field{
			Type: createAccountResult,
			Args: graphql.FieldConfigArgument{
				"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"role":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: operation("createAccount", func(p graphql.ResolveParams) (interface{}, error) {
				_, err := r.Users.CreateAccount(services.CreateAccountInput{
					Email:    argString(p, "email"),
					Password: argString(p, "password"),
					Role:     argString(p, "role"),
				})
				if err != nil {
					return failed(p, "createAccount", err), nil
				}
				return ok(nil), nil
			}),
		},

		"login": &graphql.Field{
			Type: loginResult,
			Args: graphql.FieldConfigArgument{
				"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: operation("login", func(p graphql.ResolveParams) (interface{}, error) {
				token, err := r.Users.Login(argString(p, "email"), argString(p, "password"))
				if err != nil {
					return failed(p, "login", err), nil
				}
				return ok(map[string]interface{}{"token": token}), nil
			}),
		},

		"editProfile": &graphql.Field{
			Type: editProfileResult,
			Args: graphql.FieldConfigArgument{
				"email":    &graphql.ArgumentConfig{Type: graphql.String},
				"password": &graphql.ArgumentConfig{Type: graphql.String},
			},
			Resolve: operation("editProfile", func(p graphql.ResolveParams) (interface{}, error) {
				_, err := r.Users.EditProfile(currentUser(p).ID, services.EditProfileInput{
					Email:    argString(p, "email"),
					Password: argString(p, "password"),
				})
				if err != nil {
					return failed(p, "editProfile", err), nil
				}
				return ok(nil), nil
			}, rbac.Any),
		},

		"verifyEmail": &graphql.Field{
			Type: verifyEmailResult,
			Args: graphql.FieldConfigArgument{
				"code": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: operation("verifyEmail", func(p graphql.ResolveParams) (interface{}, error) {
				if err := r.Users.VerifyEmail(argString(p, "code")); err != nil {
					return failed(p, "verifyEmail", err), nil
				}
				return ok(nil), nil
			}),
		},
	}
}
