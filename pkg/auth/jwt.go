// Package auth holds the session credential (JWT) and password hashing
// primitives.
package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/shashiranjanraj/platter/config"
)

// Claims is the typed JWT payload. The credential carries only the user
// id; role and verification state are always re-read from storage so a
// stale token can never grant a stale role.
type Claims struct {
	UserID uint `json:"id"`
	jwt.RegisteredClaims
}

func secret() []byte {
	return []byte(config.JWTSecret())
}

// Sign creates a signed credential embedding the given user id.
func Sign(userID uint) (string, error) {
	claims := Claims{UserID: userID}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}

// Verify parses a credential and recovers the embedded user id.
// Malformed tokens and bad signatures both fail.
func Verify(token string) (uint, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(*jwt.Token) (interface{}, error) {
		return secret(), nil
	})
	if err != nil {
		return 0, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return 0, jwt.ErrTokenInvalidClaims
	}

	return claims.UserID, nil
}

// HashPassword returns a bcrypt hash of the plain-text password.
func HashPassword(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword compares a bcrypt hash against the plain-text candidate.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
