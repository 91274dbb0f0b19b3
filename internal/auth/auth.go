package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// RoleAdmin is the only role tokens are issued for; the configurator itself is
// anonymous.
const RoleAdmin = "admin"

var ErrInvalidSecret = errors.New("invalid admin secret")

type Authenticator interface {
	GenerateToken(subject, role string) (string, error)
	ValidateToken(token string) (*jwt.Token, error)
}

// VerifySecret compares the admin secret against its bcrypt hash.
func VerifySecret(hash, secret string) error {
	if hash == "" || secret == "" {
		return ErrInvalidSecret
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)); err != nil {
		return ErrInvalidSecret
	}
	return nil
}

// HashSecret is the counterpart of VerifySecret, used to produce
// ADMIN_SECRET_HASH.
func HashSecret(secret string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
