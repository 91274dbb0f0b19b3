package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTAuthenticator_RoundTrip(t *testing.T) {
	a := NewJWTAuthenticator("s3cret", "renovo", "renovo", time.Hour)

	signed, err := a.GenerateToken("admin", RoleAdmin)
	require.NoError(t, err)

	tok, err := a.ValidateToken(signed)
	require.NoError(t, err)
	claims, ok := tok.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, RoleAdmin, claims["role"])
	assert.Equal(t, "admin", claims["sub"])
}

func TestJWTAuthenticator_Rejects(t *testing.T) {
	a := NewJWTAuthenticator("s3cret", "renovo", "renovo", time.Hour)
	other := NewJWTAuthenticator("different", "renovo", "renovo", time.Hour)
	expired := NewJWTAuthenticator("s3cret", "renovo", "renovo", -time.Minute)
	wrongAud := NewJWTAuthenticator("s3cret", "someone-else", "renovo", time.Hour)

	for name, issuer := range map[string]*JWTAuthenticator{
		"foreign key": other,
		"expired":     expired,
		"audience":    wrongAud,
	} {
		signed, err := issuer.GenerateToken("admin", RoleAdmin)
		require.NoError(t, err)
		_, err = a.ValidateToken(signed)
		assert.Error(t, err, name)
	}

	_, err := a.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestVerifySecret(t *testing.T) {
	hash, err := HashSecret("open sesame")
	require.NoError(t, err)

	assert.NoError(t, VerifySecret(hash, "open sesame"))
	assert.ErrorIs(t, VerifySecret(hash, "wrong"), ErrInvalidSecret)
	assert.ErrorIs(t, VerifySecret("", "open sesame"), ErrInvalidSecret)
	assert.ErrorIs(t, VerifySecret(hash, ""), ErrInvalidSecret)
}
