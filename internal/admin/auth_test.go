package admin_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"diaa-designs-backend/internal/admin"
	"diaa-designs-backend/internal/config"
)

const testSecret = "test-signing-secret"

func newAuthenticator(t *testing.T, password string) *admin.Authenticator {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return admin.NewAuthenticator(&config.Config{
		AdminEmail:        "Admin@Example.com",
		AdminPasswordHash: string(hash),
		AdminJWTSecret:    testSecret,
	})
}

func TestLogin(t *testing.T) {
	auth := newAuthenticator(t, "correct horse")

	token, expiresAt, err := auth.Login("admin@example.com", "correct horse", false)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), expiresAt, time.Minute)

	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "admin", claims["sub"])
	assert.Equal(t, "admin@example.com", claims["email"])
}

func TestLogin_EmailCaseInsensitive(t *testing.T) {
	auth := newAuthenticator(t, "correct horse")

	_, _, err := auth.Login("ADMIN@EXAMPLE.COM", "correct horse", false)
	assert.NoError(t, err)
}

func TestLogin_Remember(t *testing.T) {
	auth := newAuthenticator(t, "correct horse")

	_, expiresAt, err := auth.Login("admin@example.com", "correct horse", true)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), expiresAt, time.Minute)
}

func TestLogin_WrongCredentials(t *testing.T) {
	auth := newAuthenticator(t, "correct horse")

	_, _, err := auth.Login("admin@example.com", "battery staple", false)
	assert.ErrorIs(t, err, admin.ErrInvalidCredentials)

	_, _, err = auth.Login("intruder@example.com", "correct horse", false)
	assert.ErrorIs(t, err, admin.ErrInvalidCredentials)
}
