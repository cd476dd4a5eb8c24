// Package admin holds the dashboard gate and its live order state.
package admin

import (
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"diaa-designs-backend/internal/config"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

const (
	sessionTTL  = 24 * time.Hour
	rememberTTL = 30 * 24 * time.Hour
)

// Authenticator checks the admin credential (bcrypt hash from configuration)
// and issues HS256 session tokens. Nothing is ever stored in plaintext: the
// "remember me" option only lengthens the token lifetime.
type Authenticator struct {
	email        string
	passwordHash []byte
	secret       []byte
}

func NewAuthenticator(cfg *config.Config) *Authenticator {
	return &Authenticator{
		email:        strings.ToLower(cfg.AdminEmail),
		passwordHash: []byte(cfg.AdminPasswordHash),
		secret:       []byte(cfg.AdminJWTSecret),
	}
}

// Login verifies the credential pair and returns a signed session token with
// its expiry. Both checks always run, so a wrong email costs the same time
// as a wrong password.
func (a *Authenticator) Login(email, password string, remember bool) (string, time.Time, error) {
	emailOK := subtle.ConstantTimeCompare([]byte(strings.ToLower(email)), []byte(a.email)) == 1
	passwordErr := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password))
	if !emailOK || passwordErr != nil {
		return "", time.Time{}, ErrInvalidCredentials
	}

	ttl := sessionTTL
	if remember {
		ttl = rememberTTL
	}
	expiresAt := time.Now().Add(ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "admin",
		"email": a.email,
		"iat":   time.Now().Unix(),
		"exp":   expiresAt.Unix(),
	})
	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}
