package service

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/dwguild/backend/pkg/jwt"
)

// bcrypt cost factor for the startup hash of the admin password
const bcryptCost = 10

// AuthService holds the single administrator identity and issues bearer
// tokens for it. There is exactly one identity per process, loaded from
// configuration at startup and never persisted.
type AuthService struct {
	username     string
	passwordHash []byte
	tokens       *jwt.Service
}

// AuthServiceConfig holds configuration for the auth service
type AuthServiceConfig struct {
	Username     string
	Password     string
	TokenService *jwt.Service
}

// NewAuthService creates the auth service, hashing the configured plaintext
// password once. An empty identity is a configuration fault and aborts
// construction.
func NewAuthService(cfg AuthServiceConfig) (*AuthService, error) {
	if cfg.Username == "" || cfg.Password == "" {
		return nil, errors.New("admin identity is not configured")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}

	return &AuthService{
		username:     cfg.Username,
		passwordHash: hash,
		tokens:       cfg.TokenService,
	}, nil
}

// Verify checks a username/password pair against the configured identity.
// The username is an exact string match; the password goes through bcrypt's
// constant-time hash comparison. Wrong credentials return false, never an
// error.
func (s *AuthService) Verify(username, password string) bool {
	if username != s.username {
		return false
	}
	return bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)) == nil
}

// Login verifies the credentials and issues a signed bearer token bound to
// the username
func (s *AuthService) Login(username, password string) (string, error) {
	if !s.Verify(username, password) {
		return "", ErrInvalidCredentials
	}
	return s.tokens.Sign(username)
}

// ValidateAccessToken verifies a bearer token. Used by the access guard;
// verification is stateless, so a token stays valid until its expiry.
func (s *AuthService) ValidateAccessToken(token string) (*jwt.Claims, error) {
	return s.tokens.Validate(token)
}
