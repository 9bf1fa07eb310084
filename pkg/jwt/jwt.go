package jwt

import (
	"errors"
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrTokenExpired     = errors.New("token expired")
	ErrInvalidSignature = errors.New("invalid signature")
)

// Claims is the verified content of a token
type Claims struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Config holds token service configuration
type Config struct {
	Secret     string
	Issuer     string
	Expiration time.Duration
}

// Service signs and verifies bearer tokens with a shared HMAC secret
type Service struct {
	secret     []byte
	issuer     string
	expiration time.Duration
}

// NewService creates a new token service
func NewService(cfg Config) *Service {
	expiration := cfg.Expiration
	if expiration == 0 {
		expiration = time.Hour
	}
	return &Service{
		secret:     []byte(cfg.Secret),
		issuer:     cfg.Issuer,
		expiration: expiration,
	}
}

// Sign creates a signed token binding the subject to an absolute expiry of
// issuance time plus the configured expiration
func (s *Service) Sign(subject string) (string, error) {
	now := time.Now()
	claims := gojwt.RegisteredClaims{
		Issuer:    s.issuer,
		Subject:   subject,
		IssuedAt:  gojwt.NewNumericDate(now),
		ExpiresAt: gojwt.NewNumericDate(now.Add(s.expiration)),
	}

	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

// Validate checks signature integrity and expiry and returns the claims.
// No server-side state is consulted.
func (s *Service) Validate(tokenString string) (*Claims, error) {
	parsed, err := gojwt.ParseWithClaims(tokenString, &gojwt.RegisteredClaims{},
		func(t *gojwt.Token) (any, error) {
			if _, ok := t.Method.(*gojwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return s.secret, nil
		},
		gojwt.WithIssuer(s.issuer),
	)
	if err != nil {
		switch {
		case errors.Is(err, gojwt.ErrTokenSignatureInvalid):
			return nil, ErrInvalidSignature
		case errors.Is(err, gojwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		default:
			return nil, ErrInvalidToken
		}
	}

	registered, ok := parsed.Claims.(*gojwt.RegisteredClaims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	claims := &Claims{Subject: registered.Subject}
	if registered.IssuedAt != nil {
		claims.IssuedAt = registered.IssuedAt.Time
	}
	if registered.ExpiresAt != nil {
		claims.ExpiresAt = registered.ExpiresAt.Time
	}
	return claims, nil
}

// Expiration returns the configured token lifetime
func (s *Service) Expiration() time.Duration {
	return s.expiration
}
