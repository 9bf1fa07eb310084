package jwt

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(secret string) *Service {
	return NewService(Config{
		Secret:     secret,
		Issuer:     "guild-backend-test",
		Expiration: time.Hour,
	})
}

func TestSignAndValidate(t *testing.T) {
	t.Parallel()
	service := newTestService("test-secret")

	token, err := service.Sign("admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, 5*time.Second)
	assert.WithinDuration(t, time.Now(), claims.IssuedAt, 5*time.Second)
}

func TestValidate_MalformedToken(t *testing.T) {
	t.Parallel()
	service := newTestService("test-secret")

	for _, token := range []string{"", "not-a-token", "aaa.bbb", "aaa.bbb.ccc"} {
		_, err := service.Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", token)
	}
}

func TestValidate_ForeignSignature(t *testing.T) {
	t.Parallel()
	service := newTestService("test-secret")
	other := newTestService("a-different-secret")

	token, err := other.Sign("admin")
	require.NoError(t, err)

	_, err = service.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestValidate_ExpiredToken(t *testing.T) {
	t.Parallel()
	service := newTestService("test-secret")

	// Craft a token that expired a minute ago, signed with the same secret.
	now := time.Now()
	expired, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.RegisteredClaims{
		Issuer:    "guild-backend-test",
		Subject:   "admin",
		IssuedAt:  gojwt.NewNumericDate(now.Add(-2 * time.Hour)),
		ExpiresAt: gojwt.NewNumericDate(now.Add(-time.Minute)),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = service.Validate(expired)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidate_WrongIssuer(t *testing.T) {
	t.Parallel()
	service := newTestService("test-secret")

	foreign, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.RegisteredClaims{
		Issuer:    "someone-else",
		Subject:   "admin",
		ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = service.Validate(foreign)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_RejectsNonHMACAlgorithm(t *testing.T) {
	t.Parallel()
	service := newTestService("test-secret")

	// alg=none tokens must never verify
	unsigned, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, gojwt.RegisteredClaims{
		Issuer:    "guild-backend-test",
		Subject:   "admin",
		ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = service.Validate(unsigned)
	assert.Error(t, err)
}

func TestExpirationDefault(t *testing.T) {
	t.Parallel()
	service := NewService(Config{Secret: "s", Issuer: "i"})
	assert.Equal(t, time.Hour, service.Expiration())
}
