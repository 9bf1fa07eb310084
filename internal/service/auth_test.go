package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwguild/backend/pkg/jwt"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()
	service, err := NewAuthService(AuthServiceConfig{
		Username: "admin",
		Password: "secret",
		TokenService: jwt.NewService(jwt.Config{
			Secret:     "test-secret",
			Issuer:     "guild-backend-test",
			Expiration: time.Hour,
		}),
	})
	require.NoError(t, err)
	return service
}

func TestNewAuthService_MissingIdentity(t *testing.T) {
	t.Parallel()

	_, err := NewAuthService(AuthServiceConfig{Username: "", Password: "secret"})
	assert.Error(t, err)

	_, err = NewAuthService(AuthServiceConfig{Username: "admin", Password: ""})
	assert.Error(t, err)
}

func TestVerify(t *testing.T) {
	t.Parallel()
	service := newTestAuthService(t)

	assert.True(t, service.Verify("admin", "secret"))
	assert.False(t, service.Verify("admin", "wrong"))
	assert.False(t, service.Verify("someone", "secret"))
	assert.False(t, service.Verify("", ""))
}

func TestLogin_IssuesVerifiableToken(t *testing.T) {
	t.Parallel()
	service := newTestAuthService(t)

	token, err := service.Login("admin", "secret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, 5*time.Second)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	t.Parallel()
	service := newTestAuthService(t)

	_, err := service.Login("admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = service.Login("intruder", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
