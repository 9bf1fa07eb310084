// Package jwt provides bearer token issuance and verification for the
// guild backend.
//
// Tokens are HMAC-SHA256 signed JWTs carrying the admin username as the
// subject and an absolute expiry (one hour by default). Verification is
// fully stateless: only the signature and expiry are checked, no server-side
// lookup takes place. A consequence is that an issued token cannot be
// revoked before it expires — a deliberate scope choice, not a defect.
//
// # Issuing
//
//	service := jwt.NewService(jwt.Config{
//	    Secret:     cfg.JWT.Secret,
//	    Issuer:     "guild-backend",
//	    Expiration: time.Hour,
//	})
//
//	token, err := service.Sign(username)
//
// # Verifying
//
//	claims, err := service.Validate(tokenString)
//	switch {
//	case errors.Is(err, jwt.ErrTokenExpired):
//	    // expired
//	case errors.Is(err, jwt.ErrInvalidSignature):
//	    // signed with a different secret
//	}
//
// The signing secret comes from process configuration. When it is unset a
// fallback constant is used so development setups still run; any deployment
// claiming security must configure a real secret.
package jwt
