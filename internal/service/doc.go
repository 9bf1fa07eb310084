// Package service implements the business logic of the guild backend.
//
// Services sit between the HTTP handlers and the repositories. They own
// input validation, the sparse-patch update policy, and the translation of
// repository errors into the sentinel errors defined in errors.go, which
// the handler layer maps onto HTTP statuses.
//
// Repository interfaces are declared here, on the consumer side, so both
// the file-backed and the store-backed implementations satisfy them without
// either package knowing about the other.
//
// AuthService holds the single administrator identity. The configured
// password is hashed with bcrypt once at startup and compared in constant
// time on every login; the plaintext is never kept.
package service
