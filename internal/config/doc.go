// Package config loads and validates process configuration for the guild
// backend.
//
// Configuration is read once at startup from environment variables, with a
// .env file loaded first when present. All settings have development
// defaults except the admin identity: a missing ADMIN_USERNAME or
// ADMIN_PASSWORD fails validation and aborts startup.
//
// # Storage selection
//
// STORAGE_BACKEND chooses the repository variant for the whole process:
//
//   - "file": a single JSON document at DATA_FILE
//   - "surrealdb": the networked document store described by the DB_*
//     variables
//
// The two variants are never mixed within one running instance.
//
// # Signing secret
//
// SECRET_KEY signs bearer tokens. When unset, a fallback constant is used
// and the server logs a warning; deployments claiming any security must set
// a real secret.
package config
