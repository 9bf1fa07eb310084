// Package database provides the document-store abstraction for the guild
// backend.
//
// The Database interface separates the repositories from the concrete
// SurrealDB driver. It deliberately stays small:
//
//   - Query: returns multiple results (SELECT over a collection)
//   - QueryOne: returns a single record (SELECT by ID)
//   - Execute: runs a mutation without returning results
//
// Each operation relies on the store's single-document atomicity; no
// multi-document transactions are used or required by this system.
//
// # Connection lifecycle
//
// The handle is constructed explicitly and injected into repositories; there
// is no lazily-initialized global. Connect must be called once before use and
// honors a configurable timeout so a hung store cannot block startup
// indefinitely.
//
// # Error Handling
//
// Standard errors cover the common failure cases:
//
//   - ErrNotFound: record does not exist
//   - ErrConnection: connect or communication failure
//   - ErrQuery: query execution failure
//
// Check them with errors.Is().
package database
