// Package model defines the domain entities for the guild backend.
//
// The three persisted collections are:
//
//   - Member: a guild roster entry with character name, class, and optional
//     raid assignment and role
//   - RaidGroup: a typed envelope around caller-supplied attributes
//   - Boss: an encounter with a role-name to assignment mapping
//
// Identifiers are opaque strings. The file backend generates them from a
// persisted monotonic counter ("1", "2", ...); the document-store backend
// uses store record IDs ("member:abc123"). Both are unique within their
// collection and never reused after deletion.
//
// The package also defines the API error type used by every handler; all
// error responses serialize as {"message": "..."}.
package model
