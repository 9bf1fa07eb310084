// Package repository implements the store-backed data access layer for the
// guild backend.
//
// Each repository handles one collection (member, raidgroup, boss) against
// the document store through the database.Database interface. All queries
// are parameterized SurrealQL; record IDs are addressed with type::record()
// so client-supplied identifiers can never splice into a query.
//
// # Repository Pattern
//
//   - Constructor function (NewXxxRepository) accepts a database handle
//   - Methods implement the collection's capability set
//     (Create, List, GetByID, Update, Delete)
//   - Missing records surface as database.ErrNotFound
//
// Per-operation atomicity is delegated to the store's single-document
// guarantee; nothing here spans documents.
//
// The file-backed equivalent of this package lives in internal/filestore;
// the two are selected at startup and never mixed.
package repository
