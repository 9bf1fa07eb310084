// Package filestore implements the file-backed data access layer for the
// guild backend.
//
// All three collections live in a single JSON document on disk:
//
//	{
//	  "members": [...],
//	  "raidGroups": [...],
//	  "bosses": [...],
//	  "counters": {"members": 3, ...}
//	}
//
// A missing file is created with empty collections on open. Legacy files
// holding only {"members": [...]} load fine; absent fields default to empty
// and the counters are seeded from the highest existing identifier.
//
// # Identifiers
//
// IDs are generated from a per-collection monotonic counter persisted next
// to the data. Deleting a record never frees its ID, so identifier sequences
// may have gaps but never repeat.
//
// # Concurrency
//
// Every operation is a full read-modify-write of the document, serialized by
// a single mutex, so concurrent requests within this process cannot lose
// updates. Writes from other processes remain last-writer-wins; nothing
// locks the file itself.
package filestore
