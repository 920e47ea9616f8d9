// Package history records apply runs in SQLite.
//
// Each run stores its base path, whether it was a dry run, timing, the
// per-category counts from the apply result, and the error that stopped it,
// if any. The ledger is informational: the filesystem remains the source of
// truth for what exists, and nothing here is consulted when applying.
//
// Schema changes bump schemaVersion in schema.go. Opening a database written
// with another version fails with ErrSchemaMismatch; delete history.db to
// start over.
package history
