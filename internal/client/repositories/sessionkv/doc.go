// Package sessionkv persists session entries in the local SQLite database.
//
// The repository works on a dbx.DBTX, so the same code runs against a
// *sql.DB or inside a transaction opened with dbx.WithTx.
package sessionkv
