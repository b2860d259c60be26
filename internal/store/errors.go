package store

import "errors"

// Sentinel errors returned by storage methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEntryNotFound is returned when a read, update or delete targets an
	// entry identifier that is not stored.
	ErrEntryNotFound = errors.New("vault entry was not found")

	// ErrAttachmentNotFound is returned when an attachment identifier is not
	// stored.
	ErrAttachmentNotFound = errors.New("attachment was not found")

	// ErrVaultInUse is returned when another process holds the vault lock
	// file.
	ErrVaultInUse = errors.New("vault is in use by another process")

	// ErrNilDB is returned when a SQL backend is built without a connection.
	ErrNilDB = errors.New("db is nil")

	// ErrCorruptState is returned when persisted vault state cannot be
	// decoded.
	ErrCorruptState = errors.New("stored vault state is corrupt")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")
)
