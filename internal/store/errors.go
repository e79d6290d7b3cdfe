package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when signup hits the unique email index.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user was not found")

	// ErrScriptNotFound is returned when a script does not exist or belongs to
	// another user.
	ErrScriptNotFound = errors.New("script was not found")

	// ErrVersionConflict is returned when a version number could not be
	// allocated after the configured number of attempts.
	ErrVersionConflict = errors.New("script version conflict occurred")

	// ErrShareLinkNotFound is returned for unknown share tokens.
	ErrShareLinkNotFound = errors.New("share link was not found")

	// ErrVaultItemNotFound is returned when a vault item does not exist or
	// belongs to another user.
	ErrVaultItemNotFound = errors.New("vault item was not found")

	// ErrWatchlistNotFound is returned when a watchlist does not exist or
	// belongs to another user.
	ErrWatchlistNotFound = errors.New("watchlist was not found")

	// ErrUnsupportedDriver is returned for an unknown database driver.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
