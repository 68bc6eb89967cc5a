package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when registering a user fails
	// because the email is already taken.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrUsernameAlreadyExists is returned when registering a user fails
	// because the username is already taken.
	ErrUsernameAlreadyExists = errors.New("username already taken")

	// ErrUserNotFound is returned when a user lookup produces no rows.
	ErrUserNotFound = errors.New("no user was found")

	// ErrRegionNotFound is returned when a region lookup, update, or delete
	// targets an ID that does not exist.
	ErrRegionNotFound = errors.New("region was not found")

	// ErrAnimalNotFound is returned when an animal lookup, update, or delete
	// targets an ID that does not exist.
	ErrAnimalNotFound = errors.New("animal was not found")
)

// Low-level database operation errors, returned (or wrapped) when a
// SQL-level operation fails before any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")
)
