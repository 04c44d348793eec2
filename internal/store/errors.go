package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoUserWasFound is returned when no user matches the requested id.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrFilialNotFound is returned when no filial is bound to the requested
	// phone, or when the filial being saved no longer exists.
	ErrFilialNotFound = errors.New("filial was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a statement fails on the database.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a result
	// row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")
)

// Contract file storage errors.
var (
	// ErrContractNotStaged is returned by Commit and Discard when given a
	// staged file without a path.
	ErrContractNotStaged = errors.New("contract file was not staged")

	// ErrWritingContract is returned when an upload cannot be written to the
	// staging area.
	ErrWritingContract = errors.New("error writing contract file")

	// ErrContractNameTaken is returned by Reserve when a contract with the
	// requested name already exists.
	ErrContractNameTaken = errors.New("contract file name is taken")

	// ErrReservingContract is returned when a contract name cannot be
	// claimed for a reason other than a name clash.
	ErrReservingContract = errors.New("error reserving contract file name")

	// ErrCommittingContract is returned when a staged upload cannot be moved
	// into the contracts directory.
	ErrCommittingContract = errors.New("error committing contract file")
)
