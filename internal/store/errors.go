package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when no user has the requested email.
	ErrUserNotFound = errors.New("user not found")

	// ErrTeamNotFound is returned when no team matches the requested id or
	// invite code.
	ErrTeamNotFound = errors.New("team not found")

	// ErrTeamExists is returned by CreateTeam when the id is already taken.
	ErrTeamExists = errors.New("team already exists")

	// ErrMemberExists is returned by AddTeamMember when the email is already
	// a member of the team.
	ErrMemberExists = errors.New("already a team member")

	// ErrUnknownDriver is returned by NewRepository for an unsupported
	// storage driver.
	ErrUnknownDriver = errors.New("unknown storage driver")
)

// Low-level database operation errors. These are wrapped by the SQLite
// repository when a SQL-level operation fails before any domain logic can be
// applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing a transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRows is returned when scanning result rows fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrPersisting is returned when the document store cannot write its
	// file. The in-memory state is left as it was before the call.
	ErrPersisting = errors.New("failed to persist store")
)
