package ledger

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingID is returned by AddAccount when no account ID is given.
	ErrMissingID = errors.New("cannot create account without an id")

	// ErrMissingField is returned by AddTransaction when origin,
	// destination or date is absent.
	ErrMissingField = errors.New("origin, destination, amount and date must be specified")

	// ErrInvalidAmount is returned for negative transaction amounts.
	// Swap origin and destination instead of negating.
	ErrInvalidAmount = errors.New("transaction amounts must be non-negative")

	// ErrMissingAccountID is returned by queries called with an empty
	// account ID.
	ErrMissingAccountID = errors.New("account must be specified")

	// ErrAccountNotMatched is returned by GetAccount when no account
	// matches the query.
	ErrAccountNotMatched = errors.New("query did not match any account")

	// ErrAccountNotFound is the match target for AccountNotFoundError.
	ErrAccountNotFound = errors.New("account not found")

	// ErrNoTransactions is returned by SetCurrentBalance when the
	// account has no transaction history to anchor the reconciliation
	// row to.
	ErrNoTransactions = errors.New("account has no transactions")
)

// AccountNotFoundError reports which side of a transaction referenced
// a missing account.
type AccountNotFoundError struct {
	Role string // "origin" or "destination"
	ID   string
}

func (e *AccountNotFoundError) Error() string {
	return fmt.Sprintf("%s account not found: %s", e.Role, e.ID)
}

// Is makes errors.Is(err, ErrAccountNotFound) match.
func (e *AccountNotFoundError) Is(target error) bool {
	return target == ErrAccountNotFound
}
