// Package ledger holds accounts and the transactions that move value
// between them, and answers balance and history queries over them.
//
// A Ledger is a plain in-memory value with no storage backend. It is
// not safe for concurrent mutation; callers that need that wrap it in
// their own lock.
package ledger

import (
	"fmt"
	"maps"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/konto-dev/konto/date"
	"github.com/konto-dev/konto/model"
)

// Ledger is an ordered set of transactions plus the accounts they
// reference. Transactions keep insertion order, which is not
// necessarily chronological.
type Ledger struct {
	transactions []model.Transaction
	accounts     []model.Account
}

// New creates a ledger containing only the world account.
func New() *Ledger {
	return &Ledger{
		accounts: []model.Account{{ID: model.WorldAccountID}},
	}
}

// AccountParams holds the fields for a new account. ID is required;
// everything else is optional. Attrs carries any additional
// caller-defined fields and is stored verbatim.
type AccountParams struct {
	ID             string
	Name           string
	Type           string
	OpenDate       string
	InitialBalance decimal.Decimal
	Attrs          map[string]string
}

// AddAccount appends a new account and returns it.
//
// Duplicate IDs are not rejected: queries resolve to the first match,
// so a second account with the same ID is effectively shadowed. This
// mirrors the lenient input handling of the dataset format.
func (l *Ledger) AddAccount(params AccountParams) (model.Account, error) {
	if params.ID == "" {
		return model.Account{}, ErrMissingID
	}
	account := model.Account{
		ID:             params.ID,
		Name:           params.Name,
		Type:           params.Type,
		OpenDate:       params.OpenDate,
		InitialBalance: params.InitialBalance,
	}
	if len(params.Attrs) > 0 {
		account.Attrs = maps.Clone(params.Attrs)
	}
	l.accounts = append(l.accounts, account)
	return account, nil
}

// AccountField selects the account field a query matches against.
// Fields outside the fixed set are looked up in Attrs.
type AccountField string

const (
	ByID       AccountField = "id"
	ByName     AccountField = "name"
	ByType     AccountField = "accountType"
	ByOpenDate AccountField = "openDate"
)

func accountField(a model.Account, field AccountField) string {
	switch field {
	case ByID:
		return a.ID
	case ByName:
		return a.Name
	case ByType:
		return a.Type
	case ByOpenDate:
		return a.OpenDate
	default:
		return a.Attrs[string(field)]
	}
}

// GetAccount returns the first account whose field equals value.
func (l *Ledger) GetAccount(field AccountField, value string) (model.Account, error) {
	for _, a := range l.accounts {
		if accountField(a, field) == value {
			return a, nil
		}
	}
	return model.Account{}, fmt.Errorf("%w: %s=%q", ErrAccountNotMatched, field, value)
}

// Accounts returns a copy of all accounts in insertion order.
func (l *Ledger) Accounts() []model.Account {
	out := make([]model.Account, len(l.accounts))
	copy(out, l.accounts)
	return out
}

// TransactionParams holds the fields for a new transaction. Origin,
// destination and date are required. A zero Amount is a valid (empty)
// transfer.
type TransactionParams struct {
	Amount      decimal.Decimal
	Origin      string
	Destination string
	Date        date.Date
	Details     string
}

// AddTransaction validates and stores a transaction. Both referenced
// accounts must already exist. The ledger is left untouched when
// validation fails.
func (l *Ledger) AddTransaction(params TransactionParams) (model.Transaction, error) {
	if params.Origin == "" || params.Destination == "" || params.Date.IsZero() {
		return model.Transaction{}, ErrMissingField
	}
	if params.Amount.IsNegative() {
		return model.Transaction{}, ErrInvalidAmount
	}
	if _, err := l.GetAccount(ByID, params.Origin); err != nil {
		return model.Transaction{}, &AccountNotFoundError{Role: "origin", ID: params.Origin}
	}
	if _, err := l.GetAccount(ByID, params.Destination); err != nil {
		return model.Transaction{}, &AccountNotFoundError{Role: "destination", ID: params.Destination}
	}
	tx := model.Transaction{
		Amount:      params.Amount,
		Origin:      params.Origin,
		Destination: params.Destination,
		Date:        params.Date,
		Details:     params.Details,
	}
	l.transactions = append(l.transactions, tx)
	return tx, nil
}

// TransactionField selects the transaction field a query matches
// against. Dates are compared in their ISO string form.
type TransactionField string

const (
	ByOrigin      TransactionField = "origin"
	ByDestination TransactionField = "destination"
	ByDate        TransactionField = "date"
	ByDetails     TransactionField = "details"
)

func transactionField(tx model.Transaction, field TransactionField) string {
	switch field {
	case ByOrigin:
		return tx.Origin
	case ByDestination:
		return tx.Destination
	case ByDate:
		return tx.Date.String()
	case ByDetails:
		return tx.Details
	default:
		return ""
	}
}

// GetTransactions returns all transactions whose field equals value,
// in insertion order.
func (l *Ledger) GetTransactions(field TransactionField, value string) []model.Transaction {
	var out []model.Transaction
	for _, tx := range l.transactions {
		if transactionField(tx, field) == value {
			out = append(out, tx)
		}
	}
	return out
}

// TransactionsByAccount returns every transaction where the account is
// origin or destination, sorted ascending by date. Transactions on the
// same day keep their insertion order.
func (l *Ledger) TransactionsByAccount(accountID string) []model.Transaction {
	var out []model.Transaction
	for _, tx := range l.transactions {
		if tx.Origin == accountID || tx.Destination == accountID {
			out = append(out, tx)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// Transactions returns a copy of all transactions in insertion order.
func (l *Ledger) Transactions() []model.Transaction {
	out := make([]model.Transaction, len(l.transactions))
	copy(out, l.transactions)
	return out
}
