package model

import "github.com/shopspring/decimal"

// WorldAccountID identifies the synthetic account that stands in for
// every counterparty outside the modeled set. Money entering or
// leaving the system flows through it.
const WorldAccountID = "world"

// Account is one bookkeeping account. Accounts are immutable once
// added to a ledger; there is no update or delete.
type Account struct {
	ID             string            `json:"id"`
	Name           string            `json:"name,omitempty"`
	Type           string            `json:"accountType,omitempty"`
	OpenDate       string            `json:"openDate,omitempty"`
	InitialBalance decimal.Decimal   `json:"initialBalance"`
	Attrs          map[string]string `json:"attrs,omitempty"` // caller-supplied extra fields, kept verbatim
}
