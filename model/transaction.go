package model

import (
	"github.com/shopspring/decimal"

	"github.com/konto-dev/konto/date"
)

// Transaction moves Amount from Origin to Destination on Date.
// Amount is always non-negative; direction is carried by the two
// account IDs. Transactions are immutable once stored — corrections
// are made by adding new transactions, never by editing.
type Transaction struct {
	Amount        decimal.Decimal `json:"amount"`
	Origin        string          `json:"origin"`
	Destination   string          `json:"destination"`
	Date          date.Date       `json:"date"`
	Details       string          `json:"details,omitempty"`
	StartTracking bool            `json:"startTracking,omitempty"` // marks a synthetic reconciliation row
}
