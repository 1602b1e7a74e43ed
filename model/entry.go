package model

import (
	"github.com/shopspring/decimal"

	"github.com/konto-dev/konto/date"
)

// Entry is a normalized bank statement row. Unlike Transaction the
// amount is signed: positive means money flowed into the statement's
// account, negative means it flowed out. ID is the row's position in
// chronological order within its import batch.
type Entry struct {
	ID      int             `json:"id"`
	Date    date.Date       `json:"date"`
	Amount  decimal.Decimal `json:"amount"`
	Details string          `json:"details,omitempty"`
}
