package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/konto-dev/konto/date"
	"github.com/konto-dev/konto/model"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func day(s string) date.Date { return date.MustParse(s) }

// newTestLedger returns a ledger with a "main" and a "cash" account.
func newTestLedger() *Ledger {
	l := New()
	if _, err := l.AddAccount(AccountParams{ID: "main", Name: "Main Account"}); err != nil {
		panic(err)
	}
	if _, err := l.AddAccount(AccountParams{ID: "cash"}); err != nil {
		panic(err)
	}
	return l
}

func mustAdd(l *Ledger, amount, origin, destination, on string) model.Transaction {
	tx, err := l.AddTransaction(TransactionParams{
		Amount:      dec(amount),
		Origin:      origin,
		Destination: destination,
		Date:        day(on),
	})
	if err != nil {
		panic(err)
	}
	return tx
}
