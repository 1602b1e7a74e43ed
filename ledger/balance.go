package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/konto-dev/konto/date"
	"github.com/konto-dev/konto/model"
)

// Balance returns the account's balance over its full history:
// +amount for every transaction into the account, -amount for every
// transaction out of it.
func (l *Ledger) Balance(accountID string) (decimal.Decimal, error) {
	return l.balance(accountID, func(date.Date) bool { return true })
}

// BalanceAsOf is Balance restricted to transactions dated on or
// before asOf.
func (l *Ledger) BalanceAsOf(accountID string, asOf date.Date) (decimal.Decimal, error) {
	return l.balance(accountID, func(d date.Date) bool { return d.Compare(asOf) <= 0 })
}

func (l *Ledger) balance(accountID string, include func(date.Date) bool) (decimal.Decimal, error) {
	if accountID == "" {
		return decimal.Zero, ErrMissingAccountID
	}
	balance := decimal.Zero
	for _, tx := range l.transactions {
		if !include(tx.Date) {
			continue
		}
		switch accountID {
		case tx.Destination:
			balance = balance.Add(tx.Amount)
		case tx.Origin:
			balance = balance.Sub(tx.Amount)
		}
	}
	return balance, nil
}

// DailyBalance is one day-end balance snapshot.
type DailyBalance struct {
	Date    date.Date       `json:"date"`
	Balance decimal.Decimal `json:"balance"`
}

// DailyBalances returns one snapshot per calendar day spanning the
// account's first through last transaction. Balances are reported as
// of the end of each day, so the snapshot dated D reflects all
// transactions through D-1. An account with no transactions yields an
// empty result.
func (l *Ledger) DailyBalances(accountID string) ([]DailyBalance, error) {
	return l.DailyBalancesBetween(accountID, date.Date{}, date.Date{})
}

// DailyBalancesBetween is DailyBalances over an explicit [from, to]
// day range. A zero from or to falls back to the account's earliest or
// latest transaction date. Transactions dated before the range are
// folded into the first snapshot.
func (l *Ledger) DailyBalancesBetween(accountID string, from, to date.Date) ([]DailyBalance, error) {
	if accountID == "" {
		return nil, ErrMissingAccountID
	}
	transactions := l.TransactionsByAccount(accountID)
	if len(transactions) == 0 {
		return nil, nil
	}
	if from.IsZero() {
		from = transactions[0].Date
	}
	if to.IsZero() {
		to = transactions[len(transactions)-1].Date
	}

	// Single forward sweep: one pass over days and one over
	// transactions, never re-scanning per day.
	var out []DailyBalance
	balance := decimal.Zero
	next := 0
	for day := from; day.Compare(to) <= 0; day = day.Add(1) {
		reported := day.Add(1)
		for next < len(transactions) && transactions[next].Date.Before(reported) {
			balance = apply(balance, transactions[next], accountID)
			next++
		}
		out = append(out, DailyBalance{Date: reported, Balance: balance})
	}
	return out, nil
}

func apply(balance decimal.Decimal, tx model.Transaction, accountID string) decimal.Decimal {
	switch accountID {
	case tx.Origin:
		return balance.Sub(tx.Amount)
	case tx.Destination:
		return balance.Add(tx.Amount)
	}
	return balance
}
