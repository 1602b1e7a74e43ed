package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/konto-dev/konto/model"
)

// SetCurrentBalance records a reconciliation row so that the account's
// computed balance equals target. The row transfers the missing
// difference from world, is backdated to the account's earliest
// transaction and is tagged StartTracking. The difference may be
// negative when the recorded history overshoots the real balance; the
// row is stored as-is rather than flipped.
//
// The account must have at least one transaction to anchor the
// backdate to; otherwise ErrNoTransactions is returned.
func (l *Ledger) SetCurrentBalance(accountID string, target decimal.Decimal) (model.Transaction, error) {
	account, err := l.GetAccount(ByID, accountID)
	if err != nil {
		return model.Transaction{}, err
	}
	transactions := l.TransactionsByAccount(accountID)
	if len(transactions) == 0 {
		return model.Transaction{}, fmt.Errorf("%w: %s", ErrNoTransactions, accountID)
	}

	sum := decimal.Zero
	for _, tx := range transactions {
		if tx.Destination == accountID {
			sum = sum.Add(tx.Amount)
		} else {
			sum = sum.Sub(tx.Amount)
		}
	}

	tx := model.Transaction{
		Amount:        target.Sub(sum),
		Origin:        model.WorldAccountID,
		Destination:   account.ID,
		Date:          transactions[0].Date,
		Details:       "start tracking",
		StartTracking: true,
	}
	l.transactions = append(l.transactions, tx)
	return tx, nil
}
