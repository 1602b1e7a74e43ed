package ledger

import (
	"github.com/konto-dev/konto/model"
)

// AddImportedEntries attaches a batch of normalized statement entries
// to an account. Direction is inferred from the sign: a negative or
// zero amount left the account (origin=account, destination=world,
// amount negated), a positive amount entered it.
//
// This is the bulk path: the target account is resolved once, then
// rows are appended directly without per-row AddTransaction
// validation. Entries come from the importer, which has already
// normalized dates and amounts.
func (l *Ledger) AddImportedEntries(entries []model.Entry, accountID string) ([]model.Transaction, error) {
	account, err := l.GetAccount(ByID, accountID)
	if err != nil {
		return nil, err
	}

	added := make([]model.Transaction, 0, len(entries))
	for _, e := range entries {
		tx := model.Transaction{
			Date:    e.Date,
			Details: e.Details,
		}
		if e.Amount.Sign() <= 0 {
			tx.Origin = account.ID
			tx.Destination = model.WorldAccountID
			tx.Amount = e.Amount.Neg()
		} else {
			tx.Origin = model.WorldAccountID
			tx.Destination = account.ID
			tx.Amount = e.Amount
		}
		l.transactions = append(l.transactions, tx)
		added = append(added, tx)
	}
	return added, nil
}
