package ledger

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/konto-dev/konto/model"
)

// dataset is the persisted shape of a ledger: the in-memory records,
// verbatim, with dates as ISO strings. No framing, no versioning.
type dataset struct {
	Accounts     []model.Account     `json:"accounts"`
	Transactions []model.Transaction `json:"transactions"`
}

// Encode writes the ledger as an indented JSON document.
func (l *Ledger) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(dataset{
		Accounts:     l.accounts,
		Transactions: l.transactions,
	})
}

// Decode reads a ledger previously written by Encode. The world
// account is seeded if the document predates it or was hand-edited
// without one.
func Decode(r io.Reader) (*Ledger, error) {
	var ds dataset
	if err := json.NewDecoder(r).Decode(&ds); err != nil {
		return nil, fmt.Errorf("decoding dataset: %w", err)
	}

	l := &Ledger{
		accounts:     ds.Accounts,
		transactions: ds.Transactions,
	}
	if _, err := l.GetAccount(ByID, model.WorldAccountID); err != nil {
		l.accounts = append([]model.Account{{ID: model.WorldAccountID}}, l.accounts...)
	}
	return l, nil
}
