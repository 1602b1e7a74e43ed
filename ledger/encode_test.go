package ledger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/konto-dev/konto/model"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	l := newTestLedger()
	mustAdd(l, "100", "world", "main", "2015-02-01")
	mustAdd(l, "30", "main", "cash", "2015-02-03")

	var buf bytes.Buffer
	require.NoError(t, l.Encode(&buf))

	back, err := Decode(&buf)
	require.NoError(t, err)

	require.Len(t, back.Accounts(), len(l.Accounts()))
	for i, a := range l.Accounts() {
		assert.Equal(t, a.ID, back.Accounts()[i].ID)
		assert.Equal(t, a.Name, back.Accounts()[i].Name)
	}
	require.Len(t, back.Transactions(), 2)
	assert.Equal(t, "2015-02-01", back.Transactions()[0].Date.String())
	assert.True(t, back.Transactions()[0].Amount.Equal(dec("100")))

	balance, err := back.Balance("main")
	require.NoError(t, err)
	assert.True(t, balance.Equal(dec("70")))
}

func TestDecode_SeedsMissingWorld(t *testing.T) {
	doc := `{"accounts":[{"id":"main","initialBalance":"0"}],"transactions":[]}`

	l, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)

	world, err := l.GetAccount(ByID, model.WorldAccountID)
	require.NoError(t, err)
	assert.Equal(t, model.WorldAccountID, world.ID)
	assert.Len(t, l.Accounts(), 2)
}

func TestDecode_Invalid(t *testing.T) {
	_, err := Decode(strings.NewReader("not json"))
	assert.Error(t, err)
}
