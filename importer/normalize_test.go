package importer

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// positionalConfig mimics the headerless Austrian exports: details in
// column 1, dotted date in column 2, continental amount in column 4.
func positionalConfig() Config {
	return Config{
		Name:        "Test Bank",
		Delimiter:   ';',
		DateKey:     Col(2),
		DateFormat:  DateDotted,
		AmountKey:   Col(4),
		DecimalMark: ',',
		DetailsKey:  Col(1),
		Details:     DetailsCollapseSpaces,
		Reverse:     true,
	}
}

func TestNormalizeRows_ReversesAndNormalizes(t *testing.T) {
	rows := []Row{
		NewRow("x", "MERKUR  DANKT  1090", "02.05.2016", "x", "-3,98"),
		NewRow("x", "Gehalt", "27.04.2016", "x", "1.200,50"),
	}

	entries, err := NormalizeRows(rows, positionalConfig())
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, 0, entries[0].ID)
	assert.Equal(t, "2016-04-27", entries[0].Date.String())
	assert.True(t, entries[0].Amount.Equal(dec("1200.50")))
	assert.Equal(t, "Gehalt", entries[0].Details)

	assert.Equal(t, 1, entries[1].ID)
	assert.Equal(t, "2016-05-02", entries[1].Date.String())
	assert.True(t, entries[1].Amount.Equal(dec("-3.98")))
	assert.Equal(t, "MERKUR DANKT 1090", entries[1].Details, "runs of spaces collapse")
}

func TestNormalizeRows_NamedColumns(t *testing.T) {
	columns := map[string]int{"Date": 0, "Amount (EUR)": 1, "Payee": 2}
	cfg := Config{
		Name:       "Test",
		Delimiter:  ',',
		Header:     true,
		DateKey:    Named("Date"),
		AmountKey:  Named("Amount (EUR)"),
		DetailsKey: Named("Payee"),
	}

	entries, err := NormalizeRows([]Row{
		NewHeaderRow([]string{"2016-04-27", "-12.5", "REWE"}, columns),
	}, cfg)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Amount.Equal(dec("-12.5")))
	assert.Equal(t, "REWE", entries[0].Details)
}

func TestNormalizeRows_PadsDateComponents(t *testing.T) {
	cfg := Config{DateKey: Col(0), AmountKey: Col(1), DetailsKey: Col(2)}

	entries, err := NormalizeRows([]Row{
		NewRow("2016-4-7", "1", ""),
		NewRow("2016-12-7", "1", ""),
	}, cfg)
	require.NoError(t, err)
	assert.Equal(t, "2016-04-07", entries[0].Date.String())
	assert.Equal(t, "2016-12-07", entries[1].Date.String())
}

func TestNormalizeRows_InvalidDate(t *testing.T) {
	cfg := Config{DateKey: Col(0), AmountKey: Col(1), DetailsKey: Col(2)}

	_, err := NormalizeRows([]Row{NewRow("yesterday", "1", "")}, cfg)
	var invalid *InvalidDateError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "yesterday", invalid.Raw)

	// A formally shaped but impossible date is rejected too.
	_, err = NormalizeRows([]Row{NewRow("2016-13-40", "1", "")}, cfg)
	assert.ErrorAs(t, err, &invalid)
}

func TestNormalizeRows_BadAmount(t *testing.T) {
	cfg := Config{DateKey: Col(0), AmountKey: Col(1), DetailsKey: Col(2)}

	_, err := NormalizeRows([]Row{NewRow("2016-04-27", "NaNcy", "")}, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing amount")
}

func TestNormalizeRows_EmptyBatch(t *testing.T) {
	_, err := NormalizeRows(nil, positionalConfig())
	assert.ErrorIs(t, err, ErrInvalidImport)
}

func TestNormalizeRows_OutOfOrder(t *testing.T) {
	cfg := Config{DateKey: Col(0), AmountKey: Col(1), DetailsKey: Col(2)}

	_, err := NormalizeRows([]Row{
		NewRow("2016-05-02", "1", ""),
		NewRow("2016-04-27", "1", ""),
	}, cfg)
	assert.ErrorIs(t, err, ErrInvalidImport)
}

func TestNormalizeRows_MissingColumn(t *testing.T) {
	cfg := Config{DateKey: Col(5), AmountKey: Col(1), DetailsKey: Col(2)}

	_, err := NormalizeRows([]Row{NewRow("2016-04-27", "1", "")}, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")

	cfg = Config{DateKey: Named("Datum"), AmountKey: Col(1), DetailsKey: Col(2)}
	_, err = NormalizeRows([]Row{NewRow("2016-04-27", "1", "")}, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no column "Datum"`)
}

func TestParseAmount_DecimalMark(t *testing.T) {
	amount, err := parseAmount("1.234,56", ',')
	require.NoError(t, err)
	assert.True(t, amount.Equal(dec("1234.56")))

	amount, err = parseAmount("-3,98", ',')
	require.NoError(t, err)
	assert.True(t, amount.Equal(dec("-3.98")))

	amount, err = parseAmount("-3.98", 0)
	require.NoError(t, err)
	assert.True(t, amount.Equal(dec("-3.98")))
}
