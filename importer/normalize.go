package importer

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/konto-dev/konto/date"
	"github.com/konto-dev/konto/model"
)

// ErrInvalidImport is returned when a normalized batch is empty or
// not in chronological order.
var ErrInvalidImport = errors.New("invalid import")

// InvalidDateError reports a raw date that did not normalize to
// YYYY-MM-DD shape.
type InvalidDateError struct {
	Raw string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid input date: %q", e.Raw)
}

// Row is one tokenized CSV record. Columns are addressed positionally,
// or by header name when the export carries a header row.
type Row struct {
	fields  []string
	columns map[string]int // header name -> index, nil for headerless exports
}

// NewRow builds a positional row.
func NewRow(fields ...string) Row {
	return Row{fields: fields}
}

// NewHeaderRow builds a row whose columns resolve through a shared
// header index.
func NewHeaderRow(fields []string, columns map[string]int) Row {
	return Row{fields: fields, columns: columns}
}

func (r Row) field(k Key) (string, error) {
	i := k.Index
	if k.Name != "" {
		var ok bool
		i, ok = r.columns[k.Name]
		if !ok {
			return "", fmt.Errorf("no column %q in row", k.Name)
		}
	}
	if i < 0 || i >= len(r.fields) {
		return "", fmt.Errorf("column %s out of range (row has %d fields)", k, len(r.fields))
	}
	return r.fields[i], nil
}

// NormalizeRows converts tokenized rows into statement entries:
// chronological order, ISO dates, decimal amounts with sign intact.
// Entry IDs are row indices after any reversal, so they follow
// chronological order too.
//
// The returned batch is guaranteed non-empty and non-decreasing by
// date; anything else fails with ErrInvalidImport.
func NormalizeRows(rows []Row, cfg Config) ([]model.Entry, error) {
	if cfg.Reverse {
		rows = reversed(rows)
	}

	entries := make([]model.Entry, 0, len(rows))
	for i, row := range rows {
		entry, err := normalizeRow(row, cfg)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		entry.ID = i
		entries = append(entries, entry)
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: empty batch", ErrInvalidImport)
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Date.Before(entries[i-1].Date) {
			return nil, fmt.Errorf("%w: entries not in chronological order (%s after %s)",
				ErrInvalidImport, entries[i].Date, entries[i-1].Date)
		}
	}
	return entries, nil
}

func normalizeRow(row Row, cfg Config) (model.Entry, error) {
	rawDate, err := row.field(cfg.DateKey)
	if err != nil {
		return model.Entry{}, err
	}
	day, err := normalizeDate(rawDate, cfg.DateFormat)
	if err != nil {
		return model.Entry{}, err
	}

	rawAmount, err := row.field(cfg.AmountKey)
	if err != nil {
		return model.Entry{}, err
	}
	amount, err := parseAmount(rawAmount, cfg.DecimalMark)
	if err != nil {
		return model.Entry{}, err
	}

	details, err := row.field(cfg.DetailsKey)
	if err != nil {
		return model.Entry{}, err
	}

	return model.Entry{
		Date:    day,
		Amount:  amount,
		Details: cfg.Details.normalize(details),
	}, nil
}

var isoDate = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)

// normalizeDate applies the bank's date strategy, zero-pads one-digit
// month and day components, and parses the result as a calendar date.
func normalizeDate(raw string, format DateFormat) (date.Date, error) {
	s := format.normalize(strings.TrimSpace(raw))

	parts := strings.Split(s, "-")
	if len(parts) == 3 {
		for i := 1; i <= 2; i++ {
			if len(parts[i]) == 1 {
				parts[i] = "0" + parts[i]
			}
		}
		s = strings.Join(parts, "-")
	}
	if !isoDate.MatchString(s) {
		return date.Date{}, &InvalidDateError{Raw: raw}
	}
	d, err := date.Parse(s)
	if err != nil {
		return date.Date{}, &InvalidDateError{Raw: raw}
	}
	return d, nil
}

// parseAmount reads a signed decimal. With a ',' decimal mark the '.'
// thousands separators are dropped and the comma becomes the decimal
// point first.
func parseAmount(raw string, decimalMark rune) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if decimalMark == ',' {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing amount %q: %w", raw, err)
	}
	return amount, nil
}

func reversed(rows []Row) []Row {
	out := make([]Row, len(rows))
	for i, r := range rows {
		out[len(rows)-1-i] = r
	}
	return out
}
