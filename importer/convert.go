package importer

import (
	"encoding/csv"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/konto-dev/konto/model"
)

// Convert turns one raw CSV export into normalized statement entries
// using the given config. The text is decoded per the config's
// charset, split into rows, and normalized; see NormalizeRows for the
// guarantees on the result.
func Convert(csvText string, cfg Config) ([]model.Entry, error) {
	text, err := decode(csvText, cfg.Encoding)
	if err != nil {
		return nil, fmt.Errorf("decoding %s export: %w", cfg.Name, err)
	}
	if cfg.TrimFooter {
		text = trimLastLine(text)
	}

	rows, err := splitRows(text, cfg)
	if err != nil {
		return nil, fmt.Errorf("reading %s export: %w", cfg.Name, err)
	}
	return NormalizeRows(rows, cfg)
}

// ConvertNamed is Convert with a registered bank ID instead of an
// explicit config.
func ConvertNamed(csvText string, bankID string) ([]model.Entry, error) {
	cfg, err := Lookup(bankID)
	if err != nil {
		return nil, err
	}
	return Convert(csvText, cfg)
}

func decode(text string, enc Encoding) (string, error) {
	switch enc {
	case EncodingLatin1:
		return charmap.ISO8859_1.NewDecoder().String(text)
	default:
		return text, nil
	}
}

// trimLastLine drops the trailing line of the export (some banks close
// with a balance summary that is not a transaction row).
func trimLastLine(text string) string {
	trimmed := strings.TrimRight(text, "\n")
	i := strings.LastIndexByte(trimmed, '\n')
	if i < 0 {
		return ""
	}
	return trimmed[:i+1]
}

// splitRows tokenizes the export. With a header config the first
// record becomes the shared column index for all following rows.
func splitRows(text string, cfg Config) ([]Row, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.Comma = cfg.Delimiter
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	var columns map[string]int
	if cfg.Header {
		if len(records) == 0 {
			return nil, nil
		}
		columns = make(map[string]int, len(records[0]))
		for i, name := range records[0] {
			columns[name] = i
		}
		records = records[1:]
	}

	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		rows = append(rows, NewHeaderRow(rec, columns))
	}
	return rows, nil
}
