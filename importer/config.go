// Package importer converts bank-specific CSV exports into normalized
// statement entries ready to attach to a ledger account.
//
// Each supported bank is described by a Config: which columns hold
// date, amount and details, how dates and decimals are written, and
// whether rows arrive newest-first. Normalization strategies are a
// closed set of named variants rather than caller-supplied functions.
package importer

import (
	"regexp"
	"strconv"
	"strings"
)

var collapseSpaces = regexp.MustCompile("  +")

// Encoding identifies the character set of a bank's CSV export.
type Encoding int

const (
	// EncodingUTF8 passes the text through untouched.
	EncodingUTF8 Encoding = iota
	// EncodingLatin1 decodes ISO-8859-1, the usual encoding of
	// Austrian bank exports.
	EncodingLatin1
)

// Key selects a CSV column, either by position (headerless exports)
// or by header name.
type Key struct {
	Index int
	Name  string
}

// Col selects column i of a headerless export.
func Col(i int) Key { return Key{Index: i} }

// Named selects the column under a header name. Names are matched
// exactly, including any leading spaces the bank writes.
func Named(name string) Key { return Key{Name: name} }

func (k Key) String() string {
	if k.Name != "" {
		return k.Name
	}
	return "#" + strconv.Itoa(k.Index)
}

// DateFormat identifies how a bank writes dates.
type DateFormat int

const (
	// DateISO expects YYYY-MM-DD, possibly with unpadded components.
	DateISO DateFormat = iota
	// DateDotted expects DD.MM.YYYY and reverses it into ISO order.
	DateDotted
)

func (f DateFormat) normalize(raw string) string {
	switch f {
	case DateDotted:
		parts := strings.Split(raw, ".")
		for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
			parts[i], parts[j] = parts[j], parts[i]
		}
		return strings.Join(parts, "-")
	default:
		return raw
	}
}

// DetailsFormat identifies how a bank's details column is cleaned up.
type DetailsFormat int

const (
	// DetailsVerbatim keeps the raw text.
	DetailsVerbatim DetailsFormat = iota
	// DetailsCollapseSpaces squashes runs of spaces into one, for
	// banks that pad fixed-width fields with blanks.
	DetailsCollapseSpaces
)

func (f DetailsFormat) normalize(raw string) string {
	switch f {
	case DetailsCollapseSpaces:
		return collapseSpaces.ReplaceAllString(raw, " ")
	default:
		return raw
	}
}

// Config describes one bank's CSV export format.
type Config struct {
	Name        string
	Encoding    Encoding
	Delimiter   rune
	Header      bool // first row is a header consumed before normalization
	DateKey     Key
	DateFormat  DateFormat
	AmountKey   Key
	DecimalMark rune // ',' for continental decimals ('.' as thousands separator)
	DetailsKey  Key
	Details     DetailsFormat
	Reverse     bool // rows arrive newest-first and must be flipped
	TrimFooter  bool // export ends with a summary line to drop
}
