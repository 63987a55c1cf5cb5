package render

import "strings"

// RowLimitStyle indicates how a dialect caps the number of returned rows.
type RowLimitStyle int

const (
	RowLimitTop    RowLimitStyle = iota // SELECT TOP n
	RowLimitClause                      // LIMIT n
)

// QuoteStyle indicates how a dialect delimits identifiers.
type QuoteStyle int

const (
	QuoteDouble   QuoteStyle = iota // "name"
	QuoteBrackets                   // [name]
	QuoteBacktick                   // `name`
)

// Capabilities describes the SQL features of a dialect the engine relies on.
type Capabilities struct {
	RowLimit RowLimitStyle
	Quote    QuoteStyle
	// CaseSensitive delimits every identifier. Otherwise only identifiers
	// that are not regular are delimited.
	CaseSensitive bool
}

func (c Capabilities) quote(name string) string {
	switch c.Quote {
	case QuoteBrackets:
		return "[" + strings.ReplaceAll(name, "]", "]]") + "]"
	case QuoteBacktick:
		return "`" + strings.ReplaceAll(name, "`", "``") + "`"
	default:
		return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
	}
}
