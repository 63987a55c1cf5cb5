// Package mssql provides the SQL Server dialect translator for adql.
package mssql

import (
	"github.com/zoobzio/adql"
	"github.com/zoobzio/adql/internal/render"
)

// Dialect is the name reported in translation errors.
const Dialect = "mssql"

// Translator implements the SQL Server dialect translator.
//
// Identifiers are written as given unless case sensitivity is requested,
// in which case they are delimited with square brackets. Catalog user
// functions are left unqualified; see package mast for schema qualification.
type Translator struct {
	engine *render.Engine
}

var _ adql.Translator = (*Translator)(nil)

// Option configures a Translator.
type Option func(*render.Capabilities)

// WithCaseSensitive delimits every identifier so SQL Server compares them
// according to the column collation.
func WithCaseSensitive() Option {
	return func(c *render.Capabilities) {
		c.CaseSensitive = true
	}
}

// New creates a new SQL Server translator.
func New(opts ...Option) *Translator {
	caps := render.Capabilities{
		RowLimit: render.RowLimitTop,
		Quote:    render.QuoteBrackets,
	}
	for _, opt := range opts {
		opt(&caps)
	}
	return &Translator{engine: render.New(Dialect, caps)}
}

// Translate converts a query to SQL Server SQL.
func (t *Translator) Translate(q *adql.Query) (string, error) {
	return t.engine.Render(q)
}

// Capabilities returns the dialect features used when rendering.
func (t *Translator) Capabilities() render.Capabilities {
	return t.engine.Caps
}
