// Package postgres provides the PostgreSQL dialect translator for adql.
package postgres

import (
	"github.com/zoobzio/adql"
	"github.com/zoobzio/adql/internal/render"
)

// Dialect is the name reported in translation errors.
const Dialect = "postgres"

// Translator implements the PostgreSQL dialect translator.
type Translator struct {
	engine *render.Engine
}

var _ adql.Translator = (*Translator)(nil)

// Option configures a Translator.
type Option func(*render.Capabilities)

// WithCaseSensitive delimits every identifier with double quotes.
func WithCaseSensitive() Option {
	return func(c *render.Capabilities) {
		c.CaseSensitive = true
	}
}

// New creates a new PostgreSQL translator.
func New(opts ...Option) *Translator {
	caps := render.Capabilities{
		RowLimit: render.RowLimitClause,
		Quote:    render.QuoteDouble,
	}
	for _, opt := range opts {
		opt(&caps)
	}
	return &Translator{engine: render.New(Dialect, caps)}
}

// Translate converts a query to PostgreSQL SQL.
func (t *Translator) Translate(q *adql.Query) (string, error) {
	return t.engine.Render(q)
}
