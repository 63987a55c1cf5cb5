// Package sqlite provides the SQLite dialect translator for adql.
package sqlite

import (
	"github.com/zoobzio/adql"
	"github.com/zoobzio/adql/internal/render"
)

// Dialect is the name reported in translation errors.
const Dialect = "sqlite"

// Translator implements the SQLite dialect translator.
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

// New creates a new SQLite translator.
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

// Translate converts a query to SQLite SQL.
func (t *Translator) Translate(q *adql.Query) (string, error) {
	return t.engine.Render(q)
}
