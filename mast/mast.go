// Package mast adapts translated SQL to the MAST SQL Server catalogs, where
// catalog user functions live in the dbo schema and must be called with
// their schema prefix.
//
// The overlay works on the rendered text rather than on the query tree: any
// occurrence of a space followed by a catalog function name gets the schema
// prefix inserted after the space. It is a coarse substring match. A name
// that is the start of a longer identifier, or that appears inside a string
// literal after a space, is qualified too.
package mast

import (
	"context"
	"log/slog"
	"strings"

	"github.com/zoobzio/adql"
)

// DefaultSchema is the schema catalog user functions are assumed to reside in.
const DefaultSchema = "dbo"

// Translator wraps another translator and schema-qualifies catalog user
// functions in its output. It holds no per-call state and may be shared
// between goroutines as long as the wrapped translator can.
type Translator struct {
	base   adql.Translator
	logger *slog.Logger
	schema string
	names  []string
}

var _ adql.Translator = (*Translator)(nil)

// Option configures a Translator.
type Option func(*Translator)

// WithSchema overrides the schema used as prefix.
func WithSchema(schema string) Option {
	return func(t *Translator) {
		t.schema = schema
	}
}

// WithLogger sets the logger used to trace qualification.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		t.logger = logger
	}
}

// New creates an overlay around base. Each signature is a catalog function
// signature such as "CatalogMatch(ra DOUBLE, dec DOUBLE, radius DOUBLE)";
// only the part before the first parenthesis is kept. With no signatures
// the overlay passes SQL through unchanged.
func New(base adql.Translator, signatures []string, opts ...Option) *Translator {
	t := &Translator{
		base:   base,
		logger: slog.Default(),
		schema: DefaultSchema,
		names:  FunctionNames(signatures),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.logger == nil {
		t.logger = slog.New(slog.DiscardHandler)
	}
	return t
}

// FunctionNames extracts the bare function names of signatures, dropping
// blanks and duplicates and keeping the first occurrence order.
func FunctionNames(signatures []string) []string {
	var names []string
	seen := make(map[string]struct{}, len(signatures))
	for _, sig := range signatures {
		if i := strings.IndexByte(sig, '('); i >= 0 {
			sig = sig[:i]
		}
		name := strings.TrimSpace(sig)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// FunctionNames returns the catalog function names the overlay qualifies.
func (t *Translator) FunctionNames() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Schema returns the schema prefix.
func (t *Translator) Schema() string {
	return t.schema
}

// Translate translates q with the wrapped translator and qualifies the
// catalog user functions of the result. Errors of the wrapped translator
// are returned unchanged.
func (t *Translator) Translate(q *adql.Query) (string, error) {
	if t.base == nil {
		return "", adql.NewTranslationError("mast", "no base translator")
	}
	sql, err := t.base.Translate(q)
	if err != nil {
		return "", err
	}
	return t.Qualify(sql), nil
}

// Qualify prefixes every catalog function name preceded by a space with the
// schema. Already qualified names are preceded by a dot, so applying
// Qualify to its own output changes nothing.
func (t *Translator) Qualify(sql string) string {
	for _, name := range t.names {
		bare := " " + name
		if !strings.Contains(sql, bare) {
			continue
		}
		sql = strings.ReplaceAll(sql, bare, " "+t.schema+"."+name)
		t.logger.LogAttrs(context.Background(), slog.LevelDebug, "qualified catalog function",
			slog.String("function", name),
			slog.String("schema", t.schema))
	}
	return sql
}
