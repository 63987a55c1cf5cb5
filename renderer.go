package adql

// Translator renders a query tree as SQL for one target database.
// Implementations return an error wrapping ErrTranslation when the query is
// malformed or uses something the target cannot express.
type Translator interface {
	Translate(q *Query) (string, error)
}

// TranslatorFunc adapts an ordinary function to the Translator interface.
type TranslatorFunc func(q *Query) (string, error)

// Translate calls f(q).
func (f TranslatorFunc) Translate(q *Query) (string, error) {
	return f(q)
}
