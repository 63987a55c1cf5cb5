// Package render holds the rendering engine shared by the dialect translators.
package render

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/zoobzio/adql"
)

// Engine renders adql queries for one dialect.
type Engine struct {
	Dialect string
	Caps    Capabilities
}

// New creates an engine for the named dialect.
func New(dialect string, caps Capabilities) *Engine {
	return &Engine{Dialect: dialect, Caps: caps}
}

// Render converts q to SQL. Function names are written unqualified and
// unquoted so that dialect overlays can post-process them.
func (e *Engine) Render(q *adql.Query) (string, error) {
	if err := q.Validate(); err != nil {
		return "", fmt.Errorf("%s: invalid query: %w", e.Dialect, err)
	}

	var sql strings.Builder
	if err := e.renderSelect(q, &sql); err != nil {
		return "", err
	}
	return sql.String(), nil
}

func (e *Engine) renderSelect(q *adql.Query, sql *strings.Builder) error {
	sql.WriteString("SELECT ")

	if q.Distinct {
		sql.WriteString("DISTINCT ")
	}

	if q.Limit != nil && e.Caps.RowLimit == RowLimitTop {
		sql.WriteString("TOP ")
		sql.WriteString(strconv.Itoa(*q.Limit))
		sql.WriteString(" ")
	}

	if len(q.Select) == 0 {
		sql.WriteString("*")
	} else {
		selections := make([]string, 0, len(q.Select))
		for _, item := range q.Select {
			s, err := e.renderOperand(item.Operand)
			if err != nil {
				return err
			}
			if item.Alias != "" {
				alias, err := e.identifier(item.Alias)
				if err != nil {
					return err
				}
				s += " AS " + alias
			}
			selections = append(selections, s)
		}
		sql.WriteString(strings.Join(selections, ", "))
	}

	sql.WriteString(" FROM ")
	tables := make([]string, 0, len(q.From))
	for _, t := range q.From {
		s, err := e.renderTable(t)
		if err != nil {
			return err
		}
		tables = append(tables, s)
	}
	sql.WriteString(strings.Join(tables, ", "))

	if len(q.Where) > 0 {
		sql.WriteString(" WHERE ")
		conds := make([]string, 0, len(q.Where))
		for _, c := range q.Where {
			s, err := e.renderComparison(c)
			if err != nil {
				return err
			}
			conds = append(conds, s)
		}
		sql.WriteString(strings.Join(conds, " AND "))
	}

	if len(q.OrderBy) > 0 {
		sql.WriteString(" ORDER BY ")
		parts := make([]string, 0, len(q.OrderBy))
		for _, o := range q.OrderBy {
			s, err := e.renderOperand(o.Operand)
			if err != nil {
				return err
			}
			if o.Desc {
				s += " DESC"
			} else {
				s += " ASC"
			}
			parts = append(parts, s)
		}
		sql.WriteString(strings.Join(parts, ", "))
	}

	if q.Limit != nil && e.Caps.RowLimit == RowLimitClause {
		sql.WriteString(" LIMIT ")
		sql.WriteString(strconv.Itoa(*q.Limit))
	}

	return nil
}

func (e *Engine) renderTable(t adql.Table) (string, error) {
	name, err := e.identifier(t.Name)
	if err != nil {
		return "", err
	}
	if t.Schema != "" {
		schema, err := e.identifier(t.Schema)
		if err != nil {
			return "", err
		}
		name = schema + "." + name
	}
	if t.Alias != "" {
		alias, err := e.identifier(t.Alias)
		if err != nil {
			return "", err
		}
		name += " AS " + alias
	}
	return name, nil
}

func (e *Engine) renderComparison(c adql.Comparison) (string, error) {
	left, err := e.renderOperand(c.Left)
	if err != nil {
		return "", err
	}
	right, err := e.renderOperand(c.Right)
	if err != nil {
		return "", err
	}
	return left + " " + string(c.Operator) + " " + right, nil
}

// numericLiteral is the SQL exact and approximate numeric literal syntax,
// with an optional sign.
var numericLiteral = regexp.MustCompile(`^[+-]?([0-9]+(\.[0-9]*)?|\.[0-9]+)([eE][+-]?[0-9]+)?$`)

func (e *Engine) renderOperand(op adql.Operand) (string, error) {
	if adql.IsAbsent(op) {
		return "", adql.NewTranslationError(e.Dialect, "missing operand")
	}
	switch v := op.(type) {
	case *adql.NumericConstant:
		if !numericLiteral.MatchString(v.Value) {
			return "", adql.NewTranslationError(e.Dialect, "invalid numeric literal %q", v.Value)
		}
		return v.Value, nil
	case *adql.StringConstant:
		return adql.QuoteString(v.Value), nil
	case *adql.Column:
		return e.renderColumn(v.Table, v.Name)
	case *adql.UnresolvedColumn:
		return e.renderColumn(v.Table, v.Name)
	case *adql.Point:
		return e.renderPoint(v)
	case *adql.UserFunction:
		return e.renderCall(v.FuncName, v.Args)
	case *adql.UnknownFunction:
		return e.renderCall(v.FuncName, v.Args)
	case adql.Function:
		return e.renderCall(v.Name(), v.Parameters())
	default:
		return "", NewUnsupportedFeatureError(e.Dialect, fmt.Sprintf("operand %T", op))
	}
}

func (e *Engine) renderColumn(table, name string) (string, error) {
	col, err := e.identifier(name)
	if err != nil {
		return "", err
	}
	if table == "" {
		return col, nil
	}
	t, err := e.identifier(table)
	if err != nil {
		return "", err
	}
	return t + "." + col, nil
}

func (e *Engine) renderCall(name string, args []adql.Operand) (string, error) {
	if !isRegularIdentifier(name) {
		return "", adql.NewTranslationError(e.Dialect, "invalid function name %q", name)
	}
	parts := make([]string, len(args))
	for i, arg := range args {
		if adql.IsAbsent(arg) {
			return "", adql.NewTranslationError(e.Dialect, "%s: argument %d is missing", name, i)
		}
		s, err := e.renderOperand(arg)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return name + "(" + strings.Join(parts, ", ") + ")", nil
}

// renderPoint keeps the ADQL POINT form; only the coordinates are rendered.
func (e *Engine) renderPoint(p *adql.Point) (string, error) {
	coords := [2]adql.Operand{p.RA, p.Dec}
	parts := [2]string{}
	for i, c := range coords {
		if adql.IsAbsent(c) {
			return "", adql.NewTranslationError(e.Dialect, "POINT: coordinate %d is missing", i)
		}
		s, err := e.renderOperand(c)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return "POINT(" + adql.QuoteString(p.CoordSys) + ", " + parts[0] + ", " + parts[1] + ")", nil
}

// identifier renders a table, column or alias name.
func (e *Engine) identifier(name string) (string, error) {
	if name == "" {
		return "", adql.NewTranslationError(e.Dialect, "empty identifier")
	}
	if e.Caps.CaseSensitive || !isRegularIdentifier(name) {
		return e.Caps.quote(name), nil
	}
	return name, nil
}

// isRegularIdentifier checks for a letter or underscore followed by
// letters, digits or underscores.
func isRegularIdentifier(s string) bool {
	if s == "" {
		return false
	}
	first := s[0]
	if !((first >= 'a' && first <= 'z') ||
		(first >= 'A' && first <= 'Z') ||
		first == '_') {
		return false
	}
	for i := 1; i < len(s); i++ {
		ch := s[i]
		if !((ch >= 'a' && ch <= 'z') ||
			(ch >= 'A' && ch <= 'Z') ||
			(ch >= '0' && ch <= '9') ||
			ch == '_') {
			return false
		}
	}
	return true
}
