package adql

import "fmt"

// Operator is a comparison operator of a WHERE constraint.
type Operator string

const (
	EQ   Operator = "="
	NE   Operator = "<>"
	GT   Operator = ">"
	GE   Operator = ">="
	LT   Operator = "<"
	LE   Operator = "<="
	LIKE Operator = "LIKE"
)

// Table is a FROM clause table reference.
type Table struct {
	Schema string
	Name   string
	Alias  string
}

// SelectItem is an item of the SELECT clause.
type SelectItem struct {
	Operand Operand
	Alias   string
}

// Comparison is a WHERE constraint. Constraints of a query are ANDed.
type Comparison struct {
	Left     Operand
	Operator Operator
	Right    Operand
}

// OrderItem is an ORDER BY item.
type OrderItem struct {
	Operand Operand
	Desc    bool
}

// Query is the part of an ADQL query tree handed to translators.
// An empty Select list selects every column.
//
//nolint:govet // fieldalignment: clause order is preferred for readability
type Query struct {
	Distinct bool
	Limit    *int
	Select   []SelectItem
	From     []Table
	Where    []Comparison
	OrderBy  []OrderItem
}

// Validate performs basic structural validation.
func (q *Query) Validate() error {
	if q == nil {
		return NewTranslationError("", "query is nil")
	}
	if len(q.From) == 0 {
		return NewTranslationError("", "at least one FROM table is required")
	}
	for i, t := range q.From {
		if t.Name == "" {
			return NewTranslationError("", "FROM table %d has no name", i)
		}
	}
	if q.Limit != nil && *q.Limit < 0 {
		return NewTranslationError("", "negative row limit %d", *q.Limit)
	}
	for i, item := range q.Select {
		if IsAbsent(item.Operand) {
			return NewTranslationError("", "select item %d has no operand", i)
		}
	}
	for i, c := range q.Where {
		if IsAbsent(c.Left) || IsAbsent(c.Right) {
			return NewTranslationError("", "constraint %d is missing an operand", i)
		}
		if err := validateOperator(c.Operator); err != nil {
			return err
		}
	}
	for i, o := range q.OrderBy {
		if IsAbsent(o.Operand) {
			return NewTranslationError("", "order item %d has no operand", i)
		}
	}
	return nil
}

func validateOperator(op Operator) error {
	switch op {
	case EQ, NE, GT, GE, LT, LE, LIKE:
		return nil
	default:
		return fmt.Errorf("unsupported operator %q: %w", op, ErrTranslation)
	}
}
