package adql

const coalesceName = "COALESCE"

// Coalesce is the ADQL COALESCE function: it returns its first non-NULL
// argument, e.g. COALESCE(utype, 'none').
//
// All arguments must be of the same type as their neighbours, unless one of
// them is of unknown type. Which argument is returned is only known at
// evaluation time, so a Coalesce reports itself as numeric, string and
// geometry at once.
//
// A Coalesce is not safe for concurrent mutation. Rewrite passes sharing a
// node must serialise SetParameter calls or use WithParameter instead.
type Coalesce struct {
	operands []Operand
}

var _ Function = (*Coalesce)(nil)

// NewCoalesce creates a COALESCE over operands. The list must not be empty and
// every operand must be compatible with the one before it.
func NewCoalesce(operands ...Operand) (*Coalesce, error) {
	if len(operands) == 0 {
		return nil, invalidArgument(coalesceName, -1, "at least one parameter is required")
	}

	c := &Coalesce{operands: make([]Operand, len(operands))}
	for i, op := range operands {
		if IsAbsent(op) {
			return nil, invalidArgument(coalesceName, i, "parameter cannot be NULL")
		}
		if i > 0 && !Compatible(c.operands[i-1], op) {
			return nil, incompatible(i, op)
		}
		c.operands[i] = op
	}
	return c, nil
}

// Name returns "COALESCE".
func (c *Coalesce) Name() string { return coalesceName }

// IsNumeric always reports true; the argument returned is only known at evaluation time.
func (c *Coalesce) IsNumeric() bool { return true }

// IsString always reports true.
func (c *Coalesce) IsString() bool { return true }

// IsGeometry always reports true.
func (c *Coalesce) IsGeometry() bool { return true }

// ParameterCount returns the number of parameters.
func (c *Coalesce) ParameterCount() int { return len(c.operands) }

// Parameters returns a copy of the parameter list.
func (c *Coalesce) Parameters() []Operand {
	out := make([]Operand, len(c.operands))
	copy(out, c.operands)
	return out
}

// Parameter returns the parameter at index.
func (c *Coalesce) Parameter(index int) (Operand, error) {
	if index < 0 || index >= len(c.operands) {
		return nil, indexOutOfRange(coalesceName, index, false)
	}
	return c.operands[index], nil
}

// SetParameter replaces the parameter at index and returns the previous one.
// The replacement is checked against a single neighbour: index-1, or 1 when
// index is 0. Nothing is modified when an error is returned.
func (c *Coalesce) SetParameter(index int, op Operand) (Operand, error) {
	if err := c.checkReplacement(index, op); err != nil {
		return nil, err
	}
	old := c.operands[index]
	c.operands[index] = op
	return old, nil
}

// WithParameter returns a new Coalesce with the parameter at index replaced,
// leaving c unchanged. It applies the same checks as SetParameter.
func (c *Coalesce) WithParameter(index int, op Operand) (*Coalesce, error) {
	if err := c.checkReplacement(index, op); err != nil {
		return nil, err
	}
	next := &Coalesce{operands: c.Parameters()}
	next.operands[index] = op
	return next, nil
}

// Validate checks every pair of adjacent parameters. Neighbour-only checks in
// SetParameter cannot catch a mismatch introduced across an unknown operand
// that has since been replaced.
func (c *Coalesce) Validate() error {
	if len(c.operands) == 0 {
		return invalidArgument(coalesceName, -1, "at least one parameter is required")
	}
	for i := 1; i < len(c.operands); i++ {
		if !Compatible(c.operands[i-1], c.operands[i]) {
			return incompatible(i, c.operands[i])
		}
	}
	return nil
}

func (c *Coalesce) checkReplacement(index int, op Operand) error {
	if IsAbsent(op) {
		return invalidArgument(coalesceName, index, "parameter cannot be replaced by NULL")
	}
	if index < 0 || index >= len(c.operands) {
		return indexOutOfRange(coalesceName, index, true)
	}
	neighbour := index - 1
	if index == 0 {
		neighbour = 1
	}
	if neighbour < len(c.operands) && !Compatible(c.operands[neighbour], op) {
		return incompatible(index, op)
	}
	return nil
}

// Copy returns a deep copy, parameters included.
func (c *Coalesce) Copy() Operand {
	return &Coalesce{operands: copyOperands(c.operands)}
}

// ADQL returns COALESCE(a, b, ...).
func (c *Coalesce) ADQL() string {
	return callADQL(coalesceName, c.operands)
}

func incompatible(index int, op Operand) error {
	return invalidArgument(coalesceName, index,
		"%s must be of the same type as the other arguments", operandADQL(op))
}
