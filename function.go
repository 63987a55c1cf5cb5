package adql

// Function is an operand computed by a named function over parameters.
type Function interface {
	Operand

	// Name returns the function name as written in ADQL.
	Name() string

	ParameterCount() int

	// Parameters returns a copy of the parameter list.
	Parameters() []Operand

	Parameter(index int) (Operand, error)

	// SetParameter replaces the parameter at index and returns the one it replaced.
	SetParameter(index int, op Operand) (Operand, error)
}
