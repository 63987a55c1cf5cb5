package adql

import "strings"

// NumericConstant is a numeric literal. Value holds the literal as written.
type NumericConstant struct {
	Value string
}

// Num creates a numeric constant.
func Num(value string) *NumericConstant { return &NumericConstant{Value: value} }

// IsNumeric always reports true.
func (c *NumericConstant) IsNumeric() bool { return true }

// IsString always reports false.
func (c *NumericConstant) IsString() bool { return false }

// IsGeometry always reports false.
func (c *NumericConstant) IsGeometry() bool { return false }

// ADQL returns the literal as written.
func (c *NumericConstant) ADQL() string { return c.Value }

// Copy returns a new constant with the same value.
func (c *NumericConstant) Copy() Operand { return &NumericConstant{Value: c.Value} }

// StringConstant is a string literal. Value is unquoted.
type StringConstant struct {
	Value string
}

// Str creates a string constant.
func Str(value string) *StringConstant { return &StringConstant{Value: value} }

// IsNumeric always reports false.
func (c *StringConstant) IsNumeric() bool { return false }

// IsString always reports true.
func (c *StringConstant) IsString() bool { return true }

// IsGeometry always reports false.
func (c *StringConstant) IsGeometry() bool { return false }

// ADQL returns the value as a quoted literal.
func (c *StringConstant) ADQL() string { return QuoteString(c.Value) }

// Copy returns a new constant with the same value.
func (c *StringConstant) Copy() Operand { return &StringConstant{Value: c.Value} }

// QuoteString returns s as a single-quoted SQL string literal.
func QuoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// Column is a column reference whose type is known from the schema.
type Column struct {
	Table string
	Name  string
	Type  Capabilities
}

// IsNumeric reports whether the column holds numbers.
func (c *Column) IsNumeric() bool { return c.Type.Numeric }

// IsString reports whether the column holds strings.
func (c *Column) IsString() bool { return c.Type.String }

// IsGeometry reports whether the column holds geometries.
func (c *Column) IsGeometry() bool { return c.Type.Geometry }

// ADQL returns the optionally table-qualified column name.
func (c *Column) ADQL() string { return qualified(c.Table, c.Name) }

// Copy returns a copy of the reference.
func (c *Column) Copy() Operand {
	cp := *c
	return &cp
}

// UnresolvedColumn is a column reference not (yet) found in the schema.
// It is compatible with any operand.
type UnresolvedColumn struct {
	Table    string
	Name     string
	expected Capabilities
}

// Col creates an unresolved column reference; name may be "table.column".
func Col(name string) *UnresolvedColumn {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return &UnresolvedColumn{Table: name[:i], Name: name[i+1:]}
	}
	return &UnresolvedColumn{Name: name}
}

// IsNumeric reports the numeric type hint.
func (c *UnresolvedColumn) IsNumeric() bool { return c.expected.Numeric }

// IsString reports the string type hint.
func (c *UnresolvedColumn) IsString() bool { return c.expected.String }

// IsGeometry reports the geometry type hint.
func (c *UnresolvedColumn) IsGeometry() bool { return c.expected.Geometry }

// ADQL returns the optionally table-qualified column name.
func (c *UnresolvedColumn) ADQL() string { return qualified(c.Table, c.Name) }

// ExpectedType returns the type hint set by the consumer of the reference.
func (c *UnresolvedColumn) ExpectedType() Capabilities { return c.expected }

// SetExpectedType records the type the consumer expects.
func (c *UnresolvedColumn) SetExpectedType(exp Capabilities) { c.expected = exp }

// Copy returns a copy of the reference, type hint included.
func (c *UnresolvedColumn) Copy() Operand {
	cp := *c
	return &cp
}

// Point is the ADQL POINT geometry.
type Point struct {
	CoordSys string
	RA       Operand
	Dec      Operand
}

// IsNumeric always reports false.
func (p *Point) IsNumeric() bool { return false }

// IsString always reports false.
func (p *Point) IsString() bool { return false }

// IsGeometry always reports true.
func (p *Point) IsGeometry() bool { return true }

// ADQL returns POINT('system', ra, dec). Missing coordinates are written as NULL.
func (p *Point) ADQL() string {
	return "POINT(" + QuoteString(p.CoordSys) + ", " + operandADQL(p.RA) + ", " + operandADQL(p.Dec) + ")"
}

// Copy returns a deep copy of the point.
func (p *Point) Copy() Operand {
	return &Point{CoordSys: p.CoordSys, RA: copyOperand(p.RA), Dec: copyOperand(p.Dec)}
}

// UserFunction is a call to a catalog user function with a declared return type.
type UserFunction struct {
	FuncName string
	Args     []Operand
	Returns  Capabilities
}

// IsNumeric reports whether the function returns numbers.
func (f *UserFunction) IsNumeric() bool { return f.Returns.Numeric }

// IsString reports whether the function returns strings.
func (f *UserFunction) IsString() bool { return f.Returns.String }

// IsGeometry reports whether the function returns geometries.
func (f *UserFunction) IsGeometry() bool { return f.Returns.Geometry }

// ADQL returns the call as name(arg, ...).
func (f *UserFunction) ADQL() string { return callADQL(f.FuncName, f.Args) }

// Copy returns a deep copy of the call.
func (f *UserFunction) Copy() Operand {
	return &UserFunction{FuncName: f.FuncName, Args: copyOperands(f.Args), Returns: f.Returns}
}

// UnknownFunction is a call to a function whose return type is not declared.
// It is compatible with any operand.
type UnknownFunction struct {
	FuncName string
	Args     []Operand
	expected Capabilities
}

// IsNumeric reports the numeric type hint.
func (f *UnknownFunction) IsNumeric() bool { return f.expected.Numeric }

// IsString reports the string type hint.
func (f *UnknownFunction) IsString() bool { return f.expected.String }

// IsGeometry reports the geometry type hint.
func (f *UnknownFunction) IsGeometry() bool { return f.expected.Geometry }

// ADQL returns the call as name(arg, ...).
func (f *UnknownFunction) ADQL() string { return callADQL(f.FuncName, f.Args) }

// ExpectedType returns the type hint set by the consumer of the call.
func (f *UnknownFunction) ExpectedType() Capabilities { return f.expected }

// SetExpectedType records the type the consumer expects.
func (f *UnknownFunction) SetExpectedType(exp Capabilities) { f.expected = exp }

// Copy returns a deep copy of the call, type hint included.
func (f *UnknownFunction) Copy() Operand {
	return &UnknownFunction{FuncName: f.FuncName, Args: copyOperands(f.Args), expected: f.expected}
}

func qualified(table, name string) string {
	if table == "" {
		return name
	}
	return table + "." + name
}

// operandADQL is op.ADQL() with absent operands written as NULL.
func operandADQL(op Operand) string {
	if IsAbsent(op) {
		return "NULL"
	}
	return op.ADQL()
}

func callADQL(name string, args []Operand) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = operandADQL(a)
	}
	return name + "(" + strings.Join(parts, ", ") + ")"
}

func copyOperand(op Operand) Operand {
	if IsAbsent(op) {
		return nil
	}
	return op.Copy()
}

func copyOperands(ops []Operand) []Operand {
	if ops == nil {
		return nil
	}
	out := make([]Operand, len(ops))
	for i, op := range ops {
		out[i] = copyOperand(op)
	}
	return out
}
