// Package adql models the operands of ADQL queries and translates queries to SQL.
package adql

import "reflect"

// Operand is a typed expression of an ADQL query: a constant, a column
// reference, a function call, a geometry, etc.
type Operand interface {
	IsNumeric() bool
	IsString() bool
	IsGeometry() bool

	// ADQL returns the operand as ADQL text.
	ADQL() string

	// Copy returns a deep copy of the operand.
	Copy() Operand
}

// Capabilities is the set of types an operand may evaluate to.
type Capabilities struct {
	Numeric  bool
	String   bool
	Geometry bool
}

// Common capability sets.
var (
	NumericType  = Capabilities{Numeric: true}
	StringType   = Capabilities{String: true}
	GeometryType = Capabilities{Geometry: true}
	AnyType      = Capabilities{Numeric: true, String: true, Geometry: true}
)

// CapabilitiesOf returns the capability set reported by op.
func CapabilitiesOf(op Operand) Capabilities {
	return Capabilities{
		Numeric:  op.IsNumeric(),
		String:   op.IsString(),
		Geometry: op.IsGeometry(),
	}
}

// UnknownType is implemented by operands whose type cannot be resolved
// statically, such as references to columns missing from the schema.
// The expected type is a hint set by whichever expression consumes the
// operand; it does not change compatibility.
type UnknownType interface {
	Operand
	ExpectedType() Capabilities
	SetExpectedType(Capabilities)
}

// IsUnknown reports whether op is in the unknown type state.
func IsUnknown(op Operand) bool {
	_, ok := op.(UnknownType)
	return ok
}

// Compatible reports whether a and b may appear side by side in a typed
// function: either is unknown, or both report the same capabilities.
func Compatible(a, b Operand) bool {
	if IsUnknown(a) || IsUnknown(b) {
		return true
	}
	return CapabilitiesOf(a) == CapabilitiesOf(b)
}

// IsAbsent reports whether op holds no value, including typed nil pointers.
func IsAbsent(op Operand) bool {
	if op == nil {
		return true
	}
	v := reflect.ValueOf(op)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
