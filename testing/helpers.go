// Package testing provides test utilities for adql.
package testing

import (
	"errors"
	"strings"
	"testing"

	"github.com/zoobzio/adql"
	"github.com/zoobzio/adql/schema"
	"github.com/zoobzio/dbml"
)

// CatalogFunctions are the catalog user function signatures of the test catalog.
var CatalogFunctions = []string{
	"CatalogMatch(ra DOUBLE, dec DOUBLE, radius DOUBLE) -> INTEGER",
	"fDistanceArcMinEq(ra1 DOUBLE, dec1 DOUBLE, ra2 DOUBLE, dec2 DOUBLE) -> DOUBLE",
}

// TestProject builds a small astronomy catalog.
// Includes basic, ident and flux tables.
func TestProject() *dbml.Project {
	project := dbml.NewProject("catalog")

	// Objects table
	basic := dbml.NewTable("basic")
	basic.AddColumn(dbml.NewColumn("oid", "bigint"))
	basic.AddColumn(dbml.NewColumn("main_id", "varchar"))
	basic.AddColumn(dbml.NewColumn("otype", "varchar"))
	basic.AddColumn(dbml.NewColumn("ra", "double precision"))
	basic.AddColumn(dbml.NewColumn("dec", "double precision"))
	basic.AddColumn(dbml.NewColumn("plx_value", "double precision"))
	basic.AddColumn(dbml.NewColumn("pos", "spoint"))
	basic.AddColumn(dbml.NewColumn("update_date", "date"))
	basic.AddColumn(dbml.NewColumn("tags", "text[]"))
	project.AddTable(basic)

	// Identifiers table
	ident := dbml.NewTable("ident")
	ident.AddColumn(dbml.NewColumn("oidref", "bigint"))
	ident.AddColumn(dbml.NewColumn("id", "varchar"))
	project.AddTable(ident)

	// Fluxes table
	flux := dbml.NewTable("flux")
	flux.AddColumn(dbml.NewColumn("oidref", "bigint"))
	flux.AddColumn(dbml.NewColumn("filter", "varchar"))
	flux.AddColumn(dbml.NewColumn("flux", "real"))
	flux.AddColumn(dbml.NewColumn("flux_err", "real"))
	project.AddTable(flux)

	return project
}

// TestResolver creates a resolver over TestProject.
func TestResolver(t *testing.T) *schema.Resolver {
	t.Helper()

	r, err := schema.New(TestProject())
	if err != nil {
		t.Fatalf("Failed to create test resolver: %v", err)
	}
	return r
}

// MustCoalesce creates a COALESCE node or fails the test.
func MustCoalesce(t *testing.T, operands ...adql.Operand) *adql.Coalesce {
	t.Helper()
	c, err := adql.NewCoalesce(operands...)
	if err != nil {
		t.Fatalf("Failed to create COALESCE: %v", err)
	}
	return c
}

// AssertSQL compares expected and actual SQL, reporting detailed differences.
func AssertSQL(t *testing.T, expected, actual string) {
	t.Helper()
	if expected != actual {
		t.Errorf("SQL mismatch:\nExpected: %s\nActual:   %s", expected, actual)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("Expected error but got nil")
	}
}

// AssertErrorIs fails the test unless err matches target.
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("Expected error matching %v, got: %v", target, err)
	}
}

// AssertErrorContains checks that error message contains substring.
func AssertErrorContains(t *testing.T, err error, substr string) {
	t.Helper()
	if err == nil {
		t.Fatalf("Expected error containing %q but got nil", substr)
	}
	if !strings.Contains(err.Error(), substr) {
		t.Errorf("Expected error containing %q, got: %v", substr, err)
	}
}

// AssertUnknown fails the test unless op is of unknown type.
func AssertUnknown(t *testing.T, op adql.Operand) {
	t.Helper()
	if !adql.IsUnknown(op) {
		t.Errorf("Expected %s (%T) to be of unknown type", op.ADQL(), op)
	}
}

// AssertCapabilities checks the capabilities reported by op.
func AssertCapabilities(t *testing.T, expected adql.Capabilities, op adql.Operand) {
	t.Helper()
	if got := adql.CapabilitiesOf(op); got != expected {
		t.Errorf("Capabilities of %s = %+v, want %+v", op.ADQL(), got, expected)
	}
}
