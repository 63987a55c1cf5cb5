package mssql

import (
	"errors"
	"testing"

	"github.com/zoobzio/adql"
)

func TestNew(t *testing.T) {
	r := New()
	if r == nil {
		t.Fatal("New() returned nil")
	}
	if r.Capabilities().CaseSensitive {
		t.Error("default translator should be case insensitive")
	}
}

func TestTranslate_SimpleSelect(t *testing.T) {
	q := &adql.Query{
		Select: []adql.SelectItem{{Operand: adql.Col("ra")}, {Operand: adql.Col("dec")}},
		From:   []adql.Table{{Name: "basic"}},
	}

	sql, err := New().Translate(q)
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}

	expected := "SELECT ra, dec FROM basic"
	if sql != expected {
		t.Errorf("SQL = %q, want %q", sql, expected)
	}
}

func TestTranslate_CaseSensitive(t *testing.T) {
	q := &adql.Query{
		Select: []adql.SelectItem{{Operand: adql.Col("b.RA")}},
		From:   []adql.Table{{Name: "Basic", Alias: "b"}},
	}

	sql, err := New(WithCaseSensitive()).Translate(q)
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}

	// SQL Server uses square brackets for quoting
	expected := "SELECT [b].[RA] FROM [Basic] AS [b]"
	if sql != expected {
		t.Errorf("SQL = %q, want %q", sql, expected)
	}
}

func TestTranslate_TopAndCoalesce(t *testing.T) {
	coalesce, err := adql.NewCoalesce(adql.Col("otype"), adql.Str("none"))
	if err != nil {
		t.Fatalf("NewCoalesce() error = %v", err)
	}
	limit := 100
	q := &adql.Query{
		Limit:   &limit,
		Select:  []adql.SelectItem{{Operand: coalesce, Alias: "otype"}},
		From:    []adql.Table{{Name: "basic"}},
		OrderBy: []adql.OrderItem{{Operand: adql.Col("ra")}},
	}

	sql, err := New().Translate(q)
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}

	// SQL Server uses TOP instead of LIMIT
	expected := "SELECT TOP 100 COALESCE(otype, 'none') AS otype FROM basic ORDER BY ra ASC"
	if sql != expected {
		t.Errorf("SQL = %q, want %q", sql, expected)
	}
}

func TestTranslate_UserFunctionIsNotQualified(t *testing.T) {
	q := &adql.Query{
		Select: []adql.SelectItem{{Operand: &adql.UnknownFunction{
			FuncName: "CatalogMatch",
			Args:     []adql.Operand{adql.Col("ra"), adql.Col("dec"), adql.Num("0.01")},
		}}},
		From: []adql.Table{{Name: "t"}},
	}

	sql, err := New().Translate(q)
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}

	expected := "SELECT CatalogMatch(ra, dec, 0.01) FROM t"
	if sql != expected {
		t.Errorf("SQL = %q, want %q", sql, expected)
	}
}

func TestTranslate_InvalidQuery(t *testing.T) {
	_, err := New().Translate(&adql.Query{})
	if !errors.Is(err, adql.ErrTranslation) {
		t.Fatalf("error = %v, want ErrTranslation", err)
	}
}
