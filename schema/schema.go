// Package schema resolves ADQL column references against a DBML catalog.
//
// Columns found in the catalog with a recognised type become *adql.Column
// operands. Everything else becomes an *adql.UnresolvedColumn, which typed
// functions such as COALESCE accept next to any operand.
package schema

import (
	"fmt"
	"strings"

	"github.com/zoobzio/adql"
	"github.com/zoobzio/dbml"
)

// Resolver holds lookup indexes over a DBML project. Lookups are case
// insensitive, as unquoted ADQL identifiers are.
type Resolver struct {
	project *dbml.Project
	tables  map[string]*dbml.Table
	fields  map[string]map[string]*dbml.Column // table -> column -> definition
}

// New creates a resolver over project.
func New(project *dbml.Project) (*Resolver, error) {
	if project == nil {
		return nil, fmt.Errorf("project cannot be nil")
	}

	r := &Resolver{
		project: project,
		tables:  make(map[string]*dbml.Table),
		fields:  make(map[string]map[string]*dbml.Column),
	}

	for _, table := range project.Tables {
		key := strings.ToLower(table.Name)
		if _, dup := r.tables[key]; dup {
			return nil, fmt.Errorf("table '%s' is declared twice", table.Name)
		}
		r.tables[key] = table
		r.fields[key] = make(map[string]*dbml.Column)
		for _, col := range table.Columns {
			r.fields[key][strings.ToLower(col.Name)] = col
		}
	}

	return r, nil
}

// Project returns the underlying DBML project.
func (r *Resolver) Project() *dbml.Project {
	return r.project
}

// Table returns the FROM reference for a catalog table.
func (r *Resolver) Table(name, alias string) (adql.Table, error) {
	table, ok := r.tables[strings.ToLower(name)]
	if !ok {
		return adql.Table{}, fmt.Errorf("table '%s' not found in schema: %w", name, adql.ErrTranslation)
	}
	return adql.Table{Name: table.Name, Alias: alias}, nil
}

// Column resolves table.name. The table part may be a table name or empty;
// when empty, the column must be unambiguous across all tables. qualifier is
// written in front of the column as given (a table name or an alias).
func (r *Resolver) Column(qualifier, table, name string) adql.Operand {
	col, ok := r.lookup(table, name)
	if !ok {
		return &adql.UnresolvedColumn{Table: qualifier, Name: name}
	}
	caps, ok := TypeCapabilities(col.Type)
	if !ok {
		return &adql.UnresolvedColumn{Table: qualifier, Name: col.Name}
	}
	return &adql.Column{Table: qualifier, Name: col.Name, Type: caps}
}

func (r *Resolver) lookup(table, name string) (*dbml.Column, bool) {
	name = strings.ToLower(name)
	if table != "" {
		col, ok := r.fields[strings.ToLower(table)][name]
		return col, ok
	}

	var found *dbml.Column
	for _, cols := range r.fields {
		if col, ok := cols[name]; ok {
			if found != nil {
				return nil, false
			}
			found = col
		}
	}
	return found, found != nil
}

// TypeCapabilities maps a database column type to ADQL capabilities.
// Unrecognised types report false.
func TypeCapabilities(dbType string) (adql.Capabilities, bool) {
	t := strings.ToLower(strings.TrimSpace(dbType))
	if i := strings.IndexByte(t, '('); i >= 0 {
		t = strings.TrimSpace(t[:i])
	}
	if strings.HasSuffix(t, "[]") {
		return adql.Capabilities{}, false
	}

	switch t {
	case "smallint", "integer", "int", "bigint", "tinyint", "int2", "int4", "int8",
		"real", "float", "float4", "float8", "double", "double precision",
		"decimal", "numeric", "serial", "bigserial":
		return adql.NumericType, true
	case "char", "character", "varchar", "character varying", "nchar", "nvarchar",
		"text", "ntext", "clob", "string", "timestamp", "datetime", "datetime2", "date", "time":
		return adql.StringType, true
	case "point", "circle", "polygon", "box", "region", "geometry", "geography",
		"spoint", "scircle", "spoly", "sbox":
		return adql.GeometryType, true
	default:
		return adql.Capabilities{}, false
	}
}
