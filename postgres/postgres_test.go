package postgres

import (
	"testing"

	"github.com/zoobzio/adql"
)

func TestTranslate(t *testing.T) {
	limit := 20
	tests := []struct {
		name     string
		opts     []Option
		query    *adql.Query
		expected string
	}{
		{
			name: "limit clause",
			query: &adql.Query{
				Limit: &limit,
				From:  []adql.Table{{Name: "basic"}},
			},
			expected: "SELECT * FROM basic LIMIT 20",
		},
		{
			name: "case sensitive",
			opts: []Option{WithCaseSensitive()},
			query: &adql.Query{
				Select: []adql.SelectItem{{Operand: adql.Col("mainId")}},
				From:   []adql.Table{{Schema: "public", Name: "Basic"}},
			},
			expected: `SELECT "mainId" FROM "public"."Basic"`,
		},
		{
			name: "like",
			query: &adql.Query{
				From:  []adql.Table{{Name: "basic"}},
				Where: []adql.Comparison{{Left: adql.Col("main_id"), Operator: adql.LIKE, Right: adql.Str("M%")}},
			},
			expected: "SELECT * FROM basic WHERE main_id LIKE 'M%'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, err := New(tt.opts...).Translate(tt.query)
			if err != nil {
				t.Fatalf("Translate() error = %v", err)
			}
			if sql != tt.expected {
				t.Errorf("SQL = %q, want %q", sql, tt.expected)
			}
		})
	}
}
