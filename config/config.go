// Package config loads the settings of a translation session from YAML.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/zoobzio/adql"
	"github.com/zoobzio/adql/mariadb"
	"github.com/zoobzio/adql/mast"
	"github.com/zoobzio/adql/mssql"
	"github.com/zoobzio/adql/postgres"
	"github.com/zoobzio/adql/sqlite"
	"gopkg.in/yaml.v3"
)

// Supported dialects.
const (
	DialectMSSQL    = "mssql"
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
	DialectMariaDB  = "mariadb"
)

// Config describes the target database of a translation session.
type Config struct {
	Dialect       string   `yaml:"dialect"`
	Schema        string   `yaml:"schema,omitempty"`
	UserFunctions []string `yaml:"user_functions,omitempty"`
	CaseSensitive bool     `yaml:"case_sensitive,omitempty"`
}

// Parse decodes and validates a YAML configuration.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration. An empty dialect defaults to mssql.
func (c *Config) Validate() error {
	switch c.Dialect {
	case "":
		c.Dialect = DialectMSSQL
	case DialectMSSQL, DialectPostgres, DialectSQLite, DialectMariaDB:
	default:
		return fmt.Errorf("unsupported dialect %q", c.Dialect)
	}
	if c.Schema == "" {
		c.Schema = mast.DefaultSchema
	}
	return nil
}

// Translator builds the translator described by the configuration. When
// user functions are configured the dialect translator is wrapped in the
// catalog overlay.
func (c *Config) Translator(logger *slog.Logger) (adql.Translator, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var base adql.Translator
	switch c.Dialect {
	case DialectMSSQL:
		var opts []mssql.Option
		if c.CaseSensitive {
			opts = append(opts, mssql.WithCaseSensitive())
		}
		base = mssql.New(opts...)
	case DialectPostgres:
		var opts []postgres.Option
		if c.CaseSensitive {
			opts = append(opts, postgres.WithCaseSensitive())
		}
		base = postgres.New(opts...)
	case DialectSQLite:
		var opts []sqlite.Option
		if c.CaseSensitive {
			opts = append(opts, sqlite.WithCaseSensitive())
		}
		base = sqlite.New(opts...)
	case DialectMariaDB:
		var opts []mariadb.Option
		if c.CaseSensitive {
			opts = append(opts, mariadb.WithCaseSensitive())
		}
		base = mariadb.New(opts...)
	}

	if len(mast.FunctionNames(c.UserFunctions)) == 0 {
		return base, nil
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger.Debug("catalog user functions will be schema-qualified",
		"dialect", c.Dialect,
		"schema", c.Schema,
		"functions", len(c.UserFunctions))
	return mast.New(base, c.UserFunctions, mast.WithSchema(c.Schema), mast.WithLogger(logger)), nil
}
