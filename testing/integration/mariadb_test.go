package integration

import (
	"context"
	"database/sql"
	"log"
	"sync"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mariadb"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/zoobzio/adql"
	adqlmariadb "github.com/zoobzio/adql/mariadb"
	"github.com/zoobzio/adql/mast"
	adqltest "github.com/zoobzio/adql/testing"
)

var (
	mariadbOnce sync.Once
	mariadbDB   *sql.DB
)

// mariadbCatalog creates the catalog in the adql_test database.
var mariadbCatalog = []string{
	"CREATE TABLE basic (" +
		"oid BIGINT PRIMARY KEY, main_id VARCHAR(64) NOT NULL, otype VARCHAR(32) NULL," +
		" ra DOUBLE NOT NULL, `dec` DOUBLE NOT NULL, plx_value DOUBLE NULL)",
	`CREATE FUNCTION CatalogMatch(ra DOUBLE, de DOUBLE, radius DOUBLE)
	RETURNS INT DETERMINISTIC
	RETURN IF(ABS(ra - 10.68) <= radius AND ABS(de - 41.27) <= radius, 1, 0)`,
}

// getMariaDB returns the seeded MariaDB database, starting it if needed.
func getMariaDB(t *testing.T) *sql.DB {
	t.Helper()

	mariadbOnce.Do(func() {
		ctx := context.Background()

		container, err := mariadb.Run(ctx,
			"docker.io/mariadb:11",
			mariadb.WithDatabase("adql_test"),
			mariadb.WithUsername("adql"),
			mariadb.WithPassword("adql"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("mariadbd: ready for connections").
					WithStartupTimeout(60*time.Second),
			),
		)
		if err != nil {
			log.Fatalf("Failed to start mariadb container: %v", err)
		}
		onShutdown(func(ctx context.Context) { _ = container.Terminate(ctx) })

		connStr, err := container.ConnectionString(ctx)
		if err != nil {
			log.Fatalf("Failed to get connection string: %v", err)
		}
		db, err := sql.Open("mysql", connStr)
		if err != nil {
			log.Fatalf("Failed to open mariadb: %v", err)
		}
		onShutdown(func(context.Context) { _ = db.Close() })

		if err := waitForDB(ctx, db, 30); err != nil {
			log.Fatalf("mariadb: %v", err)
		}

		exec := func(ctx context.Context, stmt string, args ...any) error {
			_, err := db.ExecContext(ctx, stmt, args...)
			return err
		}
		if err := runStatements(ctx, exec, mariadbCatalog...); err != nil {
			log.Fatalf("Failed to create mariadb catalog: %v", err)
		}
		placeholder := func(int) string { return "?" }
		if err := seedCatalog(ctx, exec, "`dec`", placeholder); err != nil {
			log.Fatalf("mariadb: %v", err)
		}

		mariadbDB = db
	})

	return mariadbDB
}

func TestMariaDB_CatalogFunctionInDatabase(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	db := getMariaDB(t)

	// dec is reserved in MariaDB, so identifiers are delimited.
	overlay := mast.New(adqlmariadb.New(adqlmariadb.WithCaseSensitive()), adqltest.CatalogFunctions,
		mast.WithSchema("adql_test"))

	q := catalogMatchQuery(t, "1")
	limit := 1
	q.Limit = &limit

	query, err := overlay.Translate(q)
	adqltest.AssertNoError(t, err)
	adqltest.AssertSQL(t,
		"SELECT `main_id`, COALESCE(`otype`, 'none') AS `otype` FROM `basic`"+
			" WHERE adql_test.CatalogMatch(`ra`, `dec`, 1) = 1 ORDER BY `main_id` ASC LIMIT 1",
		query)

	var id, otype string
	if err := db.QueryRowContext(ctx, query).Scan(&id, &otype); err != nil {
		t.Fatalf("QueryRow(%q) error = %v", query, err)
	}
	if id != "M 31" || otype != "Galaxy" {
		t.Errorf("row = %s/%s, want M 31/Galaxy", id, otype)
	}
}

func TestMariaDB_CoalesceOverUnresolvedColumn(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	db := getMariaDB(t)

	// otype is left unresolved on purpose; main_id comes from the catalog.
	r := adqltest.TestResolver(t)
	label := adqltest.MustCoalesce(t, adql.Col("otype"), adql.Str("unclassified"))
	q := &adql.Query{
		Select: []adql.SelectItem{{Operand: label, Alias: "label"}},
		From:   []adql.Table{{Name: "basic"}},
		Where:  []adql.Comparison{{Left: r.Column("", "basic", "main_id"), Operator: adql.EQ, Right: adql.Str("M 32")}},
	}

	query, err := adqlmariadb.New().Translate(q)
	adqltest.AssertNoError(t, err)

	var got string
	if err := db.QueryRowContext(ctx, query).Scan(&got); err != nil {
		t.Fatalf("QueryRow(%q) error = %v", query, err)
	}
	if got != "unclassified" {
		t.Errorf("label = %q, want unclassified", got)
	}
}
