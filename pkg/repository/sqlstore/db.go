package sqlstore

import (
	"context"
	"embed"
	"errors"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/refacto/pkg/domain/types"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

type Driver string

const (
	DriverPostgres Driver = "postgres"
	DriverSQLite   Driver = "sqlite"
)

//go:embed migrations
var migrationsFS embed.FS

func init() {
	// modernc.org/sqlite registers itself as "sqlite", which sqlx does not
	// know as a question-mark driver.
	sqlx.BindDriver(string(DriverSQLite), sqlx.QUESTION)
}

func (x Driver) Validate() error {
	switch x {
	case DriverPostgres, DriverSQLite:
		return nil
	default:
		return goerr.Wrap(types.ErrInvalidOption, "unsupported database driver", goerr.V("driver", x))
	}
}

// Open connects to the database. SQLite is limited to one connection so
// transactions never hit "database is locked".
func Open(ctx context.Context, driver Driver, dsn types.DatabaseDSN) (*Store, error) {
	if err := driver.Validate(); err != nil {
		return nil, err
	}

	db, err := sqlx.Open(string(driver), string(dsn))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open database", goerr.V("driver", driver))
	}
	if driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, goerr.Wrap(err, "failed to ping database", goerr.V("driver", driver))
	}

	return New(db, driver), nil
}

// Migrate applies all pending embedded migrations for the store's driver.
// Already-applied migrations are skipped.
func (x *Store) Migrate() error {
	sub, err := fs.Sub(migrationsFS, "migrations/"+string(x.driver))
	if err != nil {
		return goerr.Wrap(err, "failed to open migrations", goerr.V("driver", x.driver))
	}

	sourceDriver, err := iofs.New(sub, ".")
	if err != nil {
		return goerr.Wrap(err, "failed to create migration source")
	}

	var dbDriver database.Driver
	switch x.driver {
	case DriverPostgres:
		dbDriver, err = migratepostgres.WithInstance(x.db.DB, &migratepostgres.Config{})
	case DriverSQLite:
		dbDriver, err = migratesqlite.WithInstance(x.db.DB, &migratesqlite.Config{})
	}
	if err != nil {
		return goerr.Wrap(err, "failed to create migration driver", goerr.V("driver", x.driver))
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, string(x.driver), dbDriver)
	if err != nil {
		return goerr.Wrap(err, "failed to create migrator")
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return goerr.Wrap(err, "failed to run migrations", goerr.V("driver", x.driver))
	}

	return nil
}

func (x *Store) Close() error {
	return x.db.Close()
}
