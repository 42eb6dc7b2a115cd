package config

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/secmon-lab/refacto/pkg/domain/types"
	"github.com/secmon-lab/refacto/pkg/repository/sqlstore"
)

type Database struct {
	driver string
	dsn    types.DatabaseDSN `masq:"secret"`
}

func (x *Database) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "db-driver",
			Usage:       "Database driver [postgres|sqlite]",
			Category:    "Database",
			Value:       string(sqlstore.DriverPostgres),
			Destination: &x.driver,
			Sources:     cli.EnvVars("REFACTO_DB_DRIVER"),
		},
		&cli.StringFlag{
			Name:        "db-dsn",
			Usage:       "Database DSN. The in-memory store is used if empty",
			Category:    "Database",
			Destination: (*string)(&x.dsn),
			Sources:     cli.EnvVars("REFACTO_DB_DSN"),
		},
	}
}

func (x *Database) Enabled() bool {
	return x.dsn != ""
}

// Open connects to the configured database. It returns nil without a DSN.
func (x *Database) Open(ctx context.Context) (*sqlstore.Store, error) {
	if !x.Enabled() {
		return nil, nil
	}
	return sqlstore.Open(ctx, sqlstore.Driver(x.driver), x.dsn)
}

func (x *Database) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("Driver", x.driver),
		slog.Bool("DSN.set", x.dsn != ""),
	)
}
