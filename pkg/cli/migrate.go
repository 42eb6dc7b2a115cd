package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/secmon-lab/refacto/pkg/cli/config"
	"github.com/secmon-lab/refacto/pkg/domain/types"
	"github.com/secmon-lab/refacto/pkg/utils/logging"
	"github.com/secmon-lab/refacto/pkg/utils/safe"
)

func migrateCommand() *cli.Command {
	var database config.Database

	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply database migrations",
		Flags: database.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			if !database.Enabled() {
				return goerr.Wrap(types.ErrInvalidOption, "db-dsn is required")
			}

			store, err := database.Open(ctx)
			if err != nil {
				return err
			}
			defer safe.Close(store)

			if err := store.Migrate(); err != nil {
				return err
			}

			logging.From(ctx).Info("database migrated", slog.Any("database", &database))
			return nil
		},
	}
}
