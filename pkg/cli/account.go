package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"

	"github.com/secmon-lab/refacto/pkg/cli/config"
	"github.com/secmon-lab/refacto/pkg/domain/types"
	"github.com/secmon-lab/refacto/pkg/infra"
	"github.com/secmon-lab/refacto/pkg/usecase"
	"github.com/secmon-lab/refacto/pkg/utils/logging"
	"github.com/secmon-lab/refacto/pkg/utils/safe"
)

func accountCommand() *cli.Command {
	return &cli.Command{
		Name:  "account",
		Usage: "Manage accounts",
		Commands: []*cli.Command{
			accountRegisterCommand(),
		},
	}
}

func accountRegisterCommand() *cli.Command {
	var (
		token types.GitHubToken

		github   config.GitHub
		database config.Database
	)

	return &cli.Command{
		Name:  "register",
		Usage: "Register the owner of a user access token and their repositories",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "github-token",
				Usage:       "User access token issued to the GitHub App",
				Sources:     cli.EnvVars("REFACTO_GITHUB_TOKEN"),
				Destination: (*string)(&token),
				Required:    true,
			},
		}, github.Flags(), database.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			if !database.Enabled() {
				return goerr.Wrap(types.ErrInvalidOption, "db-dsn is required to register an account")
			}

			ghClient, err := github.New()
			if err != nil {
				return err
			}

			store, err := database.Open(ctx)
			if err != nil {
				return err
			}
			defer safe.Close(store)

			uc := usecase.New(infra.New(
				infra.WithGitHub(ghClient),
				infra.WithConfigRepository(store),
			))

			account, err := uc.RegisterAccount(ctx, token)
			if err != nil {
				return err
			}

			logging.From(ctx).Info("account registered", slog.Any("id", account.ID), slog.String("login", account.Login))
			_, err = fmt.Fprintf(c.Root().Writer, "%d\t%s\n", account.ID, account.Login)
			return err
		},
	}
}
