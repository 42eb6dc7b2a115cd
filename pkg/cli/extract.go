package cli

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/secmon-lab/refacto/pkg/domain/model"
	"github.com/secmon-lab/refacto/pkg/infra/gitlocal"
	"github.com/secmon-lab/refacto/pkg/usecase"
	"github.com/secmon-lab/refacto/pkg/utils/logging"
)

func extractCommand() *cli.Command {
	var (
		dir      string
		rev      string
		maxLines int64
	)

	return &cli.Command{
		Name:  "extract",
		Usage: "Print the file records a push of a local commit would send to the rewrite model",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "dir",
				Aliases:     []string{"d"},
				Usage:       "Path to the local git repository",
				Value:       ".",
				Destination: &dir,
			},
			&cli.StringFlag{
				Name:        "commit",
				Aliases:     []string{"c"},
				Usage:       "Commit to extract (any git revision)",
				Value:       "HEAD",
				Destination: &rev,
			},
			&cli.Int64Flag{
				Name:        "max-lines",
				Usage:       "Files with more added lines than this are extracted",
				Value:       model.DefaultMaxLines,
				Destination: &maxLines,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, err := gitlocal.Open(dir)
			if err != nil {
				return err
			}

			commit, err := repo.Commit(rev)
			if err != nil {
				return err
			}
			fetch, err := repo.ContentFetcher(rev)
			if err != nil {
				return err
			}

			records, err := usecase.ExtractFileRecords(ctx, commit, int(maxLines), fetch)
			if err != nil {
				return err
			}

			logging.From(ctx).Info("extracted file records",
				slog.Any("commit", commit.SHA),
				slog.Int("records", len(records)),
			)

			out := make(map[string][]string, len(records))
			for _, r := range records {
				out[r.Filename] = r.Snippets()
			}

			enc := json.NewEncoder(c.Root().Writer)
			enc.SetIndent("", "  ")
			if err := enc.Encode(out); err != nil {
				return goerr.Wrap(err, "failed to write file records")
			}
			return nil
		},
	}
}
