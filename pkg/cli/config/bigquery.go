package config

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"
	"google.golang.org/api/option"

	"github.com/secmon-lab/refacto/pkg/domain/types"
	"github.com/secmon-lab/refacto/pkg/infra/bq"
)

const DefaultBigQueryTable = "refactor_runs"

type BigQuery struct {
	projectID       types.GoogleProjectID
	datasetID       types.BQDatasetID
	tableID         types.BQTableID
	credentialsFile string
}

func (x *BigQuery) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "bigquery-project-id",
			Usage:       "BigQuery project ID for run history (optional)",
			Category:    "BigQuery",
			Destination: (*string)(&x.projectID),
			Sources:     cli.EnvVars("REFACTO_BIGQUERY_PROJECT_ID"),
		},
		&cli.StringFlag{
			Name:        "bigquery-dataset-id",
			Usage:       "BigQuery dataset ID",
			Category:    "BigQuery",
			Destination: (*string)(&x.datasetID),
			Sources:     cli.EnvVars("REFACTO_BIGQUERY_DATASET_ID"),
		},
		&cli.StringFlag{
			Name:        "bigquery-table-id",
			Usage:       "BigQuery table ID",
			Category:    "BigQuery",
			Value:       DefaultBigQueryTable,
			Destination: (*string)(&x.tableID),
			Sources:     cli.EnvVars("REFACTO_BIGQUERY_TABLE_ID"),
		},
		&cli.StringFlag{
			Name:        "bigquery-credentials",
			Usage:       "Path to a service account key file. Application default credentials are used if empty",
			Category:    "BigQuery",
			Destination: &x.credentialsFile,
			Sources:     cli.EnvVars("REFACTO_BIGQUERY_CREDENTIALS"),
		},
	}
}

func (x *BigQuery) Enabled() bool {
	return x.projectID != ""
}

// NewClient returns nil when no project is configured.
func (x *BigQuery) NewClient(ctx context.Context) (*bq.Client, error) {
	if !x.Enabled() {
		return nil, nil
	}

	var options []option.ClientOption
	if x.credentialsFile != "" {
		options = append(options, option.WithCredentialsFile(x.credentialsFile))
	}

	return bq.New(ctx, x.projectID, x.datasetID, x.tableID, options...)
}

func (x *BigQuery) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("ProjectID", x.projectID.String()),
		slog.String("DatasetID", x.datasetID.String()),
		slog.String("TableID", x.tableID.String()),
		slog.String("Credentials", x.credentialsFile),
	)
}
