package usecase

import (
	"context"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/goerr/v2"

	"github.com/secmon-lab/refacto/pkg/domain/interfaces"
	"github.com/secmon-lab/refacto/pkg/domain/model"
	"github.com/secmon-lab/refacto/pkg/utils/errutil"
)

// recordRun exports the run summary to BigQuery when configured. Failures
// are reported and never change the run outcome.
func (x *UseCase) recordRun(ctx context.Context, run *model.RefactorRun) {
	bq := x.clients.BigQuery()
	if bq == nil {
		return
	}

	schema, err := createOrUpdateBigQueryTable(ctx, bq, run)
	if err != nil {
		errutil.HandleError(ctx, "failed to prepare run table", err)
		return
	}

	if err := bq.Insert(ctx, schema, run); err != nil {
		errutil.HandleError(ctx, "failed to insert refactor run", goerr.Wrap(err, "failed to insert refactor run", goerr.V("run_id", run.ID)))
	}
}

func createOrUpdateBigQueryTable(ctx context.Context, bq interfaces.BigQuery, run *model.RefactorRun) (bigquery.Schema, error) {
	schema, err := bqs.Infer(run)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to infer run schema")
	}

	metaData, err := bq.GetMetadata(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get BigQuery table metadata")
	}
	if metaData == nil {
		if err := bq.CreateTable(ctx, &bigquery.TableMetadata{
			Schema: schema,
		}); err != nil {
			return nil, goerr.Wrap(err, "failed to create BigQuery table")
		}
		return schema, nil
	}

	if bqs.Equal(metaData.Schema, schema) {
		return schema, nil
	}

	mergedSchema, err := bqs.Merge(metaData.Schema, schema)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to merge BigQuery schema")
	}
	if err := bq.UpdateTable(ctx, bigquery.TableMetadataToUpdate{
		Schema: mergedSchema,
	}, metaData.ETag); err != nil {
		return nil, goerr.Wrap(err, "failed to update BigQuery table")
	}

	return mergedSchema, nil
}
