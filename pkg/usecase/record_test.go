package usecase_test

import (
	"context"
	"testing"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/gt"

	"github.com/secmon-lab/refacto/pkg/domain/mock"
	"github.com/secmon-lab/refacto/pkg/domain/model"
	"github.com/secmon-lab/refacto/pkg/usecase"
)

func TestCreateOrUpdateBigQueryTable(t *testing.T) {
	run := &model.RefactorRun{ID: "run-1", Outcome: model.RunPublished}
	current, err := bqs.Infer(run)
	gt.NoError(t, err)

	t.Run("create table when missing", func(t *testing.T) {
		bq := &mock.BigQueryMock{
			GetMetadataFunc: func(ctx context.Context) (*bigquery.TableMetadata, error) {
				return nil, nil
			},
			CreateTableFunc: func(ctx context.Context, md *bigquery.TableMetadata) error {
				return nil
			},
		}

		schema, err := usecase.CreateOrUpdateBigQueryTableForTest(context.Background(), bq, run)
		gt.NoError(t, err)
		gt.True(t, bqs.Equal(schema, current))
		gt.V(t, len(bq.CreateTableCalls())).Equal(1)
	})

	t.Run("keep table with same schema", func(t *testing.T) {
		bq := &mock.BigQueryMock{
			GetMetadataFunc: func(ctx context.Context) (*bigquery.TableMetadata, error) {
				return &bigquery.TableMetadata{Schema: current}, nil
			},
		}

		_, err := usecase.CreateOrUpdateBigQueryTableForTest(context.Background(), bq, run)
		gt.NoError(t, err)
		gt.V(t, len(bq.UpdateTableCalls())).Equal(0)
	})

	t.Run("merge schema of older table", func(t *testing.T) {
		old := bigquery.Schema{
			{Name: "id", Type: bigquery.StringFieldType},
			{Name: "legacy", Type: bigquery.StringFieldType},
		}
		bq := &mock.BigQueryMock{
			GetMetadataFunc: func(ctx context.Context) (*bigquery.TableMetadata, error) {
				return &bigquery.TableMetadata{Schema: old, ETag: "etag-1"}, nil
			},
			UpdateTableFunc: func(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error {
				return nil
			},
		}

		schema, err := usecase.CreateOrUpdateBigQueryTableForTest(context.Background(), bq, run)
		gt.NoError(t, err)
		gt.V(t, len(bq.UpdateTableCalls())).Equal(1)
		gt.V(t, bq.UpdateTableCalls()[0].ETag).Equal("etag-1")

		names := map[string]bool{}
		for _, f := range schema {
			names[f.Name] = true
		}
		gt.True(t, names["legacy"])
		gt.True(t, names["outcome"])
	})
}
