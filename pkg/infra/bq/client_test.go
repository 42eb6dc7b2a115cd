package bq_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/refacto/pkg/domain/model"
	"github.com/secmon-lab/refacto/pkg/domain/types"
	"github.com/secmon-lab/refacto/pkg/infra/bq"
	"github.com/secmon-lab/refacto/pkg/utils/testutil"
)

func TestNewValidation(t *testing.T) {
	ctx := context.Background()

	testCases := map[string]struct {
		project types.GoogleProjectID
		dataset types.BQDatasetID
		table   types.BQTableID
	}{
		"empty project": {project: "", dataset: "ds", table: "runs"},
		"empty dataset": {project: "p", dataset: "", table: "runs"},
		"empty table":   {project: "p", dataset: "ds", table: ""},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			client, err := bq.New(ctx, tc.project, tc.dataset, tc.table)
			gt.True(t, errors.Is(err, types.ErrInvalidOption))
			gt.V(t, client).Equal(nil)
		})
	}
}

func TestClient(t *testing.T) {
	projectID := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_PROJECT_ID")
	datasetID := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_DATASET_ID")

	ctx := context.Background()

	tblName := types.BQTableID(time.Now().Format("refactor_runs_test_20060102_150405"))
	client := gt.R1(bq.New(ctx, types.GoogleProjectID(projectID), types.BQDatasetID(datasetID), tblName)).NoError(t)
	defer func() { gt.NoError(t, client.Close()) }()

	md, err := client.GetMetadata(ctx)
	gt.NoError(t, err)
	gt.V(t, md).Equal(nil)

	schema := gt.R1(bqs.Infer(model.RefactorRun{})).NoError(t)
	gt.NoError(t, client.CreateTable(ctx, &bigquery.TableMetadata{
		Name:   tblName.String(),
		Schema: schema,
	}))

	run := &model.RefactorRun{
		ID:        types.NewRunID(),
		Timestamp: time.Now().UTC(),
		AccountID: 1,
		GitHubRepo: model.GitHubRepo{
			RepoID:   2,
			Owner:    "octocat",
			RepoName: "hello-world",
		},
		Branch:   "main",
		CommitID: "0123456789abcdef0123456789abcdef01234567",
		Outcome:  model.RunPublished,
		Files:    1,
	}
	gt.NoError(t, client.Insert(ctx, schema, run))
}
