package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/secmon-lab/refacto/pkg/domain/interfaces"
	"github.com/secmon-lab/refacto/pkg/domain/model"
	"github.com/secmon-lab/refacto/pkg/domain/types"
	"github.com/secmon-lab/refacto/pkg/repository/memory"
	"github.com/secmon-lab/refacto/pkg/utils/logging"
)

const (
	testAccountID types.GitHubAccountID = 1001
	testRepoID    types.GitHubRepoID    = 2002
	testToken     types.GitHubToken     = "gho_test_token"
	testHeadSHA   types.CommitSHA       = "0123456789abcdef0123456789abcdef01234567"
)

var testNow = time.Date(2024, 3, 5, 6, 7, 8, 0, time.UTC)

func testContext() context.Context {
	return logging.CtxWithTime(context.Background(), func() time.Time { return testNow })
}

// newConfiguredRepository returns a repository where branch "main" of
// octo/app is monitored with the given interval.
func newConfiguredRepository(t *testing.T, interval, maxLines int, target types.BranchName) interfaces.ConfigRepository {
	t.Helper()
	ctx := context.Background()
	repo := memory.New()

	gt.NoError(t, repo.PutAccount(ctx, &model.Account{
		ID:    testAccountID,
		Login: "octocat",
		Token: testToken,
	}))
	gt.NoError(t, repo.PutRepository(ctx, &model.Repository{
		ID:        testRepoID,
		AccountID: testAccountID,
		Owner:     "octo",
		Name:      "app",
		URL:       model.RepositoryAPIURL("octo", "app"),
	}))

	update := &model.ConfigurationUpdate{
		UserSettings: model.UserSettings{CommitInterval: interval, MaxLines: maxLines},
		Repositories: []model.RepositorySelection{
			{
				RepoID:         testRepoID,
				SourceBranches: []model.BranchSelection{{Name: "main", IsSelected: true}},
			},
		},
	}
	if target != "" {
		update.Repositories[0].TargetBranches = []model.BranchSelection{{Name: target, IsSelected: true}}
	}
	gt.NoError(t, repo.ApplyConfiguration(ctx, testAccountID, update))

	return repo
}

func newPush(ref string) *model.PushEvent {
	return &model.PushEvent{
		WebhookMeta:  model.WebhookMeta{SenderID: testAccountID},
		Ref:          ref,
		RepoID:       testRepoID,
		Owner:        "octo",
		RepoName:     "app",
		HeadCommitID: testHeadSHA,
	}
}
