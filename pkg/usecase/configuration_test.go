package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/secmon-lab/refacto/pkg/domain/mock"
	"github.com/secmon-lab/refacto/pkg/domain/model"
	"github.com/secmon-lab/refacto/pkg/domain/types"
	"github.com/secmon-lab/refacto/pkg/infra"
	"github.com/secmon-lab/refacto/pkg/repository"
	"github.com/secmon-lab/refacto/pkg/usecase"
)

func TestConfiguration(t *testing.T) {
	t.Run("get configuration", func(t *testing.T) {
		uc := usecase.New(infra.New(infra.WithConfigRepository(newConfiguredRepository(t, 4, 25, "release"))))

		cfg, err := uc.GetConfiguration(context.Background(), testAccountID)
		gt.NoError(t, err)
		gt.V(t, cfg.CommitInterval).Equal(4)
		gt.V(t, cfg.MaxLines).Equal(25)
		gt.V(t, len(cfg.Repositories)).Equal(1)
		gt.V(t, cfg.Repositories[0].TargetBranch).Equal(types.BranchName("release"))
	})

	t.Run("unknown account", func(t *testing.T) {
		uc := usecase.New(infra.New())
		_, err := uc.GetConfiguration(context.Background(), 1)
		gt.True(t, errors.Is(err, repository.ErrNotFound))
	})

	t.Run("update configuration", func(t *testing.T) {
		repo := newConfiguredRepository(t, 4, 25, "")
		uc := usecase.New(infra.New(infra.WithConfigRepository(repo)))

		err := uc.UpdateConfiguration(context.Background(), testAccountID, &model.ConfigurationUpdate{
			UserSettings: model.UserSettings{CommitInterval: 2, MaxLines: 10},
			Repositories: []model.RepositorySelection{
				{
					RepoID: testRepoID,
					SourceBranches: []model.BranchSelection{
						{Name: "main", IsSelected: false},
						{Name: "develop", IsSelected: true},
					},
					TargetBranches: []model.BranchSelection{{Name: "main", IsSelected: true}},
				},
			},
		})
		gt.NoError(t, err)

		cfg, err := uc.GetConfiguration(context.Background(), testAccountID)
		gt.NoError(t, err)
		gt.V(t, cfg.UserSettings).Equal(model.UserSettings{CommitInterval: 2, MaxLines: 10})
		gt.V(t, cfg.Repositories[0].SourceBranches).Equal([]model.SourceBranch{{Name: "develop", CommitNumber: 1}})
		gt.V(t, cfg.Repositories[0].TargetBranch).Equal(types.BranchName("main"))
	})

	t.Run("invalid update is not persisted", func(t *testing.T) {
		repo := &mock.ConfigRepositoryMock{}
		uc := usecase.New(infra.New(infra.WithConfigRepository(repo)))

		err := uc.UpdateConfiguration(context.Background(), testAccountID, &model.ConfigurationUpdate{
			UserSettings: model.UserSettings{CommitInterval: 2, MaxLines: 10},
			Repositories: []model.RepositorySelection{
				{
					RepoID: testRepoID,
					TargetBranches: []model.BranchSelection{
						{Name: "main", IsSelected: true},
						{Name: "develop", IsSelected: true},
					},
				},
			},
		})
		gt.True(t, errors.Is(err, types.ErrDuplicateTarget))
		gt.V(t, len(repo.ApplyConfigurationCalls())).Equal(0)

		err = uc.UpdateConfiguration(context.Background(), testAccountID, &model.ConfigurationUpdate{
			UserSettings: model.UserSettings{CommitInterval: 0, MaxLines: 10},
		})
		gt.True(t, errors.Is(err, types.ErrInvalidConfiguration))

		err = uc.UpdateConfiguration(context.Background(), testAccountID, nil)
		gt.True(t, errors.Is(err, types.ErrInvalidConfiguration))
		gt.V(t, len(repo.ApplyConfigurationCalls())).Equal(0)
	})
}

func TestListPullRequests(t *testing.T) {
	repo := newConfiguredRepository(t, 4, 25, "")
	ctx := context.Background()
	gt.NoError(t, repo.SavePullRequest(ctx, &model.PullRequestRecord{
		Number: 1, RepoURL: model.RepositoryAPIURL("octo", "app"), Author: "octo", Title: "Refactor main branch using re-facto plugin",
	}))
	gt.NoError(t, repo.SavePullRequest(ctx, &model.PullRequestRecord{
		Number: 2, RepoURL: model.RepositoryAPIURL("someone", "app"), Author: "someone",
	}))
	// same owner, but the repository is not registered to the account
	gt.NoError(t, repo.SavePullRequest(ctx, &model.PullRequestRecord{
		Number: 3, RepoURL: model.RepositoryAPIURL("octo", "other"), Author: "octo",
	}))

	uc := usecase.New(infra.New(infra.WithConfigRepository(repo)))
	records, err := uc.ListPullRequests(ctx, testAccountID)
	gt.NoError(t, err)
	gt.V(t, len(records)).Equal(1)
	gt.V(t, records[0].Number).Equal(1)

	_, err = uc.ListPullRequests(ctx, 404)
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}
