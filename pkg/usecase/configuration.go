package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/secmon-lab/refacto/pkg/domain/model"
	"github.com/secmon-lab/refacto/pkg/domain/types"
)

func (x *UseCase) GetConfiguration(ctx context.Context, accountID types.GitHubAccountID) (*model.Configuration, error) {
	return x.clients.ConfigRepository().FetchConfiguration(ctx, accountID)
}

// UpdateConfiguration validates the whole payload before anything is
// written.
func (x *UseCase) UpdateConfiguration(ctx context.Context, accountID types.GitHubAccountID, update *model.ConfigurationUpdate) error {
	if update == nil {
		return goerr.Wrap(types.ErrInvalidConfiguration, "configuration is empty")
	}
	if err := update.Validate(); err != nil {
		return err
	}

	return x.clients.ConfigRepository().ApplyConfiguration(ctx, accountID, update)
}

// ListPullRequests returns pull requests raised on the account's
// repositories. Records are authored by the repository owner, so they are
// looked up per owner and narrowed to the account's repositories.
func (x *UseCase) ListPullRequests(ctx context.Context, accountID types.GitHubAccountID) ([]*model.PullRequestRecord, error) {
	store := x.clients.ConfigRepository()
	if _, err := store.GetAccount(ctx, accountID); err != nil {
		return nil, err
	}

	repos, err := store.ListRepositories(ctx, accountID)
	if err != nil {
		return nil, err
	}

	urls := make(map[string]struct{}, len(repos))
	var owners []string
	seen := make(map[string]struct{})
	for _, repo := range repos {
		urls[model.RepositoryAPIURL(repo.Owner, repo.Name)] = struct{}{}
		if _, ok := seen[repo.Owner]; !ok {
			seen[repo.Owner] = struct{}{}
			owners = append(owners, repo.Owner)
		}
	}

	records := []*model.PullRequestRecord{}
	for _, owner := range owners {
		found, err := store.ListPullRequests(ctx, owner)
		if err != nil {
			return nil, err
		}
		for _, record := range found {
			if _, ok := urls[record.RepoURL]; ok {
				records = append(records, record)
			}
		}
	}

	return records, nil
}
