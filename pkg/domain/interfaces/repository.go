package interfaces

import (
	"context"

	"github.com/secmon-lab/refacto/pkg/domain/model"
	"github.com/secmon-lab/refacto/pkg/domain/types"
)

//go:generate moq -out ../mock/repository.go -pkg mock . ConfigRepository

// ConfigRepository stores accounts, their configuration and published pull
// request records.
type ConfigRepository interface {
	// PutAccount creates or updates an account. A new account gets the
	// default user settings.
	PutAccount(ctx context.Context, account *model.Account) error
	GetAccount(ctx context.Context, id types.GitHubAccountID) (*model.Account, error)

	PutRepository(ctx context.Context, repo *model.Repository) error
	ListRepositories(ctx context.Context, accountID types.GitHubAccountID) ([]*model.Repository, error)

	FetchConfiguration(ctx context.Context, accountID types.GitHubAccountID) (*model.Configuration, error)
	// ApplyConfiguration replaces settings and branch selections atomically.
	ApplyConfiguration(ctx context.Context, accountID types.GitHubAccountID, update *model.ConfigurationUpdate) error
	// UpdateCurrentCommit advances the counter of a source branch with
	// wrap-around and returns the value before the increment.
	UpdateCurrentCommit(ctx context.Context, key model.CounterKey, interval int) (int, error)

	SavePullRequest(ctx context.Context, record *model.PullRequestRecord) error
	ListPullRequests(ctx context.Context, author string) ([]*model.PullRequestRecord, error)
}
