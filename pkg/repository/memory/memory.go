package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/refacto/pkg/domain/interfaces"
	"github.com/secmon-lab/refacto/pkg/domain/model"
	"github.com/secmon-lab/refacto/pkg/domain/types"
	"github.com/secmon-lab/refacto/pkg/repository"
)

type accountData struct {
	account  *model.Account
	settings model.UserSettings
	repos    map[types.GitHubRepoID]*repoData
}

type repoData struct {
	repo    *model.Repository
	sources map[types.BranchName]int
	target  types.BranchName
}

type configRepository struct {
	mu           sync.RWMutex
	accounts     map[types.GitHubAccountID]*accountData
	pullRequests []*model.PullRequestRecord
}

var _ interfaces.ConfigRepository = (*configRepository)(nil)

// New creates a new in-memory repository
func New() interfaces.ConfigRepository {
	return &configRepository{
		accounts: make(map[types.GitHubAccountID]*accountData),
	}
}

// Account operations

func (r *configRepository) PutAccount(ctx context.Context, account *model.Account) error {
	if err := account.Validate(); err != nil {
		return goerr.Wrap(repository.ErrInvalidInput, "invalid account", goerr.V("error", err))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	data, exists := r.accounts[account.ID]
	if !exists {
		newAccount := copyAccount(account)
		newAccount.CreatedAt = now
		newAccount.UpdatedAt = now
		r.accounts[account.ID] = &accountData{
			account:  newAccount,
			settings: model.DefaultUserSettings(),
			repos:    make(map[types.GitHubRepoID]*repoData),
		}
		return nil
	}

	updated := copyAccount(account)
	updated.CreatedAt = data.account.CreatedAt
	updated.UpdatedAt = now
	data.account = updated
	return nil
}

func (r *configRepository) GetAccount(ctx context.Context, id types.GitHubAccountID) (*model.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, exists := r.accounts[id]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "account not found", goerr.V("accountID", id))
	}

	return copyAccount(data.account), nil
}

// Repository operations

func (r *configRepository) PutRepository(ctx context.Context, repo *model.Repository) error {
	if err := repo.Validate(); err != nil {
		return goerr.Wrap(repository.ErrInvalidInput, "invalid repository", goerr.V("error", err))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	data, exists := r.accounts[repo.AccountID]
	if !exists {
		return goerr.Wrap(repository.ErrNotFound, "account not found", goerr.V("accountID", repo.AccountID))
	}

	if current, ok := data.repos[repo.ID]; ok {
		current.repo = copyRepository(repo)
		return nil
	}

	data.repos[repo.ID] = &repoData{
		repo:    copyRepository(repo),
		sources: make(map[types.BranchName]int),
	}
	return nil
}

func (r *configRepository) ListRepositories(ctx context.Context, accountID types.GitHubAccountID) ([]*model.Repository, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, exists := r.accounts[accountID]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "account not found", goerr.V("accountID", accountID))
	}

	repos := make([]*model.Repository, 0, len(data.repos))
	for _, rd := range data.repos {
		repos = append(repos, copyRepository(rd.repo))
	}
	sort.Slice(repos, func(i, j int) bool { return repos[i].ID < repos[j].ID })

	return repos, nil
}

// Configuration operations

func (r *configRepository) FetchConfiguration(ctx context.Context, accountID types.GitHubAccountID) (*model.Configuration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, exists := r.accounts[accountID]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "account not found", goerr.V("accountID", accountID))
	}

	cfg := &model.Configuration{
		AccountID:    accountID,
		UserSettings: data.settings,
		Repositories: []model.RepositoryConfig{},
	}

	for _, rd := range data.repos {
		if len(rd.sources) == 0 && rd.target == "" {
			continue
		}

		repoCfg := model.RepositoryConfig{
			RepoID:         rd.repo.ID,
			Name:           rd.repo.Name,
			URL:            rd.repo.URL,
			TargetBranch:   rd.target,
			SourceBranches: []model.SourceBranch{},
		}
		for name, counter := range rd.sources {
			repoCfg.SourceBranches = append(repoCfg.SourceBranches, model.SourceBranch{
				Name:         name,
				CommitNumber: counter,
			})
		}
		sort.Slice(repoCfg.SourceBranches, func(i, j int) bool {
			return repoCfg.SourceBranches[i].Name < repoCfg.SourceBranches[j].Name
		})
		cfg.Repositories = append(cfg.Repositories, repoCfg)
	}
	sort.Slice(cfg.Repositories, func(i, j int) bool {
		return cfg.Repositories[i].RepoID < cfg.Repositories[j].RepoID
	})

	return cfg, nil
}

func (r *configRepository) ApplyConfiguration(ctx context.Context, accountID types.GitHubAccountID, update *model.ConfigurationUpdate) error {
	if err := update.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	data, exists := r.accounts[accountID]
	if !exists {
		return goerr.Wrap(repository.ErrNotFound, "account not found", goerr.V("accountID", accountID))
	}

	// Check every repository before touching anything
	for _, sel := range update.Repositories {
		if _, ok := data.repos[sel.RepoID]; !ok {
			return goerr.Wrap(repository.ErrNotFound, "repository not found",
				goerr.V("accountID", accountID),
				goerr.V("repoID", sel.RepoID),
			)
		}
	}

	data.settings = update.UserSettings
	for _, sel := range update.Repositories {
		rd := data.repos[sel.RepoID]

		sources := make(map[types.BranchName]int)
		for _, name := range sel.SelectedSources() {
			if counter, ok := rd.sources[name]; ok {
				sources[name] = counter
			} else {
				sources[name] = 1
			}
		}
		rd.sources = sources
		rd.target = sel.SelectedTarget()
	}

	return nil
}

func (r *configRepository) UpdateCurrentCommit(ctx context.Context, key model.CounterKey, interval int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, exists := r.accounts[key.AccountID]
	if !exists {
		return 0, goerr.Wrap(repository.ErrNotFound, "account not found", goerr.V("key", key.String()))
	}
	rd, exists := data.repos[key.RepoID]
	if !exists {
		return 0, goerr.Wrap(repository.ErrNotFound, "repository not found", goerr.V("key", key.String()))
	}
	current, exists := rd.sources[key.Branch]
	if !exists {
		return 0, goerr.Wrap(repository.ErrNotFound, "source configuration not found", goerr.V("key", key.String()))
	}

	rd.sources[key.Branch] = model.NextCommitNumber(current, interval)
	return current, nil
}

// Pull request operations

func (r *configRepository) SavePullRequest(ctx context.Context, record *model.PullRequestRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, pr := range r.pullRequests {
		if pr.RepoURL == record.RepoURL && pr.Number == record.Number {
			return goerr.Wrap(repository.ErrAlreadyExists, "pull request already recorded",
				goerr.V("repoURL", record.RepoURL),
				goerr.V("number", record.Number),
			)
		}
	}

	r.pullRequests = append(r.pullRequests, copyPullRequest(record))
	return nil
}

func (r *configRepository) ListPullRequests(ctx context.Context, author string) ([]*model.PullRequestRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var records []*model.PullRequestRecord
	for _, pr := range r.pullRequests {
		if pr.Author == author {
			records = append(records, copyPullRequest(pr))
		}
	}

	return records, nil
}

func copyAccount(v *model.Account) *model.Account {
	copied := *v
	return &copied
}

func copyRepository(v *model.Repository) *model.Repository {
	copied := *v
	return &copied
}

func copyPullRequest(v *model.PullRequestRecord) *model.PullRequestRecord {
	copied := *v
	return &copied
}
