package testhelper

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/refacto/pkg/domain/interfaces"
	"github.com/secmon-lab/refacto/pkg/domain/model"
	"github.com/secmon-lab/refacto/pkg/domain/types"
	"github.com/secmon-lab/refacto/pkg/repository"
)

// TestAll runs all test cases for ConfigRepository
// This is the main entry point for testing any ConfigRepository implementation
func TestAll(t *testing.T, repo interfaces.ConfigRepository) {
	t.Run("AccountCRUD", func(t *testing.T) {
		TestAccountCRUD(t, repo)
	})
	t.Run("RepositoryCRUD", func(t *testing.T) {
		TestRepositoryCRUD(t, repo)
	})
	t.Run("ApplyConfiguration", func(t *testing.T) {
		TestApplyConfiguration(t, repo)
	})
	t.Run("ApplyConfigurationRejected", func(t *testing.T) {
		TestApplyConfigurationRejected(t, repo)
	})
	t.Run("CommitCounterWrap", func(t *testing.T) {
		TestCommitCounterWrap(t, repo)
	})
	t.Run("CommitCounterConcurrency", func(t *testing.T) {
		TestCommitCounterConcurrency(t, repo)
	})
	t.Run("PullRequestRecords", func(t *testing.T) {
		TestPullRequestRecords(t, repo)
	})
}

func newAccount(t *testing.T, ctx context.Context, repo interfaces.ConfigRepository) *model.Account {
	t.Helper()

	account := &model.Account{
		ID:    types.GitHubAccountID(rand.Int64N(1<<40) + 1),
		Login: fmt.Sprintf("user-%s", uuid.New().String()[:8]),
		Token: types.GitHubToken("gho_" + uuid.NewString()),
		Name:  "Test User",
	}
	gt.NoError(t, repo.PutAccount(ctx, account))
	return account
}

func newRepository(t *testing.T, ctx context.Context, repo interfaces.ConfigRepository, account *model.Account) *model.Repository {
	t.Helper()

	name := fmt.Sprintf("repo-%s", uuid.New().String()[:8])
	r := &model.Repository{
		ID:        types.GitHubRepoID(rand.Int64N(1<<40) + 1),
		AccountID: account.ID,
		Owner:     account.Login,
		Name:      name,
		URL:       model.RepositoryAPIURL(account.Login, name),
	}
	gt.NoError(t, repo.PutRepository(ctx, r))
	return r
}

func configure(t *testing.T, ctx context.Context, repo interfaces.ConfigRepository, accountID types.GitHubAccountID, interval int, repoID types.GitHubRepoID, sources ...types.BranchName) {
	t.Helper()

	sel := model.RepositorySelection{RepoID: repoID}
	for _, s := range sources {
		sel.SourceBranches = append(sel.SourceBranches, model.BranchSelection{Name: s, IsSelected: true})
	}
	gt.NoError(t, repo.ApplyConfiguration(ctx, accountID, &model.ConfigurationUpdate{
		UserSettings: model.UserSettings{CommitInterval: interval, MaxLines: 10},
		Repositories: []model.RepositorySelection{sel},
	}))
}

// TestAccountCRUD tests basic CRUD operations for Account
func TestAccountCRUD(t *testing.T, repo interfaces.ConfigRepository) {
	ctx := context.Background()
	account := newAccount(t, ctx, repo)

	got, err := repo.GetAccount(ctx, account.ID)
	gt.NoError(t, err)
	gt.V(t, got.Login).Equal(account.Login)
	gt.V(t, got.Token).Equal(account.Token)
	gt.False(t, got.CreatedAt.IsZero())

	// New accounts get default settings
	cfg, err := repo.FetchConfiguration(ctx, account.ID)
	gt.NoError(t, err)
	gt.V(t, cfg.UserSettings).Equal(model.DefaultUserSettings())
	gt.A(t, cfg.Repositories).Length(0)

	// Update keeps creation time
	account.Token = types.GitHubToken("gho_rotated")
	account.Email = "user@example.com"
	gt.NoError(t, repo.PutAccount(ctx, account))

	updated, err := repo.GetAccount(ctx, account.ID)
	gt.NoError(t, err)
	gt.V(t, updated.Token).Equal(types.GitHubToken("gho_rotated"))
	gt.V(t, updated.Email).Equal("user@example.com")
	gt.True(t, updated.CreatedAt.Equal(got.CreatedAt))

	// Missing account
	_, err = repo.GetAccount(ctx, types.GitHubAccountID(-1))
	gt.True(t, errors.Is(err, repository.ErrNotFound))

	_, err = repo.FetchConfiguration(ctx, types.GitHubAccountID(-1))
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}

// TestRepositoryCRUD tests Repository upsert and listing
func TestRepositoryCRUD(t *testing.T, repo interfaces.ConfigRepository) {
	ctx := context.Background()
	account := newAccount(t, ctx, repo)

	r1 := newRepository(t, ctx, repo, account)
	r2 := newRepository(t, ctx, repo, account)

	repos, err := repo.ListRepositories(ctx, account.ID)
	gt.NoError(t, err)
	gt.A(t, repos).Length(2)

	ids := []types.GitHubRepoID{repos[0].ID, repos[1].ID}
	expected := []types.GitHubRepoID{r1.ID, r2.ID}
	sort.Slice(expected, func(i, j int) bool { return expected[i] < expected[j] })
	gt.V(t, ids).Equal(expected)

	// Upsert renames
	r1.Name = "renamed"
	gt.NoError(t, repo.PutRepository(ctx, r1))
	repos, err = repo.ListRepositories(ctx, account.ID)
	gt.NoError(t, err)
	gt.A(t, repos).Length(2)

	found := false
	for _, r := range repos {
		if r.ID == r1.ID {
			gt.V(t, r.Name).Equal("renamed")
			found = true
		}
	}
	gt.True(t, found)

	// Repository of unknown account
	err = repo.PutRepository(ctx, &model.Repository{ID: 1, AccountID: -1, Name: "x"})
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}

// TestApplyConfiguration tests that selections replace the previous state and
// that counters of kept branches survive.
func TestApplyConfiguration(t *testing.T, repo interfaces.ConfigRepository) {
	ctx := context.Background()
	account := newAccount(t, ctx, repo)
	r := newRepository(t, ctx, repo, account)

	gt.NoError(t, repo.ApplyConfiguration(ctx, account.ID, &model.ConfigurationUpdate{
		UserSettings: model.UserSettings{CommitInterval: 3, MaxLines: 12},
		Repositories: []model.RepositorySelection{
			{
				RepoID: r.ID,
				SourceBranches: []model.BranchSelection{
					{Name: "main", IsSelected: true},
					{Name: "dev", IsSelected: true},
					{Name: "old", IsSelected: false},
				},
				TargetBranches: []model.BranchSelection{
					{Name: "release", IsSelected: true},
				},
			},
		},
	}))

	cfg, err := repo.FetchConfiguration(ctx, account.ID)
	gt.NoError(t, err)
	gt.V(t, cfg.CommitInterval).Equal(3)
	gt.V(t, cfg.MaxLines).Equal(12)
	gt.A(t, cfg.Repositories).Length(1)

	repoCfg := cfg.FindRepository(r.ID, r.Name)
	gt.V(t, repoCfg.Name).Equal(r.Name)
	gt.V(t, repoCfg.URL).Equal(r.URL)
	gt.V(t, repoCfg.TargetBranch).Equal(types.BranchName("release"))
	gt.A(t, repoCfg.SourceBranches).Length(2)
	gt.V(t, repoCfg.FindSourceBranch("main").CommitNumber).Equal(1)
	gt.V(t, repoCfg.FindSourceBranch("dev").CommitNumber).Equal(1)
	gt.V(t, repoCfg.FindSourceBranch("old")).Equal(nil)

	// Advance main, then drop dev and clear the target
	key := model.CounterKey{AccountID: account.ID, RepoID: r.ID, Branch: "main"}
	_, err = repo.UpdateCurrentCommit(ctx, key, 3)
	gt.NoError(t, err)

	gt.NoError(t, repo.ApplyConfiguration(ctx, account.ID, &model.ConfigurationUpdate{
		UserSettings: model.UserSettings{CommitInterval: 3, MaxLines: 12},
		Repositories: []model.RepositorySelection{
			{
				RepoID: r.ID,
				SourceBranches: []model.BranchSelection{
					{Name: "main", IsSelected: true},
					{Name: "dev", IsSelected: false},
				},
			},
		},
	}))

	cfg, err = repo.FetchConfiguration(ctx, account.ID)
	gt.NoError(t, err)
	repoCfg = cfg.FindRepository(r.ID, r.Name)
	gt.A(t, repoCfg.SourceBranches).Length(1)
	gt.V(t, repoCfg.FindSourceBranch("main").CommitNumber).Equal(2)
	gt.V(t, repoCfg.TargetBranch).Equal(types.BranchName(""))
}

// TestApplyConfigurationRejected tests that invalid payloads leave the stored
// configuration untouched.
func TestApplyConfigurationRejected(t *testing.T, repo interfaces.ConfigRepository) {
	ctx := context.Background()
	account := newAccount(t, ctx, repo)
	r := newRepository(t, ctx, repo, account)
	configure(t, ctx, repo, account.ID, 4, r.ID, "main")

	before, err := repo.FetchConfiguration(ctx, account.ID)
	gt.NoError(t, err)

	t.Run("two selected targets", func(t *testing.T) {
		err := repo.ApplyConfiguration(ctx, account.ID, &model.ConfigurationUpdate{
			UserSettings: model.UserSettings{CommitInterval: 9, MaxLines: 9},
			Repositories: []model.RepositorySelection{
				{
					RepoID:         r.ID,
					SourceBranches: []model.BranchSelection{{Name: "dev", IsSelected: true}},
					TargetBranches: []model.BranchSelection{
						{Name: "main", IsSelected: true},
						{Name: "release", IsSelected: true},
					},
				},
			},
		})
		gt.True(t, errors.Is(err, types.ErrDuplicateTarget))
	})

	t.Run("unknown repository", func(t *testing.T) {
		err := repo.ApplyConfiguration(ctx, account.ID, &model.ConfigurationUpdate{
			UserSettings: model.UserSettings{CommitInterval: 9, MaxLines: 9},
			Repositories: []model.RepositorySelection{
				{RepoID: r.ID, SourceBranches: []model.BranchSelection{{Name: "dev", IsSelected: true}}},
				{RepoID: -5, SourceBranches: []model.BranchSelection{{Name: "dev", IsSelected: true}}},
			},
		})
		gt.True(t, errors.Is(err, repository.ErrNotFound))
	})

	t.Run("zero interval", func(t *testing.T) {
		err := repo.ApplyConfiguration(ctx, account.ID, &model.ConfigurationUpdate{
			UserSettings: model.UserSettings{CommitInterval: 0, MaxLines: 9},
		})
		gt.True(t, errors.Is(err, types.ErrInvalidConfiguration))
	})

	after, err := repo.FetchConfiguration(ctx, account.ID)
	gt.NoError(t, err)
	gt.V(t, after).Equal(before)
}

// TestCommitCounterWrap tests the increment-with-wrap rule and that the
// returned value is the one before the increment.
func TestCommitCounterWrap(t *testing.T, repo interfaces.ConfigRepository) {
	ctx := context.Background()
	account := newAccount(t, ctx, repo)
	r := newRepository(t, ctx, repo, account)

	const interval = 3
	configure(t, ctx, repo, account.ID, interval, r.ID, "main")
	key := model.CounterKey{AccountID: account.ID, RepoID: r.ID, Branch: "main"}

	for i := 1; i <= 3*interval+1; i++ {
		prev, err := repo.UpdateCurrentCommit(ctx, key, interval)
		gt.NoError(t, err)
		gt.V(t, prev).Equal((i-1)%interval + 1)
	}

	cfg, err := repo.FetchConfiguration(ctx, account.ID)
	gt.NoError(t, err)
	gt.V(t, cfg.FindRepository(r.ID, "").FindSourceBranch("main").CommitNumber).Equal(2)

	t.Run("unknown branch", func(t *testing.T) {
		_, err := repo.UpdateCurrentCommit(ctx, model.CounterKey{
			AccountID: account.ID,
			RepoID:    r.ID,
			Branch:    "not-monitored",
		}, interval)
		gt.True(t, errors.Is(err, repository.ErrNotFound))
	})
}

// TestCommitCounterConcurrency tests that concurrent increments never observe
// the same value twice within one cycle.
func TestCommitCounterConcurrency(t *testing.T, repo interfaces.ConfigRepository) {
	ctx := context.Background()
	account := newAccount(t, ctx, repo)
	r := newRepository(t, ctx, repo, account)

	const interval = 1000
	const workers = 20
	const perWorker = 5
	configure(t, ctx, repo, account.ID, interval, r.ID, "main")
	key := model.CounterKey{AccountID: account.ID, RepoID: r.ID, Branch: "main"}

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = map[int]int{}
	)
	errCh := make(chan error, workers*perWorker)

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWorker {
				prev, err := repo.UpdateCurrentCommit(ctx, key, interval)
				if err != nil {
					errCh <- err
					return
				}
				mu.Lock()
				seen[prev]++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		gt.NoError(t, err)
	}

	gt.V(t, len(seen)).Equal(workers * perWorker)
	for i := 1; i <= workers*perWorker; i++ {
		gt.V(t, seen[i]).Equal(1)
	}
}

// TestPullRequestRecords tests saving and listing pull request records
func TestPullRequestRecords(t *testing.T, repo interfaces.ConfigRepository) {
	ctx := context.Background()
	author := fmt.Sprintf("author-%s", uuid.New().String()[:8])
	repoURL := model.RepositoryAPIURL(author, "sample")

	record := &model.PullRequestRecord{
		Number:    rand.IntN(100000) + 1,
		RepoURL:   repoURL,
		Author:    author,
		Title:     model.PullRequestTitle("main"),
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	gt.NoError(t, repo.SavePullRequest(ctx, record))

	other := *record
	other.Number++
	gt.NoError(t, repo.SavePullRequest(ctx, &other))

	// Same PR can not be recorded twice
	err := repo.SavePullRequest(ctx, record)
	gt.True(t, errors.Is(err, repository.ErrAlreadyExists))

	records, err := repo.ListPullRequests(ctx, author)
	gt.NoError(t, err)
	gt.A(t, records).Length(2)
	sort.Slice(records, func(i, j int) bool { return records[i].Number < records[j].Number })
	gt.V(t, records[0].Number).Equal(record.Number)
	gt.V(t, records[0].RepoURL).Equal(repoURL)
	gt.V(t, records[0].Title).Equal("Refactor main branch using re-facto plugin")
	gt.True(t, records[0].CreatedAt.Equal(record.CreatedAt))

	none, err := repo.ListPullRequests(ctx, "nobody-"+uuid.NewString())
	gt.NoError(t, err)
	gt.A(t, none).Length(0)
}
