package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/refacto/pkg/domain/interfaces"
	"github.com/secmon-lab/refacto/pkg/domain/model"
	"github.com/secmon-lab/refacto/pkg/domain/types"
	"github.com/secmon-lab/refacto/pkg/repository"
	"github.com/secmon-lab/refacto/pkg/utils/safe"
)

// maxCounterAttempts bounds compare-and-swap retries of a commit counter.
const maxCounterAttempts = 10

// Store is the relational ConfigRepository. Queries are written with `?`
// placeholders and rebound for the driver.
type Store struct {
	db     *sqlx.DB
	driver Driver
}

var _ interfaces.ConfigRepository = (*Store)(nil)

func New(db *sqlx.DB, driver Driver) *Store {
	return &Store{db: db, driver: driver}
}

func (x *Store) inTx(ctx context.Context, f func(tx *sqlx.Tx) error) error {
	tx, err := x.db.BeginTxx(ctx, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to begin transaction")
	}
	defer safe.Rollback(tx.Tx)

	if err := f(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return goerr.Wrap(err, "failed to commit transaction")
	}
	return nil
}

// queryer is satisfied by both *sqlx.DB and *sqlx.Tx.
type queryer interface {
	sqlx.QueryerContext
	Rebind(query string) string
}

func accountExists(ctx context.Context, q queryer, id types.GitHubAccountID) (bool, error) {
	var n int
	if err := sqlx.GetContext(ctx, q, &n, q.Rebind(
		`SELECT COUNT(*) FROM accounts WHERE id = ?`), int64(id)); err != nil {
		return false, goerr.Wrap(err, "failed to check account", goerr.V("accountID", id))
	}
	return n > 0, nil
}

// Account operations

func (x *Store) PutAccount(ctx context.Context, account *model.Account) error {
	if err := account.Validate(); err != nil {
		return goerr.Wrap(repository.ErrInvalidInput, "invalid account", goerr.V("error", err))
	}

	now := time.Now().UTC()
	return x.inTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, tx.Rebind(`
			INSERT INTO accounts (id, login, token, name, email, company, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (id) DO UPDATE SET
				login = excluded.login,
				token = excluded.token,
				name = excluded.name,
				email = excluded.email,
				company = excluded.company,
				updated_at = excluded.updated_at`),
			int64(account.ID), account.Login, string(account.Token),
			account.Name, account.Email, account.Company, now, now,
		); err != nil {
			return goerr.Wrap(err, "failed to upsert account", goerr.V("accountID", account.ID))
		}

		defaults := model.DefaultUserSettings()
		if _, err := tx.ExecContext(ctx, tx.Rebind(`
			INSERT INTO user_settings (account_id, commit_interval, max_lines)
			VALUES (?, ?, ?)
			ON CONFLICT (account_id) DO NOTHING`),
			int64(account.ID), defaults.CommitInterval, defaults.MaxLines,
		); err != nil {
			return goerr.Wrap(err, "failed to create default settings", goerr.V("accountID", account.ID))
		}

		return nil
	})
}

func (x *Store) GetAccount(ctx context.Context, id types.GitHubAccountID) (*model.Account, error) {
	var account model.Account
	err := x.db.GetContext(ctx, &account, x.db.Rebind(`
		SELECT id, login, token, name, email, company, created_at, updated_at
		FROM accounts WHERE id = ?`), int64(id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, goerr.Wrap(repository.ErrNotFound, "account not found", goerr.V("accountID", id))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get account", goerr.V("accountID", id))
	}

	return &account, nil
}

// Repository operations

func (x *Store) PutRepository(ctx context.Context, repo *model.Repository) error {
	if err := repo.Validate(); err != nil {
		return goerr.Wrap(repository.ErrInvalidInput, "invalid repository", goerr.V("error", err))
	}

	return x.inTx(ctx, func(tx *sqlx.Tx) error {
		exists, err := accountExists(ctx, tx, repo.AccountID)
		if err != nil {
			return err
		}
		if !exists {
			return goerr.Wrap(repository.ErrNotFound, "account not found", goerr.V("accountID", repo.AccountID))
		}

		if _, err := tx.ExecContext(ctx, tx.Rebind(`
			INSERT INTO repositories (account_id, id, owner, name, url)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT (account_id, id) DO UPDATE SET
				owner = excluded.owner,
				name = excluded.name,
				url = excluded.url`),
			int64(repo.AccountID), int64(repo.ID), repo.Owner, repo.Name, repo.URL,
		); err != nil {
			return goerr.Wrap(err, "failed to upsert repository", goerr.V("repoID", repo.ID))
		}
		return nil
	})
}

func (x *Store) ListRepositories(ctx context.Context, accountID types.GitHubAccountID) ([]*model.Repository, error) {
	exists, err := accountExists(ctx, x.db, accountID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "account not found", goerr.V("accountID", accountID))
	}

	var repos []*model.Repository
	if err := x.db.SelectContext(ctx, &repos, x.db.Rebind(`
		SELECT id, account_id, owner, name, url
		FROM repositories WHERE account_id = ? ORDER BY id`), int64(accountID)); err != nil {
		return nil, goerr.Wrap(err, "failed to list repositories", goerr.V("accountID", accountID))
	}

	return repos, nil
}

// Configuration operations

type repoRow struct {
	ID     types.GitHubRepoID `db:"id"`
	Name   string             `db:"name"`
	URL    string             `db:"url"`
	Target sql.NullString     `db:"target"`
}

type sourceRow struct {
	RepoID        types.GitHubRepoID `db:"repo_id"`
	Branch        string             `db:"branch"`
	CurrentCommit int                `db:"current_commit"`
}

func (x *Store) FetchConfiguration(ctx context.Context, accountID types.GitHubAccountID) (*model.Configuration, error) {
	cfg := &model.Configuration{
		AccountID:    accountID,
		Repositories: []model.RepositoryConfig{},
	}

	err := x.db.GetContext(ctx, &cfg.UserSettings, x.db.Rebind(`
		SELECT commit_interval, max_lines FROM user_settings WHERE account_id = ?`), int64(accountID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, goerr.Wrap(repository.ErrNotFound, "configuration not found", goerr.V("accountID", accountID))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get user settings", goerr.V("accountID", accountID))
	}

	var repos []repoRow
	if err := x.db.SelectContext(ctx, &repos, x.db.Rebind(`
		SELECT r.id, r.name, r.url, t.branch AS target
		FROM repositories r
		LEFT JOIN target_configurations t ON t.account_id = r.account_id AND t.repo_id = r.id
		WHERE r.account_id = ?
		ORDER BY r.id`), int64(accountID)); err != nil {
		return nil, goerr.Wrap(err, "failed to list repositories", goerr.V("accountID", accountID))
	}

	var sources []sourceRow
	if err := x.db.SelectContext(ctx, &sources, x.db.Rebind(`
		SELECT repo_id, branch, current_commit
		FROM source_configurations
		WHERE account_id = ?
		ORDER BY repo_id, branch`), int64(accountID)); err != nil {
		return nil, goerr.Wrap(err, "failed to list source configurations", goerr.V("accountID", accountID))
	}

	byRepo := make(map[types.GitHubRepoID][]model.SourceBranch)
	for _, s := range sources {
		byRepo[s.RepoID] = append(byRepo[s.RepoID], model.SourceBranch{
			Name:         types.BranchName(s.Branch),
			CommitNumber: s.CurrentCommit,
		})
	}

	for _, r := range repos {
		branches := byRepo[r.ID]
		if len(branches) == 0 && !r.Target.Valid {
			continue
		}
		if branches == nil {
			branches = []model.SourceBranch{}
		}

		cfg.Repositories = append(cfg.Repositories, model.RepositoryConfig{
			RepoID:         r.ID,
			Name:           r.Name,
			URL:            r.URL,
			SourceBranches: branches,
			TargetBranch:   types.BranchName(r.Target.String),
		})
	}

	return cfg, nil
}

func (x *Store) ApplyConfiguration(ctx context.Context, accountID types.GitHubAccountID, update *model.ConfigurationUpdate) error {
	if err := update.Validate(); err != nil {
		return err
	}

	return x.inTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, tx.Rebind(`
			UPDATE user_settings SET commit_interval = ?, max_lines = ? WHERE account_id = ?`),
			update.CommitInterval, update.MaxLines, int64(accountID))
		if err != nil {
			return goerr.Wrap(err, "failed to update user settings", goerr.V("accountID", accountID))
		}
		if n, err := res.RowsAffected(); err != nil {
			return goerr.Wrap(err, "failed to get affected rows")
		} else if n == 0 {
			return goerr.Wrap(repository.ErrNotFound, "account not found", goerr.V("accountID", accountID))
		}

		for _, sel := range update.Repositories {
			if err := applyRepositorySelection(ctx, tx, accountID, &sel); err != nil {
				return err
			}
		}

		return nil
	})
}

func applyRepositorySelection(ctx context.Context, tx *sqlx.Tx, accountID types.GitHubAccountID, sel *model.RepositorySelection) error {
	var n int
	if err := tx.GetContext(ctx, &n, tx.Rebind(`
		SELECT COUNT(*) FROM repositories WHERE account_id = ? AND id = ?`),
		int64(accountID), int64(sel.RepoID)); err != nil {
		return goerr.Wrap(err, "failed to check repository", goerr.V("repoID", sel.RepoID))
	}
	if n == 0 {
		return goerr.Wrap(repository.ErrNotFound, "repository not found",
			goerr.V("accountID", accountID),
			goerr.V("repoID", sel.RepoID),
		)
	}

	selected := sel.SelectedSources()

	// Drop branches that are no longer selected; kept ones retain counters
	if len(selected) == 0 {
		if _, err := tx.ExecContext(ctx, tx.Rebind(`
			DELETE FROM source_configurations WHERE account_id = ? AND repo_id = ?`),
			int64(accountID), int64(sel.RepoID)); err != nil {
			return goerr.Wrap(err, "failed to clear source configurations", goerr.V("repoID", sel.RepoID))
		}
	} else {
		names := make([]string, len(selected))
		for i, s := range selected {
			names[i] = string(s)
		}
		query, args, err := sqlx.In(`
			DELETE FROM source_configurations
			WHERE account_id = ? AND repo_id = ? AND branch NOT IN (?)`,
			int64(accountID), int64(sel.RepoID), names)
		if err != nil {
			return goerr.Wrap(err, "failed to build delete query")
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(query), args...); err != nil {
			return goerr.Wrap(err, "failed to clean up source configurations", goerr.V("repoID", sel.RepoID))
		}
	}

	for _, name := range selected {
		if _, err := tx.ExecContext(ctx, tx.Rebind(`
			INSERT INTO source_configurations (account_id, repo_id, branch, current_commit)
			VALUES (?, ?, ?, 1)
			ON CONFLICT (account_id, repo_id, branch) DO NOTHING`),
			int64(accountID), int64(sel.RepoID), string(name)); err != nil {
			return goerr.Wrap(err, "failed to configure source branch",
				goerr.V("repoID", sel.RepoID),
				goerr.V("branch", name),
			)
		}
	}

	if _, err := tx.ExecContext(ctx, tx.Rebind(`
		DELETE FROM target_configurations WHERE account_id = ? AND repo_id = ?`),
		int64(accountID), int64(sel.RepoID)); err != nil {
		return goerr.Wrap(err, "failed to clear target configuration", goerr.V("repoID", sel.RepoID))
	}
	if target := sel.SelectedTarget(); target != "" {
		if _, err := tx.ExecContext(ctx, tx.Rebind(`
			INSERT INTO target_configurations (account_id, repo_id, branch) VALUES (?, ?, ?)`),
			int64(accountID), int64(sel.RepoID), string(target)); err != nil {
			return goerr.Wrap(err, "failed to configure target branch",
				goerr.V("repoID", sel.RepoID),
				goerr.V("branch", target),
			)
		}
	}

	return nil
}

// UpdateCurrentCommit reads and advances the counter in one transaction. The
// row is locked on PostgreSQL; SQLite runs on a single connection. The update
// is additionally guarded by the value read, and retried if it moved.
func (x *Store) UpdateCurrentCommit(ctx context.Context, key model.CounterKey, interval int) (int, error) {
	selectQuery := `SELECT current_commit FROM source_configurations
		WHERE account_id = ? AND repo_id = ? AND branch = ?`
	if x.driver == DriverPostgres {
		selectQuery += " FOR UPDATE"
	}

	for range maxCounterAttempts {
		var (
			previous int
			swapped  bool
		)

		err := x.inTx(ctx, func(tx *sqlx.Tx) error {
			err := tx.GetContext(ctx, &previous, tx.Rebind(selectQuery),
				int64(key.AccountID), int64(key.RepoID), string(key.Branch))
			if errors.Is(err, sql.ErrNoRows) {
				return goerr.Wrap(repository.ErrNotFound, "source configuration not found", goerr.V("key", key.String()))
			}
			if err != nil {
				return goerr.Wrap(err, "failed to read commit counter", goerr.V("key", key.String()))
			}

			res, err := tx.ExecContext(ctx, tx.Rebind(`
				UPDATE source_configurations SET current_commit = ?
				WHERE account_id = ? AND repo_id = ? AND branch = ? AND current_commit = ?`),
				model.NextCommitNumber(previous, interval),
				int64(key.AccountID), int64(key.RepoID), string(key.Branch), previous)
			if err != nil {
				return goerr.Wrap(err, "failed to update commit counter", goerr.V("key", key.String()))
			}

			n, err := res.RowsAffected()
			if err != nil {
				return goerr.Wrap(err, "failed to get affected rows")
			}
			swapped = n == 1
			return nil
		})
		if err != nil {
			return 0, err
		}
		if swapped {
			return previous, nil
		}
	}

	return 0, goerr.Wrap(repository.ErrConflict, "commit counter kept changing", goerr.V("key", key.String()))
}

// Pull request operations

func (x *Store) SavePullRequest(ctx context.Context, record *model.PullRequestRecord) error {
	res, err := x.db.ExecContext(ctx, x.db.Rebind(`
		INSERT INTO pull_requests (repo_url, number, author, title, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (repo_url, number) DO NOTHING`),
		record.RepoURL, record.Number, record.Author, record.Title, record.CreatedAt.UTC())
	if err != nil {
		return goerr.Wrap(err, "failed to save pull request",
			goerr.V("repoURL", record.RepoURL),
			goerr.V("number", record.Number),
		)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return goerr.Wrap(err, "failed to get affected rows")
	}
	if n == 0 {
		return goerr.Wrap(repository.ErrAlreadyExists, "pull request already recorded",
			goerr.V("repoURL", record.RepoURL),
			goerr.V("number", record.Number),
		)
	}

	return nil
}

func (x *Store) ListPullRequests(ctx context.Context, author string) ([]*model.PullRequestRecord, error) {
	var records []*model.PullRequestRecord
	if err := x.db.SelectContext(ctx, &records, x.db.Rebind(`
		SELECT repo_url, number, author, title, created_at
		FROM pull_requests WHERE author = ?
		ORDER BY created_at, number`), author); err != nil {
		return nil, goerr.Wrap(err, "failed to list pull requests", goerr.V("author", author))
	}

	return records, nil
}
