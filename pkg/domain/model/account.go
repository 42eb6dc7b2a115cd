package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/refacto/pkg/domain/types"
)

// Account is a GitHub user who installed the app. Token is the user access
// token issued through the app's OAuth flow; it is re-validated on every push.
type Account struct {
	ID        types.GitHubAccountID `json:"id" db:"id"`
	Login     string                `json:"login" db:"login"`
	Token     types.GitHubToken     `json:"-" db:"token"`
	Name      string                `json:"name" db:"name"`
	Email     string                `json:"email" db:"email"`
	Company   string                `json:"company" db:"company"`
	CreatedAt time.Time             `json:"created_at" db:"created_at"`
	UpdatedAt time.Time             `json:"updated_at" db:"updated_at"`
}

func (x *Account) Validate() error {
	if x.ID == 0 {
		return goerr.Wrap(types.ErrValidationFailed, "account ID is empty")
	}
	if x.Login == "" {
		return goerr.Wrap(types.ErrValidationFailed, "account login is empty", goerr.V("id", x.ID))
	}
	return nil
}

// Repository is a GitHub repository owned by an Account.
type Repository struct {
	ID        types.GitHubRepoID    `json:"id" db:"id"`
	AccountID types.GitHubAccountID `json:"account_id" db:"account_id"`
	Owner     string                `json:"owner" db:"owner"`
	Name      string                `json:"name" db:"name"`
	URL       string                `json:"url" db:"url"`
}

func (x *Repository) Validate() error {
	if x.ID == 0 {
		return goerr.Wrap(types.ErrValidationFailed, "repository ID is empty")
	}
	if x.AccountID == 0 {
		return goerr.Wrap(types.ErrValidationFailed, "repository account ID is empty", goerr.V("repo", x.ID))
	}
	if x.Name == "" {
		return goerr.Wrap(types.ErrValidationFailed, "repository name is empty", goerr.V("repo", x.ID))
	}
	return nil
}

// RepositoryAPIURL is the canonical API base URL of a repository, used as
// its identity in pull request records.
func RepositoryAPIURL(owner, name string) string {
	return "https://api.github.com/repos/" + owner + "/" + name
}
