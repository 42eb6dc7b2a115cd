package model

import (
	"regexp"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/refacto/pkg/domain/types"
)

var ptnValidCommitID = regexp.MustCompile("^[0-9a-f]{40}$")

type GitHubRepo struct {
	RepoID   types.GitHubRepoID `json:"repo_id" bigquery:"repo_id"`
	Owner    string             `json:"owner" bigquery:"owner"`
	RepoName string             `json:"repo_name" bigquery:"repo_name"`
}

func (x GitHubRepo) Validate() error {
	if x.Owner == "" {
		return goerr.Wrap(types.ErrInvalidOption, "owner is empty")
	}
	if x.RepoName == "" {
		return goerr.Wrap(types.ErrInvalidOption, "repo name is empty")
	}
	return nil
}

func (x GitHubRepo) FullName() string {
	return x.Owner + "/" + x.RepoName
}

// GitHubCredential selects how GitHub is called for a repository. An
// installation ID takes precedence when the server has app credentials.
type GitHubCredential struct {
	Token     types.GitHubToken
	InstallID types.GitHubAppInstallID
}

// GitHubUser is the owner of a user access token.
type GitHubUser struct {
	ID      types.GitHubAccountID
	Login   string
	Name    string
	Email   string
	Company string
}

// GitHubAPIRepository is a repository as listed by the GitHub API.
type GitHubAPIRepository struct {
	ID       types.GitHubRepoID
	Owner    string
	Name     string
	FullName string
}

func ValidCommitID(id types.CommitSHA) bool {
	return ptnValidCommitID.MatchString(string(id))
}
