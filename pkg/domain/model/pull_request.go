package model

import (
	"time"

	"github.com/secmon-lab/refacto/pkg/domain/types"
)

const (
	RefactorCommitMessage = "refactor: code refactored using re-facto plugin"
	PullRequestBody       = "This pull request is raised automatically using re-facto plugin"

	refactorBranchTimeFormat = "2006-01-02-15-04-05"
)

// RefactorBranchName returns `<branch>-refactored-by-re-facto-<UTC ts>`.
// A non-empty suffix is appended after the timestamp.
func RefactorBranchName(branch types.BranchName, now time.Time, suffix string) types.BranchName {
	name := string(branch) + "-" + types.RefactorBranchMarker + "-" + now.UTC().Format(refactorBranchTimeFormat)
	if suffix != "" {
		name += "-" + suffix
	}
	return types.BranchName(name)
}

func PullRequestTitle(branch types.BranchName) string {
	return "Refactor " + string(branch) + " branch using re-facto plugin"
}

// BranchHead is the tip of a branch.
type BranchHead struct {
	Name      types.BranchName
	CommitSHA types.CommitSHA
	TreeSHA   string
}

type TreeEntry struct {
	Path    string
	BlobSHA string
}

type NewPullRequest struct {
	Title string
	Body  string
	Base  types.BranchName
	Head  types.BranchName
}

type PullRequest struct {
	Number  int
	HTMLURL string
}

// PullRequestRecord is stored once per published run and never mutated.
type PullRequestRecord struct {
	Number    int       `json:"pull_id" db:"number"`
	RepoURL   string    `json:"repo_name" db:"repo_url"`
	Author    string    `json:"author" db:"author"`
	Title     string    `json:"title" db:"title"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
