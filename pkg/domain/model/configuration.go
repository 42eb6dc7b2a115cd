package model

import (
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/refacto/pkg/domain/types"
)

const (
	DefaultCommitInterval = 5
	DefaultMaxLines       = 30
)

// UserSettings holds the per-account cadence and size thresholds.
type UserSettings struct {
	CommitInterval int `json:"commit_interval" db:"commit_interval"`
	MaxLines       int `json:"max_lines" db:"max_lines"`
}

func DefaultUserSettings() UserSettings {
	return UserSettings{
		CommitInterval: DefaultCommitInterval,
		MaxLines:       DefaultMaxLines,
	}
}

func (x UserSettings) Validate() error {
	if x.CommitInterval <= 0 {
		return goerr.Wrap(types.ErrInvalidConfiguration, "commit_interval must be greater than 0",
			goerr.V("commit_interval", x.CommitInterval))
	}
	if x.MaxLines <= 0 {
		return goerr.Wrap(types.ErrInvalidConfiguration, "max_lines must be greater than 0",
			goerr.V("max_lines", x.MaxLines))
	}
	return nil
}

// SourceBranch is a monitored branch and its running push counter.
type SourceBranch struct {
	Name         types.BranchName `json:"name" db:"branch"`
	CommitNumber int              `json:"commit_number" db:"current_commit"`
}

// RepositoryConfig is one repository's monitored branches and target.
// An empty TargetBranch means pull requests go back to the pushed branch.
type RepositoryConfig struct {
	RepoID         types.GitHubRepoID `json:"repo_id"`
	Name           string             `json:"name"`
	URL            string             `json:"url"`
	SourceBranches []SourceBranch     `json:"source_branches"`
	TargetBranch   types.BranchName   `json:"target_branch"`
}

func (x *RepositoryConfig) FindSourceBranch(name types.BranchName) *SourceBranch {
	for i := range x.SourceBranches {
		if x.SourceBranches[i].Name == name {
			return &x.SourceBranches[i]
		}
	}
	return nil
}

// Configuration is the snapshot of an account's settings and selections.
type Configuration struct {
	AccountID types.GitHubAccountID `json:"account_id"`
	UserSettings
	Repositories []RepositoryConfig `json:"repositories"`
}

// FindRepository matches by ID when both sides carry one, otherwise by name.
func (x *Configuration) FindRepository(id types.GitHubRepoID, name string) *RepositoryConfig {
	for i := range x.Repositories {
		repo := &x.Repositories[i]
		if id != 0 && repo.RepoID != 0 {
			if repo.RepoID == id {
				return repo
			}
			continue
		}
		if repo.Name == name {
			return repo
		}
	}
	return nil
}

// CounterKey identifies one source branch counter.
type CounterKey struct {
	AccountID types.GitHubAccountID
	RepoID    types.GitHubRepoID
	Branch    types.BranchName
}

func (x CounterKey) String() string {
	return fmt.Sprintf("%d:%d:%s", x.AccountID, x.RepoID, x.Branch)
}

// NextCommitNumber advances a counter by one and wraps it back to exactly 1
// once it exceeds interval.
func NextCommitNumber(current, interval int) int {
	next := current + 1
	if next > interval {
		return 1
	}
	return next
}

// BranchSelection is one branch entry of a configuration update.
type BranchSelection struct {
	Name       types.BranchName `json:"name"`
	IsSelected bool             `json:"is_selected"`
}

type RepositorySelection struct {
	RepoID         types.GitHubRepoID `json:"repo_id"`
	SourceBranches []BranchSelection  `json:"source_branches"`
	TargetBranches []BranchSelection  `json:"target_branches"`
}

// SelectedSources returns names of selected source branches without
// duplicates, in submission order.
func (x *RepositorySelection) SelectedSources() []types.BranchName {
	var names []types.BranchName
	seen := map[types.BranchName]bool{}
	for _, b := range x.SourceBranches {
		if b.IsSelected && !seen[b.Name] {
			seen[b.Name] = true
			names = append(names, b.Name)
		}
	}
	return names
}

// SelectedTarget returns the selected target branch or "" if none is set.
func (x *RepositorySelection) SelectedTarget() types.BranchName {
	for _, b := range x.TargetBranches {
		if b.IsSelected {
			return b.Name
		}
	}
	return ""
}

// ConfigurationUpdate is a configuration payload submitted by the front-end.
type ConfigurationUpdate struct {
	UserSettings
	Repositories []RepositorySelection `json:"repositories"`
}

// Validate checks the whole payload. It must pass before anything is
// persisted.
func (x *ConfigurationUpdate) Validate() error {
	if err := x.UserSettings.Validate(); err != nil {
		return err
	}

	for _, repo := range x.Repositories {
		if repo.RepoID == 0 {
			return goerr.Wrap(types.ErrInvalidConfiguration, "repo_id is empty")
		}

		selected := 0
		for _, b := range repo.TargetBranches {
			if !b.IsSelected {
				continue
			}
			selected++
			if selected > 1 {
				return goerr.Wrap(types.ErrDuplicateTarget, "more than one target branch is selected",
					goerr.V("repo_id", repo.RepoID))
			}
			if err := validateSelectable(b.Name); err != nil {
				return goerr.Wrap(err, "invalid target branch", goerr.V("repo_id", repo.RepoID))
			}
		}

		for _, b := range repo.SourceBranches {
			if !b.IsSelected {
				continue
			}
			if err := validateSelectable(b.Name); err != nil {
				return goerr.Wrap(err, "invalid source branch", goerr.V("repo_id", repo.RepoID))
			}
		}
	}

	return nil
}

func validateSelectable(name types.BranchName) error {
	if name == "" {
		return goerr.Wrap(types.ErrInvalidConfiguration, "branch name is empty")
	}
	if name.IsRefactorBranch() {
		return goerr.Wrap(types.ErrInvalidConfiguration, "generated branch can not be selected",
			goerr.V("branch", name))
	}
	return nil
}
