package model

import (
	"time"

	"github.com/secmon-lab/refacto/pkg/domain/types"
)

type RunOutcome string

const (
	RunPublished RunOutcome = "published"
	RunUnchanged RunOutcome = "unchanged"
	RunAborted   RunOutcome = "aborted"
	RunFailed    RunOutcome = "failed"
)

// RefactorRun summarizes one fired pipeline run.
type RefactorRun struct {
	ID        types.RunID           `json:"id" bigquery:"id"`
	Timestamp time.Time             `json:"timestamp" bigquery:"timestamp"`
	AccountID types.GitHubAccountID `json:"account_id" bigquery:"account_id"`
	GitHubRepo
	Branch       types.BranchName `json:"branch" bigquery:"branch"`
	CommitID     types.CommitSHA  `json:"commit_id" bigquery:"commit_id"`
	Outcome      RunOutcome       `json:"outcome" bigquery:"outcome"`
	Files        int              `json:"files" bigquery:"files"`
	Fallbacks    int              `json:"fallbacks" bigquery:"fallbacks"`
	RefactorRef  types.BranchName `json:"refactor_ref,omitempty" bigquery:"refactor_ref"`
	PullRequest  int              `json:"pull_request,omitempty" bigquery:"pull_request"`
	ErrorMessage string           `json:"error,omitempty" bigquery:"error"`
}
