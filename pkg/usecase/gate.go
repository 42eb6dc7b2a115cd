package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"

	"github.com/secmon-lab/refacto/pkg/domain/model"
	"github.com/secmon-lab/refacto/pkg/utils/logging"
	"github.com/secmon-lab/refacto/pkg/utils/metrics"
)

// evaluateGate decides whether the push fires a refactor and advances the
// branch counter. The counter step runs under a per-branch lock.
func (x *UseCase) evaluateGate(ctx context.Context, push *model.PushEvent) (*model.GateDecision, error) {
	decision, err := x.gate(ctx, push)
	if err != nil {
		return nil, err
	}

	metrics.GateDecisions.WithLabelValues(string(decision.State)).Inc()
	logging.From(ctx).Info("gate evaluated",
		slog.String("repo", push.Repo().FullName()),
		slog.String("branch", string(push.Branch())),
		slog.String("state", string(decision.State)),
		slog.Int("counter", decision.Counter),
	)

	return decision, nil
}

func (x *UseCase) gate(ctx context.Context, push *model.PushEvent) (*model.GateDecision, error) {
	branch := push.Branch()

	// Our own branches and branch deletions never count.
	if branch.IsRefactorBranch() || push.HeadCommitID == "" {
		return &model.GateDecision{State: model.GateIgnored}, nil
	}
	if push.Account == nil {
		return nil, goerr.New("push has no resolved account")
	}

	repo := x.clients.ConfigRepository()
	cfg, err := repo.FetchConfiguration(ctx, push.Account.ID)
	if err != nil {
		return nil, err
	}

	repoCfg := cfg.FindRepository(push.RepoID, push.RepoName)
	if repoCfg == nil || repoCfg.FindSourceBranch(branch) == nil {
		return &model.GateDecision{State: model.GateNotConfigured}, nil
	}

	key := model.CounterKey{
		AccountID: push.Account.ID,
		RepoID:    repoCfg.RepoID,
		Branch:    branch,
	}

	unlock, err := x.clients.Locker().Lock(ctx, key.String())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to lock commit counter", goerr.V("key", key.String()))
	}
	defer unlock()

	previous, err := repo.UpdateCurrentCommit(ctx, key, cfg.CommitInterval)
	if err != nil {
		return nil, err
	}

	decision := &model.GateDecision{
		State:        model.GateArmed,
		Counter:      previous,
		MaxLines:     cfg.MaxLines,
		TargetBranch: repoCfg.TargetBranch,
	}
	if previous == 1 {
		decision.State = model.GateFired
	}

	return decision, nil
}
