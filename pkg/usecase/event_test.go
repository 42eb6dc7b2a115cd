package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/secmon-lab/refacto/pkg/domain/mock"
	"github.com/secmon-lab/refacto/pkg/domain/model"
	"github.com/secmon-lab/refacto/pkg/domain/types"
	"github.com/secmon-lab/refacto/pkg/infra"
	"github.com/secmon-lab/refacto/pkg/infra/lock"
	"github.com/secmon-lab/refacto/pkg/usecase"
)

func TestHandleGitHubEvent(t *testing.T) {
	validGitHub := func() *mock.GitHubMock {
		return &mock.GitHubMock{
			CheckTokenFunc: func(ctx context.Context, token types.GitHubToken) error {
				return nil
			},
		}
	}

	t.Run("push on monitored branch fires and then arms", func(t *testing.T) {
		gh := validGitHub()
		uc := usecase.New(infra.New(
			infra.WithGitHub(gh),
			infra.WithConfigRepository(newConfiguredRepository(t, 2, 30, "")),
		))

		result, err := uc.HandleGitHubEvent(testContext(), newPush("refs/heads/main"))
		gt.NoError(t, err)
		gt.V(t, result.Type).Equal(types.EventPush)
		gt.V(t, result.Decision.State).Equal(model.GateFired)
		gt.V(t, result.Decision.Counter).Equal(1)
		gt.V(t, result.Push.Account.Login).Equal("octocat")
		gt.V(t, len(gh.CheckTokenCalls())).Equal(1)
		gt.V(t, gh.CheckTokenCalls()[0].Token).Equal(testToken)

		result, err = uc.HandleGitHubEvent(testContext(), newPush("refs/heads/main"))
		gt.NoError(t, err)
		gt.V(t, result.Decision.State).Equal(model.GateArmed)
		gt.V(t, result.Decision.Counter).Equal(2)

		result, err = uc.HandleGitHubEvent(testContext(), newPush("refs/heads/main"))
		gt.NoError(t, err)
		gt.V(t, result.Decision.State).Equal(model.GateFired)
	})

	t.Run("unknown sender", func(t *testing.T) {
		gh := validGitHub()
		uc := usecase.New(infra.New(infra.WithGitHub(gh)))

		_, err := uc.HandleGitHubEvent(testContext(), newPush("refs/heads/main"))
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrUnknownAccount))
		gt.V(t, len(gh.CheckTokenCalls())).Equal(0)
	})

	t.Run("expired credential", func(t *testing.T) {
		gh := &mock.GitHubMock{
			CheckTokenFunc: func(ctx context.Context, token types.GitHubToken) error {
				return goerr.Wrap(types.ErrCredentialExpired, "token is revoked")
			},
		}
		repo := newConfiguredRepository(t, 2, 30, "")
		uc := usecase.New(infra.New(infra.WithGitHub(gh), infra.WithConfigRepository(repo)))

		_, err := uc.HandleGitHubEvent(testContext(), newPush("refs/heads/main"))
		gt.True(t, errors.Is(err, types.ErrCredentialExpired))

		// The counter is untouched by a rejected push
		cfg, err := repo.FetchConfiguration(context.Background(), testAccountID)
		gt.NoError(t, err)
		gt.V(t, cfg.Repositories[0].SourceBranches[0].CommitNumber).Equal(1)
	})

	t.Run("duplicate delivery is acknowledged once", func(t *testing.T) {
		uc := usecase.New(infra.New(
			infra.WithGitHub(validGitHub()),
			infra.WithConfigRepository(newConfiguredRepository(t, 2, 30, "")),
		))

		push := newPush("refs/heads/main")
		push.DeliveryID = "delivery-1"
		result, err := uc.HandleGitHubEvent(testContext(), push)
		gt.NoError(t, err)
		gt.False(t, result.Duplicate)
		gt.V(t, result.Decision.State).Equal(model.GateFired)

		again := newPush("refs/heads/main")
		again.DeliveryID = "delivery-1"
		result, err = uc.HandleGitHubEvent(testContext(), again)
		gt.NoError(t, err)
		gt.True(t, result.Duplicate)
		gt.V(t, result.Decision).Equal(nil)
	})

	t.Run("delivery failing at the gate is handled on redelivery", func(t *testing.T) {
		repo := newConfiguredRepository(t, 2, 30, "")
		guard := lock.NewMemoryDeliveryGuard(lock.DeliveryTTL)

		failing := usecase.New(infra.New(
			infra.WithGitHub(validGitHub()),
			infra.WithConfigRepository(repo),
			infra.WithDeliveryGuard(guard),
			infra.WithLocker(&mock.LockerMock{
				LockFunc: func(ctx context.Context, key string) (func(), error) {
					return nil, context.DeadlineExceeded
				},
			}),
		))
		push := newPush("refs/heads/main")
		push.DeliveryID = "delivery-1"
		_, err := failing.HandleGitHubEvent(testContext(), push)
		gt.True(t, errors.Is(err, context.DeadlineExceeded))

		healthy := usecase.New(infra.New(
			infra.WithGitHub(validGitHub()),
			infra.WithConfigRepository(repo),
			infra.WithDeliveryGuard(guard),
		))
		again := newPush("refs/heads/main")
		again.DeliveryID = "delivery-1"
		result, err := healthy.HandleGitHubEvent(testContext(), again)
		gt.NoError(t, err)
		gt.False(t, result.Duplicate)
		gt.V(t, result.Decision.State).Equal(model.GateFired)
		gt.V(t, result.Decision.Counter).Equal(1)
	})

	t.Run("non-push events are acknowledged", func(t *testing.T) {
		uc := usecase.New(infra.New())

		for _, ev := range []model.Event{
			&model.PingEvent{HookID: 1, Zen: "Keep it logically awesome."},
			&model.InstallationEvent{Action: "created", InstallationID: 5},
			&model.AppAuthorizationEvent{Action: "revoked"},
		} {
			result, err := uc.HandleGitHubEvent(testContext(), ev)
			gt.NoError(t, err)
			gt.V(t, result.Type).Equal(ev.EventType())
			gt.V(t, result.Decision).Equal(nil)
		}
	})

	t.Run("nil event", func(t *testing.T) {
		uc := usecase.New(infra.New())
		_, err := uc.HandleGitHubEvent(testContext(), nil)
		gt.True(t, errors.Is(err, types.ErrUnsupportedEvent))
	})
}

func TestEvaluateGate(t *testing.T) {
	account := &model.Account{ID: testAccountID, Login: "octocat", Token: testToken}

	t.Run("refactor branch is ignored", func(t *testing.T) {
		repo := &mock.ConfigRepositoryMock{}
		uc := usecase.New(infra.New(infra.WithConfigRepository(repo)))

		push := newPush("refs/heads/main-" + types.RefactorBranchMarker + "-2024-03-05-06-07-08")
		push.Account = account
		decision, err := uc.EvaluateGateForTest(testContext(), push)
		gt.NoError(t, err)
		gt.V(t, decision.State).Equal(model.GateIgnored)
		gt.V(t, len(repo.FetchConfigurationCalls())).Equal(0)
	})

	t.Run("branch deletion is ignored", func(t *testing.T) {
		uc := usecase.New(infra.New())
		push := newPush("refs/heads/main")
		push.HeadCommitID = ""
		push.Account = account
		decision, err := uc.EvaluateGateForTest(testContext(), push)
		gt.NoError(t, err)
		gt.V(t, decision.State).Equal(model.GateIgnored)
	})

	t.Run("branch not monitored", func(t *testing.T) {
		uc := usecase.New(infra.New(infra.WithConfigRepository(newConfiguredRepository(t, 3, 30, ""))))
		push := newPush("refs/heads/develop")
		push.Account = account
		decision, err := uc.EvaluateGateForTest(testContext(), push)
		gt.NoError(t, err)
		gt.V(t, decision.State).Equal(model.GateNotConfigured)
	})

	t.Run("repository not configured", func(t *testing.T) {
		uc := usecase.New(infra.New(infra.WithConfigRepository(newConfiguredRepository(t, 3, 30, ""))))
		push := newPush("refs/heads/main")
		push.RepoID = 9999
		push.RepoName = "other"
		push.Account = account
		decision, err := uc.EvaluateGateForTest(testContext(), push)
		gt.NoError(t, err)
		gt.V(t, decision.State).Equal(model.GateNotConfigured)
	})

	t.Run("fires once per interval", func(t *testing.T) {
		uc := usecase.New(infra.New(infra.WithConfigRepository(newConfiguredRepository(t, 3, 40, "release"))))

		var states []model.GateState
		for i := 0; i < 7; i++ {
			push := newPush("refs/heads/main")
			push.Account = account
			decision, err := uc.EvaluateGateForTest(testContext(), push)
			gt.NoError(t, err)
			gt.V(t, decision.MaxLines).Equal(40)
			gt.V(t, decision.TargetBranch).Equal(types.BranchName("release"))
			states = append(states, decision.State)
		}

		gt.V(t, states).Equal([]model.GateState{
			model.GateFired, model.GateArmed, model.GateArmed,
			model.GateFired, model.GateArmed, model.GateArmed,
			model.GateFired,
		})
	})

	t.Run("counter step runs under the branch lock", func(t *testing.T) {
		var locked []string
		released := 0
		locker := &mock.LockerMock{
			LockFunc: func(ctx context.Context, key string) (func(), error) {
				locked = append(locked, key)
				return func() { released++ }, nil
			},
		}
		uc := usecase.New(infra.New(
			infra.WithLocker(locker),
			infra.WithConfigRepository(newConfiguredRepository(t, 3, 30, "")),
		))

		push := newPush("refs/heads/main")
		push.Account = account
		_, err := uc.EvaluateGateForTest(testContext(), push)
		gt.NoError(t, err)

		key := model.CounterKey{AccountID: testAccountID, RepoID: testRepoID, Branch: "main"}
		gt.V(t, locked).Equal([]string{key.String()})
		gt.V(t, released).Equal(1)
	})

	t.Run("lock failure", func(t *testing.T) {
		locker := &mock.LockerMock{
			LockFunc: func(ctx context.Context, key string) (func(), error) {
				return nil, context.DeadlineExceeded
			},
		}
		uc := usecase.New(infra.New(
			infra.WithLocker(locker),
			infra.WithConfigRepository(newConfiguredRepository(t, 3, 30, "")),
		))

		push := newPush("refs/heads/main")
		push.Account = account
		_, err := uc.EvaluateGateForTest(testContext(), push)
		gt.True(t, errors.Is(err, context.DeadlineExceeded))
	})
}
