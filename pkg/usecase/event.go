package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"

	"github.com/secmon-lab/refacto/pkg/domain/model"
	"github.com/secmon-lab/refacto/pkg/domain/types"
	"github.com/secmon-lab/refacto/pkg/repository"
	"github.com/secmon-lab/refacto/pkg/utils/errutil"
	"github.com/secmon-lab/refacto/pkg/utils/logging"
)

// HandleGitHubEvent validates an event and, for pushes, runs the gate. It
// never starts the refactor pipeline; a fired decision is returned to the
// caller, which schedules RefactorPush.
func (x *UseCase) HandleGitHubEvent(ctx context.Context, event model.Event) (*model.EventResult, error) {
	if event == nil || !event.EventType().Accepted() {
		return nil, goerr.Wrap(types.ErrUnsupportedEvent, "event is not handled")
	}

	result := &model.EventResult{Type: event.EventType()}

	switch ev := event.(type) {
	case *model.PushEvent:
		if err := x.validatePush(ctx, ev); err != nil {
			return nil, err
		}

		if ev.DeliveryID != "" {
			claimed, err := x.clients.DeliveryGuard().Claim(ctx, ev.DeliveryID)
			if err != nil {
				return nil, err
			}
			if !claimed {
				logging.From(ctx).Info("duplicate delivery", slog.Any("deliveryID", ev.DeliveryID))
				result.Duplicate = true
				return result, nil
			}
		}

		decision, err := x.evaluateGate(ctx, ev)
		if err != nil {
			x.releaseDelivery(ctx, ev.DeliveryID)
			return nil, err
		}
		result.Push = ev
		result.Decision = decision

	case *model.PingEvent:
		logging.From(ctx).Info("ping received", slog.Int64("hookID", ev.HookID), slog.String("zen", ev.Zen))

	case *model.InstallationEvent:
		logging.From(ctx).Info("installation event",
			slog.String("action", ev.Action),
			slog.Any("installationID", ev.InstallationID),
		)

	case *model.AppAuthorizationEvent:
		logging.From(ctx).Info("app authorization event", slog.String("action", ev.Action))

	default:
		return nil, goerr.Wrap(types.ErrUnsupportedEvent, "unknown event variant", goerr.V("type", event.EventType()))
	}

	return result, nil
}

// releaseDelivery forgets a claimed delivery so GitHub's redelivery of a
// failed push reaches the gate again.
func (x *UseCase) releaseDelivery(ctx context.Context, id types.DeliveryID) {
	if id == "" {
		return
	}
	if err := x.clients.DeliveryGuard().Release(ctx, id); err != nil {
		errutil.HandleError(ctx, "failed to release delivery", err)
	}
}

// validatePush resolves the sending account and re-checks its credential.
func (x *UseCase) validatePush(ctx context.Context, push *model.PushEvent) error {
	account, err := x.clients.ConfigRepository().GetAccount(ctx, push.SenderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return goerr.Wrap(types.ErrUnknownAccount, "sender is not registered", goerr.V("senderID", push.SenderID))
		}
		return err
	}

	if err := x.clients.GitHub().CheckToken(ctx, account.Token); err != nil {
		return goerr.Wrap(err, "credential check failed", goerr.V("accountID", account.ID))
	}

	push.Account = account
	return nil
}
