package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"

	"github.com/secmon-lab/refacto/pkg/domain/interfaces"
	"github.com/secmon-lab/refacto/pkg/domain/model"
	"github.com/secmon-lab/refacto/pkg/domain/types"
	"github.com/secmon-lab/refacto/pkg/utils/errutil"
	"github.com/secmon-lab/refacto/pkg/utils/logging"
	"github.com/secmon-lab/refacto/pkg/utils/metrics"
)

// Webhook results
const (
	webhookRejected  = "rejected"
	webhookDuplicate = "duplicate"
	webhookProcessed = "processed"
	webhookEnqueued  = "enqueued"
)

func handleGitHubWebhook(uc interfaces.UseCase, cfg *config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		eventType := github.WebHookType(r)

		event, err := parseGitHubEvent(r, cfg.webhookSecret)
		if err != nil {
			metrics.WebhookEvents.WithLabelValues(eventType, webhookRejected).Inc()
			handleError(ctx, w, cfg.debug, err)
			return
		}

		result, err := uc.HandleGitHubEvent(ctx, event)
		if err != nil {
			metrics.WebhookEvents.WithLabelValues(eventType, webhookRejected).Inc()
			handleError(ctx, w, cfg.debug, err)
			return
		}

		switch {
		case result.Duplicate:
			metrics.WebhookEvents.WithLabelValues(eventType, webhookDuplicate).Inc()
			writeJSON(ctx, w, http.StatusOK, messageResponse{Message: "duplicate delivery"})

		case result.Decision.Fired():
			metrics.WebhookEvents.WithLabelValues(eventType, webhookEnqueued).Inc()

			// The request context is cancelled once the response is sent
			go runRefactor(DetachContext(ctx), uc, cfg.pipelineTimeout, result)
			writeJSON(ctx, w, http.StatusAccepted, messageResponse{Message: "refactor enqueued"})

		default:
			metrics.WebhookEvents.WithLabelValues(eventType, webhookProcessed).Inc()
			resp := messageResponse{Message: "Event processed successfully!"}
			if result.Decision != nil {
				resp.Gate = string(result.Decision.State)
			}
			writeJSON(ctx, w, http.StatusOK, resp)
		}
	}
}

func runRefactor(ctx context.Context, uc interfaces.UseCase, timeout time.Duration, result *model.EventResult) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	logger := logging.From(ctx).With(
		slog.String("repo", result.Push.Repo().FullName()),
		slog.String("branch", string(result.Push.Branch())),
	)
	ctx = logging.With(ctx, logger)
	logger.Info("starting refactor pipeline")

	run, err := uc.RefactorPush(ctx, result.Push, result.Decision)
	if err != nil {
		errutil.HandleError(ctx, "refactor pipeline failed", err)
		return
	}
	logger.Info("refactor pipeline completed", slog.String("outcome", string(run.Outcome)))
}

// parseGitHubEvent checks the event type and signature and converts the
// payload into a domain event.
func parseGitHubEvent(r *http.Request, secret types.WebhookSecret) (model.Event, error) {
	eventType := types.EventType(github.WebHookType(r))
	if !eventType.Accepted() {
		return nil, goerr.Wrap(types.ErrUnsupportedEvent, "event type is not accepted", goerr.V("event", eventType))
	}

	payload, err := github.ValidatePayload(r, []byte(secret))
	if err != nil {
		if secret != "" {
			return nil, goerr.Wrap(types.ErrInvalidSignature, "failed to validate payload", goerr.V("error", err.Error()))
		}
		return nil, goerr.Wrap(types.ErrValidationFailed, "failed to read payload", goerr.V("error", err.Error()))
	}

	raw, err := github.ParseWebHook(string(eventType), payload)
	if err != nil {
		return nil, goerr.Wrap(types.ErrValidationFailed, "failed to parse webhook", goerr.V("error", err.Error()))
	}

	meta := model.WebhookMeta{DeliveryID: types.DeliveryID(github.DeliveryID(r))}

	switch ev := raw.(type) {
	case *github.PushEvent:
		meta.SenderID = types.GitHubAccountID(ev.GetSender().GetID())
		owner := ev.GetRepo().GetOwner().GetLogin()
		if owner == "" {
			owner = ev.GetRepo().GetOwner().GetName()
		}

		return &model.PushEvent{
			WebhookMeta:    meta,
			Ref:            ev.GetRef(),
			RepoID:         types.GitHubRepoID(ev.GetRepo().GetID()),
			Owner:          owner,
			RepoName:       ev.GetRepo().GetName(),
			HeadCommitID:   types.CommitSHA(ev.GetHeadCommit().GetID()),
			InstallationID: types.GitHubAppInstallID(ev.GetInstallation().GetID()),
		}, nil

	case *github.PingEvent:
		return &model.PingEvent{
			WebhookMeta: meta,
			HookID:      ev.GetHookID(),
			Zen:         ev.GetZen(),
		}, nil

	case *github.InstallationEvent:
		meta.SenderID = types.GitHubAccountID(ev.GetSender().GetID())
		return &model.InstallationEvent{
			WebhookMeta:    meta,
			Action:         ev.GetAction(),
			InstallationID: types.GitHubAppInstallID(ev.GetInstallation().GetID()),
		}, nil

	case *github.GitHubAppAuthorizationEvent:
		meta.SenderID = types.GitHubAccountID(ev.GetSender().GetID())
		return &model.AppAuthorizationEvent{
			WebhookMeta: meta,
			Action:      ev.GetAction(),
		}, nil

	default:
		return nil, goerr.Wrap(types.ErrUnsupportedEvent, "unexpected webhook payload", goerr.V("event", eventType))
	}
}
