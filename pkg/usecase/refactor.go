package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/secmon-lab/refacto/pkg/domain/model"
	"github.com/secmon-lab/refacto/pkg/domain/types"
	"github.com/secmon-lab/refacto/pkg/utils/logging"
	"github.com/secmon-lab/refacto/pkg/utils/metrics"
	"github.com/secmon-lab/refacto/pkg/utils/tracing"
)

// RefactorPush runs extraction, rewrite and publication for a fired push.
// An aborted rewrite batch is reported in the run outcome and is not an
// error; extraction and publication failures are returned.
func (x *UseCase) RefactorPush(ctx context.Context, push *model.PushEvent, decision *model.GateDecision) (*model.RefactorRun, error) {
	if !decision.Fired() {
		return nil, goerr.Wrap(types.ErrInvalidOption, "gate decision has not fired")
	}
	if push.Account == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "push has no resolved account")
	}

	ctx, span := tracing.Tracer().Start(ctx, "refactor",
		trace.WithAttributes(
			attribute.String("repo", push.Repo().FullName()),
			attribute.String("branch", string(push.Branch())),
			attribute.String("commit", string(push.HeadCommitID)),
		),
	)
	defer span.End()

	run := &model.RefactorRun{
		ID:         types.NewRunID(),
		Timestamp:  logging.CtxTime(ctx).UTC(),
		AccountID:  push.Account.ID,
		GitHubRepo: push.Repo(),
		Branch:     push.Branch(),
		CommitID:   push.HeadCommitID,
	}

	attrs := []any{slog.Any("run_id", run.ID)}
	if sc := span.SpanContext(); sc.HasTraceID() {
		attrs = append(attrs, slog.String("trace_id", sc.TraceID().String()))
	}
	ctx = logging.With(ctx, logging.From(ctx).With(attrs...))

	started := time.Now()
	defer func() {
		metrics.PipelineRuns.WithLabelValues(string(run.Outcome)).Inc()
		metrics.PipelineDuration.Observe(time.Since(started).Seconds())
		span.SetAttributes(attribute.String("outcome", string(run.Outcome)))
		x.recordRun(ctx, run)
	}()

	err := x.runPipeline(ctx, push, decision, run)
	if err != nil {
		run.Outcome = model.RunFailed
		run.ErrorMessage = err.Error()
		span.RecordError(err)
		span.SetStatus(codes.Error, "refactor failed")
		return run, err
	}

	logging.From(ctx).Info("refactor finished",
		slog.String("outcome", string(run.Outcome)),
		slog.Int("files", run.Files),
		slog.Int("fallbacks", run.Fallbacks),
	)
	return run, nil
}

func (x *UseCase) runPipeline(ctx context.Context, push *model.PushEvent, decision *model.GateDecision, run *model.RefactorRun) error {
	cred := &model.GitHubCredential{
		Token:     push.Account.Token,
		InstallID: push.InstallationID,
	}
	client, err := x.clients.GitHub().Repository(cred, push.Repo())
	if err != nil {
		return err
	}

	records, err := stage(ctx, "extract", func(ctx context.Context) ([]*model.FileRecord, error) {
		return x.extract(ctx, client, push, decision.MaxLines)
	})
	if err != nil {
		return err
	}
	run.Files = len(records)
	if len(records) == 0 {
		run.Outcome = model.RunUnchanged
		return nil
	}

	var fallbacks int
	files, err := stage(ctx, "rewrite", func(ctx context.Context) ([]*model.RewrittenFile, error) {
		var err error
		var files []*model.RewrittenFile
		files, fallbacks, err = x.rewriteFiles(ctx, records)
		return files, err
	})
	if err != nil {
		logging.From(ctx).Warn("rewrite aborted, nothing is published", slog.Any("error", err))
		run.Outcome = model.RunAborted
		run.ErrorMessage = err.Error()
		return nil
	}
	run.Fallbacks = fallbacks

	if !changed(records, files) {
		run.Outcome = model.RunUnchanged
		return nil
	}

	pub, err := stage(ctx, "publish", func(ctx context.Context) (*publication, error) {
		return x.publish(ctx, client, push, decision, files)
	})
	if err != nil {
		return err
	}

	run.Outcome = model.RunPublished
	run.RefactorRef = pub.Branch
	run.PullRequest = pub.PullRequest.Number
	return nil
}

// stage runs f in its own child span.
func stage[T any](ctx context.Context, name string, f func(ctx context.Context) (T, error)) (T, error) {
	ctx, span := tracing.Tracer().Start(ctx, name)
	defer span.End()

	v, err := f(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, name+" failed")
	}
	return v, err
}
