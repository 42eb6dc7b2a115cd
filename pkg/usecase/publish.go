package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"

	"github.com/secmon-lab/refacto/pkg/domain/interfaces"
	"github.com/secmon-lab/refacto/pkg/domain/model"
	"github.com/secmon-lab/refacto/pkg/domain/types"
	"github.com/secmon-lab/refacto/pkg/utils/errutil"
	"github.com/secmon-lab/refacto/pkg/utils/logging"
)

type publication struct {
	Branch      types.BranchName
	CommitSHA   types.CommitSHA
	PullRequest *model.PullRequest
}

// publish commits the rewritten files on a new branch cut from the pushed
// branch head and opens a pull request into the target branch.
func (x *UseCase) publish(ctx context.Context, client interfaces.GitHubRepoClient, push *model.PushEvent, decision *model.GateDecision, files []*model.RewrittenFile) (*publication, error) {
	source := push.Branch()

	head, err := client.GetBranch(ctx, source)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get source branch head", goerr.V("branch", source))
	}

	branch, err := x.createRefactorBranch(ctx, client, source, head.CommitSHA)
	if err != nil {
		return nil, err
	}

	entries := make([]model.TreeEntry, 0, len(files))
	for _, file := range files {
		blobSHA, err := client.CreateBlob(ctx, file.Content)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create blob", goerr.V("filename", file.Filename))
		}
		entries = append(entries, model.TreeEntry{Path: file.Filename, BlobSHA: blobSHA})
	}

	treeSHA, err := client.CreateTree(ctx, head.TreeSHA, entries)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create tree", goerr.V("branch", branch))
	}

	commitSHA, err := client.CreateCommit(ctx, model.RefactorCommitMessage, treeSHA, []types.CommitSHA{head.CommitSHA})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create commit", goerr.V("branch", branch))
	}

	if err := client.UpdateRef(ctx, branch, commitSHA); err != nil {
		return nil, goerr.Wrap(err, "failed to update refactor branch", goerr.V("branch", branch))
	}

	base := decision.TargetBranch
	if base == "" {
		base = source
	}

	pr, err := client.CreatePullRequest(ctx, &model.NewPullRequest{
		Title: model.PullRequestTitle(source),
		Body:  model.PullRequestBody,
		Base:  base,
		Head:  branch,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create pull request",
			goerr.V("base", base),
			goerr.V("head", branch),
		)
	}

	logging.From(ctx).Info("pull request created",
		slog.String("repo", push.Repo().FullName()),
		slog.Int("number", pr.Number),
		slog.String("url", pr.HTMLURL),
	)

	record := &model.PullRequestRecord{
		Number:    pr.Number,
		RepoURL:   model.RepositoryAPIURL(push.Owner, push.RepoName),
		Author:    push.Owner,
		Title:     model.PullRequestTitle(source),
		CreatedAt: logging.CtxTime(ctx).UTC(),
	}
	if err := x.clients.ConfigRepository().SavePullRequest(ctx, record); err != nil {
		errutil.HandleError(ctx, "failed to save pull request record", err)
	}

	return &publication{
		Branch:      branch,
		CommitSHA:   commitSHA,
		PullRequest: pr,
	}, nil
}

// createRefactorBranch points a new timestamped branch at sha. When the name
// is taken it retries once with a random suffix.
func (x *UseCase) createRefactorBranch(ctx context.Context, client interfaces.GitHubRepoClient, source types.BranchName, sha types.CommitSHA) (types.BranchName, error) {
	now := logging.CtxTime(ctx)

	branch := model.RefactorBranchName(source, now, "")
	err := client.CreateRef(ctx, branch, sha)
	if err == nil {
		return branch, nil
	}
	if !errors.Is(err, types.ErrRefAlreadyExists) {
		return "", goerr.Wrap(err, "failed to create refactor branch", goerr.V("branch", branch))
	}

	logging.From(ctx).Warn("refactor branch already exists, retry with suffix", slog.String("branch", string(branch)))

	branch = model.RefactorBranchName(source, now, x.branchSuffix())
	if err := client.CreateRef(ctx, branch, sha); err != nil {
		return "", goerr.Wrap(err, "failed to create refactor branch", goerr.V("branch", branch))
	}
	return branch, nil
}
