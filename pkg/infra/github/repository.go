package github

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	gh "github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"

	"github.com/secmon-lab/refacto/pkg/domain/interfaces"
	"github.com/secmon-lab/refacto/pkg/domain/model"
	"github.com/secmon-lab/refacto/pkg/domain/types"
	"github.com/secmon-lab/refacto/pkg/utils/logging"
)

type repoClient struct {
	client  *gh.Client
	owner   string
	repo    string
	timeout time.Duration
}

var _ interfaces.GitHubRepoClient = (*repoClient)(nil)

func (x *repoClient) values() []goerr.Option {
	return []goerr.Option{goerr.V("owner", x.owner), goerr.V("repo", x.repo)}
}

func (x *repoClient) wrap(err error, msg string, opts ...goerr.Option) error {
	return types.AsExternal(goerr.Wrap(err, msg, append(x.values(), opts...)...))
}

func (x *repoClient) GetCommit(ctx context.Context, sha types.CommitSHA) (*model.Commit, error) {
	commit := &model.Commit{SHA: sha}
	opts := &gh.ListOptions{PerPage: 100}

	for {
		rc, resp, err := x.client.Repositories.GetCommit(ctx, x.owner, x.repo, string(sha), opts)
		if err != nil {
			return nil, x.wrap(err, "failed to get commit", goerr.V("sha", sha))
		}

		for _, f := range rc.Files {
			commit.Files = append(commit.Files, model.CommitFile{
				Filename:    f.GetFilename(),
				Status:      model.FileStatus(f.GetStatus()),
				Additions:   f.GetAdditions(),
				Patch:       f.GetPatch(),
				ContentsURL: f.GetContentsURL(),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return commit, nil
}

// GetFileContent fetches a contents API URL as given in a commit file entry.
// The URL already pins the commit ref.
func (x *repoClient) GetFileContent(ctx context.Context, contentsURL string) (*model.FileContent, error) {
	req, err := x.client.NewRequest(http.MethodGet, contentsURL, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build contents request", goerr.V("url", contentsURL))
	}

	var content model.FileContent
	if _, err := x.client.Do(ctx, req, &content); err != nil {
		return nil, x.wrap(err, "failed to get file content", goerr.V("url", contentsURL))
	}

	return &content, nil
}

func (x *repoClient) GetBranch(ctx context.Context, branch types.BranchName) (*model.BranchHead, error) {
	// GetBranch round-trips on the bare transport, bypassing http.Client.Timeout.
	ctx, cancel := context.WithTimeout(ctx, x.timeout)
	defer cancel()

	b, _, err := x.client.Repositories.GetBranch(ctx, x.owner, x.repo, string(branch), true)
	if err != nil {
		return nil, x.wrap(err, "failed to get branch", goerr.V("branch", branch))
	}

	head := b.GetCommit()
	return &model.BranchHead{
		Name:      branch,
		CommitSHA: types.CommitSHA(head.GetSHA()),
		TreeSHA:   head.GetCommit().GetTree().GetSHA(),
	}, nil
}

func (x *repoClient) CreateRef(ctx context.Context, branch types.BranchName, sha types.CommitSHA) error {
	_, resp, err := x.client.Git.CreateRef(ctx, x.owner, x.repo, &gh.Reference{
		Ref:    gh.String("refs/heads/" + string(branch)),
		Object: &gh.GitObject{SHA: gh.String(string(sha))},
	})
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnprocessableEntity {
			return types.AsExternal(goerr.Wrap(types.ErrRefAlreadyExists, "branch already exists",
				append(x.values(), goerr.V("branch", branch), goerr.V("error", err.Error()))...))
		}
		return x.wrap(err, "failed to create branch", goerr.V("branch", branch))
	}

	logging.From(ctx).Debug("created branch", slog.String("branch", string(branch)), slog.String("sha", string(sha)))
	return nil
}

func (x *repoClient) CreateBlob(ctx context.Context, content string) (string, error) {
	blob, _, err := x.client.Git.CreateBlob(ctx, x.owner, x.repo, &gh.Blob{
		Content:  gh.String(content),
		Encoding: gh.String("utf-8"),
	})
	if err != nil {
		return "", x.wrap(err, "failed to create blob")
	}
	return blob.GetSHA(), nil
}

func (x *repoClient) CreateTree(ctx context.Context, baseTree string, entries []model.TreeEntry) (string, error) {
	treeEntries := make([]*gh.TreeEntry, len(entries))
	for i, e := range entries {
		treeEntries[i] = &gh.TreeEntry{
			Path: gh.String(e.Path),
			Mode: gh.String("100644"),
			Type: gh.String("blob"),
			SHA:  gh.String(e.BlobSHA),
		}
	}

	tree, _, err := x.client.Git.CreateTree(ctx, x.owner, x.repo, baseTree, treeEntries)
	if err != nil {
		return "", x.wrap(err, "failed to create tree", goerr.V("baseTree", baseTree))
	}
	return tree.GetSHA(), nil
}

func (x *repoClient) CreateCommit(ctx context.Context, message, tree string, parents []types.CommitSHA) (types.CommitSHA, error) {
	parentCommits := make([]*gh.Commit, len(parents))
	for i, p := range parents {
		parentCommits[i] = &gh.Commit{SHA: gh.String(string(p))}
	}

	commit, _, err := x.client.Git.CreateCommit(ctx, x.owner, x.repo, &gh.Commit{
		Message: gh.String(message),
		Tree:    &gh.Tree{SHA: gh.String(tree)},
		Parents: parentCommits,
	})
	if err != nil {
		return "", x.wrap(err, "failed to create commit", goerr.V("tree", tree))
	}
	return types.CommitSHA(commit.GetSHA()), nil
}

func (x *repoClient) UpdateRef(ctx context.Context, branch types.BranchName, sha types.CommitSHA) error {
	_, _, err := x.client.Git.UpdateRef(ctx, x.owner, x.repo, &gh.Reference{
		Ref:    gh.String("refs/heads/" + string(branch)),
		Object: &gh.GitObject{SHA: gh.String(string(sha))},
	}, false)
	if err != nil {
		return x.wrap(err, "failed to update branch", goerr.V("branch", branch), goerr.V("sha", sha))
	}
	return nil
}

func (x *repoClient) CreatePullRequest(ctx context.Context, pr *model.NewPullRequest) (*model.PullRequest, error) {
	created, _, err := x.client.PullRequests.Create(ctx, x.owner, x.repo, &gh.NewPullRequest{
		Title: gh.String(pr.Title),
		Body:  gh.String(pr.Body),
		Base:  gh.String(string(pr.Base)),
		Head:  gh.String(string(pr.Head)),
	})
	if err != nil {
		return nil, x.wrap(err, "failed to create pull request", goerr.V("base", pr.Base), goerr.V("head", pr.Head))
	}

	return &model.PullRequest{
		Number:  created.GetNumber(),
		HTMLURL: created.GetHTMLURL(),
	}, nil
}
