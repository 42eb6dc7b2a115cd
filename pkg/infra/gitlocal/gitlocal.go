package gitlocal

import (
	"bytes"
	"context"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/format/diff"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/utils/merkletrie"
	"github.com/m-mizutani/goerr/v2"

	"github.com/secmon-lab/refacto/pkg/domain/model"
	"github.com/secmon-lab/refacto/pkg/domain/types"
)

// Repository reads commits of a local git working copy. It gives the same
// file-level commit view as the GitHub commits API.
type Repository struct {
	repo *git.Repository
}

func Open(path string) (*Repository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open git repository", goerr.V("path", path))
	}
	return &Repository{repo: repo}, nil
}

// Head returns the checked out branch and its commit. Branch is empty on a
// detached HEAD.
func (x *Repository) Head() (types.BranchName, types.CommitSHA, error) {
	head, err := x.repo.Head()
	if err != nil {
		return "", "", goerr.Wrap(err, "failed to get HEAD")
	}

	var branch types.BranchName
	if head.Name().IsBranch() {
		branch = types.BranchName(head.Name().Short())
	}
	return branch, types.CommitSHA(head.Hash().String()), nil
}

// Remote parses owner and repository name from the origin URL. Both SSH and
// HTTPS GitHub URLs are accepted.
func (x *Repository) Remote() (*model.GitHubRepo, error) {
	remote, err := x.repo.Remote("origin")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get remote origin")
	}
	if len(remote.Config().URLs) == 0 {
		return nil, goerr.New("no remote URL found")
	}

	url := remote.Config().URLs[0]
	var path string
	switch {
	case strings.HasPrefix(url, "git@github.com:"):
		path = strings.TrimPrefix(url, "git@github.com:")
	case strings.Contains(url, "github.com/"):
		path = strings.SplitN(url, "github.com/", 2)[1]
	}

	parts := strings.Split(strings.TrimSuffix(path, ".git"), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, goerr.New("failed to parse GitHub owner/repo from git remote URL", goerr.V("url", url))
	}

	return &model.GitHubRepo{Owner: parts[0], RepoName: parts[1]}, nil
}

// Commit resolves rev and diffs it against its first parent. A root commit
// is diffed against an empty tree.
func (x *Repository) Commit(rev string) (*model.Commit, error) {
	commit, err := x.commitObject(rev)
	if err != nil {
		return nil, err
	}

	tree, err := commit.Tree()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get commit tree", goerr.V("commit", commit.Hash.String()))
	}

	var parentTree *object.Tree
	if commit.NumParents() > 0 {
		parent, err := commit.Parent(0)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to get parent commit", goerr.V("commit", commit.Hash.String()))
		}
		if parentTree, err = parent.Tree(); err != nil {
			return nil, goerr.Wrap(err, "failed to get parent tree", goerr.V("commit", parent.Hash.String()))
		}
	}

	changes, err := object.DiffTree(parentTree, tree)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to diff commit", goerr.V("commit", commit.Hash.String()))
	}

	result := &model.Commit{SHA: types.CommitSHA(commit.Hash.String())}
	for _, change := range changes {
		file, err := commitFile(change)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read change", goerr.V("commit", commit.Hash.String()))
		}
		result.Files = append(result.Files, *file)
	}

	return result, nil
}

// ContentFetcher returns file contents as of rev. The returned function
// fits usecase.ContentFetcher.
func (x *Repository) ContentFetcher(rev string) (func(ctx context.Context, file *model.CommitFile) (string, error), error) {
	commit, err := x.commitObject(rev)
	if err != nil {
		return nil, err
	}

	return func(ctx context.Context, file *model.CommitFile) (string, error) {
		f, err := commit.File(file.Filename)
		if err != nil {
			return "", goerr.Wrap(err, "failed to find file in commit",
				goerr.V("commit", commit.Hash.String()),
				goerr.V("filename", file.Filename),
			)
		}
		content, err := f.Contents()
		if err != nil {
			return "", goerr.Wrap(err, "failed to read file", goerr.V("filename", file.Filename))
		}
		return content, nil
	}, nil
}

func (x *Repository) commitObject(rev string) (*object.Commit, error) {
	hash, err := x.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve revision", goerr.V("rev", rev))
	}
	commit, err := x.repo.CommitObject(*hash)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get commit", goerr.V("rev", rev))
	}
	return commit, nil
}

func commitFile(change *object.Change) (*model.CommitFile, error) {
	action, err := change.Action()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get change action")
	}

	file := &model.CommitFile{Filename: change.To.Name}
	switch action {
	case merkletrie.Insert:
		file.Status = model.FileAdded
	case merkletrie.Delete:
		file.Status = model.FileRemoved
		file.Filename = change.From.Name
	default:
		file.Status = model.FileModified
	}

	patch, err := change.Patch()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create patch", goerr.V("filename", file.Filename))
	}

	for _, stat := range patch.Stats() {
		file.Additions += stat.Addition
	}

	for _, fp := range patch.FilePatches() {
		if fp.IsBinary() {
			return file, nil
		}
	}

	var buf bytes.Buffer
	if err := diff.NewUnifiedEncoder(&buf, diff.DefaultContextLines).Encode(patch); err != nil {
		return nil, goerr.Wrap(err, "failed to encode patch", goerr.V("filename", file.Filename))
	}
	file.Patch = hunks(buf.String())

	return file, nil
}

// hunks drops the file header lines so the patch starts at the first hunk,
// matching the patch field of the commits API.
func hunks(patch string) string {
	if strings.HasPrefix(patch, "@@") {
		return patch
	}
	if idx := strings.Index(patch, "\n@@"); idx >= 0 {
		return patch[idx+1:]
	}
	return ""
}
