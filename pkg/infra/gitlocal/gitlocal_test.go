package gitlocal_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/m-mizutani/gt"

	"github.com/secmon-lab/refacto/pkg/domain/model"
	"github.com/secmon-lab/refacto/pkg/infra/gitlocal"
	"github.com/secmon-lab/refacto/pkg/usecase"
)

type workdir struct {
	t    *testing.T
	dir  string
	repo *git.Repository
}

func newWorkdir(t *testing.T) *workdir {
	t.Helper()
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	gt.NoError(t, err)
	return &workdir{t: t, dir: dir, repo: repo}
}

func (x *workdir) write(name, content string) {
	x.t.Helper()
	path := filepath.Join(x.dir, name)
	gt.NoError(x.t, os.MkdirAll(filepath.Dir(path), 0755))
	gt.NoError(x.t, os.WriteFile(path, []byte(content), 0644))
}

func (x *workdir) commit(msg string) string {
	x.t.Helper()
	wt, err := x.repo.Worktree()
	gt.NoError(x.t, err)
	gt.NoError(x.t, wt.AddWithOptions(&git.AddOptions{All: true}))

	hash, err := wt.Commit(msg, &git.CommitOptions{
		Author: &object.Signature{
			Name:  "octocat",
			Email: "octocat@example.com",
			When:  time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		},
	})
	gt.NoError(x.t, err)
	return hash.String()
}

func TestCommit(t *testing.T) {
	w := newWorkdir(t)
	w.write("app.py", "a = 1\n")
	w.write("old.py", "gone\n")
	root := w.commit("initial")

	w.write("app.py", "a = 1\nb = 2\nc = 3\n")
	w.write("pkg/new.py", "x = 1\ny = 2\n")
	gt.NoError(t, os.Remove(filepath.Join(w.dir, "old.py")))
	head := w.commit("second")

	repo, err := gitlocal.Open(w.dir)
	gt.NoError(t, err)

	t.Run("diff against first parent", func(t *testing.T) {
		commit, err := repo.Commit("HEAD")
		gt.NoError(t, err)
		gt.V(t, string(commit.SHA)).Equal(head)

		files := map[string]model.CommitFile{}
		for _, f := range commit.Files {
			files[f.Filename] = f
		}
		gt.V(t, len(files)).Equal(3)

		gt.V(t, files["app.py"].Status).Equal(model.FileModified)
		gt.V(t, files["app.py"].Additions).Equal(2)
		gt.V(t, model.ParseChangedBlocks(files["app.py"].Patch)).Equal([]string{"b = 2\nc = 3"})

		gt.V(t, files["pkg/new.py"].Status).Equal(model.FileAdded)
		gt.V(t, files["pkg/new.py"].Additions).Equal(2)

		gt.V(t, files["old.py"].Status).Equal(model.FileRemoved)
	})

	t.Run("root commit", func(t *testing.T) {
		commit, err := repo.Commit(root)
		gt.NoError(t, err)
		gt.V(t, len(commit.Files)).Equal(2)
		for _, f := range commit.Files {
			gt.V(t, f.Status).Equal(model.FileAdded)
		}
	})

	t.Run("unknown revision", func(t *testing.T) {
		_, err := repo.Commit("no-such-branch")
		gt.Error(t, err)
	})

	t.Run("extract records from local commit", func(t *testing.T) {
		commit, err := repo.Commit("HEAD")
		gt.NoError(t, err)
		fetch, err := repo.ContentFetcher("HEAD")
		gt.NoError(t, err)

		records, err := usecase.ExtractFileRecords(context.Background(), commit, 1, fetch)
		gt.NoError(t, err)
		gt.V(t, len(records)).Equal(2)
		for _, r := range records {
			if r.Filename == "app.py" {
				gt.V(t, r.Content).Equal("a = 1\nb = 2\nc = 3\n")
			}
		}
	})
}

func TestHeadAndRemote(t *testing.T) {
	w := newWorkdir(t)
	w.write("README.md", "# app\n")
	sha := w.commit("initial")

	_, err := w.repo.CreateRemote(&config.RemoteConfig{
		Name: "origin",
		URLs: []string{"git@github.com:octo/app.git"},
	})
	gt.NoError(t, err)

	repo, err := gitlocal.Open(filepath.Join(w.dir))
	gt.NoError(t, err)

	branch, head, err := repo.Head()
	gt.NoError(t, err)
	gt.V(t, string(branch)).Equal("master")
	gt.V(t, string(head)).Equal(sha)

	remote, err := repo.Remote()
	gt.NoError(t, err)
	gt.V(t, remote.FullName()).Equal("octo/app")
}

func TestOpenNotRepository(t *testing.T) {
	_, err := gitlocal.Open(t.TempDir())
	gt.Error(t, err)
}
