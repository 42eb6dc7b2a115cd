package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . BigQuery GitHub GitHubRepoClient Rewriter Locker DeliveryGuard

import (
	"context"

	"cloud.google.com/go/bigquery"

	"github.com/secmon-lab/refacto/pkg/domain/model"
	"github.com/secmon-lab/refacto/pkg/domain/types"
)

type BigQuery interface {
	Insert(ctx context.Context, schema bigquery.Schema, data any) error

	GetMetadata(ctx context.Context) (*bigquery.TableMetadata, error)
	UpdateTable(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error
	CreateTable(ctx context.Context, md *bigquery.TableMetadata) error
}

// GitHub covers account-level API calls and hands out repository-scoped
// clients.
type GitHub interface {
	// CheckToken introspects a user access token with the OAuth app
	// credentials. An invalid token yields types.ErrCredentialExpired.
	CheckToken(ctx context.Context, token types.GitHubToken) error
	GetUser(ctx context.Context, token types.GitHubToken) (*model.GitHubUser, error)
	ListRepositories(ctx context.Context, token types.GitHubToken) ([]*model.GitHubAPIRepository, error)

	Repository(cred *model.GitHubCredential, repo model.GitHubRepo) (GitHubRepoClient, error)
}

type GitHubRepoClient interface {
	GetCommit(ctx context.Context, sha types.CommitSHA) (*model.Commit, error)
	GetFileContent(ctx context.Context, contentsURL string) (*model.FileContent, error)
	GetBranch(ctx context.Context, branch types.BranchName) (*model.BranchHead, error)

	// CreateRef returns an error wrapping types.ErrRefAlreadyExists when the
	// branch is taken.
	CreateRef(ctx context.Context, branch types.BranchName, sha types.CommitSHA) error
	CreateBlob(ctx context.Context, content string) (string, error)
	CreateTree(ctx context.Context, baseTree string, entries []model.TreeEntry) (string, error)
	CreateCommit(ctx context.Context, message, tree string, parents []types.CommitSHA) (types.CommitSHA, error)
	UpdateRef(ctx context.Context, branch types.BranchName, sha types.CommitSHA) error
	CreatePullRequest(ctx context.Context, pr *model.NewPullRequest) (*model.PullRequest, error)
}

// Rewriter sends one file record to the rewrite model. An unparsable answer
// yields types.ErrMalformedRewrite; any other error is a call failure.
type Rewriter interface {
	Rewrite(ctx context.Context, file *model.FileRecord) (*model.RewrittenFile, error)
}

// Locker serializes work per key. The returned function releases the lock.
type Locker interface {
	Lock(ctx context.Context, key string) (func(), error)
}

// DeliveryGuard claims webhook delivery IDs. Claim returns false when the ID
// was already claimed. Release forgets a claim so a redelivery is handled.
type DeliveryGuard interface {
	Claim(ctx context.Context, id types.DeliveryID) (bool, error)
	Release(ctx context.Context, id types.DeliveryID) error
}
