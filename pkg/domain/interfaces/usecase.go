package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/secmon-lab/refacto/pkg/domain/model"
	"github.com/secmon-lab/refacto/pkg/domain/types"
)

type UseCase interface {
	HandleGitHubEvent(ctx context.Context, event model.Event) (*model.EventResult, error)
	RefactorPush(ctx context.Context, push *model.PushEvent, decision *model.GateDecision) (*model.RefactorRun, error)

	GetConfiguration(ctx context.Context, accountID types.GitHubAccountID) (*model.Configuration, error)
	UpdateConfiguration(ctx context.Context, accountID types.GitHubAccountID, update *model.ConfigurationUpdate) error
	ListPullRequests(ctx context.Context, accountID types.GitHubAccountID) ([]*model.PullRequestRecord, error)
	RegisterAccount(ctx context.Context, token types.GitHubToken) (*model.Account, error)
}
