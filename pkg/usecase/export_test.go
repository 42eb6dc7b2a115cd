package usecase

import (
	"context"

	"github.com/secmon-lab/refacto/pkg/domain/interfaces"
	"github.com/secmon-lab/refacto/pkg/domain/model"
)

var (
	CreateOrUpdateBigQueryTableForTest = createOrUpdateBigQueryTable
)

func (x *UseCase) SetBranchSuffixForTest(f func() string) {
	x.branchSuffix = f
}

func (x *UseCase) EvaluateGateForTest(ctx context.Context, push *model.PushEvent) (*model.GateDecision, error) {
	return x.evaluateGate(ctx, push)
}

func (x *UseCase) RewriteFilesForTest(ctx context.Context, records []*model.FileRecord) ([]*model.RewrittenFile, int, error) {
	return x.rewriteFiles(ctx, records)
}

func (x *UseCase) PublishForTest(ctx context.Context, client interfaces.GitHubRepoClient, push *model.PushEvent, decision *model.GateDecision, files []*model.RewrittenFile) (string, int, error) {
	pub, err := x.publish(ctx, client, push, decision, files)
	if err != nil {
		return "", 0, err
	}
	return string(pub.Branch), pub.PullRequest.Number, nil
}
