package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"

	"github.com/secmon-lab/refacto/pkg/domain/interfaces"
	"github.com/secmon-lab/refacto/pkg/domain/model"
	"github.com/secmon-lab/refacto/pkg/utils/logging"
)

// ContentFetcher returns the current full content of a changed file.
type ContentFetcher func(ctx context.Context, file *model.CommitFile) (string, error)

// GitHubContentFetcher reads file content through the contents API URL
// carried by each commit file.
func GitHubContentFetcher(client interfaces.GitHubRepoClient) ContentFetcher {
	return func(ctx context.Context, file *model.CommitFile) (string, error) {
		content, err := client.GetFileContent(ctx, file.ContentsURL)
		if err != nil {
			return "", err
		}
		return content.Decode()
	}
}

// ExtractFileRecords builds one record per candidate file of the commit, in
// commit order. Files at or below maxLines added lines are skipped.
func ExtractFileRecords(ctx context.Context, commit *model.Commit, maxLines int, fetch ContentFetcher) ([]*model.FileRecord, error) {
	var records []*model.FileRecord

	for i := range commit.Files {
		file := &commit.Files[i]
		if !file.IsCandidate(maxLines) {
			continue
		}

		content, err := fetch(ctx, file)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to fetch file content",
				goerr.V("commit", commit.SHA),
				goerr.V("filename", file.Filename),
			)
		}

		records = append(records, &model.FileRecord{
			Filename: file.Filename,
			Content:  content,
			Blocks:   model.ParseChangedBlocks(file.Patch),
		})
	}

	logging.From(ctx).Debug("file records extracted",
		slog.Any("commit", commit.SHA),
		slog.Int("files", len(commit.Files)),
		slog.Int("records", len(records)),
	)

	return records, nil
}

func (x *UseCase) extract(ctx context.Context, client interfaces.GitHubRepoClient, push *model.PushEvent, maxLines int) ([]*model.FileRecord, error) {
	commit, err := client.GetCommit(ctx, push.HeadCommitID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get head commit", goerr.V("sha", push.HeadCommitID))
	}

	return ExtractFileRecords(ctx, commit, maxLines, GitHubContentFetcher(client))
}
