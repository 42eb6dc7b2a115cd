package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"

	"github.com/secmon-lab/refacto/pkg/domain/model"
	"github.com/secmon-lab/refacto/pkg/domain/types"
	"github.com/secmon-lab/refacto/pkg/utils/logging"
	"github.com/secmon-lab/refacto/pkg/utils/metrics"
)

// rewriteFiles returns exactly one result per record, in record order. A
// record without changed blocks is passed through. An unparsable answer
// falls back to the original content. Any other rewrite failure aborts the
// whole batch and no partial result is returned.
func (x *UseCase) rewriteFiles(ctx context.Context, records []*model.FileRecord) ([]*model.RewrittenFile, int, error) {
	results := make([]*model.RewrittenFile, 0, len(records))
	fallbacks := 0

	for _, record := range records {
		if !record.HasBlocks() {
			metrics.RewriteFiles.WithLabelValues(metrics.RewritePassthrough).Inc()
			results = append(results, &model.RewrittenFile{Filename: record.Filename, Content: record.Content})
			continue
		}

		rewritten, err := x.clients.Rewriter().Rewrite(ctx, record)
		if err != nil {
			if !errors.Is(err, types.ErrMalformedRewrite) {
				return nil, 0, goerr.Wrap(err, "failed to rewrite file", goerr.V("filename", record.Filename))
			}

			logging.From(ctx).Warn("rewrite answer is malformed, keep original content",
				slog.String("filename", record.Filename),
				slog.Any("error", err),
			)
			metrics.RewriteFiles.WithLabelValues(metrics.RewriteFallback).Inc()
			fallbacks++
			results = append(results, &model.RewrittenFile{Filename: record.Filename, Content: record.Content})
			continue
		}

		metrics.RewriteFiles.WithLabelValues(metrics.RewriteRewritten).Inc()
		results = append(results, &model.RewrittenFile{Filename: record.Filename, Content: rewritten.Content})
	}

	return results, fallbacks, nil
}

// changed reports whether any rewritten file differs from its record.
func changed(records []*model.FileRecord, files []*model.RewrittenFile) bool {
	for i := range files {
		if files[i].Content != records[i].Content {
			return true
		}
	}
	return false
}
