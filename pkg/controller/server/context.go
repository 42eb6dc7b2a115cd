package server

import (
	"context"

	"github.com/secmon-lab/refacto/pkg/utils/logging"
)

// DetachContext creates a new context.Background() based context that inherits
// logger, request ID, and time function from the original context.
// The refactor pipeline outlives the webhook request, whose context is
// cancelled once the response is sent.
func DetachContext(ctx context.Context) context.Context {
	bgCtx := context.Background()

	bgCtx = logging.With(bgCtx, logging.From(ctx))
	bgCtx = logging.InheritContextValues(bgCtx, ctx)

	return bgCtx
}
