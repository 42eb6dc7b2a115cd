package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/secmon-lab/refacto/pkg/domain/types"
	"github.com/secmon-lab/refacto/pkg/repository"
	"github.com/secmon-lab/refacto/pkg/utils/errutil"
	"github.com/secmon-lab/refacto/pkg/utils/logging"
)

type messageResponse struct {
	Message string `json:"message"`
	Status  int    `json:"status,omitempty"`
	Gate    string `json:"gate,omitempty"`

	Traceback []*goerr.Stack `json:"traceback,omitempty"`
}

func writeJSON(ctx context.Context, w http.ResponseWriter, code int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logging.From(ctx).Error("fail to marshal response", slog.Any("error", err))
		safeWrite(w, http.StatusInternalServerError, []byte(`{"message":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, body)
}

// errorStatus maps err to the response status and the message shown to the
// caller. Internal detail never goes into the message.
func errorStatus(err error) (int, string) {
	if v, status, ok := types.AsValidationError(err); ok {
		return status, v.Error()
	}
	if errors.Is(err, repository.ErrNotFound) {
		return http.StatusNotFound, "Not found"
	}
	if types.IsExternalError(err) {
		return http.StatusBadGateway, "External service error"
	}
	return http.StatusInternalServerError, "Internal server error"
}

func handleError(ctx context.Context, w http.ResponseWriter, debug bool, err error) {
	status, msg := errorStatus(err)

	if status >= http.StatusInternalServerError {
		errutil.HandleError(ctx, msg, err)
	} else {
		logging.From(ctx).Warn("request rejected", slog.Int("status", status), slog.Any("error", err))
	}

	resp := messageResponse{Message: msg, Status: status}
	if debug {
		if goErr := goerr.Unwrap(err); goErr != nil {
			resp.Traceback = goErr.Stacks()
		}
	}

	writeJSON(ctx, w, status, resp)
}
