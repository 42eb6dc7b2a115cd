package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/secmon-lab/refacto/pkg/domain/interfaces"
	"github.com/secmon-lab/refacto/pkg/domain/model"
	"github.com/secmon-lab/refacto/pkg/domain/types"
)

func accountIDParam(r *http.Request) (types.GitHubAccountID, error) {
	raw := chi.URLParam(r, "accountID")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, goerr.Wrap(types.ErrValidationFailed, "invalid account ID", goerr.V("accountID", raw))
	}
	return types.GitHubAccountID(id), nil
}

func getConfiguration(uc interfaces.UseCase, cfg *config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		accountID, err := accountIDParam(r)
		if err != nil {
			handleError(ctx, w, cfg.debug, err)
			return
		}

		configuration, err := uc.GetConfiguration(ctx, accountID)
		if err != nil {
			handleError(ctx, w, cfg.debug, err)
			return
		}

		writeJSON(ctx, w, http.StatusOK, configuration)
	}
}

func postConfiguration(uc interfaces.UseCase, cfg *config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		accountID, err := accountIDParam(r)
		if err != nil {
			handleError(ctx, w, cfg.debug, err)
			return
		}

		var update model.ConfigurationUpdate
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			handleError(ctx, w, cfg.debug, goerr.Wrap(types.ErrInvalidConfiguration, "failed to decode configuration", goerr.V("error", err.Error())))
			return
		}

		if err := uc.UpdateConfiguration(ctx, accountID, &update); err != nil {
			handleError(ctx, w, cfg.debug, err)
			return
		}

		writeJSON(ctx, w, http.StatusOK, messageResponse{Message: "Configuration updated successfully!"})
	}
}

type pullRequestsResponse struct {
	PullRequests []*model.PullRequestRecord `json:"pull_requests"`
}

func listPullRequests(uc interfaces.UseCase, cfg *config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		accountID, err := accountIDParam(r)
		if err != nil {
			handleError(ctx, w, cfg.debug, err)
			return
		}

		records, err := uc.ListPullRequests(ctx, accountID)
		if err != nil {
			handleError(ctx, w, cfg.debug, err)
			return
		}
		if records == nil {
			records = []*model.PullRequestRecord{}
		}

		writeJSON(ctx, w, http.StatusOK, pullRequestsResponse{PullRequests: records})
	}
}
