package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/secmon-lab/refacto/pkg/controller/server"
	"github.com/secmon-lab/refacto/pkg/domain/mock"
	"github.com/secmon-lab/refacto/pkg/domain/model"
	"github.com/secmon-lab/refacto/pkg/domain/types"
	"github.com/secmon-lab/refacto/pkg/repository"
)

func TestConfigurationAPI(t *testing.T) {
	t.Run("get configuration", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			GetConfigurationFunc: func(ctx context.Context, accountID types.GitHubAccountID) (*model.Configuration, error) {
				return &model.Configuration{
					AccountID:    accountID,
					UserSettings: model.UserSettings{CommitInterval: 3, MaxLines: 20},
					Repositories: []model.RepositoryConfig{
						{
							RepoID:         2002,
							Name:           "app",
							SourceBranches: []model.SourceBranch{{Name: "main", CommitNumber: 2}},
							TargetBranch:   "release",
						},
					},
				}, nil
			},
		}
		srv := server.New(uc)

		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/accounts/1001/configuration", nil))

		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, uc.GetConfigurationCalls()[0].AccountID).Equal(types.GitHubAccountID(1001))

		var body map[string]any
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		gt.V(t, body["commit_interval"]).Equal(float64(3))
		gt.V(t, body["max_lines"]).Equal(float64(20))
		repos := body["repositories"].([]any)
		gt.V(t, repos[0].(map[string]any)["target_branch"]).Equal("release")
	})

	t.Run("unknown account", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			GetConfigurationFunc: func(ctx context.Context, accountID types.GitHubAccountID) (*model.Configuration, error) {
				return nil, goerr.Wrap(repository.ErrNotFound, "account not found")
			},
		}
		srv := server.New(uc)

		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/accounts/5/configuration", nil))
		gt.V(t, rec.Code).Equal(http.StatusNotFound)
	})

	t.Run("invalid account id", func(t *testing.T) {
		uc := &mock.UseCaseMock{}
		srv := server.New(uc)

		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/accounts/abc/configuration", nil))
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
		gt.V(t, len(uc.GetConfigurationCalls())).Equal(0)
	})

	t.Run("post configuration", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			UpdateConfigurationFunc: func(ctx context.Context, accountID types.GitHubAccountID, update *model.ConfigurationUpdate) error {
				return nil
			},
		}
		srv := server.New(uc)

		body := `{"commit_interval": 4, "max_lines": 50, "repositories": [
			{"repo_id": 2002,
			 "source_branches": [{"name": "main", "is_selected": true}, {"name": "dev", "is_selected": false}],
			 "target_branches": [{"name": "release", "is_selected": true}]}]}`
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/accounts/1001/configuration", bytes.NewReader([]byte(body))))

		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, decodeResponse(t, rec).Message).Equal("Configuration updated successfully!")

		update := uc.UpdateConfigurationCalls()[0].Update
		gt.V(t, update.CommitInterval).Equal(4)
		gt.V(t, update.MaxLines).Equal(50)
		gt.V(t, update.Repositories[0].SelectedSources()).Equal([]types.BranchName{"main"})
		gt.V(t, update.Repositories[0].SelectedTarget()).Equal(types.BranchName("release"))
	})

	t.Run("duplicate target", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			UpdateConfigurationFunc: func(ctx context.Context, accountID types.GitHubAccountID, update *model.ConfigurationUpdate) error {
				return update.Validate()
			},
		}
		srv := server.New(uc)

		body := `{"commit_interval": 4, "max_lines": 50, "repositories": [
			{"repo_id": 2002, "target_branches": [{"name": "a", "is_selected": true}, {"name": "b", "is_selected": true}]}]}`
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/accounts/1001/configuration", bytes.NewReader([]byte(body))))

		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
		gt.V(t, decodeResponse(t, rec).Message).Equal("Cannot select more than one target branch")
	})

	t.Run("malformed body", func(t *testing.T) {
		uc := &mock.UseCaseMock{}
		srv := server.New(uc)

		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/accounts/1001/configuration", bytes.NewReader([]byte("{"))))

		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
		gt.V(t, len(uc.UpdateConfigurationCalls())).Equal(0)
	})
}

func TestPullRequestsAPI(t *testing.T) {
	created := time.Date(2024, 3, 5, 6, 7, 8, 0, time.UTC)
	uc := &mock.UseCaseMock{
		ListPullRequestsFunc: func(ctx context.Context, accountID types.GitHubAccountID) ([]*model.PullRequestRecord, error) {
			return []*model.PullRequestRecord{
				{Number: 42, RepoURL: "https://api.github.com/repos/octo/app", Author: "octo", Title: "Refactor main branch using re-facto plugin", CreatedAt: created},
			}, nil
		},
	}
	srv := server.New(uc)

	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/accounts/1001/pull-requests", nil))
	gt.V(t, rec.Code).Equal(http.StatusOK)

	var body struct {
		PullRequests []map[string]any `json:"pull_requests"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	gt.V(t, len(body.PullRequests)).Equal(1)
	gt.V(t, body.PullRequests[0]["pull_id"]).Equal(float64(42))
	gt.V(t, body.PullRequests[0]["repo_name"]).Equal("https://api.github.com/repos/octo/app")
}
