package server_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/secmon-lab/refacto/pkg/controller/server"
	"github.com/secmon-lab/refacto/pkg/infra"
	"github.com/secmon-lab/refacto/pkg/usecase"
)

func TestRouterSmokeTests(t *testing.T) {
	srv := server.New(usecase.New(infra.New()))

	t.Run("GET /health returns 200", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()

		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, rec.Body.String()).Equal("ok")
	})

	t.Run("GET /metrics exposes counters", func(t *testing.T) {
		// Touch the webhook counter so it is exported
		req := httptest.NewRequest(http.MethodPost, "/webhook/github", strings.NewReader("{}"))
		req.Header.Set("X-GitHub-Event", "issues")
		srv.Mux().ServeHTTP(httptest.NewRecorder(), req)

		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.True(t, strings.Contains(rec.Body.String(), "refacto_webhook_events_total"))
	})

	t.Run("unknown route", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
		gt.V(t, rec.Code).Equal(http.StatusNotFound)
	})
}
