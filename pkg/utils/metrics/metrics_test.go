package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/secmon-lab/refacto/pkg/utils/metrics"
)

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(metrics.PipelineRuns.WithLabelValues("published"))
	metrics.PipelineRuns.WithLabelValues("published").Inc()
	gt.V(t, testutil.ToFloat64(metrics.PipelineRuns.WithLabelValues("published"))).Equal(before + 1)
}

func TestHandler(t *testing.T) {
	metrics.GateDecisions.WithLabelValues("fired").Inc()

	srv := httptest.NewServer(metrics.Handler())
	defer srv.Close()

	resp := gt.R1(http.Get(srv.URL)).NoError(t)
	defer resp.Body.Close()
	gt.V(t, resp.StatusCode).Equal(http.StatusOK)

	body := string(gt.R1(io.ReadAll(resp.Body)).NoError(t))
	gt.True(t, strings.Contains(body, `refacto_gate_decisions_total{state="fired"}`))
	gt.True(t, strings.Contains(body, "go_goroutines"))
}
