package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "refacto"

var registry = prometheus.NewRegistry()

var (
	// WebhookEvents counts received webhook deliveries by event type and result.
	WebhookEvents = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "webhook_events_total",
		Help:      "Number of received webhook events.",
	}, []string{"event", "result"})

	// GateDecisions counts push gate outcomes.
	GateDecisions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_decisions_total",
		Help:      "Number of push events by gate decision.",
	}, []string{"state"})

	// PipelineRuns counts finished refactor pipelines by outcome.
	PipelineRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "pipeline_runs_total",
		Help:      "Number of refactor pipeline runs by outcome.",
	}, []string{"outcome"})

	// RewriteFiles counts processed files by how their content was produced.
	RewriteFiles = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rewrite_files_total",
		Help:      "Number of files handled by the rewrite stage.",
	}, []string{"result"})

	PipelineDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "pipeline_duration_seconds",
		Help:      "Duration of refactor pipeline runs.",
		Buckets:   []float64{1, 5, 10, 30, 60, 120, 300, 600},
	})
)

// Rewrite results
const (
	RewriteRewritten   = "rewritten"
	RewriteFallback    = "fallback"
	RewritePassthrough = "passthrough"
)

func init() {
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		WebhookEvents,
		GateDecisions,
		PipelineRuns,
		RewriteFiles,
		PipelineDuration,
	)
}

// Handler serves all registered metrics in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{
		Registry: registry,
	})
}
