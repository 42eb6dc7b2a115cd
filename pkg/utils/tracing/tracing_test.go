package tracing_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/refacto/pkg/utils/tracing"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestSampler(t *testing.T) {
	testCases := map[string]struct {
		cfg      tracing.Config
		wantDrop bool
	}{
		"disabled drops":   {cfg: tracing.Config{Enabled: false, SampleRatio: 1}, wantDrop: true},
		"zero ratio drops": {cfg: tracing.Config{Enabled: true, SampleRatio: 0}, wantDrop: true},
		"full ratio keeps": {cfg: tracing.Config{Enabled: true, SampleRatio: 1}, wantDrop: false},
		"ratio is clamped": {cfg: tracing.Config{Enabled: true, SampleRatio: 7}, wantDrop: false},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			decision := tracing.SamplerForTest(tc.cfg).ShouldSample(sdktrace.SamplingParameters{}).Decision
			gt.V(t, decision == sdktrace.Drop).Equal(tc.wantDrop)
		})
	}
}

func TestSetup(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	rt, err := tracing.Setup(tracing.Config{Enabled: true, SampleRatio: 1}, sdktrace.WithSpanProcessor(recorder))
	gt.NoError(t, err)
	defer func() { gt.NoError(t, rt.Shutdown(context.Background())) }()

	_, span := tracing.Tracer().Start(context.Background(), "stage")
	span.End()

	ended := recorder.Ended()
	gt.A(t, ended).Length(1)
	gt.V(t, ended[0].Name()).Equal("stage")
}
