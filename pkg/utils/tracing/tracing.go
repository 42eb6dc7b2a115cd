package tracing

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultServiceName  = "refacto"
	instrumentationName = "github.com/secmon-lab/refacto"
)

type Config struct {
	Enabled     bool
	ServiceName string
	SampleRatio float64
}

// Runtime holds the installed tracer provider. Shutdown flushes pending spans.
type Runtime struct {
	TracerProvider *sdktrace.TracerProvider
	Shutdown       func(ctx context.Context) error
}

// Setup installs a global tracer provider. Additional span processors (for
// example an exporter) can be attached through opts.
func Setup(cfg Config, opts ...sdktrace.TracerProviderOption) (*Runtime, error) {
	serviceName := strings.TrimSpace(cfg.ServiceName)
	if serviceName == "" {
		serviceName = defaultServiceName
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewSchemaless(semconv.ServiceNameKey.String(serviceName)),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build trace resource")
	}

	options := append([]sdktrace.TracerProviderOption{
		sdktrace.WithSampler(sampler(cfg)),
		sdktrace.WithResource(res),
	}, opts...)

	provider := sdktrace.NewTracerProvider(options...)
	otel.SetTracerProvider(provider)

	return &Runtime{
		TracerProvider: provider,
		Shutdown:       provider.Shutdown,
	}, nil
}

func sampler(cfg Config) sdktrace.Sampler {
	if !cfg.Enabled {
		return sdktrace.NeverSample()
	}

	ratio := cfg.SampleRatio
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))
}

// Tracer returns the tracer used by all pipeline stages.
func Tracer() trace.Tracer {
	return otel.Tracer(instrumentationName)
}
