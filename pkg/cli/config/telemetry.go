package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/secmon-lab/refacto/pkg/utils/tracing"
)

type Telemetry struct {
	tracing     bool
	serviceName string
	sampleRatio float64
}

func (x *Telemetry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "tracing",
			Usage:       "Enable OpenTelemetry tracing of the refactor pipeline",
			Category:    "Telemetry",
			Destination: &x.tracing,
			Sources:     cli.EnvVars("REFACTO_TRACING"),
		},
		&cli.StringFlag{
			Name:        "tracing-service-name",
			Usage:       "Service name in trace resources",
			Category:    "Telemetry",
			Value:       "refacto",
			Destination: &x.serviceName,
			Sources:     cli.EnvVars("REFACTO_TRACING_SERVICE_NAME"),
		},
		&cli.Float64Flag{
			Name:        "tracing-sample-ratio",
			Usage:       "Ratio of sampled root spans [0.0-1.0]",
			Category:    "Telemetry",
			Value:       1.0,
			Destination: &x.sampleRatio,
			Sources:     cli.EnvVars("REFACTO_TRACING_SAMPLE_RATIO"),
		},
	}
}

// Setup installs the global tracer provider.
func (x *Telemetry) Setup() (*tracing.Runtime, error) {
	return tracing.Setup(tracing.Config{
		Enabled:     x.tracing,
		ServiceName: x.serviceName,
		SampleRatio: x.sampleRatio,
	})
}

func (x *Telemetry) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("Tracing", x.tracing),
		slog.String("ServiceName", x.serviceName),
		slog.Float64("SampleRatio", x.sampleRatio),
	)
}
