// Package telemetry wires OpenTelemetry metrics for the issue lifecycle.
//
// Metrics are disabled by default. When telemetry.metrics_enabled is set,
// a periodic reader writes the collected counters to stdout.
package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"campusvoice/internal/shared/config"
)

const instrumentationScope = "campusvoice"

var shutdownFns []func(context.Context) error

// Init installs the global meter provider.
func Init(cfg config.TelemetryConfig) error {
	if !cfg.MetricsEnabled {
		otel.SetMeterProvider(metricnoop.NewMeterProvider())
		return nil
	}

	exp, err := stdoutmetric.New()
	if err != nil {
		return fmt.Errorf("telemetry: stdout metric exporter: %w", err)
	}

	interval := time.Duration(cfg.ExportIntervalSeconds) * time.Second
	if interval <= 0 {
		interval = time.Minute
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp, sdkmetric.WithInterval(interval))),
	)
	otel.SetMeterProvider(mp)
	shutdownFns = append(shutdownFns, mp.Shutdown)
	return nil
}

// Meter returns a meter with the given instrumentation name (or the global scope).
func Meter(name string) metric.Meter {
	if name == "" {
		name = instrumentationScope
	}
	return otel.Meter(name)
}

// Shutdown flushes pending metrics and stops the providers.
func Shutdown(ctx context.Context) {
	for _, fn := range shutdownFns {
		_ = fn(ctx)
	}
	shutdownFns = nil
}
