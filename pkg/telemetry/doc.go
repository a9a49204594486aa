// Package telemetry exports accordion activity to Prometheus and
// OpenTelemetry.
//
// Metrics.Observer returns an accordion.Observer that counts transitions and
// breakpoint evaluations for one group:
//
//	m := telemetry.NewMetrics(telemetry.WithRegistry(reg))
//	obs := m.Observer()
//	defer obs.Release()
//	group := accordion.New(container, host, accordion.WithObserver(obs))
//
// Tracer wraps each live event in a span on the configured provider.
package telemetry
