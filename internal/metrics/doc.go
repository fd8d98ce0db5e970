// Package metrics records scaffolding outcomes.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so metrics stay optional:
//
//	s := scaffold.New(scaffold.WithRecorder(metrics.NewPrometheusRecorder(nil)))
//
// The Prometheus implementation is meant for one-shot CLI runs: after the run,
// WriteTextfile persists the registry in the text exposition format picked up
// by node_exporter's textfile collector.
package metrics
