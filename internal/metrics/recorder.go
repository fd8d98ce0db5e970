package metrics

import "time"

// DirectoryResult enumerates per-path outcomes for counters.
type DirectoryResult string

const (
	DirectoryCreated  DirectoryResult = "created"
	DirectoryExisting DirectoryResult = "existing"
	DirectoryFailed   DirectoryResult = "failed"
)

// RunOutcome enumerates final run statuses.
type RunOutcome string

const (
	RunSuccess RunOutcome = "success"
	RunFailed  RunOutcome = "failed"
)

// Recorder defines observability hooks for a scaffolding run.
type Recorder interface {
	IncDirectory(result DirectoryResult)
	ObserveRunDuration(d time.Duration)
	IncRunOutcome(outcome RunOutcome)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) IncDirectory(DirectoryResult)     {}
func (NoopRecorder) ObserveRunDuration(time.Duration) {}
func (NoopRecorder) IncRunOutcome(RunOutcome)         {}
