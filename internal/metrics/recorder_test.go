package metrics

import (
	"testing"
	"time"
)

type testRecorder struct {
	directories map[DirectoryResult]int
	durations   int
	outcomes    map[RunOutcome]int
}

func newTestRecorder() *testRecorder {
	return &testRecorder{directories: map[DirectoryResult]int{}, outcomes: map[RunOutcome]int{}}
}

func (t *testRecorder) IncDirectory(result DirectoryResult) { t.directories[result]++ }
func (t *testRecorder) ObserveRunDuration(time.Duration)    { t.durations++ }
func (t *testRecorder) IncRunOutcome(outcome RunOutcome)    { t.outcomes[outcome]++ }

func TestRecorderInterface(t *testing.T) {
	var r Recorder = newTestRecorder()
	r.IncDirectory(DirectoryCreated)
	r.IncDirectory(DirectoryCreated)
	r.IncDirectory(DirectoryExisting)
	r.ObserveRunDuration(10 * time.Millisecond)
	r.IncRunOutcome(RunSuccess)

	tr := r.(*testRecorder)
	if tr.directories[DirectoryCreated] != 2 || tr.directories[DirectoryExisting] != 1 {
		t.Fatalf("unexpected directory counts: %+v", tr.directories)
	}
	if tr.durations != 1 || tr.outcomes[RunSuccess] != 1 {
		t.Fatalf("unexpected run counts: durations=%d outcomes=%+v", tr.durations, tr.outcomes)
	}
}

func TestNoopRecorder(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.IncDirectory(DirectoryFailed)
	r.ObserveRunDuration(time.Second)
	r.IncRunOutcome(RunFailed)
}
