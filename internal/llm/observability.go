package llm

import (
	"fmt"
	"io"
	"time"
)

// CallEvent records metadata about a single generation API invocation.
type CallEvent struct {
	Model     string
	LatencyMs int64
	Success   bool
	Truncated bool
	ErrorCode string
}

// Observer receives events about generation calls for logging and metrics.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes generation call events to an io.Writer.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if !event.Success {
		status = "err:" + event.ErrorCode
	}
	truncated := ""
	if event.Truncated {
		truncated = " truncated=true"
	}
	fmt.Fprintf(o.w, "[%s] generation_call model=%s latency_ms=%d status=%s%s\n",
		ts, event.Model, event.LatencyMs, status, truncated)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
