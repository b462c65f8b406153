package metrics

import "time"

// Generation outcome labels.
const (
	StatusSuccess         = "success"
	StatusInvalidJSON     = "invalid_json"
	StatusUpstreamError   = "upstream_error"
	StatusUpstreamTimeout = "upstream_timeout"
)

// Recorder defines the hooks the generator reports to.
type Recorder interface {
	ObserveGeneration(variant string, status string, duration time.Duration)
	ObserveUpstream(status string, duration time.Duration)
}

// NoopRecorder is used when metrics are disabled.
type NoopRecorder struct{}

func (NoopRecorder) ObserveGeneration(string, string, time.Duration) {}
func (NoopRecorder) ObserveUpstream(string, time.Duration)           {}
