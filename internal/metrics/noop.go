package metrics

import "time"

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncUserSignedUp is a no-op.
func (n *NoopRecorder) IncUserSignedUp() {}

// IncUserLoggedIn is a no-op.
func (n *NoopRecorder) IncUserLoggedIn() {}

// IncLoginFailed is a no-op.
func (n *NoopRecorder) IncLoginFailed() {}

// IncContactCreated is a no-op.
func (n *NoopRecorder) IncContactCreated() {}

// IncContactListQuery is a no-op.
func (n *NoopRecorder) IncContactListQuery() {}

// ObserveContactListDuration is a no-op.
func (n *NoopRecorder) ObserveContactListDuration(duration time.Duration) {}
