package session

import "sync"

// Notice levels.
const (
	LevelAdvisory = "ADVISORY"
	LevelFailure  = "FAILURE"
)

// Notice codes.
const (
	CodeBelowMinimumContribution = "BELOW_MINIMUM_CONTRIBUTION"
	CodeInputOutOfRange          = "INPUT_OUT_OF_RANGE"
	CodeCalculationFailed        = "CALCULATION_FAILED"
)

// Notice is a user-facing notification raised by a session transition.
type Notice struct {
	Level   string `json:"level" yaml:"level"`
	Code    string `json:"code" yaml:"code"`
	Title   string `json:"title" yaml:"title"`
	Message string `json:"message" yaml:"message"`
}

// Notifier delivers notices to the user.
type Notifier interface {
	Notify(Notice)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(Notice)

// Notify implements Notifier.
func (f NotifierFunc) Notify(n Notice) {
	f(n)
}

// Recorder is a Notifier that keeps every notice it receives.
type Recorder struct {
	mu      sync.Mutex
	notices []Notice
}

// Notify implements Notifier.
func (r *Recorder) Notify(n Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n)
}

// Notices returns the recorded notices in arrival order.
func (r *Recorder) Notices() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notice(nil), r.notices...)
}

// Drain returns the recorded notices and clears the recorder.
func (r *Recorder) Drain() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	notices := r.notices
	r.notices = nil
	return notices
}

type discard struct{}

func (discard) Notify(Notice) {}
