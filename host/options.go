package host

import (
	"time"

	"go.uber.org/zap"
)

// Option is a functional option for configuring a Host.
type Option func(*Host)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(h *Host) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithRecorder sets where configuration loads and saves are counted.
func WithRecorder(r Recorder) Option {
	return func(h *Host) {
		h.recorder = r
	}
}

// WithDebounce sets how long Watch waits for writes to settle before
// reloading. Default: 500ms
func WithDebounce(d time.Duration) Option {
	return func(h *Host) {
		h.debounce = d
	}
}
