// Package browser opens the default web browser, optionally after a delay.
package browser

import (
	"io"
	"sync"
	"sync/atomic"
	"time"

	pkgbrowser "github.com/pkg/browser"
)

// Opener opens url in a browser.
type Opener interface {
	Open(url string) error
}

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(url string) error

// Open calls f(url).
func (f OpenerFunc) Open(url string) error { return f(url) }

// System opens URLs with the host's default browser.
type System struct{}

var quietOnce sync.Once

// Open launches the platform browser command (xdg-open, open, rundll32).
func (System) Open(url string) error {
	// The helper commands write chatter to the launcher's terminal otherwise.
	quietOnce.Do(func() {
		pkgbrowser.Stdout = io.Discard
		pkgbrowser.Stderr = io.Discard
	})
	return pkgbrowser.OpenURL(url)
}

// Task is a one-shot function scheduled to run after a delay.
type Task struct {
	timer *time.Timer
	fired atomic.Bool
	done  chan struct{}
}

// Schedule runs fn once, no earlier than delay from now, unless the returned
// Task is cancelled first.
func Schedule(delay time.Duration, fn func()) *Task {
	t := &Task{done: make(chan struct{})}
	t.timer = time.AfterFunc(delay, func() {
		t.fired.Store(true)
		defer close(t.done)
		fn()
	})
	return t
}

// Cancel stops the task if it has not started. It reports whether the call
// prevented fn from running; after fn has started it is a no-op.
func (t *Task) Cancel() bool {
	if t == nil {
		return false
	}
	return t.timer.Stop()
}

// Fired reports whether fn has started.
func (t *Task) Fired() bool {
	return t != nil && t.fired.Load()
}

// Done is closed once fn has returned. It is never closed for a cancelled
// task.
func (t *Task) Done() <-chan struct{} {
	return t.done
}
