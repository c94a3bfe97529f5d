package service

import (
	"context"
	"sync"
	"time"
)

// DefaultDebounceWindow is how long the note debouncer waits for further
// keystrokes before persisting.
const DefaultDebounceWindow = 500 * time.Millisecond

// NoteDebouncer coalesces rapid note edits into a single persisted
// overwrite. Each Push restarts the window; when it elapses, only the
// latest content is saved. One debouncer serves one (client, room) pair
// and is owned by the caller.
//
// Stop drops a pending edit without saving it. Callers that want a
// graceful shutdown call Flush first.
type NoteDebouncer struct {
	window time.Duration
	save   func(ctx context.Context, content string)

	mu      sync.Mutex
	timer   *time.Timer
	pending string
	dirty   bool
	stopped bool
}

func NewNoteDebouncer(window time.Duration, save func(ctx context.Context, content string)) *NoteDebouncer {
	if window <= 0 {
		window = DefaultDebounceWindow
	}
	return &NoteDebouncer{window: window, save: save}
}

// Push records the latest content and restarts the debounce window.
func (d *NoteDebouncer) Push(content string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	d.pending = content
	d.dirty = true
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

func (d *NoteDebouncer) fire() {
	d.mu.Lock()
	if d.stopped || !d.dirty {
		d.mu.Unlock()
		return
	}
	content := d.pending
	d.dirty = false
	d.mu.Unlock()

	d.save(context.Background(), content)
}

// Flush persists a pending edit immediately and synchronously. It is a
// no-op when nothing is pending, which makes tests deterministic.
func (d *NoteDebouncer) Flush() {
	d.mu.Lock()
	if !d.dirty || d.stopped {
		d.mu.Unlock()
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	content := d.pending
	d.dirty = false
	d.mu.Unlock()

	d.save(context.Background(), content)
}

// Stop cancels any pending save and rejects further pushes. The dropped
// edit is lost, matching the behavior of a client leaving mid-type.
func (d *NoteDebouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	d.dirty = false
	if d.timer != nil {
		d.timer.Stop()
	}
}
