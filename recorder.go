package ggspy

import (
	"sync"
	"time"
)

// Recorder is the Manager's view of a per-context call recorder.
//
// The built-in implementation is [ContextRecorder]; replace it through
// [WithRecorderFactory] to capture from custom interception layers.
type Recorder interface {
	// Start begins a recording session. A positive bound stops the
	// recording after exactly that many calls (reported through the
	// bound-reached callback); bound 0 records until Stop. quick skips
	// expensive per-call work such as argument formatting.
	Start(bound int, quick bool)

	// Stop finalizes the recording and returns the accumulated Capture.
	// The capture may be empty. Stop is also valid on a recorder that
	// never started; it then returns an empty capture.
	Stop() *Capture

	// SetMarker tags subsequently recorded calls with marker.
	// An empty marker clears the tag.
	SetMarker(marker string)

	// StartSpy puts the recorder in continuous recording mode,
	// independent of Start/Stop sessions.
	StartSpy()

	// StopSpy leaves continuous recording mode.
	StopSpy()

	// Canvas returns the canvas this recorder is bound to.
	Canvas() Canvas
}

// RecorderFactory creates a Recorder over a resolved rendering context.
// boundReached is invoked (on the goroutine that recorded the final
// call) when a Start bound is hit.
type RecorderFactory func(ctx RenderingContext, boundReached func()) Recorder

// ContextRecorder is the built-in Recorder. It observes drawing calls
// fed through [CommandSink] by an instrumented context, bounds and
// timestamps them, and finalizes them into a [Capture].
//
// In spy mode the recorder keeps a rolling window of recent calls
// instead of an unbounded log; the window size equals the command
// ceiling so spying on a busy canvas has bounded memory.
//
// ContextRecorder is safe for concurrent use.
type ContextRecorder struct {
	ctx    RenderingContext
	canvas Canvas
	kind   string

	boundReached func()

	mu        sync.Mutex
	marker    string
	recording bool
	spying    bool
	quick     bool
	bound     int
	seq       int
	startedAt time.Time
	commands  []Command
	spyWindow int
}

// Ensure ContextRecorder implements both sides of the contract.
var (
	_ Recorder    = (*ContextRecorder)(nil)
	_ CommandSink = (*ContextRecorder)(nil)
)

// NewContextRecorder creates a recorder bound to ctx. If ctx implements
// [CommandSource] the recorder attaches itself as the context's command
// sink. boundReached may be nil.
func NewContextRecorder(ctx RenderingContext, boundReached func()) *ContextRecorder {
	r := &ContextRecorder{
		ctx:          ctx,
		canvas:       ctx.Canvas(),
		kind:         ctx.Kind(),
		boundReached: boundReached,
		spyWindow:    DefaultCommandCeiling,
	}
	if src, ok := ctx.(CommandSource); ok {
		src.SetCommandSink(r)
	}
	return r
}

// RecordCommand implements CommandSink. Calls observed while the
// recorder is neither recording nor spying are dropped cheaply.
func (r *ContextRecorder) RecordCommand(name string, args ...any) {
	r.mu.Lock()
	if !r.recording && !r.spying {
		r.mu.Unlock()
		return
	}

	cmd := Command{
		Seq:    r.seq,
		Name:   name,
		Marker: r.marker,
		Offset: time.Since(r.startedAt),
	}
	r.seq++
	if !r.quick {
		cmd.Args = formatArgs(args)
	}
	r.commands = append(r.commands, cmd)

	// Spy-only mode keeps a rolling window.
	if r.spying && !r.recording && len(r.commands) > r.spyWindow {
		r.commands = r.commands[len(r.commands)-r.spyWindow:]
	}

	var fire func()
	if r.recording && r.bound > 0 && len(r.commands) >= r.bound {
		r.recording = false
		fire = r.boundReached
	}
	r.mu.Unlock()

	if fire != nil {
		fire()
	}
}

// Start implements Recorder. Any calls accumulated before Start (e.g.
// from spy mode) are discarded so the capture begins cleanly.
func (r *ContextRecorder) Start(bound int, quick bool) {
	r.mu.Lock()
	r.recording = true
	r.quick = quick
	r.bound = bound
	r.seq = 0
	r.startedAt = time.Now()
	r.commands = nil
	r.mu.Unlock()

	Logger().Debug("recorder started",
		"canvas", r.canvas.ID(), "bound", bound, "quick", quick)
}

// Stop implements Recorder. The returned capture carries a frame
// snapshot when the context implements [Imager], the capture is
// non-empty and quick mode was off.
func (r *ContextRecorder) Stop() *Capture {
	r.mu.Lock()
	cmds := r.commands
	quick := r.quick
	startedAt := r.startedAt
	r.commands = nil
	r.recording = false
	r.bound = 0
	r.mu.Unlock()

	c := &Capture{
		ID:          newCaptureID(),
		CanvasID:    r.canvas.ID(),
		ContextKind: r.kind,
		StartedAt:   startedAt,
		EndedAt:     time.Now(),
		Commands:    cmds,
	}
	if len(cmds) > 0 && !quick {
		if im, ok := r.ctx.(Imager); ok {
			c.Snapshot = NewSnapshot(im.Image())
		}
	}
	return c
}

// SetMarker implements Recorder.
func (r *ContextRecorder) SetMarker(marker string) {
	r.mu.Lock()
	r.marker = marker
	r.mu.Unlock()
}

// StartSpy implements Recorder.
func (r *ContextRecorder) StartSpy() {
	r.mu.Lock()
	if !r.spying {
		r.spying = true
		if !r.recording {
			r.seq = 0
			r.startedAt = time.Now()
			r.commands = nil
		}
	}
	r.mu.Unlock()

	Logger().Info("spy mode enabled", "canvas", r.canvas.ID())
}

// StopSpy implements Recorder. The rolling window is discarded unless a
// capture session is live on the same recorder.
func (r *ContextRecorder) StopSpy() {
	r.mu.Lock()
	if r.spying {
		r.spying = false
		if !r.recording {
			r.commands = nil
		}
	}
	r.mu.Unlock()
}

// Canvas implements Recorder.
func (r *ContextRecorder) Canvas() Canvas {
	return r.canvas
}

// Kind returns the context kind the recorder's context resolved with.
func (r *ContextRecorder) Kind() string {
	return r.kind
}

// SpyCommands returns a copy of the rolling spy window.
func (r *ContextRecorder) SpyCommands() []Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}
