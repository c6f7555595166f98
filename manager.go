package ggspy

import (
	"fmt"
	"sync"
	"time"
)

// CaptureOptions configures one capture request.
type CaptureOptions struct {
	// CommandCount bounds the capture to exactly this many recorded
	// calls, starting immediately. Zero selects a frame-bounded capture
	// of one full frame, started at the next frame boundary. Values
	// above the command ceiling are clamped.
	CommandCount int

	// Quick skips argument formatting and frame snapshots, trading
	// capture detail for lower overhead on the render loop.
	Quick bool
}

// Manager is the capture orchestrator. It owns the recorder registry
// and the single in-flight session, arbitrates between frame-bounded
// and call-bounded captures, enforces the stall watchdog with retry,
// and publishes lifecycle notifications.
//
// Manager is safe for concurrent use. All state transitions are
// serialized on one mutex; notifications are delivered synchronously in
// registration order after the mutex is released, so listeners may call
// back into the Manager.
type Manager struct {
	clock           Clock
	recorderFactory RecorderFactory
	deviceInfo      *DeviceInfo
	cfg             Config

	listeners listeners

	mu        sync.Mutex
	recorders map[string]Recorder
	sess      session
	marker    string
	spy       *spyState
}

// NewManager creates a Manager driven by clock. The Manager subscribes
// to the clock's frame signals once, for its whole lifetime.
func NewManager(clock Clock, opts ...ManagerOption) *Manager {
	o := defaultManagerOptions()
	for _, opt := range opts {
		opt(&o)
	}

	m := &Manager{
		clock:           clock,
		recorderFactory: o.recorderFactory,
		deviceInfo:      o.deviceInfo,
		cfg:             o.config,
		recorders:       make(map[string]Recorder),
	}
	if m.recorderFactory == nil {
		m.recorderFactory = func(ctx RenderingContext, boundReached func()) Recorder {
			return NewContextRecorder(ctx, boundReached)
		}
	}

	clock.OnFrameStart(m.frameStart)
	clock.OnFrameEnd(m.frameEnd)
	return m
}

// OnCaptureStarted registers fn to run when a recorder begins
// capturing. The notification carries no payload.
func (m *Manager) OnCaptureStarted(fn func()) {
	m.listeners.onStarted(fn)
}

// OnCaptureComplete registers fn to receive each finished Capture.
func (m *Manager) OnCaptureComplete(fn func(*Capture)) {
	m.listeners.onComplete(fn)
}

// OnError registers fn to receive reported capture errors.
func (m *Manager) OnError(fn func(error)) {
	m.listeners.onError(fn)
}

// CaptureCanvas requests a capture on canvas, resolving (or reusing) a
// recorder for it first. The result is delivered through
// OnCaptureComplete or OnError; the returned error mirrors what OnError
// listeners receive for failed admission.
func (m *Manager) CaptureCanvas(canvas Canvas, opts CaptureOptions) error {
	m.mu.Lock()
	rec, err := m.recorderForCanvasLocked(canvas)
	var startedNow bool
	if err == nil {
		startedNow, err = m.armSessionLocked(rec, opts)
	}
	m.mu.Unlock()

	if err != nil {
		return m.reportError(err)
	}
	if startedNow {
		m.listeners.emitStarted()
	}
	return nil
}

// CaptureContext requests a capture on an already-resolved rendering
// context. A recorder is created for the context's canvas if the canvas
// has none registered yet.
func (m *Manager) CaptureContext(ctx RenderingContext, opts CaptureOptions) error {
	m.mu.Lock()
	rec, ok := m.recorders[ctx.Canvas().ID()]
	if !ok {
		rec = m.newRecorderLocked(ctx)
	}
	startedNow, err := m.armSessionLocked(rec, opts)
	m.mu.Unlock()

	if err != nil {
		return m.reportError(err)
	}
	if startedNow {
		m.listeners.emitStarted()
	}
	return nil
}

// SetMarker tags subsequently recorded calls with marker. If a session
// is live the marker reaches its recorder immediately; otherwise it is
// applied when the next session is armed.
func (m *Manager) SetMarker(marker string) {
	m.mu.Lock()
	m.marker = marker
	rec := m.sess.recorder
	if rec != nil {
		rec.SetMarker(marker)
	}
	m.mu.Unlock()
}

// ClearMarker removes the marker.
func (m *Manager) ClearMarker() {
	m.SetMarker("")
}

// Pause stops frame delivery by setting the clock's speed ratio to 0.
// Session state is untouched.
func (m *Manager) Pause() {
	m.clock.SetSpeedRatio(0)
}

// Play restores real-time frame delivery.
func (m *Manager) Play() {
	m.clock.SetSpeedRatio(1)
}

// Step advances exactly one frame while paused.
func (m *Manager) Step() {
	m.clock.StepFrame()
}

// FPS returns the clock's frames-per-second read-out.
func (m *Manager) FPS() float64 {
	return m.clock.FPS()
}

// recorderForCanvasLocked returns the registered recorder for canvas,
// resolving a context and creating one on first use. Registry entries
// are never removed; recorders are reused across sessions.
func (m *Manager) recorderForCanvasLocked(canvas Canvas) (Recorder, error) {
	if rec, ok := m.recorders[canvas.ID()]; ok {
		return rec, nil
	}
	ctx, err := ResolveContext(canvas, m.cfg.ContextKind)
	if err != nil {
		return nil, err
	}
	return m.newRecorderLocked(ctx), nil
}

// newRecorderLocked creates and registers a recorder over ctx.
func (m *Manager) newRecorderLocked(ctx RenderingContext) Recorder {
	var rec Recorder
	rec = m.recorderFactory(ctx, func() {
		m.commandBoundReached(rec)
	})
	m.recorders[ctx.Canvas().ID()] = rec
	return rec
}

// armSessionLocked admits a new capture session on rec. Reports whether
// the recorder started immediately (call-bounded sessions), so the
// caller can publish the capture-started notification outside the lock.
func (m *Manager) armSessionLocked(rec Recorder, opts CaptureOptions) (startedNow bool, err error) {
	if m.sess.active() {
		return false, ErrCaptureActive
	}

	bound := opts.CommandCount
	if bound < 0 {
		bound = 0
	}
	if bound > m.cfg.CommandCeiling {
		bound = m.cfg.CommandCeiling
	}
	quick := opts.Quick || m.cfg.QuickCapture

	m.sess.seq++
	m.sess.recorder = rec
	m.sess.retries = 0
	m.sess.quick = quick

	// The marker must reach the recorder before any Start.
	rec.SetMarker(m.marker)

	if bound > 0 {
		m.sess.kind = sessionCalls
		rec.Start(bound, quick)
		startedNow = true
	} else {
		m.sess.kind = sessionFrame
		m.sess.remainingFrames = 1
	}

	m.armWatchdogLocked()

	Logger().Info("capture session armed",
		"canvas", rec.Canvas().ID(), "kind", m.sess.kind.String(),
		"bound", bound, "quick", quick)
	return startedNow, nil
}

// armWatchdogLocked starts the stall timer for the current session.
func (m *Manager) armWatchdogLocked() {
	seq := m.sess.seq
	m.sess.watchdog = time.AfterFunc(m.cfg.WatchdogTimeout, func() {
		m.watchdogExpired(seq)
	})
}

// cancelWatchdogLocked stops the stall timer so a delayed expiry cannot
// fire after the session has already completed.
func (m *Manager) cancelWatchdogLocked() {
	if m.sess.watchdog != nil {
		m.sess.watchdog.Stop()
		m.sess.watchdog = nil
	}
}

// frameStart is the clock's frame-start subscription.
func (m *Manager) frameStart() {
	m.mu.Lock()
	var startedNow bool
	switch m.sess.kind {
	case sessionCalls:
		// The recorder runs to its own bound.
	case sessionFrame:
		if m.sess.remainingFrames > 0 {
			m.sess.recorder.Start(0, m.sess.quick)
			m.sess.remainingFrames--
			startedNow = true
		} else if m.sess.recorder != nil {
			// A session past its window should have been finalized on
			// the previous frame-end; drop the stale target.
			Logger().Debug("clearing stale capture target",
				"canvas", m.sess.recorder.Canvas().ID())
			m.sess.recorder = nil
		}
	}
	m.mu.Unlock()

	if startedNow {
		m.listeners.emitStarted()
	}
}

// frameEnd is the clock's frame-end subscription.
func (m *Manager) frameEnd() {
	m.mu.Lock()
	if m.sess.kind != sessionFrame || m.sess.remainingFrames > 0 || m.sess.recorder == nil {
		m.mu.Unlock()
		return
	}
	c := m.finalizeLocked()
	m.mu.Unlock()

	if c != nil {
		m.listeners.emitComplete(c)
	}
}

// commandBoundReached is invoked by a recorder that hit its call bound.
func (m *Manager) commandBoundReached(rec Recorder) {
	m.mu.Lock()
	if m.sess.kind != sessionCalls || m.sess.recorder != rec {
		m.mu.Unlock()
		return
	}
	c := m.finalizeLocked()
	m.mu.Unlock()

	if c != nil {
		m.listeners.emitComplete(c)
	}
}

// watchdogExpired applies the stall policy for the session identified
// by seq. A callback that lost the race against natural completion (or
// against a newer session) returns without effect.
func (m *Manager) watchdogExpired(seq uint64) {
	m.mu.Lock()
	if !m.sess.active() || m.sess.seq != seq {
		m.mu.Unlock()
		return
	}

	switch m.sess.kind {
	case sessionCalls:
		// Treat as completion with whatever was recorded so far.
		Logger().Warn("watchdog expired, finalizing call-bounded session",
			"canvas", m.sess.recorder.Canvas().ID())
		c := m.finalizeLocked()
		m.mu.Unlock()
		if c != nil {
			m.listeners.emitComplete(c)
		}

	case sessionFrame:
		err := ErrNoFrameActivity
		if m.sess.retries >= 2 {
			err = ErrNoCommands
		}
		m.failSessionLocked()
		m.mu.Unlock()

		Logger().Warn("capture session stalled", "err", err)
		m.listeners.emitError(err)

	default:
		m.mu.Unlock()
	}
}

// finalizeLocked asks the active recorder for its accumulated capture
// and applies the completion/retry policy. Returns the capture to
// publish, or nil when nothing is published (empty result).
//
// An empty frame-bounded result re-arms one more frame attempt without
// touching the watchdog, so the timer bounds the total wall-clock time
// across retries rather than per attempt.
func (m *Manager) finalizeLocked() *Capture {
	rec := m.sess.recorder
	if !m.sess.active() || rec == nil {
		// Reaching here without a session is a logic defect, not an
		// environmental condition.
		panic("ggspy: finalize requested with no active capture session")
	}

	c := rec.Stop()
	if c != nil && !c.Empty() {
		m.cancelWatchdogLocked()
		if m.deviceInfo != nil {
			c.Device = m.deviceInfo
		}
		m.sess.clear()
		Logger().Info("capture complete",
			"capture", c.ID, "canvas", c.CanvasID, "commands", len(c.Commands))
		return c
	}

	if m.sess.kind == sessionFrame {
		m.sess.retries++
		m.sess.remainingFrames = 1
		Logger().Debug("empty capture, retrying next frame",
			"retries", m.sess.retries)
		return nil
	}

	// Empty call-bounded capture: terminal, no artifact.
	m.cancelWatchdogLocked()
	m.sess.clear()
	Logger().Info("call-bounded session ended empty, no capture published")
	return nil
}

// failSessionLocked clears all session state after a stall so a
// subsequent capture request can proceed cleanly.
func (m *Manager) failSessionLocked() {
	m.cancelWatchdogLocked()
	if rec := m.sess.recorder; rec != nil {
		// Discard whatever the recorder accumulated.
		_ = rec.Stop()
	}
	m.sess.clear()
}

// reportError logs err, publishes it to OnError listeners and returns
// it. Session state is untouched.
func (m *Manager) reportError(err error) error {
	Logger().Warn("capture request rejected", "err", err)
	m.listeners.emitError(err)
	return err
}

// String returns a short status string for diagnostics.
func (m *Manager) String() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fmt.Sprintf("ggspy.Manager{session=%s, recorders=%d}",
		m.sess.kind, len(m.recorders))
}
