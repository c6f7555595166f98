// Package ggspy instruments canvas-style rendering contexts to record
// bounded sequences of drawing calls for later inspection.
//
// # Overview
//
// ggspy is a frame-capture tool for the GoGPU ecosystem. A host
// application exposes one or more canvases; ggspy resolves a graphics
// context on each, wraps it with a command recorder, and a capture
// Manager decides when recording starts, how much work is recorded
// (one full frame or a fixed number of calls), how stalled render
// loops are detected and retried, and how a finished Capture is
// delivered to subscribers exactly once.
//
// # Quick Start
//
//	loop := ggspy.NewRenderLoop()
//	mgr := ggspy.NewManager(loop)
//
//	mgr.OnCaptureComplete(func(c *ggspy.Capture) {
//	    fmt.Printf("captured %d commands\n", len(c.Commands))
//	})
//
//	// Request a one-frame capture of a canvas.
//	if err := mgr.CaptureCanvas(canvas, ggspy.CaptureOptions{}); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Drive the loop from the host's render callback.
//	loop.FrameStart()
//	drawFrame()
//	loop.FrameEnd()
//
// # Sessions
//
// At most one capture session is live at a time. A session is either
// frame-bounded (record exactly one frame's worth of calls, started at
// the next frame boundary) or call-bounded (record exactly N calls,
// started immediately). A watchdog bounds the total wall-clock wait
// for activity; frame-bounded sessions that produce an empty capture
// are transparently retried on the next frame until the watchdog
// expires.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Manager, Capture, Command, Clock, Recorder, Canvas
//   - Built-ins: RenderLoop (host-driven clock), ContextRecorder
//   - Integrations: integration/ggcontext (gogpu/gg drawing contexts),
//     integration/wgpucaps (adapter metadata from gogpu/wgpu)
//
// # Passive Spying
//
// Independent of on-demand capture, a canvas can be placed in spy mode:
// its recorder then records continuously into a rolling window without
// the session machinery. See Manager.SpyCanvas and Manager.SpyAll.
package ggspy

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
