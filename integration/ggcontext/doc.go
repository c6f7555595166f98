// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ggcontext binds a gogpu/gg drawing context to ggspy so its
// drawing calls can be captured.
//
// The package wraps a gg.Context in a recording proxy: hosts draw
// through the proxy exactly as they would through gg. Every call is
// forwarded to gg and, while a recorder is attached and active,
// reported to ggspy as a Command. The data flow is:
//
//	host -> RecordingContext (record) -> gg.Context (draw)
//
// # Usage
//
//	dc := gg.NewContext(800, 600)
//	canvas := ggcontext.New(dc, "main")
//
//	mgr := ggspy.NewManager(loop)
//	mgr.CaptureCanvas(canvas, ggspy.CaptureOptions{})
//
//	// Draw through the recording proxy inside the render loop.
//	rc := canvas.Recording()
//	rc.SetRGB(1, 0, 0)
//	rc.DrawCircle(400, 300, 100)
//	rc.Fill()
//
// Captures taken on a ggcontext canvas carry a frame snapshot read back
// through gg.Context.Image (unless quick mode is on).
//
// # Thread Safety
//
// Canvas and RecordingContext are NOT safe for concurrent use, matching
// gg.Context itself. Drive them from one render goroutine.
package ggcontext
