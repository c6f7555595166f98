// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggcontext

import (
	"image"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggspy"
)

// RecordingContext is a recording proxy over gg.Context. Every drawing
// method forwards to gg after reporting the call to the attached
// command sink, so recorded captures replay the host's draw order
// exactly. With no sink attached the proxy adds one nil check per call.
type RecordingContext struct {
	canvas *Canvas
	dc     *gg.Context
	kind   string
	sink   ggspy.CommandSink
}

// Ensure RecordingContext satisfies the capture contracts.
var (
	_ ggspy.RenderingContext = (*RecordingContext)(nil)
	_ ggspy.CommandSource    = (*RecordingContext)(nil)
	_ ggspy.Imager           = (*RecordingContext)(nil)
)

// Kind implements ggspy.RenderingContext.
func (rc *RecordingContext) Kind() string {
	return rc.kind
}

// Canvas implements ggspy.RenderingContext.
func (rc *RecordingContext) Canvas() ggspy.Canvas {
	return rc.canvas
}

// SetCommandSink implements ggspy.CommandSource.
func (rc *RecordingContext) SetCommandSink(sink ggspy.CommandSink) {
	rc.sink = sink
}

// Image implements ggspy.Imager by reading back the gg pixmap.
func (rc *RecordingContext) Image() image.Image {
	return rc.dc.Image()
}

// record reports one call to the attached sink, if any.
func (rc *RecordingContext) record(name string, args ...any) {
	if rc.sink != nil {
		rc.sink.RecordCommand(name, args...)
	}
}

// Clear fills the entire context with the current color.
func (rc *RecordingContext) Clear() {
	rc.record("Clear")
	rc.dc.Clear()
}

// SetRGB sets the current color (alpha 1).
func (rc *RecordingContext) SetRGB(r, g, b float64) {
	rc.record("SetRGB", r, g, b)
	rc.dc.SetRGB(r, g, b)
}

// SetRGBA sets the current color.
func (rc *RecordingContext) SetRGBA(r, g, b, a float64) {
	rc.record("SetRGBA", r, g, b, a)
	rc.dc.SetRGBA(r, g, b, a)
}

// SetLineWidth sets the stroke width.
func (rc *RecordingContext) SetLineWidth(width float64) {
	rc.record("SetLineWidth", width)
	rc.dc.SetLineWidth(width)
}

// MoveTo starts a new subpath at (x, y).
func (rc *RecordingContext) MoveTo(x, y float64) {
	rc.record("MoveTo", x, y)
	rc.dc.MoveTo(x, y)
}

// LineTo adds a line segment to the current path.
func (rc *RecordingContext) LineTo(x, y float64) {
	rc.record("LineTo", x, y)
	rc.dc.LineTo(x, y)
}

// ClearPath clears the current path.
func (rc *RecordingContext) ClearPath() {
	rc.record("ClearPath")
	rc.dc.ClearPath()
}

// DrawRectangle adds a rectangle to the current path.
func (rc *RecordingContext) DrawRectangle(x, y, w, h float64) {
	rc.record("DrawRectangle", x, y, w, h)
	rc.dc.DrawRectangle(x, y, w, h)
}

// DrawRoundedRectangle adds a rounded rectangle to the current path.
func (rc *RecordingContext) DrawRoundedRectangle(x, y, w, h, r float64) {
	rc.record("DrawRoundedRectangle", x, y, w, h, r)
	rc.dc.DrawRoundedRectangle(x, y, w, h, r)
}

// DrawCircle adds a circle to the current path.
func (rc *RecordingContext) DrawCircle(x, y, r float64) {
	rc.record("DrawCircle", x, y, r)
	rc.dc.DrawCircle(x, y, r)
}

// Fill fills the current path and clears it.
func (rc *RecordingContext) Fill() error {
	rc.record("Fill")
	rc.dc.Fill()
	return nil
}

// Stroke strokes the current path and clears it.
func (rc *RecordingContext) Stroke() error {
	rc.record("Stroke")
	rc.dc.Stroke()
	return nil
}

// Push saves the current transform state.
func (rc *RecordingContext) Push() {
	rc.record("Push")
	rc.dc.Push()
}

// Pop restores the last saved transform state.
func (rc *RecordingContext) Pop() {
	rc.record("Pop")
	rc.dc.Pop()
}

// Translate applies a translation to the current transform.
func (rc *RecordingContext) Translate(x, y float64) {
	rc.record("Translate", x, y)
	rc.dc.Translate(x, y)
}

// Scale applies a scale to the current transform.
func (rc *RecordingContext) Scale(x, y float64) {
	rc.record("Scale", x, y)
	rc.dc.Scale(x, y)
}

// Rotate applies a rotation to the current transform (radians).
func (rc *RecordingContext) Rotate(angle float64) {
	rc.record("Rotate", angle)
	rc.dc.Rotate(angle)
}
