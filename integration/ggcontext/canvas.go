// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggcontext

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/ggspy"
)

// Canvas presents a gg.Context as a ggspy canvas.
//
// A gg surface backs whatever context kind the capture tooling probes,
// so GetContext answers every kind with the same recording proxy; the
// kind of the first successful request is what captures report.
type Canvas struct {
	id string
	dc *gg.Context
	rc *RecordingContext
}

// Ensure Canvas implements ggspy.Canvas.
var _ ggspy.Canvas = (*Canvas)(nil)

// New wraps dc as a canvas with the given stable identity.
func New(dc *gg.Context, id string) *Canvas {
	return &Canvas{id: id, dc: dc}
}

// ID implements ggspy.Canvas.
func (c *Canvas) ID() string {
	return c.id
}

// GetContext implements ggspy.Canvas. The recording proxy is created on
// first use and reused for subsequent requests regardless of kind.
func (c *Canvas) GetContext(kind string) ggspy.RenderingContext {
	if c.rc == nil {
		c.rc = &RecordingContext{canvas: c, dc: c.dc, kind: kind}
	}
	return c.rc
}

// Recording returns the recording proxy hosts draw through. It resolves
// the context first if no GetContext call has happened yet.
func (c *Canvas) Recording() *RecordingContext {
	if c.rc == nil {
		c.GetContext(ggspy.ContextKindWebGL)
	}
	return c.rc
}

// Context returns the underlying gg drawing context.
func (c *Canvas) Context() *gg.Context {
	return c.dc
}
