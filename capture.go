package ggspy

import (
	"encoding/json"
	"io"
	"time"

	"github.com/google/uuid"
)

// Capture is the finished artifact of one recording session: an ordered,
// immutable sequence of drawing calls plus metadata identifying the
// canvas and context they were observed on.
//
// A Capture is owned by its recorder until handed to the Manager, which
// holds it exactly long enough to publish it to listeners. After that it
// belongs to the consumers; nothing in ggspy mutates it again.
type Capture struct {
	// ID uniquely identifies this capture.
	ID string `json:"id"`

	// CanvasID identifies the canvas the capture was taken on.
	CanvasID string `json:"canvasId"`

	// ContextKind is the context kind identifier the recorder's context
	// resolved with (e.g. "webgl2").
	ContextKind string `json:"contextKind"`

	// StartedAt is when the recorder began observing calls.
	StartedAt time.Time `json:"startedAt"`

	// EndedAt is when the recording was finalized.
	EndedAt time.Time `json:"endedAt"`

	// Commands is the ordered call sequence.
	Commands []Command `json:"commands"`

	// Snapshot is the frame image taken at finalization, when the
	// underlying context could image itself. Nil otherwise.
	// Not included in JSON output.
	Snapshot *Snapshot `json:"-"`

	// Device describes the GPU the host was rendering on, when known.
	// See integration/wgpucaps.
	Device *DeviceInfo `json:"device,omitempty"`
}

// newCaptureID returns a fresh unique capture identifier.
func newCaptureID() string {
	return uuid.NewString()
}

// Empty reports whether the capture recorded no calls.
func (c *Capture) Empty() bool {
	return len(c.Commands) == 0
}

// Duration returns the wall-clock span of the recording.
func (c *Capture) Duration() time.Duration {
	return c.EndedAt.Sub(c.StartedAt)
}

// WriteJSON writes the capture as indented JSON.
func (c *Capture) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
