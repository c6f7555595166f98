package ggspy

import (
	"fmt"
	"time"
)

// Command is one recorded drawing call.
//
// Commands are value types; once a Capture is produced its command slice
// must not be modified.
type Command struct {
	// Seq is the zero-based position of the call within its recording.
	Seq int `json:"seq"`

	// Name is the drawing call name (e.g. "DrawCircle", "Fill").
	Name string `json:"name"`

	// Args holds the stringified call arguments.
	// Empty when the capture was taken in quick mode.
	Args []string `json:"args,omitempty"`

	// Marker is the free-form tag that was set on the recorder when the
	// call was observed. Empty when no marker was set.
	Marker string `json:"marker,omitempty"`

	// Offset is the time elapsed between recording start and this call.
	Offset time.Duration `json:"offsetNs"`
}

// String returns a compact single-line rendering of the command,
// e.g. "DrawCircle(150, 150, 60)".
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name + "()"
	}
	out := c.Name + "("
	for i, a := range c.Args {
		if i > 0 {
			out += ", "
		}
		out += a
	}
	return out + ")"
}

// formatArgs stringifies call arguments for storage in a Command.
func formatArgs(args []any) []string {
	if len(args) == 0 {
		return nil
	}
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = fmt.Sprint(a)
	}
	return out
}
