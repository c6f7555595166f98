package ggspy

import "errors"

// Common errors reported by the capture Manager.
//
// Reported errors are returned from the failing operation and also
// published to listeners registered with [Manager.OnError], so menu and
// viewer components observe the same failure exactly once.
var (
	// ErrNoContext is reported when no rendering context could be
	// resolved on the target canvas with any known context kind.
	ErrNoContext = errors.New("ggspy: no usable rendering context on canvas")

	// ErrCaptureActive is reported when a capture is requested while
	// another capture session is live. The live session is untouched.
	ErrCaptureActive = errors.New("ggspy: a capture session is already active")

	// ErrSpyActive is reported when a spy is requested while a passive
	// spy session is live. The live spy session is untouched.
	ErrSpyActive = errors.New("ggspy: a spy session is already active")

	// ErrNoFrameActivity is reported when the watchdog expires on a
	// frame-bounded session before the render loop ever advanced a frame.
	ErrNoFrameActivity = errors.New("ggspy: no frame activity detected")

	// ErrNoCommands is reported when the watchdog expires on a
	// frame-bounded session whose frames kept advancing without issuing
	// any drawing calls.
	ErrNoCommands = errors.New("ggspy: frames detected but no calls")
)
