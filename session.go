package ggspy

import "time"

// sessionKind tags the session state. A session is frame-bounded or
// call-bounded, never both: the counters of one kind are never read
// under the other, so the illegal "both bounds set" state of a
// free-field design is unrepresentable here.
type sessionKind int

const (
	// sessionIdle means no capture is in flight.
	sessionIdle sessionKind = iota

	// sessionFrame captures one full frame's worth of calls, armed at
	// the next frame boundary.
	sessionFrame

	// sessionCalls captures a fixed number of calls, starting
	// immediately and indifferent to frame boundaries.
	sessionCalls
)

func (k sessionKind) String() string {
	switch k {
	case sessionIdle:
		return "idle"
	case sessionFrame:
		return "frame-bounded"
	case sessionCalls:
		return "call-bounded"
	default:
		return "unknown"
	}
}

// session is the orchestrator's single in-flight capture attempt.
// All fields are guarded by the Manager's mutex.
type session struct {
	kind     sessionKind
	recorder Recorder

	// remainingFrames is the frame budget. Meaningful only for
	// sessionFrame; exactly 1 when armed, 0 once recording started.
	remainingFrames int

	// retries counts empty frame-bounded attempts that were re-armed.
	retries int

	// quick is the quick-capture flag the session was requested with.
	quick bool

	// seq distinguishes this session from its predecessors so a stale
	// watchdog callback can detect it lost the race.
	seq uint64

	// watchdog bounds the total wall-clock wait for activity across
	// all retries of this session.
	watchdog *time.Timer
}

// active reports whether a capture session is in flight.
func (s *session) active() bool {
	return s.kind != sessionIdle
}

// clear resets the session to idle, preserving the sequence counter.
// The caller is responsible for the watchdog timer.
func (s *session) clear() {
	*s = session{seq: s.seq}
}
