package ggspy

import (
	"sync"
	"time"
)

// Clock delivers frame boundary signals at the host's render cadence and
// exposes playback control. The Manager subscribes once at construction
// and never tears the subscription down.
//
// Implementations must deliver frame-start strictly before the matching
// frame-end for every frame.
type Clock interface {
	// OnFrameStart registers fn to run at the start of each frame.
	OnFrameStart(fn func())

	// OnFrameEnd registers fn to run at the end of each frame.
	OnFrameEnd(fn func())

	// SetSpeedRatio controls playback speed: 0 pauses frame delivery,
	// 1 delivers every host frame. Fractional ratios deliver a
	// proportional subset of frames.
	SetSpeedRatio(ratio float64)

	// StepFrame lets exactly one frame through while paused.
	StepFrame()

	// FPS returns the host's current frames-per-second read-out.
	FPS() float64
}

// fpsWindow is the number of recent host frames FPS is averaged over.
const fpsWindow = 60

// RenderLoop is the built-in Clock. Hosts drive it from their render
// loop by bracketing each frame with FrameStart and FrameEnd:
//
//	loop := ggspy.NewRenderLoop()
//	for running {
//	    loop.FrameStart()
//	    drawFrame()
//	    loop.FrameEnd()
//	}
//
// The speed ratio gates delivery to subscribers, not the host's own
// rendering: a paused loop keeps measuring host FPS while suppressing
// frame callbacks.
//
// RenderLoop is safe for concurrent use, though hosts normally drive it
// from a single render goroutine.
type RenderLoop struct {
	mu     sync.Mutex
	starts []func()
	ends   []func()

	ratio   float64
	acc     float64
	step    bool
	deliver bool // current frame passed the speed gate

	frameTimes []time.Time

	// now is the time source, replaceable in tests.
	now func() time.Time
}

// Ensure RenderLoop implements Clock.
var _ Clock = (*RenderLoop)(nil)

// NewRenderLoop creates a RenderLoop running at real-time speed.
func NewRenderLoop() *RenderLoop {
	return &RenderLoop{
		ratio: 1,
		now:   time.Now,
	}
}

// OnFrameStart registers fn to run at the start of each delivered frame.
// Callbacks run synchronously on the goroutine calling FrameStart, in
// registration order.
func (l *RenderLoop) OnFrameStart(fn func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.starts = append(l.starts, fn)
}

// OnFrameEnd registers fn to run at the end of each delivered frame.
func (l *RenderLoop) OnFrameEnd(fn func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ends = append(l.ends, fn)
}

// FrameStart marks the beginning of a host frame.
func (l *RenderLoop) FrameStart() {
	l.mu.Lock()

	// FPS tracks the host cadence regardless of the speed gate.
	l.frameTimes = append(l.frameTimes, l.now())
	if len(l.frameTimes) > fpsWindow {
		l.frameTimes = l.frameTimes[len(l.frameTimes)-fpsWindow:]
	}

	if l.step {
		l.step = false
		l.deliver = true
	} else {
		l.acc += l.ratio
		if l.acc >= 1 {
			l.acc -= 1
			l.deliver = true
		} else {
			l.deliver = false
		}
	}

	deliver := l.deliver
	cbs := l.starts
	l.mu.Unlock()

	if deliver {
		for _, fn := range cbs {
			fn()
		}
	}
}

// FrameEnd marks the end of a host frame. It delivers frame-end
// callbacks only when the matching FrameStart was delivered, so
// subscribers always observe start/end in pairs.
func (l *RenderLoop) FrameEnd() {
	l.mu.Lock()
	deliver := l.deliver
	l.deliver = false
	cbs := l.ends
	l.mu.Unlock()

	if deliver {
		for _, fn := range cbs {
			fn()
		}
	}
}

// SetSpeedRatio sets the delivery ratio. Negative values clamp to 0;
// values of 1 or more deliver every frame.
func (l *RenderLoop) SetSpeedRatio(ratio float64) {
	if ratio < 0 {
		ratio = 0
	}
	l.mu.Lock()
	l.ratio = ratio
	if ratio == 0 {
		l.acc = 0
	}
	l.mu.Unlock()
}

// StepFrame arms a single-frame advance: the next host frame is
// delivered to subscribers even while paused.
func (l *RenderLoop) StepFrame() {
	l.mu.Lock()
	l.step = true
	l.mu.Unlock()
}

// FPS returns the average host frames-per-second over the recent
// measurement window. Returns 0 until two frames have been observed.
func (l *RenderLoop) FPS() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := len(l.frameTimes)
	if n < 2 {
		return 0
	}
	elapsed := l.frameTimes[n-1].Sub(l.frameTimes[0]).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(n-1) / elapsed
}
