package ggspy

import (
	"errors"
	"sync"
	"testing"
)

// fakeWatcher hands announced canvases to whatever SpyAll registered.
type fakeWatcher struct {
	mu      sync.Mutex
	fn      func(Canvas)
	stopped bool
}

func (w *fakeWatcher) Watch(fn func(Canvas)) (stop func()) {
	w.mu.Lock()
	w.fn = fn
	w.mu.Unlock()
	return func() {
		w.mu.Lock()
		w.stopped = true
		w.mu.Unlock()
	}
}

func (w *fakeWatcher) announce(c Canvas) {
	w.mu.Lock()
	fn := w.fn
	w.mu.Unlock()
	if fn != nil {
		fn(c)
	}
}

func (w *fakeWatcher) isStopped() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stopped
}

func TestSpyCanvas(t *testing.T) {
	clock := newFakeClock()
	fleet := &fakeRecorderFleet{}
	mgr := NewManager(clock, WithRecorderFactory(fleet.factory))

	canvas := newFakeCanvas("main", ContextKindWebGL)
	if err := mgr.SpyCanvas(canvas); err != nil {
		t.Fatalf("SpyCanvas() = %v, want nil", err)
	}

	rec := fleet.last()
	if log := rec.log(); len(log) != 1 || log[0] != "spy" {
		t.Errorf("recorder log = %v, want [spy]", log)
	}

	// One spy session at a time.
	other := newFakeCanvas("other", ContextKindWebGL)
	if err := mgr.SpyCanvas(other); !errors.Is(err, ErrSpyActive) {
		t.Errorf("second SpyCanvas() = %v, want ErrSpyActive", err)
	}

	mgr.StopSpy()
	if log := rec.log(); log[len(log)-1] != "unspy" {
		t.Errorf("recorder log after StopSpy = %v, want trailing unspy", log)
	}

	// The session ended; a new spy is admitted.
	if err := mgr.SpyCanvas(other); err != nil {
		t.Errorf("SpyCanvas() after StopSpy = %v, want nil", err)
	}
}

func TestSpyCanvasNoContext(t *testing.T) {
	clock := newFakeClock()
	mgr := NewManager(clock)
	sink := &captureSink{}
	sink.attach(mgr)

	canvas := newFakeCanvas("dead")
	if err := mgr.SpyCanvas(canvas); !errors.Is(err, ErrNoContext) {
		t.Fatalf("SpyCanvas() = %v, want ErrNoContext", err)
	}

	// The failed request did not leave a spy session behind.
	good := newFakeCanvas("good", ContextKindWebGL)
	if err := mgr.SpyCanvas(good); err != nil {
		t.Errorf("SpyCanvas() after failure = %v, want nil", err)
	}
}

func TestSpyAllWatcherDiscovery(t *testing.T) {
	clock := newFakeClock()
	fleet := &fakeRecorderFleet{}
	mgr := NewManager(clock, WithRecorderFactory(fleet.factory))

	watcher := &fakeWatcher{}
	if err := mgr.SpyAll(watcher); err != nil {
		t.Fatalf("SpyAll() = %v, want nil", err)
	}

	a := newFakeCanvas("a", ContextKindWebGL)
	b := newFakeCanvas("b", ContextKindWebGL2)
	watcher.announce(a)
	watcher.announce(b)
	watcher.announce(a) // duplicate, tolerated

	if fleet.count() != 2 {
		t.Fatalf("created %d recorders, want 2", fleet.count())
	}
	for _, rec := range []*fakeRecorder{fleet.created[0], fleet.created[1]} {
		if log := rec.log(); len(log) != 1 || log[0] != "spy" {
			t.Errorf("recorder %s log = %v, want [spy]", rec.canvas.ID(), log)
		}
	}

	mgr.StopSpy()
	if !watcher.isStopped() {
		t.Error("StopSpy did not detach the watcher")
	}
	for _, rec := range []*fakeRecorder{fleet.created[0], fleet.created[1]} {
		if log := rec.log(); log[len(log)-1] != "unspy" {
			t.Errorf("recorder %s log = %v, want trailing unspy", rec.canvas.ID(), log)
		}
	}

	// Announcements after the session ends are ignored.
	watcher.announce(newFakeCanvas("late", ContextKindWebGL))
	if fleet.count() != 2 {
		t.Errorf("late announcement created a recorder, total %d", fleet.count())
	}
}

func TestSpyAllRejectedWhileSpying(t *testing.T) {
	clock := newFakeClock()
	mgr := NewManager(clock)

	canvas := newFakeCanvas("main", ContextKindWebGL)
	if err := mgr.SpyCanvas(canvas); err != nil {
		t.Fatalf("SpyCanvas() = %v", err)
	}
	if err := mgr.SpyAll(&fakeWatcher{}); !errors.Is(err, ErrSpyActive) {
		t.Errorf("SpyAll() while spying = %v, want ErrSpyActive", err)
	}
}

func TestSpyDiscoveredBadCanvasReported(t *testing.T) {
	clock := newFakeClock()
	fleet := &fakeRecorderFleet{}
	mgr := NewManager(clock, WithRecorderFactory(fleet.factory))
	sink := &captureSink{}
	sink.attach(mgr)

	watcher := &fakeWatcher{}
	if err := mgr.SpyAll(watcher); err != nil {
		t.Fatalf("SpyAll() = %v", err)
	}

	watcher.announce(newFakeCanvas("dead"))

	errs := sink.errors()
	if len(errs) != 1 || !errors.Is(errs[0], ErrNoContext) {
		t.Fatalf("error events = %v, want one ErrNoContext", errs)
	}

	// The session survives a bad announcement.
	watcher.announce(newFakeCanvas("good", ContextKindWebGL))
	if fleet.count() != 1 {
		t.Errorf("created %d recorders, want 1", fleet.count())
	}
}

func TestSpySharesRecorderWithCapture(t *testing.T) {
	clock := newFakeClock()
	fleet := &fakeRecorderFleet{}
	mgr := NewManager(clock, WithRecorderFactory(fleet.factory))

	canvas := newFakeCanvas("main", ContextKindWebGL)
	if err := mgr.SpyCanvas(canvas); err != nil {
		t.Fatalf("SpyCanvas() = %v", err)
	}
	if err := mgr.CaptureCanvas(canvas, CaptureOptions{CommandCount: 3}); err != nil {
		t.Fatalf("CaptureCanvas() on spied canvas = %v", err)
	}

	if fleet.count() != 1 {
		t.Errorf("spy and capture created %d recorders for one canvas, want 1", fleet.count())
	}
}
