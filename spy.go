package ggspy

// CanvasWatcher announces canvases as a host discovers them, letting
// the Manager spy on surfaces that do not exist yet when spying starts.
type CanvasWatcher interface {
	// Watch begins delivering discovered canvases to fn and returns a
	// function that stops delivery. fn may be called from any
	// goroutine; duplicate announcements are tolerated.
	Watch(fn func(Canvas)) (stop func())
}

// spyState tracks one passive spy session. At most one exists at a
// time, whether it was started on an explicit canvas or through a
// watcher.
type spyState struct {
	recorders []Recorder
	stop      func()
}

func (s *spyState) has(rec Recorder) bool {
	for _, r := range s.recorders {
		if r == rec {
			return true
		}
	}
	return false
}

// SpyCanvas places canvas in passive spy mode: its recorder records
// continuously into a rolling window, without the session machinery of
// CaptureCanvas. The recorder registry is shared with on-demand
// capture, so a later capture on the same canvas reuses the recorder.
//
// Reports ErrSpyActive while another spy session is live.
func (m *Manager) SpyCanvas(canvas Canvas) error {
	m.mu.Lock()
	if m.spy != nil {
		m.mu.Unlock()
		return m.reportError(ErrSpyActive)
	}
	rec, err := m.recorderForCanvasLocked(canvas)
	if err != nil {
		m.mu.Unlock()
		return m.reportError(err)
	}
	m.spy = &spyState{recorders: []Recorder{rec}}
	rec.StartSpy()
	m.mu.Unlock()
	return nil
}

// SpyAll starts a watcher-driven spy session: every canvas the watcher
// announces while the session is live is placed in spy mode.
//
// Reports ErrSpyActive while another spy session is live.
func (m *Manager) SpyAll(watcher CanvasWatcher) error {
	m.mu.Lock()
	if m.spy != nil {
		m.mu.Unlock()
		return m.reportError(ErrSpyActive)
	}
	st := &spyState{}
	m.spy = st
	m.mu.Unlock()

	stop := watcher.Watch(m.spyDiscovered)

	m.mu.Lock()
	if m.spy == st {
		st.stop = stop
	} else {
		// StopSpy won the race while the watcher was attaching.
		m.mu.Unlock()
		stop()
		return nil
	}
	m.mu.Unlock()
	return nil
}

// StopSpy ends the passive spy session, detaching the watcher (if any)
// and taking every spied recorder out of continuous mode. No-op when no
// spy session is live.
func (m *Manager) StopSpy() {
	m.mu.Lock()
	st := m.spy
	m.spy = nil
	m.mu.Unlock()

	if st == nil {
		return
	}
	if st.stop != nil {
		st.stop()
	}
	for _, rec := range st.recorders {
		rec.StopSpy()
	}
}

// spyDiscovered handles one watcher announcement.
func (m *Manager) spyDiscovered(canvas Canvas) {
	m.mu.Lock()
	if m.spy == nil {
		m.mu.Unlock()
		return
	}
	rec, err := m.recorderForCanvasLocked(canvas)
	if err != nil {
		m.mu.Unlock()
		// A canvas with no usable context is reported but does not end
		// the spy session.
		_ = m.reportError(err)
		return
	}
	if m.spy.has(rec) {
		m.mu.Unlock()
		return
	}
	m.spy.recorders = append(m.spy.recorders, rec)
	rec.StartSpy()
	m.mu.Unlock()
}
