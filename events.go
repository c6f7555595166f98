package ggspy

import "sync"

// listeners is the Manager's notification registry. Listeners are
// delivered synchronously, on the goroutine that produced the event, in
// registration order. The Manager never holds its state lock during
// delivery, so listeners may call back into it.
type listeners struct {
	mu       sync.Mutex
	started  []func()
	complete []func(*Capture)
	errs     []func(error)
}

func (ls *listeners) onStarted(fn func()) {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	ls.started = append(ls.started, fn)
}

func (ls *listeners) onComplete(fn func(*Capture)) {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	ls.complete = append(ls.complete, fn)
}

func (ls *listeners) onError(fn func(error)) {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	ls.errs = append(ls.errs, fn)
}

func (ls *listeners) emitStarted() {
	ls.mu.Lock()
	cbs := ls.started
	ls.mu.Unlock()
	for _, fn := range cbs {
		fn()
	}
}

func (ls *listeners) emitComplete(c *Capture) {
	ls.mu.Lock()
	cbs := ls.complete
	ls.mu.Unlock()
	for _, fn := range cbs {
		fn(c)
	}
}

func (ls *listeners) emitError(err error) {
	ls.mu.Lock()
	cbs := ls.errs
	ls.mu.Unlock()
	for _, fn := range cbs {
		fn(err)
	}
}
