package uithread

import "sync"

// Queue hands work from background goroutines to the single UI thread.
// Post may be called from any goroutine, Drain only from the UI thread.
type Queue struct {
	mux     sync.Mutex
	pending []func()
	wakeUp  func()
}

func NewQueue() *Queue {
	return &Queue{}
}

// SetWakeUp registers a function that makes the UI loop run another frame,
// e.g. giu.Update.
func (s *Queue) SetWakeUp(wakeUp func()) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.wakeUp = wakeUp
}

func (s *Queue) Post(fn func()) {
	s.mux.Lock()
	s.pending = append(s.pending, fn)
	wakeUp := s.wakeUp
	s.mux.Unlock()

	if wakeUp != nil {
		wakeUp()
	}
}

// Drain runs everything posted so far in posting order and returns the
// number of functions run. Functions posted while draining run on the next
// call.
func (s *Queue) Drain() int {
	s.mux.Lock()
	pending := s.pending
	s.pending = nil
	s.mux.Unlock()

	for _, fn := range pending {
		fn()
	}
	return len(pending)
}

func (s *Queue) Len() int {
	s.mux.Lock()
	defer s.mux.Unlock()
	return len(s.pending)
}
