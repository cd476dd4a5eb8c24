package intake

import (
	"sync"
	"time"
)

// Form session states.
type State string

const (
	StateEditing    State = "editing"
	StateValidating State = "validating"
	StateSubmitting State = "submitting"
	StateConfirmed  State = "confirmed"
	StateFailed     State = "failed"
)

// FormSession is the submission state machine:
//
//	editing → validating → submitting → {confirmed | failed} → editing
//
// A confirmed session auto-resets after the delay with its fields cleared; a
// failed session auto-resets with fields preserved so the visitor can retry
// without retyping.
type FormSession struct {
	mu         sync.Mutex
	state      State
	fields     map[string]string
	lastErr    string
	resetDelay time.Duration
	timer      *time.Timer
}

func NewFormSession(resetDelay time.Duration) *FormSession {
	return &FormSession{
		state:      StateEditing,
		fields:     make(map[string]string),
		resetDelay: resetDelay,
	}
}

// SetField mutates a field. Only the editing state accepts mutations.
func (s *FormSession) SetField(key, value string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateEditing {
		return false
	}
	s.fields[key] = value
	return true
}

func (s *FormSession) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *FormSession) Fields() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make(map[string]string, len(s.fields))
	for k, v := range s.fields {
		copied[k] = v
	}
	return copied
}

func (s *FormSession) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Submit drives one submission attempt. A validation failure blocks before
// any remote work and drops straight back to editing; a submit failure parks
// the session in failed until the auto-reset fires.
func (s *FormSession) Submit(validate, submit func(fields map[string]string) error) error {
	s.mu.Lock()
	if s.state != StateEditing {
		s.mu.Unlock()
		return nil
	}
	s.state = StateValidating
	fields := make(map[string]string, len(s.fields))
	for k, v := range s.fields {
		fields[k] = v
	}
	s.mu.Unlock()

	if err := validate(fields); err != nil {
		s.mu.Lock()
		s.state = StateEditing
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	s.state = StateSubmitting
	s.mu.Unlock()

	err := submit(fields)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = StateFailed
		s.lastErr = err.Error()
		s.scheduleReset(false)
		return err
	}
	s.state = StateConfirmed
	s.lastErr = ""
	s.scheduleReset(true)
	return nil
}

// scheduleReset arms the auto-reset timer. Caller holds the lock.
func (s *FormSession) scheduleReset(clearFields bool) {
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.resetDelay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if clearFields {
			s.fields = make(map[string]string)
		}
		s.lastErr = ""
		s.state = StateEditing
	})
}
