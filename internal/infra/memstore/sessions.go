package memstore

import (
	"sync"

	"bindrop/internal/domain/checkout"
	"bindrop/internal/pkg/errs"
)

// Sessions keeps the live checkout sessions. Do runs its callback under the
// store lock, which gives each session single-writer discipline without the
// session itself carrying a mutex.
type Sessions struct {
	mu   sync.Mutex
	byID map[string]*checkout.Session
}

func NewSessions() *Sessions {
	return &Sessions{byID: make(map[string]*checkout.Session)}
}

func (s *Sessions) Put(sess *checkout.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[sess.ID()]; ok {
		return errs.Wrap(errs.ErrDuplicateID, "session "+sess.ID())
	}
	s.byID[sess.ID()] = sess
	return nil
}

func (s *Sessions) Do(id string, fn func(*checkout.Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.byID[id]
	if !ok {
		return errs.Wrap(errs.ErrSessionNotFound, id)
	}
	return fn(sess)
}
