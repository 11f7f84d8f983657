package store

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Store owns the application state. All mutation goes through Dispatch; all
// reads go through the view methods. The mutex exists because gin serves
// requests concurrently; each dispatch is still a single atomic transition.
type Store struct {
	mu    sync.RWMutex
	state State
	log   *logrus.Logger
}

// New builds a store seeded with the demo users and catalog.
func New(log *logrus.Logger) (*Store, error) {
	if log == nil {
		log = logrus.New()
	}
	st, err := seedState()
	if err != nil {
		return nil, err
	}
	return &Store{state: st, log: log}, nil
}

// Dispatch applies an action through the reducer. State is replaced only when
// the reducer succeeds.
func (s *Store) Dispatch(a Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := reduce(s.state, a)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"action": a.actionName(),
			"error":  err,
		}).Warn("dispatch rejected")
		return err
	}
	s.state = next
	s.log.WithField("action", a.actionName()).Debug("action dispatched")
	return nil
}
