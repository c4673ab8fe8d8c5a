// Package store holds the in-memory project list and fans out change
// notifications to registered listeners.
package store

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/idilsaglam/projboard/internal/model"
)

// Listener receives a snapshot of every project after each accepted mutation.
type Listener func(projects []model.Project)

type notification struct {
	snapshot  []model.Project
	listeners []Listener
}

// Store is the single shared project list. Create one per process and pass it
// to everything that reads or mutates projects.
//
// The store does not validate. Callers gate input before AddProject.
type Store struct {
	log *slog.Logger

	// mu guards projects, listeners, pending and dispatching together so a
	// notification always carries a self-consistent snapshot.
	mu          sync.Mutex
	projects    []model.Project
	listeners   []Listener
	pending     []notification
	dispatching bool
}

// New returns an empty store. A nil logger discards.
func New(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{log: logger}
}

// AddListener registers fn. There is no deduplication: registering the same
// function twice makes it fire twice per mutation.
func (s *Store) AddListener(fn Listener) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

// AddProject appends a new Active project and notifies every listener, in
// registration order, before returning.
//
// A call made from inside a listener is stored immediately but its
// notification is queued until the running fan-out has finished.
func (s *Store) AddProject(title, description string, people int) model.Project {
	p := model.New(title, description, people)

	s.mu.Lock()
	s.projects = append(s.projects, p)
	s.pending = append(s.pending, notification{
		snapshot:  slices.Clone(s.projects),
		listeners: slices.Clone(s.listeners),
	})
	s.log.Debug("project added",
		"id", p.ID,
		"status", p.Status.String(),
		"listeners", len(s.listeners),
	)
	if s.dispatching {
		s.mu.Unlock()
		return p
	}
	s.dispatching = true
	s.mu.Unlock()

	s.drain()
	return p
}

// Projects returns a snapshot of every project in insertion order.
func (s *Store) Projects() []model.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.projects)
}

// Len is the number of stored projects.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.projects)
}

func (s *Store) drain() {
	finished := false
	defer func() {
		// A panicking listener must not leave the store stuck in dispatch.
		if !finished {
			s.mu.Lock()
			s.dispatching = false
			s.mu.Unlock()
		}
	}()

	for {
		s.mu.Lock()
		if len(s.pending) == 0 {
			s.dispatching = false
			finished = true
			s.mu.Unlock()
			return
		}
		n := s.pending[0]
		s.pending = s.pending[1:]
		s.mu.Unlock()

		for _, fn := range n.listeners {
			fn(slices.Clone(n.snapshot))
		}
	}
}
