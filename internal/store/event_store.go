package store

import (
	"sync"

	"local-events/internal/idgen"
	"local-events/internal/model"
	apperrors "local-events/pkg/app_errors"
)

// maxIDAttempts bounds re-draws when the generator returns an id that is
// already taken, e.g. a sequence that overlaps the seeded ids.
const maxIDAttempts = 1024

type EventStore interface {
	// Add assigns a fresh id to draft and places the event at the head of the listing.
	Add(draft model.EventDraft) model.Event
	// List returns a snapshot of all events, newest first.
	List() []model.Event
	// GetByID reports false when no event carries id.
	GetByID(id string) (model.Event, bool)
	Len() int
}

type EventStoreImpl struct {
	mu    sync.RWMutex
	gen   idgen.Generator
	items []model.Event  // oldest first; readers see it reversed
	index map[string]int // event id -> position in items
}

// New builds a store holding seed, whose first element is the head of the listing.
func New(seed []model.Event, gen idgen.Generator) (EventStore, error) {
	s := &EventStoreImpl{
		gen:   gen,
		items: make([]model.Event, 0, len(seed)),
		index: make(map[string]int, len(seed)),
	}
	for i := len(seed) - 1; i >= 0; i-- {
		e := seed[i]
		if e.ID == "" {
			return nil, apperrors.ErrEmptyID
		}
		if _, ok := s.index[e.ID]; ok {
			return nil, apperrors.ErrDuplicateID
		}
		s.index[e.ID] = len(s.items)
		s.items = append(s.items, e)
	}
	return s, nil
}

func (s *EventStoreImpl) Add(draft model.EventDraft) model.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	event := draft.WithID(s.mintID())
	s.index[event.ID] = len(s.items)
	s.items = append(s.items, event)
	return event
}

// mintID must be called with mu held.
func (s *EventStoreImpl) mintID() string {
	for i := 0; i < maxIDAttempts; i++ {
		id := s.gen.NewID()
		if _, taken := s.index[id]; id != "" && !taken {
			return id
		}
	}
	// generator keeps repeating taken ids; fall back to uuids
	for {
		id := idgen.NewUUIDGenerator().NewID()
		if _, taken := s.index[id]; !taken {
			return id
		}
	}
}

func (s *EventStoreImpl) List() []model.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := make([]model.Event, len(s.items))
	for i, e := range s.items {
		events[len(s.items)-1-i] = e
	}
	return events
}

func (s *EventStoreImpl) GetByID(id string) (model.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pos, ok := s.index[id]
	if !ok {
		return model.Event{}, false
	}
	return s.items[pos], true
}

func (s *EventStoreImpl) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
