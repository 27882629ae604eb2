package service

import (
	"context"
	"errors"

	"local-events/internal/cache"
	"local-events/internal/metrics"
	"local-events/internal/model"
	"local-events/internal/store"
	apperrors "local-events/pkg/app_errors"
	"local-events/pkg/logger"

	"go.uber.org/zap"
)

type EventService interface {
	// List returns events newest first; an empty category or the "all" label disables filtering.
	List(ctx context.Context, category string) ([]model.Event, error)
	GetByID(ctx context.Context, id string) (*model.Event, error)
	// Create adds draft to the store. A non-empty submissionKey makes repeated
	// submissions return the event created by the first one.
	Create(ctx context.Context, draft model.EventDraft, submissionKey string) (*model.Event, error)
	// Categories returns the filter chips: the "all" label, the fixed list, then any other stored category.
	Categories(ctx context.Context) ([]string, error)
	Count(ctx context.Context) int
}

type CategoryOptions struct {
	AllLabel string
	Fixed    []string
}

type EventServiceImpl struct {
	store      store.EventStore
	guard      cache.SubmissionGuard
	metrics    *metrics.Metrics
	categories CategoryOptions
}

func NewEventService(store store.EventStore, guard cache.SubmissionGuard, metrics *metrics.Metrics, categories CategoryOptions) EventService {
	metrics.SetStored(store.Len())
	return &EventServiceImpl{store: store, guard: guard, metrics: metrics, categories: categories}
}

func (s *EventServiceImpl) List(ctx context.Context, category string) ([]model.Event, error) {
	events := s.store.List()
	if category == "" || category == s.categories.AllLabel {
		return events, nil
	}

	filtered := make([]model.Event, 0, len(events))
	for _, e := range events {
		if e.Category == category {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

func (s *EventServiceImpl) GetByID(ctx context.Context, id string) (*model.Event, error) {
	event, ok := s.store.GetByID(id)
	s.metrics.Lookup(ok)
	if !ok {
		return nil, apperrors.ErrEventNotFound
	}
	return &event, nil
}

func (s *EventServiceImpl) Create(ctx context.Context, draft model.EventDraft, submissionKey string) (*model.Event, error) {
	log := logger.WithComponent("service")

	if submissionKey == "" {
		return s.add(draft), nil
	}

	existingID, claimed, err := s.guard.Claim(ctx, submissionKey)
	if err != nil {
		if errors.Is(err, apperrors.ErrSubmissionInProgress) {
			return nil, err
		}
		// guard errors fall through to a plain add
		log.Warn("Submission guard unavailable", zap.String("submission_key", submissionKey), zap.Error(err))
		return s.add(draft), nil
	}

	if !claimed {
		event, ok := s.store.GetByID(existingID)
		if ok {
			s.metrics.SubmissionDeduplicated()
			log.Info("Repeated submission", zap.String("submission_key", submissionKey), zap.String("event_id", existingID))
			return &event, nil
		}
		// the key points at an event this process never issued, e.g. after a restart
		log.Warn("Submission key refers to unknown event", zap.String("submission_key", submissionKey), zap.String("event_id", existingID))
	}

	event := s.add(draft)
	if err := s.guard.Complete(context.Background(), submissionKey, event.ID); err != nil {
		log.Warn("Failed to record submission", zap.String("submission_key", submissionKey), zap.Error(err))
		// a pending marker left behind would reject every retry until it expires
		if err := s.guard.Release(context.Background(), submissionKey); err != nil {
			log.Error("Failed to release submission key", zap.String("submission_key", submissionKey), zap.Error(err))
		}
	}
	return event, nil
}

func (s *EventServiceImpl) add(draft model.EventDraft) *model.Event {
	event := s.store.Add(draft)
	s.metrics.EventCreated(s.store.Len())
	logger.WithComponent("service").Info("Event created",
		zap.String("event_id", event.ID),
		zap.String("category", event.Category),
	)
	return &event
}

func (s *EventServiceImpl) Categories(ctx context.Context) ([]string, error) {
	out := make([]string, 0, len(s.categories.Fixed)+1)
	seen := make(map[string]struct{}, len(s.categories.Fixed)+1)
	push := func(c string) {
		if _, ok := seen[c]; ok || c == "" {
			return
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}

	push(s.categories.AllLabel)
	for _, c := range s.categories.Fixed {
		push(c)
	}
	// stored categories in listing order, so newer labels surface first
	for _, e := range s.store.List() {
		push(e.Category)
	}
	return out, nil
}

func (s *EventServiceImpl) Count(ctx context.Context) int {
	return s.store.Len()
}
