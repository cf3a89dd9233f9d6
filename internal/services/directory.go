package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"feriascalendar/internal/domain"
)

type directoryService struct {
	store          domain.EventStore
	validator      domain.SuggestionValidator
	notifier       domain.NotificationService
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewDirectoryService returns the public listing and suggestion intake. notifier may be nil.
func NewDirectoryService(
	store domain.EventStore,
	validator domain.SuggestionValidator,
	notifier domain.NotificationService,
	logger *slog.Logger,
	timeout time.Duration,
) domain.DirectoryService {
	return &directoryService{
		store:          store,
		validator:      validator,
		notifier:       notifier,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *directoryService) ListPublic(ctx context.Context, criteria domain.FilterCriteria) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}
	criteria.ApprovedOnly = true
	return Filter(events, criteria), nil
}

func (s *directoryService) Options(ctx context.Context) (domain.FilterOptions, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.store.Load(ctx)
	if err != nil {
		return domain.FilterOptions{}, fmt.Errorf("load events: %w", err)
	}
	return Options(events), nil
}

func (s *directoryService) SuggestionChoices(ctx context.Context) (domain.SuggestionChoices, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.store.Load(ctx)
	if err != nil {
		return domain.SuggestionChoices{}, fmt.Errorf("load events: %w", err)
	}
	return Choices(events), nil
}

// Suggest validates and stores a pending event. Notification failures are logged, not returned.
func (s *directoryService) Suggest(ctx context.Context, draft domain.EventDraft) (*domain.Event, error) {
	event, err := s.validator.Validate(draft)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	if err := s.store.Append(ctx, event); err != nil {
		return nil, fmt.Errorf("append event: %w", err)
	}
	s.logger.InfoContext(ctx, "suggestion stored", "event_id", event.ID, "name", event.Name)

	if s.notifier != nil {
		if err := s.notifier.NotifyNewSuggestion(ctx, event); err != nil {
			s.logger.WarnContext(ctx, "failed to notify moderator", "event_id", event.ID, "err", err)
		}
	}
	return event, nil
}
