package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"feriascalendar/internal/domain"
)

type moderationService struct {
	store          domain.EventStore
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewModerationService returns the moderation controller. Mutations persist immediately and
// return the refreshed collection.
func NewModerationService(store domain.EventStore, logger *slog.Logger, timeout time.Duration) domain.ModerationService {
	return &moderationService{
		store:          store,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func requireModerator(session domain.ModeratorSession) error {
	if !session.IsModerator {
		return domain.ErrForbidden
	}
	return nil
}

func (s *moderationService) ListPending(ctx context.Context, session domain.ModeratorSession) ([]*domain.Event, error) {
	if err := requireModerator(session); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}
	pending := make([]*domain.Event, 0)
	for _, e := range events {
		if e.Pending() {
			pending = append(pending, e)
		}
	}
	return pending, nil
}

// Approve publishes the event. Approving an already approved event returns ErrAlreadyApproved
// together with the unchanged collection.
func (s *moderationService) Approve(ctx context.Context, session domain.ModeratorSession, id string) ([]*domain.Event, error) {
	if err := requireModerator(session); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	err := s.store.Update(ctx, id, func(e *domain.Event) error {
		if e.Approved {
			return domain.ErrAlreadyApproved
		}
		e.Approved = true
		return nil
	})
	switch {
	case err == nil:
		s.logger.InfoContext(ctx, "event approved", "event_id", id, "moderator", session.Subject)
	case errors.Is(err, domain.ErrAlreadyApproved):
		events, loadErr := s.store.Load(ctx)
		if loadErr != nil {
			return nil, fmt.Errorf("load events: %w", loadErr)
		}
		return events, err
	case errors.Is(err, domain.ErrNotFound):
		return nil, err
	default:
		return nil, fmt.Errorf("approve event: %w", err)
	}

	events, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}
	return events, nil
}

func (s *moderationService) Remove(ctx context.Context, session domain.ModeratorSession, id string) ([]*domain.Event, error) {
	if err := requireModerator(session); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("delete event: %w", err)
	}
	s.logger.InfoContext(ctx, "event deleted", "event_id", id, "moderator", session.Subject)

	events, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}
	return events, nil
}
