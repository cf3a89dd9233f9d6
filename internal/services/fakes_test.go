package services

import (
	"context"
	"io"
	"log/slog"
	"time"

	"feriascalendar/internal/domain"
)

// testLogger discards output so tests don't assert on logs.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

const testTimeout = 5 * time.Second

var moderator = domain.ModeratorSession{Subject: ModeratorSubject, IsModerator: true}

// fakeEventStore is an in-memory EventStore for tests. It hands out clones so callers
// can't mutate stored state without going through Update.
type fakeEventStore struct {
	events  []*domain.Event
	loadErr error
	saveErr error
	saves   int
}

func newFakeEventStore(events ...*domain.Event) *fakeEventStore {
	return &fakeEventStore{events: events}
}

func (f *fakeEventStore) snapshot() []*domain.Event {
	out := make([]*domain.Event, len(f.events))
	for i, e := range f.events {
		out[i] = e.Clone()
	}
	return out
}

func (f *fakeEventStore) Load(ctx context.Context) ([]*domain.Event, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.snapshot(), nil
}

func (f *fakeEventStore) Save(ctx context.Context, events []*domain.Event) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	f.events = make([]*domain.Event, len(events))
	for i, e := range events {
		f.events[i] = e.Clone()
	}
	return nil
}

func (f *fakeEventStore) Append(ctx context.Context, e *domain.Event) error {
	events, err := f.Load(ctx)
	if err != nil {
		return err
	}
	return f.Save(ctx, append(events, e))
}

func (f *fakeEventStore) Update(ctx context.Context, id string, mutate func(*domain.Event) error) error {
	events, err := f.Load(ctx)
	if err != nil {
		return err
	}
	for _, e := range events {
		if e.ID == id {
			if err := mutate(e); err != nil {
				return err
			}
			return f.Save(ctx, events)
		}
	}
	return domain.ErrNotFound
}

func (f *fakeEventStore) Delete(ctx context.Context, id string) error {
	events, err := f.Load(ctx)
	if err != nil {
		return err
	}
	for i, e := range events {
		if e.ID == id {
			return f.Save(ctx, append(events[:i], events[i+1:]...))
		}
	}
	return domain.ErrNotFound
}

func event(id, dept, sector string, start domain.Date, approved bool) *domain.Event {
	return &domain.Event{
		ID:         id,
		Name:       "Feria " + id,
		StartDate:  start,
		EndDate:    start,
		City:       dept,
		Department: dept,
		Sector:     sector,
		Organizer:  "Org",
		Contact:    "contacto@feria.uy",
		Approved:   approved,
	}
}

func date(y int, m time.Month, d int) domain.Date {
	return domain.NewDate(y, m, d)
}
