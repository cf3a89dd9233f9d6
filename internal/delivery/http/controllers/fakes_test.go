package controllers

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"feriascalendar/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeTranslator returns "<locale>:<key>" so tests can see both the message and the negotiated locale.
type fakeTranslator struct{}

func (fakeTranslator) T(locale, key string, _ map[string]any) string {
	if locale == "" {
		locale = "es"
	}
	return locale + ":" + key
}

// fakeDirectoryService implements domain.DirectoryService for handler tests.
type fakeDirectoryService struct {
	events        []*domain.Event
	options       domain.FilterOptions
	choices       domain.SuggestionChoices
	suggested     *domain.Event
	listErr       error
	optionsErr    error
	choicesErr    error
	suggestErr    error
	optionsCalls  int
	lastCriteria  domain.FilterCriteria
	lastDraft     domain.EventDraft
	suggestCalled bool
}

func (f *fakeDirectoryService) ListPublic(_ context.Context, criteria domain.FilterCriteria) ([]*domain.Event, error) {
	f.lastCriteria = criteria
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.events, nil
}

func (f *fakeDirectoryService) Options(_ context.Context) (domain.FilterOptions, error) {
	f.optionsCalls++
	if f.optionsErr != nil {
		return domain.FilterOptions{}, f.optionsErr
	}
	return f.options, nil
}

func (f *fakeDirectoryService) SuggestionChoices(_ context.Context) (domain.SuggestionChoices, error) {
	if f.choicesErr != nil {
		return domain.SuggestionChoices{}, f.choicesErr
	}
	return f.choices, nil
}

func (f *fakeDirectoryService) Suggest(_ context.Context, draft domain.EventDraft) (*domain.Event, error) {
	f.suggestCalled = true
	f.lastDraft = draft
	if f.suggestErr != nil {
		return nil, f.suggestErr
	}
	return f.suggested, nil
}

// fakeModerationService implements domain.ModerationService for handler tests.
type fakeModerationService struct {
	events      []*domain.Event
	err         error
	lastSession domain.ModeratorSession
	lastID      string
	removeCalls int
}

func (f *fakeModerationService) ListPending(_ context.Context, session domain.ModeratorSession) ([]*domain.Event, error) {
	f.lastSession = session
	if f.err != nil {
		return nil, f.err
	}
	return f.events, nil
}

func (f *fakeModerationService) Approve(_ context.Context, session domain.ModeratorSession, id string) ([]*domain.Event, error) {
	f.lastSession = session
	f.lastID = id
	if f.err != nil && !errors.Is(f.err, domain.ErrAlreadyApproved) {
		return nil, f.err
	}
	return f.events, f.err
}

func (f *fakeModerationService) Remove(_ context.Context, session domain.ModeratorSession, id string) ([]*domain.Event, error) {
	f.removeCalls++
	f.lastSession = session
	f.lastID = id
	if f.err != nil {
		return nil, f.err
	}
	return f.events, nil
}

// fakeAccessGate implements domain.AccessGate for handler tests.
type fakeAccessGate struct {
	token      string
	err        error
	lastSecret string
}

func (f *fakeAccessGate) Unlock(_ context.Context, secret string) (string, error) {
	f.lastSecret = secret
	if f.err != nil {
		return "", f.err
	}
	return f.token, nil
}
