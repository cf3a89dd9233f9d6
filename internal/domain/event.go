package domain

import "context"

// Event is a trade-fair listing. Approved events are published on the public calendar.
// swagger:model Event
type Event struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	StartDate   Date   `json:"start_date" swaggertype:"string" example:"2025-03-01"`
	EndDate     Date   `json:"end_date" swaggertype:"string" example:"2025-03-03"`
	City        string `json:"city"`
	Department  string `json:"department"`
	Sector      string `json:"sector"`
	Organizer   string `json:"organizer"`
	Contact     string `json:"contact"`
	Website     string `json:"website"`
	Description string `json:"description"`
	Approved    bool   `json:"approved"`
}

// Clone returns a copy of e so snapshots can be mutated without touching the original.
func (e *Event) Clone() *Event {
	c := *e
	return &c
}

// Pending reports whether the event is awaiting moderation.
func (e *Event) Pending() bool { return !e.Approved }

// EventDraft is a suggestion as submitted by a visitor, before validation.
// swagger:model EventDraft
type EventDraft struct {
	Name        string `json:"name" validate:"required"`
	StartDate   Date   `json:"start_date" validate:"required" swaggertype:"string" example:"2025-03-01"`
	EndDate     Date   `json:"end_date" validate:"required" swaggertype:"string" example:"2025-03-03"`
	City        string `json:"city" validate:"required"`
	Department  string `json:"department" validate:"required"`
	Sector      string `json:"sector" validate:"required"`
	Organizer   string `json:"organizer" validate:"required"`
	Contact     string `json:"contact" validate:"required"`
	Website     string `json:"website"`
	Description string `json:"description"`

	// Approved is accepted so clients can send it, but a suggestion is never stored approved.
	Approved bool `json:"approved"`
}

// EventStore persists the full event collection.
// Update and Delete return ErrNotFound for an unknown id and leave the collection unchanged.
type EventStore interface {
	Load(ctx context.Context) ([]*Event, error)
	Save(ctx context.Context, events []*Event) error
	Append(ctx context.Context, event *Event) error
	Update(ctx context.Context, id string, mutate func(*Event) error) error
	Delete(ctx context.Context, id string) error
}

// FilterCriteria is a visitor's filter selection. Empty Departments or Sectors match nothing.
type FilterCriteria struct {
	ApprovedOnly bool
	Departments  []string
	Sectors      []string
	From         Date
	To           Date
}

// FilterOptions are the selectable filter values, derived from approved events.
// swagger:model FilterOptions
type FilterOptions struct {
	Departments []string `json:"departments"`
	Sectors     []string `json:"sectors"`
	From        Date     `json:"from" swaggertype:"string"`
	To          Date     `json:"to" swaggertype:"string"`
}

// Criteria returns the selection that matches every approved event ("all" selected).
func (o FilterOptions) Criteria() FilterCriteria {
	return FilterCriteria{
		ApprovedOnly: true,
		Departments:  o.Departments,
		Sectors:      o.Sectors,
		From:         o.From,
		To:           o.To,
	}
}

// SuggestionChoices are the department and sector values offered by the suggestion form.
// swagger:model SuggestionChoices
type SuggestionChoices struct {
	Departments []string `json:"departments"`
	Sectors     []string `json:"sectors"`
}

// SuggestionValidator turns a draft into a normalized, unapproved Event.
// On failure the error is a *ValidationError listing every violated rule.
type SuggestionValidator interface {
	Validate(draft EventDraft) (*Event, error)
}

// DirectoryService is the public side of the directory.
type DirectoryService interface {
	ListPublic(ctx context.Context, criteria FilterCriteria) ([]*Event, error)
	Options(ctx context.Context) (FilterOptions, error)
	SuggestionChoices(ctx context.Context) (SuggestionChoices, error)
	Suggest(ctx context.Context, draft EventDraft) (*Event, error)
}

// ModerationService approves and deletes pending events. Every call requires a moderator session.
type ModerationService interface {
	ListPending(ctx context.Context, session ModeratorSession) ([]*Event, error)
	Approve(ctx context.Context, session ModeratorSession, id string) ([]*Event, error)
	Remove(ctx context.Context, session ModeratorSession, id string) ([]*Event, error)
}
