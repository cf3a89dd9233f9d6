package services

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"feriascalendar/internal/domain"
)

// Default English messages; the delivery layer replaces them with translations.
var fieldMessages = map[string]string{
	"name_required":             "name is required",
	"start_date_required":       "start date is required",
	"end_date_required":         "end date is required",
	"city_required":             "city is required",
	"department_required":       "department is required",
	"sector_required":           "sector is required",
	"organizer_required":        "organizer is required",
	"contact_required":          "contact is required",
	"end_date_end_before_start": "end date cannot be before start date",
}

type suggestionValidator struct {
	validate *validator.Validate
	newID    func() string
}

// NewSuggestionValidator returns a validator that reports every violated rule at once.
func NewSuggestionValidator() domain.SuggestionValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	// Dates count as present only when known.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(domain.Date); ok && d.Known() {
			return d.Time()
		}
		return nil
	}, domain.Date{})
	v.RegisterStructValidation(draftDatesValidation, domain.EventDraft{})

	return &suggestionValidator{
		validate: v,
		newID:    func() string { return uuid.NewString() },
	}
}

func draftDatesValidation(sl validator.StructLevel) {
	d := sl.Current().Interface().(domain.EventDraft)
	if d.EndDate.Before(d.StartDate) {
		sl.ReportError(d.EndDate, "end_date", "EndDate", domain.RuleEndBeforeStart, "")
	}
}

func (s *suggestionValidator) Validate(draft domain.EventDraft) (*domain.Event, error) {
	draft = normalizeDraft(draft)

	if err := s.validate.Struct(draft); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, err
		}
		fields := make([]domain.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			f := domain.FieldError{Field: fe.Field(), Rule: fe.Tag()}
			f.Message = fieldMessages[f.MessageID()]
			if f.Message == "" {
				f.Message = f.Field + " is invalid"
			}
			fields = append(fields, f)
		}
		return nil, &domain.ValidationError{Fields: fields}
	}

	return &domain.Event{
		ID:          s.newID(),
		Name:        draft.Name,
		StartDate:   draft.StartDate,
		EndDate:     draft.EndDate,
		City:        draft.City,
		Department:  draft.Department,
		Sector:      draft.Sector,
		Organizer:   draft.Organizer,
		Contact:     draft.Contact,
		Website:     draft.Website,
		Description: draft.Description,
		Approved:    false,
	}, nil
}

func normalizeDraft(d domain.EventDraft) domain.EventDraft {
	d.Name = strings.TrimSpace(d.Name)
	d.City = strings.TrimSpace(d.City)
	d.Department = strings.TrimSpace(d.Department)
	d.Sector = strings.TrimSpace(d.Sector)
	d.Organizer = strings.TrimSpace(d.Organizer)
	d.Contact = strings.TrimSpace(d.Contact)
	d.Website = strings.TrimSpace(d.Website)
	d.Description = strings.TrimSpace(d.Description)
	d.Approved = false
	return d
}
