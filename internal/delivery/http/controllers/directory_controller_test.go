package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"feriascalendar/internal/delivery/http/helpers"
	"feriascalendar/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func approvedEvent(id, name string) *domain.Event {
	return &domain.Event{
		ID:         id,
		Name:       name,
		StartDate:  domain.NewDate(2025, 3, 1),
		EndDate:    domain.NewDate(2025, 3, 3),
		City:       "Medellín",
		Department: "Antioquia",
		Sector:     "Moda",
		Organizer:  "ACME",
		Contact:    "a@b.co",
		Approved:   true,
	}
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder, data any) *helpers.APIError {
	t.Helper()
	var raw struct {
		Data  json.RawMessage   `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&raw))
	if data != nil && raw.Error == nil {
		require.NoError(t, json.Unmarshal(raw.Data, data))
	}
	return raw.Error
}

func TestDirectoryController_ListEvents(t *testing.T) {
	defaults := domain.FilterOptions{
		Departments: []string{"Antioquia", "Valle"},
		Sectors:     []string{"Moda"},
		From:        domain.NewDate(2025, 1, 1),
		To:          domain.NewDate(2025, 12, 31),
	}

	tests := []struct {
		name             string
		query            string
		svc              *fakeDirectoryService
		wantStatus       int
		wantCode         string
		wantOptionsCalls int
		checkCriteria    func(t *testing.T, c domain.FilterCriteria)
	}{
		{
			name:             "no filters uses defaults",
			svc:              &fakeDirectoryService{options: defaults, events: []*domain.Event{approvedEvent("e1", "Colombiamoda")}},
			wantStatus:       http.StatusOK,
			wantOptionsCalls: 1,
			checkCriteria: func(t *testing.T, c domain.FilterCriteria) {
				assert.True(t, c.ApprovedOnly)
				assert.Equal(t, defaults.Departments, c.Departments)
				assert.Equal(t, defaults.From, c.From)
			},
		},
		{
			name:             "full selection skips defaults",
			query:            "department=Valle&sector=Moda&from=2025-02-01&to=2025-02-28",
			svc:              &fakeDirectoryService{},
			wantStatus:       http.StatusOK,
			wantOptionsCalls: 0,
			checkCriteria: func(t *testing.T, c domain.FilterCriteria) {
				assert.Equal(t, []string{"Valle"}, c.Departments)
				assert.Equal(t, []string{"Moda"}, c.Sectors)
				assert.Equal(t, "2025-02-01", c.From.String())
				assert.Equal(t, "2025-02-28", c.To.String())
			},
		},
		{
			name:       "invalid date",
			query:      "from=yesterday",
			svc:        &fakeDirectoryService{},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:             "options failure",
			svc:              &fakeDirectoryService{optionsErr: errors.New("disk error")},
			wantStatus:       http.StatusInternalServerError,
			wantCode:         helpers.ErrCodeInternalError,
			wantOptionsCalls: 1,
		},
		{
			name:             "list failure",
			query:            "department=Valle&sector=Moda&from=2025-02-01&to=2025-02-28",
			svc:              &fakeDirectoryService{listErr: errors.New("disk error")},
			wantStatus:       http.StatusInternalServerError,
			wantCode:         helpers.ErrCodeInternalError,
			wantOptionsCalls: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewDirectoryController(testLogger, tt.svc, fakeTranslator{})
			req := httptest.NewRequest(http.MethodGet, "/events?"+tt.query, nil)
			rr := httptest.NewRecorder()

			c.ListEvents(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantOptionsCalls, tt.svc.optionsCalls)
			var events []*domain.Event
			apiErr := decodeEnvelope(t, rr, &events)
			if tt.wantCode != "" {
				require.NotNil(t, apiErr)
				assert.Equal(t, tt.wantCode, apiErr.Code)
				return
			}
			require.Nil(t, apiErr)
			assert.Len(t, events, len(tt.svc.events))
			if tt.checkCriteria != nil {
				tt.checkCriteria(t, tt.svc.lastCriteria)
			}
		})
	}
}

func TestDirectoryController_Options(t *testing.T) {
	svc := &fakeDirectoryService{options: domain.FilterOptions{
		Departments: []string{"Antioquia"},
		Sectors:     []string{"Moda"},
		From:        domain.NewDate(2025, 3, 1),
		To:          domain.NewDate(2025, 3, 3),
	}}
	c := NewDirectoryController(testLogger, svc, fakeTranslator{})
	rr := httptest.NewRecorder()

	c.Options(rr, httptest.NewRequest(http.MethodGet, "/events/options", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"data":{"departments":["Antioquia"],"sectors":["Moda"],"from":"2025-03-01","to":"2025-03-03"},"error":null}`, rr.Body.String())
}

func TestDirectoryController_Options_empty_directory(t *testing.T) {
	svc := &fakeDirectoryService{options: domain.FilterOptions{Departments: []string{}, Sectors: []string{}}}
	c := NewDirectoryController(testLogger, svc, fakeTranslator{})
	rr := httptest.NewRecorder()

	c.Options(rr, httptest.NewRequest(http.MethodGet, "/events/options", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"data":{"departments":[],"sectors":[],"from":null,"to":null},"error":null}`, rr.Body.String())
}

func TestDirectoryController_SuggestionChoices(t *testing.T) {
	svc := &fakeDirectoryService{choices: domain.SuggestionChoices{Departments: []string{"Valle"}, Sectors: []string{"Agro"}}}
	c := NewDirectoryController(testLogger, svc, fakeTranslator{})
	rr := httptest.NewRecorder()

	c.SuggestionChoices(rr, httptest.NewRequest(http.MethodGet, "/suggestions/choices", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var choices domain.SuggestionChoices
	require.Nil(t, decodeEnvelope(t, rr, &choices))
	assert.Equal(t, []string{"Valle"}, choices.Departments)
	assert.Equal(t, []string{"Agro"}, choices.Sectors)
}

func TestDirectoryController_SuggestionChoices_error(t *testing.T) {
	svc := &fakeDirectoryService{choicesErr: errors.New("boom")}
	c := NewDirectoryController(testLogger, svc, fakeTranslator{})
	rr := httptest.NewRecorder()

	c.SuggestionChoices(rr, httptest.NewRequest(http.MethodGet, "/suggestions/choices", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "boom")
}

func TestDirectoryController_Suggest(t *testing.T) {
	validBody := `{"name":"Feria Tech","start_date":"2025-03-01","end_date":"2025-03-03","city":"Bogotá","department":"Cundinamarca","sector":"Tecnología","organizer":"ACME","contact":"a@b.co","approved":true}`
	pending := approvedEvent("new-id", "Feria Tech")
	pending.Approved = false

	tests := []struct {
		name           string
		body           string
		acceptLanguage string
		svc            *fakeDirectoryService
		wantStatus     int
		wantCode       string
		wantCalled     bool
		check          func(t *testing.T, rr *httptest.ResponseRecorder, svc *fakeDirectoryService)
	}{
		{
			name:       "created",
			body:       validBody,
			svc:        &fakeDirectoryService{suggested: pending},
			wantStatus: http.StatusCreated,
			wantCalled: true,
			check: func(t *testing.T, rr *httptest.ResponseRecorder, svc *fakeDirectoryService) {
				var resp SuggestEventResponse
				require.Nil(t, decodeEnvelope(t, rr, &resp))
				assert.Equal(t, "new-id", resp.Event.ID)
				assert.False(t, resp.Event.Approved)
				assert.Equal(t, "es:suggestion_received", resp.Message)
				assert.Equal(t, "Feria Tech", svc.lastDraft.Name)
				assert.Equal(t, "2025-03-01", svc.lastDraft.StartDate.String())
			},
		},
		{
			name:           "localized thank-you",
			body:           validBody,
			acceptLanguage: "en",
			svc:            &fakeDirectoryService{suggested: pending},
			wantStatus:     http.StatusCreated,
			wantCalled:     true,
			check: func(t *testing.T, rr *httptest.ResponseRecorder, _ *fakeDirectoryService) {
				var resp SuggestEventResponse
				require.Nil(t, decodeEnvelope(t, rr, &resp))
				assert.Equal(t, "en:suggestion_received", resp.Message)
			},
		},
		{
			name:           "validation errors are listed and localized",
			body:           `{"name":"","start_date":"2025-03-05","end_date":"2025-03-01"}`,
			acceptLanguage: "en",
			svc: &fakeDirectoryService{suggestErr: &domain.ValidationError{Fields: []domain.FieldError{
				{Field: "name", Rule: domain.RuleRequired, Message: "name is required"},
				{Field: "end_date", Rule: domain.RuleEndBeforeStart, Message: "end date cannot be before start date"},
			}}},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeValidationFailed,
			wantCalled: true,
			check: func(t *testing.T, rr *httptest.ResponseRecorder, _ *fakeDirectoryService) {
				apiErr := decodeEnvelope(t, rr, nil)
				require.NotNil(t, apiErr)
				require.Len(t, apiErr.Fields, 2)
				assert.Equal(t, "name", apiErr.Fields[0].Field)
				assert.Equal(t, "en:name_required", apiErr.Fields[0].Message)
				assert.Equal(t, domain.RuleEndBeforeStart, apiErr.Fields[1].Rule)
				assert.Equal(t, "en:end_date_end_before_start", apiErr.Fields[1].Message)
			},
		},
		{
			name:       "malformed date",
			body:       `{"name":"x","start_date":"01/03/2025"}`,
			svc:        &fakeDirectoryService{},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "unknown field",
			body:       `{"name":"x","id":"forged"}`,
			svc:        &fakeDirectoryService{},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "storage failure",
			body:       validBody,
			svc:        &fakeDirectoryService{suggestErr: errors.New("disk full")},
			wantStatus: http.StatusInternalServerError,
			wantCode:   helpers.ErrCodeInternalError,
			wantCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewDirectoryController(testLogger, tt.svc, fakeTranslator{})
			req := httptest.NewRequest(http.MethodPost, "/suggestions", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			if tt.acceptLanguage != "" {
				req.Header.Set("Accept-Language", tt.acceptLanguage)
			}
			rr := httptest.NewRecorder()

			c.Suggest(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantCalled, tt.svc.suggestCalled)
			if tt.check != nil {
				tt.check(t, rr, tt.svc)
				return
			}
			if tt.wantCode != "" {
				apiErr := decodeEnvelope(t, rr, nil)
				require.NotNil(t, apiErr)
				assert.Equal(t, tt.wantCode, apiErr.Code)
			}
		})
	}
}
