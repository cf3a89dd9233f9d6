package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"feriascalendar/internal/delivery/http/helpers"
	"feriascalendar/internal/domain"
)

// EventListSuccessResponse is the success response envelope for event collections.
type EventListSuccessResponse struct {
	Data  []*domain.Event   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// FilterOptionsSuccessResponse is the success response envelope for GET /events/options.
type FilterOptionsSuccessResponse struct {
	Data  domain.FilterOptions `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// SuggestionChoicesSuccessResponse is the success response envelope for GET /suggestions/choices.
type SuggestionChoicesSuccessResponse struct {
	Data  domain.SuggestionChoices `json:"data"`
	Error *helpers.APIError        `json:"error"`
}

// SuggestEventResponse is the body of a successful POST /suggestions.
type SuggestEventResponse struct {
	Event   *domain.Event `json:"event"`
	Message string        `json:"message"`
}

// SuggestEventSuccessResponse is the success response envelope for POST /suggestions (201).
type SuggestEventSuccessResponse struct {
	Data  SuggestEventResponse `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

type DirectoryController struct {
	Logger     *slog.Logger
	Service    domain.DirectoryService
	Translator domain.Translator
}

func NewDirectoryController(logger *slog.Logger, svc domain.DirectoryService, translator domain.Translator) *DirectoryController {
	return &DirectoryController{
		Logger:     logger,
		Service:    svc,
		Translator: translator,
	}
}

// ListEvents godoc
// @Summary List approved fairs
// @Description Returns approved fairs ordered by start date. Absent filters default to every option and the full date span of approved fairs. A fair matches when its department and sector are selected and its start date falls within [from, to].
// @Tags events
// @Produce json
// @Param department query []string false "Departments to include (repeatable)" collectionFormat(multi)
// @Param sector query []string false "Sectors to include (repeatable)" collectionFormat(multi)
// @Param from query string false "Earliest start date (YYYY-MM-DD)"
// @Param to query string false "Latest start date (YYYY-MM-DD)"
// @Success 200 {object} controllers.EventListSuccessResponse "data contains the matching fairs"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *DirectoryController) ListEvents(w http.ResponseWriter, r *http.Request) {
	locale := helpers.Locale(r)
	query, err := helpers.ParseFilterQuery(r)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, c.Translator.T(locale, "invalid_date", nil))
		return
	}
	var defaults domain.FilterOptions
	if !query.Complete() {
		defaults, err = c.Service.Options(r.Context())
		if err != nil {
			c.internalError(w, r, err)
			return
		}
	}
	events, err := c.Service.ListPublic(r.Context(), query.Criteria(defaults))
	if err != nil {
		c.internalError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// Options godoc
// @Summary Filter options
// @Description Departments and sectors of approved fairs, sorted, plus the earliest start and latest end date. These are the defaults of GET /events.
// @Tags events
// @Produce json
// @Success 200 {object} controllers.FilterOptionsSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/options [get]
func (c *DirectoryController) Options(w http.ResponseWriter, r *http.Request) {
	options, err := c.Service.Options(r.Context())
	if err != nil {
		c.internalError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, options)
}

// SuggestionChoices godoc
// @Summary Suggestion form choices
// @Description Departments and sectors known from every fair, approved or pending.
// @Tags suggestions
// @Produce json
// @Success 200 {object} controllers.SuggestionChoicesSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /suggestions/choices [get]
func (c *DirectoryController) SuggestionChoices(w http.ResponseWriter, r *http.Request) {
	choices, err := c.Service.SuggestionChoices(r.Context())
	if err != nil {
		c.internalError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, choices)
}

// Suggest godoc
// @Summary Suggest a fair
// @Description Submits a fair for moderation. It is stored unapproved and stays hidden until a moderator approves it. Every violated rule is reported in error.fields with a message in the Accept-Language locale.
// @Tags suggestions
// @Accept json
// @Produce json
// @Param Accept-Language header string false "Message locale (es, en)"
// @Param draft body domain.EventDraft true "Fair data"
// @Success 201 {object} controllers.SuggestEventSuccessResponse "data contains the pending fair and a thank-you message"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or validation_failed"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /suggestions [post]
func (c *DirectoryController) Suggest(w http.ResponseWriter, r *http.Request) {
	locale := helpers.Locale(r)
	var draft domain.EventDraft
	if !helpers.DecodeAndValidate(w, r, &draft) {
		return
	}
	event, err := c.Service.Suggest(r.Context(), draft)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			fields := make([]domain.FieldError, len(verr.Fields))
			for i, f := range verr.Fields {
				f.Message = c.Translator.T(locale, f.MessageID(), nil)
				fields[i] = f
			}
			helpers.WriteValidationError(w, c.Translator.T(locale, "invalid_request", nil), fields)
			return
		}
		c.internalError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, SuggestEventResponse{
		Event:   event,
		Message: c.Translator.T(locale, "suggestion_received", nil),
	})
}

func (c *DirectoryController) internalError(w http.ResponseWriter, r *http.Request, err error) {
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, c.Translator.T(helpers.Locale(r), "internal_error", nil))
}
