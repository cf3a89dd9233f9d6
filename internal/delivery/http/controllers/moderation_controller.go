package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"feriascalendar/internal/delivery/http/helpers"
	"feriascalendar/internal/delivery/http/middleware"
	"feriascalendar/internal/domain"
)

// UnlockRequest is the request body for POST /moderation/session.
type UnlockRequest struct {
	Password string `json:"password"`
}

// Validate implements Validator.
func (u UnlockRequest) Validate() []string {
	if u.Password == "" {
		return []string{"password is required"}
	}
	return nil
}

// UnlockResponse carries the moderator session token.
type UnlockResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
}

// UnlockSuccessResponse is the success response envelope for POST /moderation/session.
type UnlockSuccessResponse struct {
	Data  UnlockResponse    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type ModerationController struct {
	Logger     *slog.Logger
	Gate       domain.AccessGate
	Service    domain.ModerationService
	Translator domain.Translator
}

func NewModerationController(logger *slog.Logger, gate domain.AccessGate, svc domain.ModerationService, translator domain.Translator) *ModerationController {
	return &ModerationController{
		Logger:     logger,
		Gate:       gate,
		Service:    svc,
		Translator: translator,
	}
}

// Unlock godoc
// @Summary Open a moderator session
// @Description Exchanges the shared admin password for a Bearer token used by the moderation endpoints.
// @Tags moderation
// @Accept json
// @Produce json
// @Param credentials body UnlockRequest true "Admin password"
// @Success 200 {object} controllers.UnlockSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /moderation/session [post]
func (c *ModerationController) Unlock(w http.ResponseWriter, r *http.Request) {
	var req UnlockRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	token, err := c.Gate.Unlock(r.Context(), req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidSecret) {
			helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, c.Translator.T(helpers.Locale(r), "invalid_secret", nil))
			return
		}
		c.internalError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, UnlockResponse{Token: token, TokenType: "Bearer"})
}

// ListPending godoc
// @Summary List pending fairs
// @Description Returns every fair awaiting approval.
// @Tags moderation
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.EventListSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /moderation/pending [get]
func (c *ModerationController) ListPending(w http.ResponseWriter, r *http.Request) {
	session, ok := c.session(w, r)
	if !ok {
		return
	}
	events, err := c.Service.ListPending(r.Context(), session)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// Approve godoc
// @Summary Approve a fair
// @Description Marks the fair as approved and returns the whole collection. Approving an already approved fair succeeds without changes.
// @Tags moderation
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Fair ID"
// @Success 200 {object} controllers.EventListSuccessResponse "data contains every fair"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /moderation/events/{eventID}/approve [post]
func (c *ModerationController) Approve(w http.ResponseWriter, r *http.Request) {
	session, ok := c.session(w, r)
	if !ok {
		return
	}
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	events, err := c.Service.Approve(r.Context(), session, eventID)
	if err != nil && !errors.Is(err, domain.ErrAlreadyApproved) {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// Remove godoc
// @Summary Delete a fair
// @Description Permanently removes the fair and returns the remaining collection. Requires confirm=true.
// @Tags moderation
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Fair ID"
// @Param confirm query bool true "Must be true"
// @Success 200 {object} controllers.EventListSuccessResponse "data contains the remaining fairs"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /moderation/events/{eventID} [delete]
func (c *ModerationController) Remove(w http.ResponseWriter, r *http.Request) {
	session, ok := c.session(w, r)
	if !ok {
		return
	}
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	if confirmed, _ := strconv.ParseBool(r.URL.Query().Get("confirm")); !confirmed {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, c.Translator.T(helpers.Locale(r), "delete_confirmation_required", nil))
		return
	}
	events, err := c.Service.Remove(r.Context(), session, eventID)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

func (c *ModerationController) session(w http.ResponseWriter, r *http.Request) (domain.ModeratorSession, bool) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
	}
	return session, ok
}

func (c *ModerationController) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	locale := helpers.Locale(r)
	switch {
	case errors.Is(err, domain.ErrForbidden):
		helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, c.Translator.T(locale, "moderator_required", nil))
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, c.Translator.T(locale, "event_not_found", nil))
	default:
		c.internalError(w, r, err)
	}
}

func (c *ModerationController) internalError(w http.ResponseWriter, r *http.Request, err error) {
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, c.Translator.T(helpers.Locale(r), "internal_error", nil))
}
