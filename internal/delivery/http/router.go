package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"feriascalendar/internal/delivery/http/controllers"
	"feriascalendar/internal/delivery/http/helpers"
)

// NewRouter initializes the HTTP router with all application routes.
// requireSession guards the moderation routes other than the session unlock.
func NewRouter(directory *controllers.DirectoryController, moderation *controllers.ModerationController, requireSession func(http.HandlerFunc) http.HandlerFunc) *http.ServeMux {
	mux := http.NewServeMux()

	// Public directory
	mux.HandleFunc("GET /events", directory.ListEvents)
	mux.HandleFunc("GET /events/options", directory.Options)
	mux.HandleFunc("GET /suggestions/choices", directory.SuggestionChoices)
	mux.HandleFunc("POST /suggestions", directory.Suggest)

	// Moderation
	mux.HandleFunc("POST /moderation/session", moderation.Unlock)
	mux.HandleFunc("GET /moderation/pending", requireSession(moderation.ListPending))
	mux.HandleFunc("POST /moderation/events/{eventID}/approve", requireSession(moderation.Approve))
	mux.HandleFunc("DELETE /moderation/events/{eventID}", requireSession(moderation.Remove))

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
