package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/heartmarshall/yuhuh-backend/internal/config"
	"github.com/heartmarshall/yuhuh-backend/internal/transport/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Health   *HealthHandler
	Food     *FoodHandler
	Mood     *MoodHandler
	Activity *ActivityHandler
	User     *UserHandler
}

// NewRouter builds the HTTP handler for the whole API.
func NewRouter(h Handlers, cors config.CORSConfig, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cors),
	)

	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/food", func(r chi.Router) {
			r.Post("/", h.Food.Create)
			r.Get("/", h.Food.Read)
		})

		r.Route("/mood", func(r chi.Router) {
			r.Post("/", h.Mood.Create)
			r.Get("/", h.Mood.Read)
			r.Post("/assignments", h.Mood.CreateAssignments)
			r.Get("/assignments", h.Mood.ListAssignments)
		})

		r.Route("/activity", func(r chi.Router) {
			r.Post("/", h.Activity.Create)
			r.Get("/", h.Activity.Read)
		})

		r.Route("/users", func(r chi.Router) {
			r.Post("/", h.User.Create)
			r.Get("/", h.User.FindByDiscord)
			r.Get("/{id}", h.User.Get)
		})
	})

	return r
}
