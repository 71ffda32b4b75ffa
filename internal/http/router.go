package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/conectando/internal/http/donation"
	"github.com/MrJamesThe3rd/conectando/internal/http/donor"
	"github.com/MrJamesThe3rd/conectando/internal/http/location"
	"github.com/MrJamesThe3rd/conectando/internal/http/manager"
	"github.com/MrJamesThe3rd/conectando/internal/http/project"
)

type Options struct {
	AllowedOrigins []string
	Timeout        time.Duration
}

func New(
	opts Options,
	locationsV1 *location.Handler,
	projectsV1 *project.Handler,
	donorsV1 *donor.Handler,
	donationsV1 *donation.Handler,
	managerV1 *manager.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         300,
	}))

	if opts.Timeout > 0 {
		router.Use(middleware.Timeout(opts.Timeout))
	}

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.Route("/api/v1", func(r chi.Router) {
		// Import is multipart, so only the JSON routes are content-type restricted.
		r.Route("/locations", locationsV1.Routes)

		r.Route("/projects", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			projectsV1.Routes(r)
		})

		r.Route("/donors", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			donorsV1.Routes(r)
		})

		r.Route("/donations", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			donationsV1.Routes(r)
		})

		r.Route("/manager", managerV1.Routes)
	})

	return router
}
