package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tahiry-dev/wildlife-atlas/internal/catalog"
)

// Init builds the chi router: recovery, per-request trace IDs and logging,
// the public catalog and auth routes, the token-gated current-user route,
// and the admin-gated mutating routes. The copied animal photos are mounted
// as a plain file server.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route("/api", func(r chi.Router) {
		// routes without authorization
		r.Get("/animals", h.listCatalogAnimals)
		r.Get("/all-animals", h.listCatalogAnimals)
		r.Get("/animals/{id}", h.getCatalogAnimal)
		r.Get("/regions", h.listRegions)
		r.Get("/regions/{id}", h.getRegionBucket)
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)

		// routes requiring a valid token
		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/auth/user", h.currentUser)
		})

		// mutating routes requiring a valid token and the admin role
		r.Group(func(r chi.Router) {
			r.Use(h.auth, h.adminOnly)
			r.Post("/animals", h.createAnimal)
			r.Put("/animals/{id}", h.updateAnimal)
			r.Delete("/animals/{id}", h.deleteAnimal)
			r.Post("/regions", h.createRegion)
			r.Put("/regions/{id}", h.updateRegion)
			r.Delete("/regions/{id}", h.deleteRegion)
		})
	})

	router.Handle(catalog.ImageURLPrefix+"*",
		http.StripPrefix(catalog.ImageURLPrefix, http.FileServer(http.Dir(h.staticDir))))

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		envelopeError(w, http.StatusNotFound, "")
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		envelopeError(w, http.StatusMethodNotAllowed, "")
	})

	return router
}
