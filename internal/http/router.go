package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/arboretum/internal/http/client"
	"github.com/MrJamesThe3rd/arboretum/internal/http/dashboard"
	"github.com/MrJamesThe3rd/arboretum/internal/http/export"
	"github.com/MrJamesThe3rd/arboretum/internal/http/importcsv"
	"github.com/MrJamesThe3rd/arboretum/internal/http/snapshot"
)

func New(
	allowedOrigins []string,
	dashboardV1 *dashboard.Handler,
	clientsV1 *client.Handler,
	snapshotV1 *snapshot.Handler,
	importV1 *importcsv.Handler,
	exportV1 *export.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		dashboardV1.Routes(r)

		r.Route("/clients", clientsV1.Routes)

		r.Route("/snapshot", snapshotV1.Routes)

		r.Route("/finances/export", exportV1.Routes)

		r.Route("/import", func(r chi.Router) {
			r.Use(middleware.AllowContentType("multipart/form-data"))
			importV1.Routes(r)
		})
	})

	return router
}
