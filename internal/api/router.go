package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/rewear-app/backend/internal/api/handlers"
	mw "github.com/rewear-app/backend/internal/api/middleware"
)

type Dependencies struct {
	HMACSecret      []byte
	HealthHandler   *handlers.HealthHandler
	AuthHandler     *handlers.AuthHandler
	ProfileHandler  *handlers.ProfileHandler
	ItemsHandler    *handlers.ItemsHandler
	ListingsHandler *handlers.ListingsHandler
	TaxonomyHandler *handlers.TaxonomyHandler
}

func NewRouter(dep Dependencies) http.Handler {
	r := chi.NewRouter()

	// Built-in middleware
	r.Use(mw.RequestID)
	r.Use(mw.Recovery)
	r.Use(mw.Logging)
	r.Use(mw.CORS)
	r.Use(mw.RateLimit(10, 20))
	r.Use(chimid.Compress(5))

	// Health endpoints
	r.Get("/healthz", dep.HealthHandler.Liveness)
	r.Get("/readyz", dep.HealthHandler.Readiness)

	// Swagger documentation
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", dep.AuthHandler.Register)
			r.Post("/token", dep.AuthHandler.Login)
			r.Post("/token/refresh", dep.AuthHandler.Refresh)
			r.With(mw.Auth(dep.HMACSecret)).Post("/logout", dep.AuthHandler.Logout)
		})

		// Everything below requires an access token (header or cookie).
		r.Group(func(r chi.Router) {
			r.Use(mw.Auth(dep.HMACSecret))

			r.Route("/profile", func(r chi.Router) {
				r.Get("/", dep.ProfileHandler.Get)
				r.Patch("/", dep.ProfileHandler.Update)
				r.Get("/stats", dep.ProfileHandler.Stats)
				r.Get("/orders", dep.ProfileHandler.Orders)
				r.Get("/listings", dep.ProfileHandler.Listings)
			})

			r.Route("/items", func(r chi.Router) {
				r.Get("/", dep.ItemsHandler.List)
				r.Post("/", dep.ItemsHandler.Create)
				r.Get("/{id}", dep.ItemsHandler.Get)
				r.Put("/{id}", dep.ItemsHandler.Update)
				r.Delete("/{id}", dep.ItemsHandler.Delete)
				r.Post("/{id}/purchase", dep.ItemsHandler.AttachPurchase)
				r.Get("/{id}/purchase", dep.ItemsHandler.GetPurchase)
			})

			r.Route("/listings", func(r chi.Router) {
				r.Get("/", dep.ListingsHandler.Browse)
				r.Post("/", dep.ListingsHandler.Create)
				r.Get("/{id}", dep.ListingsHandler.Get)
				r.Post("/{id}/checkout", dep.ListingsHandler.Checkout)
			})

			r.Route("/categories", func(r chi.Router) {
				r.Get("/", dep.TaxonomyHandler.ListCategories)
				r.Post("/", dep.TaxonomyHandler.CreateCategory)
			})
			r.Route("/brands", func(r chi.Router) {
				r.Get("/", dep.TaxonomyHandler.ListBrands)
				r.Post("/", dep.TaxonomyHandler.CreateBrand)
			})
		})
	})

	return r
}
