package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/garagemlabs/veiculos-api/internal/api"
	apiMiddleware "github.com/garagemlabs/veiculos-api/internal/api/middleware"
	"github.com/garagemlabs/veiculos-api/internal/domain"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Administrator management requires the Adm role; vehicle
// writes allow Adm or Editor; vehicle reads and the landing route are public.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace)

	adminHandler := api.NewAdministratorHandler(app.adminStore, app.jwtService, app.logger)
	vehicleHandler := api.NewVehicleHandler(app.vehicleStore, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Get("/", api.Home)

	r.Route("/administrador", func(r chi.Router) {
		r.Post("/login", adminHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Use(authMiddleware.RequireRoles(domain.RoleAdm))
			r.Post("/", adminHandler.Create)
			r.Get("/", adminHandler.List)
			r.Get("/{id}", adminHandler.GetByID)
		})
	})

	r.Route("/veiculos", func(r chi.Router) {
		r.Get("/", vehicleHandler.List)
		r.Get("/{id}", vehicleHandler.GetByID)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Use(authMiddleware.RequireRoles(domain.RoleAdm, domain.RoleEditor))
			r.Post("/", vehicleHandler.Create)
			r.Put("/{id}", vehicleHandler.Update)
			r.Delete("/{id}", vehicleHandler.Delete)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
