package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/garagemlabs/veiculos-api/internal/config"
	"github.com/garagemlabs/veiculos-api/internal/platform/postgres"
	"github.com/garagemlabs/veiculos-api/internal/service/auth"
	"github.com/garagemlabs/veiculos-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	adminStore   store.AdministratorStore
	vehicleStore store.VehicleStore
	jwtService   auth.JWTService
}

// newApplication wires up the stores and services over an established
// database connection.
func newApplication(cfg *config.Config, log *slog.Logger, db *sql.DB) (*application, error) {
	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	if cfg.Auth.UsesFallbackSecret() {
		log.Warn("using built-in fallback JWT signing key; " +
			"set VEICULOS_AUTH_JWT_SECRET for any non-local deployment")
	}

	return &application{
		config:       cfg,
		logger:       log,
		db:           db,
		adminStore:   postgres.NewAdministratorStore(db, log),
		vehicleStore: postgres.NewVehicleStore(db, log),
		jwtService:   jwtService,
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
