package store

import (
	"context"

	"github.com/garagemlabs/veiculos-api/internal/domain"
)

// VehicleFilter restricts a vehicle listing. Empty fields match everything.
type VehicleFilter struct {
	// Name restricts to vehicles whose name contains this value,
	// case-insensitively.
	Name string

	// Brand is accepted for interface compatibility with the system this
	// replaces, which received the parameter without ever applying it.
	// See DESIGN.md before wiring it into the query.
	Brand string
}

// VehicleStore defines the interface for vehicle persistence.
type VehicleStore interface {
	// Create persists a new vehicle and fills in its assigned ID.
	Create(ctx context.Context, vehicle *domain.Vehicle) error

	// GetByID retrieves a vehicle by ID.
	// Returns ErrVehicleNotFound if no such row exists.
	GetByID(ctx context.Context, id int) (*domain.Vehicle, error)

	// List returns one fixed-size page of vehicles ordered by ID, restricted
	// by the filter. Page numbers are 1-indexed; values below 1 select the
	// first page.
	List(ctx context.Context, page int, filter VehicleFilter) ([]domain.Vehicle, error)

	// Update replaces the name, brand and year of the vehicle identified by
	// its ID. Returns ErrVehicleNotFound if the row is gone. The caller is
	// expected to have fetched the row first; there is no concurrency token,
	// so a racing delete between fetch and update surfaces as not-found.
	Update(ctx context.Context, vehicle *domain.Vehicle) error

	// Delete removes the vehicle with the given ID.
	// Returns ErrVehicleNotFound if no such row exists.
	Delete(ctx context.Context, id int) error
}
