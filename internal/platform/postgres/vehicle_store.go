package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/garagemlabs/veiculos-api/internal/domain"
	"github.com/garagemlabs/veiculos-api/internal/platform/logger"
	"github.com/garagemlabs/veiculos-api/internal/redact"
	"github.com/garagemlabs/veiculos-api/internal/store"
)

// VehicleStore implements store.VehicleStore using PostgreSQL.
type VehicleStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewVehicleStore creates a PostgreSQL implementation of the VehicleStore
// interface. The connection (or transaction) is managed by the caller.
// If logger is nil, the default logger is used.
func NewVehicleStore(db store.DBTX, log *slog.Logger) *VehicleStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &VehicleStore{
		db:     db,
		logger: log.With(slog.String("component", "vehicle_store")),
	}
}

var _ store.VehicleStore = (*VehicleStore)(nil)

// Create implements store.VehicleStore.Create.
func (s *VehicleStore) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO vehicles (name, brand, year)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query, vehicle.Name, vehicle.Brand, vehicle.Year).
		Scan(&vehicle.ID)
	if err != nil {
		log.Error("failed to create vehicle", "error", redact.Error(err))
		return fmt.Errorf("failed to insert vehicle: %w", err)
	}

	return nil
}

// GetByID implements store.VehicleStore.GetByID.
func (s *VehicleStore) GetByID(ctx context.Context, id int) (*domain.Vehicle, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, brand, year
		FROM vehicles
		WHERE id = $1
	`

	var vehicle domain.Vehicle
	err := s.db.QueryRowContext(ctx, query, id).
		Scan(&vehicle.ID, &vehicle.Name, &vehicle.Brand, &vehicle.Year)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrVehicleNotFound
		}
		log.Error("failed to get vehicle", "vehicle_id", id, "error", redact.Error(err))
		return nil, fmt.Errorf("failed to query vehicle by id: %w", err)
	}

	return &vehicle, nil
}

// List implements store.VehicleStore.List.
// Only the name filter is applied to the query. The brand filter is carried
// in the signature but deliberately unused, matching the behavior of the
// system this replaces.
// TODO: apply filter.Brand once the listing contract is allowed to change.
func (s *VehicleStore) List(
	ctx context.Context,
	page int,
	filter store.VehicleFilter,
) ([]domain.Vehicle, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, brand, year
		FROM vehicles
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
		ORDER BY id
		LIMIT $2 OFFSET $3
	`

	rows, err := s.db.QueryContext(ctx, query, filter.Name, store.PageSize, store.PageOffset(page))
	if err != nil {
		log.Error("failed to list vehicles", "page", page, "error", redact.Error(err))
		return nil, fmt.Errorf("failed to query vehicles page: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			log.Warn("failed to close rows", "error", cerr)
		}
	}()

	vehicles := []domain.Vehicle{}
	for rows.Next() {
		var vehicle domain.Vehicle
		if err := rows.Scan(&vehicle.ID, &vehicle.Name, &vehicle.Brand, &vehicle.Year); err != nil {
			return nil, fmt.Errorf("failed to scan vehicle row: %w", err)
		}
		vehicles = append(vehicles, vehicle)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate vehicle rows: %w", err)
	}

	return vehicles, nil
}

// Update implements store.VehicleStore.Update.
func (s *VehicleStore) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE vehicles
		SET name = $1, brand = $2, year = $3
		WHERE id = $4
	`

	result, err := s.db.ExecContext(ctx, query, vehicle.Name, vehicle.Brand, vehicle.Year, vehicle.ID)
	if err != nil {
		log.Error("failed to update vehicle", "vehicle_id", vehicle.ID, "error", redact.Error(err))
		return fmt.Errorf("failed to update vehicle: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return store.ErrVehicleNotFound
	}

	return nil
}

// Delete implements store.VehicleStore.Delete.
func (s *VehicleStore) Delete(ctx context.Context, id int) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM vehicles
		WHERE id = $1
	`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete vehicle", "vehicle_id", id, "error", redact.Error(err))
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return store.ErrVehicleNotFound
	}

	return nil
}
