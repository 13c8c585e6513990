// Package postgres implements the store interfaces on top of PostgreSQL,
// accessed through database/sql with the pgx driver.
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

// AdministratorStore implements store.AdministratorStore using PostgreSQL.
type AdministratorStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewAdministratorStore creates a PostgreSQL implementation of the
// AdministratorStore interface. The connection (or transaction) is managed
// by the caller. If logger is nil, the default logger is used.
func NewAdministratorStore(db store.DBTX, log *slog.Logger) *AdministratorStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &AdministratorStore{
		db:     db,
		logger: log.With(slog.String("component", "administrator_store")),
	}
}

var _ store.AdministratorStore = (*AdministratorStore)(nil)

// Login implements store.AdministratorStore.Login.
// The password comparison happens in the WHERE clause as exact string
// equality, preserving the plain-text semantics of the system this replaces.
func (s *AdministratorStore) Login(
	ctx context.Context,
	email, password string,
) (*domain.Administrator, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, email, password, role
		FROM administrators
		WHERE email = $1 AND password = $2
		LIMIT 1
	`

	var admin domain.Administrator
	err := s.db.QueryRowContext(ctx, query, email, password).
		Scan(&admin.ID, &admin.Email, &admin.Password, &admin.Role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrAdministratorNotFound
		}
		log.Error("login query failed", "error", redact.Error(err))
		return nil, fmt.Errorf("failed to query administrator by credentials: %w", err)
	}

	return &admin, nil
}

// Create implements store.AdministratorStore.Create.
// Duplicate emails are allowed; the schema declares no uniqueness constraint.
func (s *AdministratorStore) Create(ctx context.Context, admin *domain.Administrator) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO administrators (email, password, role)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query, admin.Email, admin.Password, admin.Role).
		Scan(&admin.ID)
	if err != nil {
		log.Error("failed to create administrator", "error", redact.Error(err))
		return fmt.Errorf("failed to insert administrator: %w", err)
	}

	return nil
}

// GetByID implements store.AdministratorStore.GetByID.
func (s *AdministratorStore) GetByID(ctx context.Context, id int) (*domain.Administrator, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, email, password, role
		FROM administrators
		WHERE id = $1
	`

	var admin domain.Administrator
	err := s.db.QueryRowContext(ctx, query, id).
		Scan(&admin.ID, &admin.Email, &admin.Password, &admin.Role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrAdministratorNotFound
		}
		log.Error("failed to get administrator", "administrator_id", id, "error", redact.Error(err))
		return nil, fmt.Errorf("failed to query administrator by id: %w", err)
	}

	return &admin, nil
}

// List implements store.AdministratorStore.List.
func (s *AdministratorStore) List(ctx context.Context, page int) ([]domain.Administrator, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, email, password, role
		FROM administrators
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	rows, err := s.db.QueryContext(ctx, query, store.PageSize, store.PageOffset(page))
	if err != nil {
		log.Error("failed to list administrators", "page", page, "error", redact.Error(err))
		return nil, fmt.Errorf("failed to query administrators page: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			log.Warn("failed to close rows", "error", cerr)
		}
	}()

	admins := []domain.Administrator{}
	for rows.Next() {
		var admin domain.Administrator
		if err := rows.Scan(&admin.ID, &admin.Email, &admin.Password, &admin.Role); err != nil {
			return nil, fmt.Errorf("failed to scan administrator row: %w", err)
		}
		admins = append(admins, admin)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate administrator rows: %w", err)
	}

	return admins, nil
}
