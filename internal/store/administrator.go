// Package store defines the persistence interfaces for the vehicle registry
// along with the errors and pagination rules shared by their implementations.
package store

import (
	"context"

	"github.com/garagemlabs/veiculos-api/internal/domain"
)

// AdministratorStore defines the interface for administrator persistence.
type AdministratorStore interface {
	// Login returns the administrator whose email AND password exactly match
	// the given credentials. Returns ErrAdministratorNotFound when no row
	// matches. The comparison is plain-text equality at the store level;
	// there is no hashing.
	Login(ctx context.Context, email, password string) (*domain.Administrator, error)

	// Create persists a new administrator and fills in its assigned ID.
	// Email uniqueness is NOT enforced; a duplicate email simply means Login
	// matches the first row found.
	Create(ctx context.Context, admin *domain.Administrator) error

	// GetByID retrieves an administrator by ID.
	// Returns ErrAdministratorNotFound if no such row exists.
	GetByID(ctx context.Context, id int) (*domain.Administrator, error)

	// List returns one fixed-size page of administrators ordered by ID.
	// Page numbers are 1-indexed; values below 1 select the first page.
	List(ctx context.Context, page int) ([]domain.Administrator, error)
}
