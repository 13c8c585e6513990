// Package mocks provides hand-written mock implementations of the store and
// service interfaces for handler tests.
package mocks

import (
	"context"

	"github.com/garagemlabs/veiculos-api/internal/domain"
	"github.com/garagemlabs/veiculos-api/internal/store"
)

// MockAdministratorStore implements store.AdministratorStore for testing.
type MockAdministratorStore struct {
	// Function fields for customizable behavior
	LoginFn   func(ctx context.Context, email, password string) (*domain.Administrator, error)
	CreateFn  func(ctx context.Context, admin *domain.Administrator) error
	GetByIDFn func(ctx context.Context, id int) (*domain.Administrator, error)
	ListFn    func(ctx context.Context, page int) ([]domain.Administrator, error)

	// Data for the default in-memory implementation
	Administrators []domain.Administrator
	nextID         int
}

// NewMockAdministratorStore creates a new mock store with initialized defaults.
func NewMockAdministratorStore() *MockAdministratorStore {
	return &MockAdministratorStore{nextID: 1}
}

var _ store.AdministratorStore = (*MockAdministratorStore)(nil)

// Login implements the AdministratorStore interface.
func (m *MockAdministratorStore) Login(
	ctx context.Context,
	email, password string,
) (*domain.Administrator, error) {
	if m.LoginFn != nil {
		return m.LoginFn(ctx, email, password)
	}

	for i := range m.Administrators {
		if m.Administrators[i].Email == email && m.Administrators[i].Password == password {
			admin := m.Administrators[i]
			return &admin, nil
		}
	}
	return nil, store.ErrAdministratorNotFound
}

// Create implements the AdministratorStore interface.
func (m *MockAdministratorStore) Create(ctx context.Context, admin *domain.Administrator) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, admin)
	}

	admin.ID = m.nextID
	m.nextID++
	m.Administrators = append(m.Administrators, *admin)
	return nil
}

// GetByID implements the AdministratorStore interface.
func (m *MockAdministratorStore) GetByID(ctx context.Context, id int) (*domain.Administrator, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	for i := range m.Administrators {
		if m.Administrators[i].ID == id {
			admin := m.Administrators[i]
			return &admin, nil
		}
	}
	return nil, store.ErrAdministratorNotFound
}

// List implements the AdministratorStore interface.
func (m *MockAdministratorStore) List(ctx context.Context, page int) ([]domain.Administrator, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, page)
	}

	offset := store.PageOffset(page)
	if offset >= len(m.Administrators) {
		return []domain.Administrator{}, nil
	}
	end := offset + store.PageSize
	if end > len(m.Administrators) {
		end = len(m.Administrators)
	}
	return append([]domain.Administrator{}, m.Administrators[offset:end]...), nil
}
