package mocks

import (
	"context"
	"strings"

	"github.com/garagemlabs/veiculos-api/internal/domain"
	"github.com/garagemlabs/veiculos-api/internal/store"
)

// MockVehicleStore implements store.VehicleStore for testing.
type MockVehicleStore struct {
	// Function fields for customizable behavior
	CreateFn  func(ctx context.Context, vehicle *domain.Vehicle) error
	GetByIDFn func(ctx context.Context, id int) (*domain.Vehicle, error)
	ListFn    func(ctx context.Context, page int, filter store.VehicleFilter) ([]domain.Vehicle, error)
	UpdateFn  func(ctx context.Context, vehicle *domain.Vehicle) error
	DeleteFn  func(ctx context.Context, id int) error

	// Data for the default in-memory implementation
	Vehicles []domain.Vehicle
	nextID   int
}

// NewMockVehicleStore creates a new mock store with initialized defaults.
func NewMockVehicleStore() *MockVehicleStore {
	return &MockVehicleStore{nextID: 1}
}

var _ store.VehicleStore = (*MockVehicleStore)(nil)

// Create implements the VehicleStore interface.
func (m *MockVehicleStore) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, vehicle)
	}

	vehicle.ID = m.nextID
	m.nextID++
	m.Vehicles = append(m.Vehicles, *vehicle)
	return nil
}

// GetByID implements the VehicleStore interface.
func (m *MockVehicleStore) GetByID(ctx context.Context, id int) (*domain.Vehicle, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	for i := range m.Vehicles {
		if m.Vehicles[i].ID == id {
			vehicle := m.Vehicles[i]
			return &vehicle, nil
		}
	}
	return nil, store.ErrVehicleNotFound
}

// List implements the VehicleStore interface. Like the real store, it applies
// the name filter only.
func (m *MockVehicleStore) List(
	ctx context.Context,
	page int,
	filter store.VehicleFilter,
) ([]domain.Vehicle, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, page, filter)
	}

	matched := []domain.Vehicle{}
	for _, vehicle := range m.Vehicles {
		if filter.Name != "" &&
			!strings.Contains(strings.ToLower(vehicle.Name), strings.ToLower(filter.Name)) {
			continue
		}
		matched = append(matched, vehicle)
	}

	offset := store.PageOffset(page)
	if offset >= len(matched) {
		return []domain.Vehicle{}, nil
	}
	end := offset + store.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return append([]domain.Vehicle{}, matched[offset:end]...), nil
}

// Update implements the VehicleStore interface.
func (m *MockVehicleStore) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, vehicle)
	}

	for i := range m.Vehicles {
		if m.Vehicles[i].ID == vehicle.ID {
			m.Vehicles[i] = *vehicle
			return nil
		}
	}
	return store.ErrVehicleNotFound
}

// Delete implements the VehicleStore interface.
func (m *MockVehicleStore) Delete(ctx context.Context, id int) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	for i := range m.Vehicles {
		if m.Vehicles[i].ID == id {
			m.Vehicles = append(m.Vehicles[:i], m.Vehicles[i+1:]...)
			return nil
		}
	}
	return store.ErrVehicleNotFound
}
