package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garagemlabs/veiculos-api/internal/domain"
	"github.com/garagemlabs/veiculos-api/internal/mocks"
)

func seedVehicleStore(n int) *mocks.MockVehicleStore {
	vehicleStore := mocks.NewMockVehicleStore()
	for i := 0; i < n; i++ {
		_ = vehicleStore.Create(context.Background(), &domain.Vehicle{
			Name:  fmt.Sprintf("Model %d", i+1),
			Brand: "Fiat",
			Year:  1990 + i,
		})
	}
	return vehicleStore
}

func TestCreateVehicle(t *testing.T) {
	vehicleStore := mocks.NewMockVehicleStore()
	h := NewVehicleHandler(vehicleStore, nil)

	rr := postJSON(t, h.Create, "/veiculos", VehicleRequest{
		Name:  "Uno",
		Brand: "Fiat",
		Year:  1990,
	})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Empty(t, rr.Body.String(), "201 response should carry no body")
	require.Len(t, vehicleStore.Vehicles, 1)
	assert.Equal(t, 1, vehicleStore.Vehicles[0].ID)
}

func TestCreateVehicleValidationFailure(t *testing.T) {
	h := NewVehicleHandler(mocks.NewMockVehicleStore(), nil)

	tests := []struct {
		name     string
		req      VehicleRequest
		expected []string
	}{
		{
			name:     "empty name",
			req:      VehicleRequest{Name: "", Brand: "Fiat", Year: 2020},
			expected: []string{"name must not be empty"},
		},
		{
			name:     "old year",
			req:      VehicleRequest{Name: "Uno", Brand: "Fiat", Year: 1940},
			expected: []string{"invalid year"},
		},
		{
			name: "everything wrong",
			req:  VehicleRequest{},
			expected: []string{
				"name must not be empty",
				"brand must not be empty",
				"invalid year",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := postJSON(t, h.Create, "/veiculos", tt.req)

			require.Equal(t, http.StatusBadRequest, rr.Code)
			var resp ValidationErrorsResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.expected, resp.Messages)
		})
	}
}

func TestListVehiclesPagination(t *testing.T) {
	h := NewVehicleHandler(seedVehicleStore(25), nil)

	tests := []struct {
		query     string
		wantCount int
		wantFirst string
	}{
		{"", 10, "Model 1"},
		{"?pagina=1", 10, "Model 1"},
		{"?pagina=3", 5, "Model 21"},
		{"?pagina=4", 0, ""},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/veiculos"+tt.query, nil)
		rr := httptest.NewRecorder()
		h.List(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp []domain.Vehicle
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp, tt.wantCount, "query %q", tt.query)
		if tt.wantCount > 0 {
			assert.Equal(t, tt.wantFirst, resp[0].Name)
		}
	}
}

func TestListVehiclesNameFilter(t *testing.T) {
	vehicleStore := mocks.NewMockVehicleStore()
	_ = vehicleStore.Create(context.Background(), &domain.Vehicle{Name: "Uno", Brand: "Fiat", Year: 1990})
	_ = vehicleStore.Create(context.Background(), &domain.Vehicle{Name: "Gol", Brand: "VW", Year: 1995})
	h := NewVehicleHandler(vehicleStore, nil)

	req := httptest.NewRequest(http.MethodGet, "/veiculos?nome=un", nil)
	rr := httptest.NewRecorder()
	h.List(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp []domain.Vehicle
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Uno", resp[0].Name)
}

// TestListVehiclesBrandFilterIgnored pins down that the marca query parameter
// is accepted but has no effect on the result set.
func TestListVehiclesBrandFilterIgnored(t *testing.T) {
	vehicleStore := mocks.NewMockVehicleStore()
	_ = vehicleStore.Create(context.Background(), &domain.Vehicle{Name: "Uno", Brand: "Fiat", Year: 1990})
	_ = vehicleStore.Create(context.Background(), &domain.Vehicle{Name: "Gol", Brand: "VW", Year: 1995})
	h := NewVehicleHandler(vehicleStore, nil)

	req := httptest.NewRequest(http.MethodGet, "/veiculos?marca=Fiat", nil)
	rr := httptest.NewRecorder()
	h.List(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp []domain.Vehicle
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestGetVehicleByID(t *testing.T) {
	h := NewVehicleHandler(seedVehicleStore(1), nil)

	rr := getWithID(t, h.GetByID, "1")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp domain.Vehicle
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Model 1", resp.Name)
	assert.Equal(t, "Fiat", resp.Brand)
	assert.Equal(t, 1990, resp.Year)
}

func TestGetVehicleByIDNotFound(t *testing.T) {
	h := NewVehicleHandler(seedVehicleStore(1), nil)

	rr := getWithID(t, h.GetByID, "42")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func requestWithID(t *testing.T, handler http.HandlerFunc, method, id string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, "/veiculos/"+id, reader)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func TestUpdateVehicle(t *testing.T) {
	vehicleStore := seedVehicleStore(1)
	h := NewVehicleHandler(vehicleStore, nil)

	rr := requestWithID(t, h.Update, http.MethodPut, "1", VehicleRequest{
		Name:  "Uno Mille",
		Brand: "Fiat",
		Year:  1995,
	})

	require.Equal(t, http.StatusOK, rr.Code)

	var resp domain.Vehicle
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Uno Mille", resp.Name)
	assert.Equal(t, 1995, resp.Year)

	stored, err := vehicleStore.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Uno Mille", stored.Name)
}

func TestUpdateVehicleValidationFailure(t *testing.T) {
	h := NewVehicleHandler(seedVehicleStore(1), nil)

	rr := requestWithID(t, h.Update, http.MethodPut, "1", VehicleRequest{
		Name:  "",
		Brand: "Fiat",
		Year:  1995,
	})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpdateVehicleNotFound(t *testing.T) {
	h := NewVehicleHandler(seedVehicleStore(1), nil)

	rr := requestWithID(t, h.Update, http.MethodPut, "42", VehicleRequest{
		Name:  "Uno",
		Brand: "Fiat",
		Year:  1995,
	})

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteVehicleReturnsDeletedRow(t *testing.T) {
	vehicleStore := seedVehicleStore(1)
	h := NewVehicleHandler(vehicleStore, nil)

	rr := requestWithID(t, h.Delete, http.MethodDelete, "1", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp domain.Vehicle
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Model 1", resp.Name)

	_, err := vehicleStore.GetByID(context.Background(), 1)
	assert.Error(t, err)
}

func TestDeleteVehicleNotFound(t *testing.T) {
	h := NewVehicleHandler(seedVehicleStore(1), nil)

	rr := requestWithID(t, h.Delete, http.MethodDelete, "42", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHome(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	Home(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp HomeResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Message)
}
