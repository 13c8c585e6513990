package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garagemlabs/veiculos-api/internal/api"
	"github.com/garagemlabs/veiculos-api/internal/config"
	"github.com/garagemlabs/veiculos-api/internal/domain"
	"github.com/garagemlabs/veiculos-api/internal/mocks"
	"github.com/garagemlabs/veiculos-api/internal/service/auth"
)

// newTestApplication builds an application over in-memory stores and a real
// JWT service, seeded with the bootstrap administrator, an editor account
// and one vehicle.
func newTestApplication(t *testing.T) *application {
	t.Helper()

	jwtService, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret: "router-test-signing-key",
	})
	require.NoError(t, err)

	adminStore := mocks.NewMockAdministratorStore()
	_ = adminStore.Create(context.Background(), &domain.Administrator{
		Email:    "adm@email.com",
		Password: "123456",
		Role:     domain.RoleAdm,
	})
	_ = adminStore.Create(context.Background(), &domain.Administrator{
		Email:    "editor@email.com",
		Password: "senha",
		Role:     domain.RoleEditor,
	})

	vehicleStore := mocks.NewMockVehicleStore()
	_ = vehicleStore.Create(context.Background(), &domain.Vehicle{
		Name:  "Uno",
		Brand: "Fiat",
		Year:  1990,
	})

	return &application{
		config: &config.Config{
			Server: config.ServerConfig{Port: 8080, LogLevel: "info"},
		},
		logger:       slog.Default(),
		adminStore:   adminStore,
		vehicleStore: vehicleStore,
		jwtService:   jwtService,
	}
}

func loginAs(t *testing.T, router http.Handler, email, password string) string {
	t.Helper()

	payload, err := json.Marshal(api.LoginRequest{Email: email, Password: password})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/administrador/login", bytes.NewReader(payload))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp api.LoggedAdminResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func do(router http.Handler, method, target, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestPublicRoutes(t *testing.T) {
	router := newTestApplication(t).setupRouter()

	assert.Equal(t, http.StatusOK, do(router, http.MethodGet, "/", "", nil).Code)
	assert.Equal(t, http.StatusOK, do(router, http.MethodGet, "/health", "", nil).Code)
	assert.Equal(t, http.StatusOK, do(router, http.MethodGet, "/veiculos", "", nil).Code)
	assert.Equal(t, http.StatusOK, do(router, http.MethodGet, "/veiculos/1", "", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(router, http.MethodGet, "/veiculos/99", "", nil).Code)
}

func TestLoginWithSeedCredentials(t *testing.T) {
	app := newTestApplication(t)
	router := app.setupRouter()

	token := loginAs(t, router, "adm@email.com", "123456")

	claims, err := app.jwtService.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdm, claims.Role)
}

func TestLoginWrongPasswordIsUnauthorized(t *testing.T) {
	router := newTestApplication(t).setupRouter()

	rr := do(router, http.MethodPost, "/administrador/login", "",
		api.LoginRequest{Email: "adm@email.com", Password: "errada"})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

// TestRouteAuthorizationMatrix walks the protected surface with no token, an
// Editor token and an Adm token, checking the status class each combination
// produces.
func TestRouteAuthorizationMatrix(t *testing.T) {
	router := newTestApplication(t).setupRouter()
	editorToken := loginAs(t, router, "editor@email.com", "senha")
	admToken := loginAs(t, router, "adm@email.com", "123456")

	vehicle := api.VehicleRequest{Name: "Gol", Brand: "VW", Year: 1995}
	newAdmin := api.CreateAdministratorRequest{
		Email:    "novo@email.com",
		Password: "senha",
		Role:     "Editor",
	}

	tests := []struct {
		name   string
		method string
		target string
		body   any
		token  string
		want   int
	}{
		{"create vehicle no token", http.MethodPost, "/veiculos", vehicle, "", http.StatusUnauthorized},
		{"create vehicle editor", http.MethodPost, "/veiculos", vehicle, editorToken, http.StatusCreated},
		{"create vehicle adm", http.MethodPost, "/veiculos", vehicle, admToken, http.StatusCreated},
		{"update vehicle editor", http.MethodPut, "/veiculos/1", vehicle, editorToken, http.StatusOK},
		{"delete vehicle no token", http.MethodDelete, "/veiculos/1", nil, "", http.StatusUnauthorized},
		{"list admins no token", http.MethodGet, "/administrador", nil, "", http.StatusUnauthorized},
		{"list admins editor", http.MethodGet, "/administrador", nil, editorToken, http.StatusForbidden},
		{"list admins adm", http.MethodGet, "/administrador", nil, admToken, http.StatusOK},
		{"get admin editor", http.MethodGet, "/administrador/1", nil, editorToken, http.StatusForbidden},
		{"get admin adm", http.MethodGet, "/administrador/1", nil, admToken, http.StatusOK},
		{"create admin editor", http.MethodPost, "/administrador", newAdmin, editorToken, http.StatusForbidden},
		{"create admin adm", http.MethodPost, "/administrador", newAdmin, admToken, http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(router, tt.method, tt.target, tt.token, tt.body)
			assert.Equal(t, tt.want, rr.Code)
		})
	}
}

// TestVehicleRoundTrip creates, updates, deletes and re-fetches a vehicle
// through the full router.
func TestVehicleRoundTrip(t *testing.T) {
	router := newTestApplication(t).setupRouter()
	token := loginAs(t, router, "editor@email.com", "senha")

	rr := do(router, http.MethodPost, "/veiculos", token,
		api.VehicleRequest{Name: "Kombi", Brand: "VW", Year: 1975})
	require.Equal(t, http.StatusCreated, rr.Code)

	// The seed vehicle holds id 1, so the new row is id 2.
	rr = do(router, http.MethodGet, "/veiculos/2", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var fetched domain.Vehicle
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &fetched))
	assert.Equal(t, "Kombi", fetched.Name)
	assert.Equal(t, "VW", fetched.Brand)
	assert.Equal(t, 1975, fetched.Year)

	rr = do(router, http.MethodPut, "/veiculos/2", token,
		api.VehicleRequest{Name: "Kombi Corujinha", Brand: "VW", Year: 1968})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = do(router, http.MethodGet, "/veiculos/2", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &fetched))
	assert.Equal(t, "Kombi Corujinha", fetched.Name)
	assert.Equal(t, 1968, fetched.Year)

	rr = do(router, http.MethodDelete, "/veiculos/2", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = do(router, http.MethodGet, "/veiculos/2", "", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// TestVehicleCreateValidationThroughRouter checks the 400 contract end to end.
func TestVehicleCreateValidationThroughRouter(t *testing.T) {
	router := newTestApplication(t).setupRouter()
	token := loginAs(t, router, "adm@email.com", "123456")

	rr := do(router, http.MethodPost, "/veiculos", token,
		api.VehicleRequest{Name: "", Brand: "Fiat", Year: 2020})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp api.ValidationErrorsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, []string{"name must not be empty"}, resp.Messages)
}

func TestMalformedTokenIsUnauthorized(t *testing.T) {
	router := newTestApplication(t).setupRouter()

	rr := do(router, http.MethodGet, "/administrador", "not.a.valid.token", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
