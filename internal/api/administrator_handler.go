// Package api contains the HTTP handlers and request/response shapes of the
// vehicle registry.
package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/garagemlabs/veiculos-api/internal/api/shared"
	"github.com/garagemlabs/veiculos-api/internal/domain"
	"github.com/garagemlabs/veiculos-api/internal/service/auth"
	"github.com/garagemlabs/veiculos-api/internal/store"
)

// AdministratorHandler handles administrator account and login requests.
type AdministratorHandler struct {
	adminStore store.AdministratorStore
	jwtService auth.JWTService
	validator  *validator.Validate
	logger     *slog.Logger
}

// NewAdministratorHandler creates a new AdministratorHandler with the given
// dependencies. If logger is nil, the default logger is used.
func NewAdministratorHandler(
	adminStore store.AdministratorStore,
	jwtService auth.JWTService,
	log *slog.Logger,
) *AdministratorHandler {
	if log == nil {
		log = slog.Default()
	}
	return &AdministratorHandler{
		adminStore: adminStore,
		jwtService: jwtService,
		validator:  validator.New(),
		logger:     log.With(slog.String("component", "administrator_handler")),
	}
}

// Login handles POST /administrador/login.
// Credentials that match no row — including absent ones — yield 401.
func (h *AdministratorHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	admin, err := h.adminStore.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to authenticate administrator", err)
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), admin)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to generate authentication token", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, LoggedAdminResponse{
		Email: admin.Email,
		Role:  admin.Role,
		Token: token,
	})
}

// Create handles POST /administrador. Success is 201 with no body.
func (h *AdministratorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateAdministratorRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	admin := &domain.Administrator{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	}
	if err := h.adminStore.Create(r.Context(), admin); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to create administrator", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, nil)
}

// List handles GET /administrador?pagina=N.
func (h *AdministratorHandler) List(w http.ResponseWriter, r *http.Request) {
	admins, err := h.adminStore.List(r.Context(), getQueryPage(r))
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to list administrators", err)
		return
	}

	resp := make([]AdministratorResponse, 0, len(admins))
	for _, admin := range admins {
		resp = append(resp, AdministratorResponse{
			ID:    admin.ID,
			Email: admin.Email,
			Role:  admin.Role,
		})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// GetByID handles GET /administrador/{id}.
func (h *AdministratorHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid administrator id")
		return
	}

	admin, err := h.adminStore.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Administrator not found")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to get administrator", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AdministratorResponse{
		ID:    admin.ID,
		Email: admin.Email,
		Role:  admin.Role,
	})
}
