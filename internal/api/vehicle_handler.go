package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/garagemlabs/veiculos-api/internal/api/shared"
	"github.com/garagemlabs/veiculos-api/internal/domain"
	"github.com/garagemlabs/veiculos-api/internal/store"
)

// VehicleHandler handles vehicle CRUD requests.
type VehicleHandler struct {
	vehicleStore store.VehicleStore
	logger       *slog.Logger
}

// NewVehicleHandler creates a new VehicleHandler with the given dependencies.
// If logger is nil, the default logger is used.
func NewVehicleHandler(vehicleStore store.VehicleStore, log *slog.Logger) *VehicleHandler {
	if log == nil {
		log = slog.Default()
	}
	return &VehicleHandler{
		vehicleStore: vehicleStore,
		logger:       log.With(slog.String("component", "vehicle_handler")),
	}
}

// Create handles POST /veiculos. Success is 201 with no body; an invalid
// payload is 400 with the ordered message list.
func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req VehicleRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if messages := domain.ValidateVehicle(req.Name, req.Brand, req.Year); len(messages) > 0 {
		shared.RespondWithJSON(w, r, http.StatusBadRequest, ValidationErrorsResponse{Messages: messages})
		return
	}

	vehicle := &domain.Vehicle{
		Name:  req.Name,
		Brand: req.Brand,
		Year:  req.Year,
	}
	if err := h.vehicleStore.Create(r.Context(), vehicle); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to create vehicle", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, nil)
}

// List handles GET /veiculos?pagina=N&nome=&marca=. The marca parameter is
// accepted and passed through to the store, which does not apply it.
func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := store.VehicleFilter{
		Name:  r.URL.Query().Get("nome"),
		Brand: r.URL.Query().Get("marca"),
	}

	vehicles, err := h.vehicleStore.List(r.Context(), getQueryPage(r), filter)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to list vehicles", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, vehicles)
}

// GetByID handles GET /veiculos/{id}.
func (h *VehicleHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid vehicle id")
		return
	}

	vehicle, err := h.vehicleStore.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Vehicle not found")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to get vehicle", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, vehicle)
}

// Update handles PUT /veiculos/{id}: a full replace of name, brand and year.
// The row is fetched first, mirroring the original flow; there is no
// concurrency token, so an update racing a delete surfaces as not-found at
// whichever statement loses.
func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid vehicle id")
		return
	}

	var req VehicleRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if messages := domain.ValidateVehicle(req.Name, req.Brand, req.Year); len(messages) > 0 {
		shared.RespondWithJSON(w, r, http.StatusBadRequest, ValidationErrorsResponse{Messages: messages})
		return
	}

	vehicle, err := h.vehicleStore.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Vehicle not found")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to get vehicle", err)
		return
	}

	vehicle.Name = req.Name
	vehicle.Brand = req.Brand
	vehicle.Year = req.Year

	if err := h.vehicleStore.Update(r.Context(), vehicle); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Vehicle not found")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to update vehicle", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, vehicle)
}

// Delete handles DELETE /veiculos/{id}. The deleted vehicle is returned in
// the response body.
func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid vehicle id")
		return
	}

	vehicle, err := h.vehicleStore.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Vehicle not found")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to get vehicle", err)
		return
	}

	if err := h.vehicleStore.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Vehicle not found")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to delete vehicle", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, vehicle)
}
