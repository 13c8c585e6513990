package api

import (
	"net/http"

	"github.com/garagemlabs/veiculos-api/internal/api/shared"
)

// Home handles GET /, the public landing payload.
func Home(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HomeResponse{
		Message: "Welcome to the vehicle registry API",
	})
}
