package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return nil
}

// getPathID extracts an integer ID from the URL path parameters.
func getPathID(r *http.Request, paramName string) (int, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, fmt.Errorf("missing %s path parameter", paramName)
	}

	id, err := strconv.Atoi(pathParam)
	if err != nil {
		return 0, fmt.Errorf("invalid %s path parameter: %w", paramName, err)
	}
	return id, nil
}

// getQueryPage reads the 1-indexed "pagina" query parameter. An absent or
// unparseable value means the first page.
func getQueryPage(r *http.Request) int {
	raw := r.URL.Query().Get("pagina")
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	return page
}
