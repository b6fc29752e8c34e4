package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// getPathID extracts a positive integer ID from the URL path parameters.
// Callers treat a malformed ID as an unknown entity.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, fmt.Errorf("path parameter %q is required", paramName)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("path parameter %q has invalid format", paramName)
	}

	return id, nil
}
