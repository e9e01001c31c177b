package handlers

import (
	"net/http"

	"github.com/Vasanthadithya-mundrathi/AI-journal-COSC/internal/models"
	"github.com/Vasanthadithya-mundrathi/AI-journal-COSC/internal/services"
)

const Banner = "AI-Powered Journal API"

func Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.MessageResponse{Message: Banner})
}

// Health reports liveness plus the number of stored entries.
func Health(serviceName, version string, store *services.EntryStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.HealthResponse{
			Status:  "healthy",
			Service: serviceName,
			Version: version,
			Entries: store.Len(),
		})
	}
}
