package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/Vasanthadithya-mundrathi/AI-journal-COSC/internal/models"
)

// writeJSON encodes v before touching w, so an encoding failure can still be
// reported with a proper status.
func writeJSON(w http.ResponseWriter, status int, v interface{}) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
	return nil
}

func writeError(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(models.ErrorResponse{Detail: detail})
}
