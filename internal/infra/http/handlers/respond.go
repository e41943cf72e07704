package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/pipetrack/pipetrack/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeErrorMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeError maps the usecase error taxonomy onto HTTP statuses. Technical
// detail stays in the server log, never in the response body.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case usecase.IsAuthError(err):
		writeErrorMessage(w, http.StatusUnauthorized, err.Error())
	case usecase.IsDomainError(err):
		writeErrorMessage(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("internal error: %v", err)
		writeErrorMessage(w, http.StatusInternalServerError, "internal server error")
	}
}
