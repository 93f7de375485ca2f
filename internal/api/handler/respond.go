package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"runtime/debug"
	"time"

	"go-flatfile-orders/internal/model"

	"github.com/google/uuid"
)

func respondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(body)
}

// okData writes a 200 response with the payload wrapped in a data envelope
func okData(w http.ResponseWriter, data interface{}) {
	respondJSON(w, http.StatusOK, map[string]interface{}{"data": data})
}

// badRequest writes the validation error as a 400 with one issue per
// violated constraint
func badRequest(w http.ResponseWriter, verr *model.ValidationError) {
	respondJSON(w, http.StatusBadRequest, verr)
}

// notFound writes a 404 with a single custom issue
func notFound(w http.ResponseWriter, message string, path string) {
	respondJSON(w, http.StatusNotFound, model.NewValidationError(model.Issue{
		Code:    model.IssueCustom,
		Message: message,
		Path:    []string{path},
	}))
}

// serverError logs the full fault server-side and writes a redacted 500
// payload: generic message, trace marker and timestamp only
func serverError(w http.ResponseWriter, err error, path string) {
	traceID := uuid.New().String()
	log.Printf("❌ Internal error trace=%s path=%s: %v\n%s", traceID, path, err, debug.Stack())

	respondJSON(w, http.StatusInternalServerError, model.NewValidationError(model.Issue{
		Code:    model.IssueCustom,
		Message: "Internal server error",
		Path:    []string{path},
		Params: map[string]string{
			"trace":     traceID,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		},
	}))
}
