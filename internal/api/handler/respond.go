package handler

import (
	"encoding/json"
	"net/http"

	"hrms.lite/internal/apperror"

	"github.com/rs/zerolog/log"
)

// errorBody is the error envelope every failure response carries.
type errorBody struct {
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// messageBody is the confirmation payload for operations without a resource body.
type messageBody struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

// writeError maps any error onto the {message, details} envelope via apperror.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := apperror.From(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("Request failed")
	}
	writeJSON(w, appErr.HTTPStatus, errorBody{Message: appErr.Message, Details: appErr.Details})
}

func writeValidationError(w http.ResponseWriter, details map[string]string) {
	writeJSON(w, http.StatusUnprocessableEntity, errorBody{Message: "Validation error", Details: details})
}
