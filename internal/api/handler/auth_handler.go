package handler

import (
	"crypto/hmac"
	"encoding/json"
	"net/http"
	"strings"

	"hrms.lite/internal/apperror"
)

type AuthHandler struct {
	SuperadminKey string
}

type enterRequest struct {
	Key string `json:"key"`
}

// Enter checks the submitted key against the configured superadmin key.
// The comparison is constant-time; the key itself never leaves the server.
func (h *AuthHandler) Enter(w http.ResponseWriter, r *http.Request) {
	var req enterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, apperror.BadRequest("Invalid request body"))
		return
	}

	expected := strings.TrimSpace(h.SuperadminKey)
	provided := strings.TrimSpace(req.Key)

	if expected == "" {
		writeError(w, r, apperror.New(apperror.CodeInternalError, "SUPERADMIN_KEY is not configured", http.StatusInternalServerError))
		return
	}

	if !hmac.Equal([]byte(provided), []byte(expected)) {
		writeError(w, r, apperror.Unauthorized("Invalid superadmin key"))
		return
	}

	writeJSON(w, http.StatusOK, messageBody{Message: "Access granted"})
}
