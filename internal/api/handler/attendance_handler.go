package handler

import (
	"encoding/json"
	"net/http"

	"hrms.lite/internal/apperror"
	"hrms.lite/internal/core"
	"hrms.lite/internal/core/model"

	"github.com/gorilla/mux"
)

type AttendanceHandler struct {
	Service *core.AttendanceService
}

type markAttendanceRequest struct {
	EmployeeID string                 `json:"employee_id"`
	Date       string                 `json:"date"`
	Status     model.AttendanceStatus `json:"status"`
}

// Mark records attendance for one employee-day. A repeat mark for the same
// day answers 200 instead of 201 since no new record is created.
func (h *AttendanceHandler) Mark(w http.ResponseWriter, r *http.Request) {
	var req markAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, apperror.BadRequest("Invalid request body"))
		return
	}

	if req.EmployeeID == "" || req.Date == "" || req.Status == "" {
		writeValidationError(w, map[string]string{"fields": "employee_id, date and status are required"})
		return
	}

	record, created, err := h.Service.MarkAttendance(r.Context(), req.EmployeeID, req.Date, req.Status)
	if err != nil {
		writeError(w, r, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, record)
}

// Query answers the attendance summary for one employee. The date and month
// filters apply only when the query parameter is actually present.
func (h *AttendanceHandler) Query(w http.ResponseWriter, r *http.Request) {
	employeeID := mux.Vars(r)["employeeId"]

	var q core.AttendanceQuery
	params := r.URL.Query()
	if params.Has("date") {
		date := params.Get("date")
		q.Date = &date
	}
	if params.Has("month") {
		month := params.Get("month")
		q.Month = &month
	}

	summary, err := h.Service.GetEmployeeAttendance(r.Context(), employeeID, q)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
