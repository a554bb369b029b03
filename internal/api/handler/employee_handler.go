package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"hrms.lite/internal/apperror"
	"hrms.lite/internal/core"
	"hrms.lite/internal/core/model"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

type EmployeeHandler struct {
	Service  *core.EmployeeService
	Validate *validator.Validate
}

type createEmployeeRequest struct {
	EmployeeID string `json:"employee_id" validate:"required,min=2,max=32"`
	FullName   string `json:"full_name" validate:"required,min=2,max=150"`
	Email      string `json:"email" validate:"required,email"`
	Department string `json:"department" validate:"required,min=2,max=100"`
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, apperror.BadRequest("Invalid request body"))
		return
	}

	if details, ok := h.validate(req); !ok {
		writeValidationError(w, details)
		return
	}

	created, err := h.Service.CreateEmployee(r.Context(), model.Employee{
		EmployeeID: req.EmployeeID,
		FullName:   req.FullName,
		Email:      req.Email,
		Department: req.Department,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Service.ListEmployees(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, employees)
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	employeeID := mux.Vars(r)["employeeId"]

	if err := h.Service.DeleteEmployee(r.Context(), employeeID); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageBody{Message: "Employee deleted successfully"})
}

// validate runs struct validation and flattens failures into a field->reason map.
func (h *EmployeeHandler) validate(req createEmployeeRequest) (map[string]string, bool) {
	err := h.Validate.Struct(req)
	if err == nil {
		return nil, true
	}

	details := make(map[string]string)
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			switch fe.Tag() {
			case "required":
				details[fe.Field()] = "is required"
			case "email":
				details[fe.Field()] = "must be a valid email address"
			default:
				details[fe.Field()] = "is invalid"
			}
		}
	}
	return details, false
}
