package api

import (
	"net/http"

	"hrms.lite/internal/api/handler"
	"hrms.lite/internal/core"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

// NewRouter sets up the gorilla/mux router and defines all API routes.
// The auth endpoint and the health check are open; everything else sits
// behind the superadmin key middleware.
func NewRouter(superadminKey string, employees *core.EmployeeService, attendance *core.AttendanceService) *mux.Router {

	authHandler := handler.AuthHandler{SuperadminKey: superadminKey}
	employeeHandler := handler.EmployeeHandler{
		Service:  employees,
		Validate: validator.New(validator.WithRequiredStructEnabled()),
	}
	attendanceHandler := handler.AttendanceHandler{Service: attendance}

	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/auth/enter", authHandler.Enter).Methods(http.MethodPost)

	guarded := api.NewRoute().Subrouter()
	guarded.Use(RequireSuperadminKey(superadminKey))

	guarded.HandleFunc("/employees", employeeHandler.Create).Methods(http.MethodPost)
	guarded.HandleFunc("/employees", employeeHandler.List).Methods(http.MethodGet)
	guarded.HandleFunc("/employees/{employeeId}", employeeHandler.Delete).Methods(http.MethodDelete)

	guarded.HandleFunc("/attendance", attendanceHandler.Mark).Methods(http.MethodPost)
	guarded.HandleFunc("/attendance/{employeeId}", attendanceHandler.Query).Methods(http.MethodGet)

	return r
}
