// In-memory HRMS API stub for developing the console without Postgres or
// LocalStack. It honors the superadmin key check and the upsert semantics
// but keeps everything in a map.
package main

import (
	"encoding/json"
	"log"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"
)

const superadminKey = "local-dev-key"

type employee struct {
	ID         int64     `json:"id"`
	EmployeeID string    `json:"employee_id"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	CreatedAt  time.Time `json:"created_at"`
}

type attendance struct {
	ID         int64     `json:"id"`
	EmployeeID string    `json:"employee_id"`
	Date       string    `json:"date"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type store struct {
	mu        sync.Mutex
	nextID    int64
	employees map[string]employee
	marks     map[string]attendance // keyed employeeID|date
}

func newStore() *store {
	return &store{
		nextID:    1,
		employees: make(map[string]employee),
		marks:     make(map[string]attendance),
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func fail(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"message": message, "details": nil})
}

func guarded(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Superadmin-Key") != superadminKey {
			fail(w, http.StatusUnauthorized, "Invalid superadmin key")
			return
		}
		next(w, r)
	}
}

func main() {
	s := newStore()
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/enter", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Key string `json:"key"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Key != superadminKey {
			fail(w, http.StatusUnauthorized, "Invalid superadmin key")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Access granted"})
	})

	mux.HandleFunc("POST /api/employees", guarded(func(w http.ResponseWriter, r *http.Request) {
		var e employee
		if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
			fail(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, exists := s.employees[e.EmployeeID]; exists {
			fail(w, http.StatusConflict, "Employee with this employee_id already exists")
			return
		}
		e.ID = s.nextID
		s.nextID++
		e.CreatedAt = time.Now().UTC()
		s.employees[e.EmployeeID] = e
		writeJSON(w, http.StatusCreated, e)
	}))

	mux.HandleFunc("GET /api/employees", guarded(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		list := make([]employee, 0, len(s.employees))
		for _, e := range s.employees {
			list = append(list, e)
		}
		sort.Slice(list, func(i, j int) bool { return list[i].EmployeeID < list[j].EmployeeID })
		writeJSON(w, http.StatusOK, list)
	}))

	mux.HandleFunc("DELETE /api/employees/{employeeId}", guarded(func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("employeeId")
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, exists := s.employees[id]; !exists {
			fail(w, http.StatusNotFound, "Employee not found")
			return
		}
		delete(s.employees, id)
		for key := range s.marks {
			if strings.HasPrefix(key, id+"|") {
				delete(s.marks, key)
			}
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Employee deleted successfully"})
	}))

	mux.HandleFunc("POST /api/attendance", guarded(func(w http.ResponseWriter, r *http.Request) {
		var rec attendance
		if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
			fail(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, exists := s.employees[rec.EmployeeID]; !exists {
			fail(w, http.StatusNotFound, "Employee not found")
			return
		}
		key := rec.EmployeeID + "|" + rec.Date
		if existing, exists := s.marks[key]; exists {
			existing.Status = rec.Status
			s.marks[key] = existing
			writeJSON(w, http.StatusOK, existing)
			return
		}
		rec.ID = s.nextID
		s.nextID++
		rec.CreatedAt = time.Now().UTC()
		s.marks[key] = rec
		writeJSON(w, http.StatusCreated, rec)
	}))

	mux.HandleFunc("GET /api/attendance/{employeeId}", guarded(func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("employeeId")
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, exists := s.employees[id]; !exists {
			fail(w, http.StatusNotFound, "Employee not found")
			return
		}
		date := r.URL.Query().Get("date")
		month := r.URL.Query().Get("month")
		records := []attendance{}
		present := 0
		for key, rec := range s.marks {
			if !strings.HasPrefix(key, id+"|") {
				continue
			}
			if date != "" && rec.Date != date {
				continue
			}
			if month != "" && !strings.HasPrefix(rec.Date, month) {
				continue
			}
			records = append(records, rec)
			if rec.Status == "PRESENT" {
				present++
			}
		}
		sort.Slice(records, func(i, j int) bool { return records[i].Date < records[j].Date })
		writeJSON(w, http.StatusOK, map[string]any{
			"employee_id":   id,
			"total_records": len(records),
			"total_present": present,
			"records":       records,
		})
	}))

	log.Println("HRMS API mock server starting on port 8000...")
	log.Fatal(http.ListenAndServe(":8000", mux))
}
