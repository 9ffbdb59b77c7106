package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dayflow/hrms-backend-go/internal/domain/salary"
	"github.com/dayflow/hrms-backend-go/internal/handler/http/response"
	salaryService "github.com/dayflow/hrms-backend-go/internal/service/salary"
	"github.com/go-chi/chi/v5"
)

type SalaryHandler interface {
	Calculate(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Slip(w http.ResponseWriter, r *http.Request)
}

type SalaryHandlerImpl struct {
	salaryService *salaryService.Service
}

func NewSalaryHandler(s *salaryService.Service) SalaryHandler {
	return &SalaryHandlerImpl{salaryService: s}
}

// Calculate implements SalaryHandler. Previews a component breakdown without
// persisting anything.
func (h *SalaryHandlerImpl) Calculate(w http.ResponseWriter, r *http.Request) {
	var req salary.CalculateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Calculate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	components, err := h.salaryService.Calculate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, components)
}

// Get implements SalaryHandler.
func (h *SalaryHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	caller, ok := claimsFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Failed to extract claims from context")
		return
	}

	employeeID, ok := resolveEmployeeID(caller, chi.URLParam(r, "id"))
	if !ok {
		response.Forbidden(w, "Cannot access another employee's salary")
		return
	}

	info, err := h.salaryService.GetByEmployeeID(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, info.Components)
}

// Update implements SalaryHandler.
func (h *SalaryHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	var req salary.UpdateSalaryInfoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update salary decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = id

	info, err := h.salaryService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary information updated successfully", info.Components)
}

// Slip implements SalaryHandler. Returns the pro-rated breakdown for one
// payroll month.
func (h *SalaryHandlerImpl) Slip(w http.ResponseWriter, r *http.Request) {
	caller, ok := claimsFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Failed to extract claims from context")
		return
	}

	employeeID, ok := resolveEmployeeID(caller, chi.URLParam(r, "id"))
	if !ok {
		response.Forbidden(w, "Cannot access another employee's salary slip")
		return
	}

	year, month, err := parseYearMonth(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	slip, err := h.salaryService.Slip(r.Context(), employeeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, slip)
}
