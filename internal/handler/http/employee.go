package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dayflow/hrms-backend-go/internal/domain/employee"
	"github.com/dayflow/hrms-backend-go/internal/handler/http/response"
	employeeService "github.com/dayflow/hrms-backend-go/internal/service/employee"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	GetMe(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService *employeeService.Service
}

func NewEmployeeHandler(s *employeeService.Service) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: s}
}

// Create implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	emp, err := h.employeeService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created successfully", toEmployeeResponse(emp))
}

// List implements EmployeeHandler.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		resp = append(resp, toEmployeeResponse(emp))
	}
	response.Success(w, resp)
}

// Get implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	caller, ok := claimsFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Failed to extract claims from context")
		return
	}

	employeeID, ok := resolveEmployeeID(caller, chi.URLParam(r, "id"))
	if !ok {
		response.Forbidden(w, "Cannot access another employee's record")
		return
	}

	emp, err := h.employeeService.GetByID(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toEmployeeResponse(emp))
}

// GetMe implements EmployeeHandler.
func (h *EmployeeHandlerImpl) GetMe(w http.ResponseWriter, r *http.Request) {
	caller, ok := claimsFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Failed to extract claims from context")
		return
	}

	emp, err := h.employeeService.GetByUserID(r.Context(), caller.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toEmployeeResponse(emp))
}

// Update implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	emp, err := h.employeeService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", toEmployeeResponse(emp))
}

func toEmployeeResponse(emp employee.Employee) employee.EmployeeResponse {
	workingDays := make([]int, 0, len(emp.WorkingDays))
	for _, d := range emp.WorkingDays {
		workingDays = append(workingDays, int(d))
	}

	return employee.EmployeeResponse{
		ID:            emp.ID,
		UserID:        emp.UserID,
		EmployeeCode:  emp.EmployeeCode,
		FirstName:     emp.FirstName,
		LastName:      emp.LastName,
		Phone:         emp.Phone,
		Department:    emp.Department,
		JobPosition:   emp.JobPosition,
		Company:       emp.Company,
		Location:      emp.Location,
		DateOfJoining: emp.DateOfJoining,
		WorkingDays:   workingDays,
		BreakHours:    emp.BreakHours,
	}
}
