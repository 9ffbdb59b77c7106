package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/dayflow/hrms-backend-go/internal/domain/leave"
	"github.com/dayflow/hrms-backend-go/internal/handler/http/response"
	leaveService "github.com/dayflow/hrms-backend-go/internal/service/leave"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	CreateRequest(w http.ResponseWriter, r *http.Request)
	GetRequest(w http.ResponseWriter, r *http.Request)
	ListRequests(w http.ResponseWriter, r *http.Request)
	ApproveRequest(w http.ResponseWriter, r *http.Request)
	RejectRequest(w http.ResponseWriter, r *http.Request)

	CreateAllocation(w http.ResponseWriter, r *http.Request)
	ListAllocations(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService *leaveService.Service
}

func NewLeaveHandler(s *leaveService.Service) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: s}
}

// CreateRequest implements LeaveHandler.
func (h *LeaveHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	caller, ok := claimsFromRequest(r)
	if !ok || caller.EmployeeID == "" {
		response.Unauthorized(w, "employee_id claim is missing or invalid")
		return
	}

	var req leave.CreateLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Always take the employee from the token, never the body.
	req.EmployeeID = caller.EmployeeID

	created, err := h.leaveService.Request(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request created successfully", toLeaveResponse(created))
}

// GetRequest implements LeaveHandler.
func (h *LeaveHandlerImpl) GetRequest(w http.ResponseWriter, r *http.Request) {
	caller, ok := claimsFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Failed to extract claims from context")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Leave request ID is required", nil)
		return
	}

	l, err := h.leaveService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if !caller.Role.IsStaff() && l.EmployeeID != caller.EmployeeID {
		response.Forbidden(w, "Cannot access another employee's leave request")
		return
	}

	response.Success(w, toLeaveResponse(l))
}

// ListRequests implements LeaveHandler.
func (h *LeaveHandlerImpl) ListRequests(w http.ResponseWriter, r *http.Request) {
	caller, ok := claimsFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Failed to extract claims from context")
		return
	}

	filter := leave.Filter{}

	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		resolved, ok := resolveEmployeeID(caller, employeeID)
		if !ok {
			response.Forbidden(w, "Cannot access another employee's leave requests")
			return
		}
		filter.EmployeeID = &resolved
	} else if !caller.Role.IsStaff() {
		if caller.EmployeeID == "" {
			response.Unauthorized(w, "employee_id claim is missing or invalid")
			return
		}
		filter.EmployeeID = &caller.EmployeeID
	}

	if status := r.URL.Query().Get("status"); status != "" {
		s := leave.Status(status)
		filter.Status = &s
	}

	leaves, err := h.leaveService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := make([]leave.LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		resp = append(resp, toLeaveResponse(l))
	}
	response.Success(w, resp)
}

// ApproveRequest implements LeaveHandler.
func (h *LeaveHandlerImpl) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	caller, ok := claimsFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Failed to extract claims from context")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Leave request ID is required", nil)
		return
	}

	approved, err := h.leaveService.Approve(r.Context(), id, caller.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request approved successfully", toLeaveResponse(approved))
}

// RejectRequest implements LeaveHandler.
func (h *LeaveHandlerImpl) RejectRequest(w http.ResponseWriter, r *http.Request) {
	caller, ok := claimsFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Failed to extract claims from context")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Leave request ID is required", nil)
		return
	}

	var req leave.RejectLeaveRequest
	if r.Body != nil && r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Error("RejectRequest decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	rejected, err := h.leaveService.Reject(r.Context(), id, caller.UserID, req.Reason)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request rejected successfully", toLeaveResponse(rejected))
}

// CreateAllocation implements LeaveHandler.
func (h *LeaveHandlerImpl) CreateAllocation(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateAllocationRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateAllocation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	a, err := h.leaveService.CreateAllocation(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave allocation created successfully", toAllocationResponse(a))
}

// ListAllocations implements LeaveHandler.
func (h *LeaveHandlerImpl) ListAllocations(w http.ResponseWriter, r *http.Request) {
	caller, ok := claimsFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Failed to extract claims from context")
		return
	}

	employeeID, ok := resolveEmployeeID(caller, r.URL.Query().Get("employee_id"))
	if !ok {
		response.Forbidden(w, "Cannot access another employee's allocations")
		return
	}

	year := time.Now().Year()
	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		y, err := strconv.Atoi(yearStr)
		if err != nil {
			response.BadRequest(w, "year must be a valid number", nil)
			return
		}
		year = y
	}

	allocations, err := h.leaveService.ListAllocations(r.Context(), employeeID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := make([]leave.AllocationResponse, 0, len(allocations))
	for _, a := range allocations {
		resp = append(resp, toAllocationResponse(a))
	}
	response.Success(w, resp)
}

func toLeaveResponse(l leave.Leave) leave.LeaveResponse {
	return leave.LeaveResponse{
		ID:           l.ID,
		EmployeeID:   l.EmployeeID,
		EmployeeName: l.EmployeeName,
		LeaveType:    string(l.LeaveType),
		StartDate:    l.StartDate.Format("2006-01-02"),
		EndDate:      l.EndDate.Format("2006-01-02"),
		Days:         l.Days(),
		Remarks:      l.Remarks,
		Status:       string(l.Status),
		ApprovedBy:   l.ApprovedBy,
		ApprovedAt:   l.ApprovedAt,
		CreatedAt:    l.CreatedAt,
	}
}

func toAllocationResponse(a leave.Allocation) leave.AllocationResponse {
	return leave.AllocationResponse{
		ID:            a.ID,
		EmployeeID:    a.EmployeeID,
		LeaveType:     string(a.LeaveType),
		Year:          a.Year,
		AllocatedDays: a.AllocatedDays,
		UsedDays:      a.UsedDays,
		RemainingDays: a.Remaining(),
	}
}
