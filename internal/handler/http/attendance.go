package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/dayflow/hrms-backend-go/internal/domain/attendance"
	"github.com/dayflow/hrms-backend-go/internal/handler/http/response"
	attendanceService "github.com/dayflow/hrms-backend-go/internal/service/attendance"
	"github.com/go-chi/chi/v5"
)

var (
	errInvalidYear  = errors.New("year must be a valid number")
	errInvalidMonth = errors.New("month must be between 1 and 12")
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	MonthlyStats(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService *attendanceService.Service
}

func NewAttendanceHandler(s *attendanceService.Service) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: s}
}

// CheckIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	caller, ok := claimsFromRequest(r)
	if !ok || caller.EmployeeID == "" {
		response.Unauthorized(w, "employee_id claim is missing or invalid")
		return
	}

	att, err := h.attendanceService.CheckIn(r.Context(), caller.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Checked in successfully", toAttendanceResponse(att))
}

// CheckOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	caller, ok := claimsFromRequest(r)
	if !ok || caller.EmployeeID == "" {
		response.Unauthorized(w, "employee_id claim is missing or invalid")
		return
	}

	att, err := h.attendanceService.CheckOut(r.Context(), caller.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked out successfully", toAttendanceResponse(att))
}

// Today implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	caller, ok := claimsFromRequest(r)
	if !ok || caller.EmployeeID == "" {
		response.Unauthorized(w, "employee_id claim is missing or invalid")
		return
	}

	att, err := h.attendanceService.Today(r.Context(), caller.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if att == nil {
		response.Success(w, nil)
		return
	}

	response.Success(w, toAttendanceResponse(*att))
}

// List implements AttendanceHandler.
func (h *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	caller, ok := claimsFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Failed to extract claims from context")
		return
	}

	filter := attendance.Filter{}

	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		resolved, ok := resolveEmployeeID(caller, employeeID)
		if !ok {
			response.Forbidden(w, "Cannot access another employee's attendance")
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

	if startDate := r.URL.Query().Get("start_date"); startDate != "" {
		if t, err := time.Parse("2006-01-02", startDate); err == nil {
			filter.StartDate = &t
		}
	}
	if endDate := r.URL.Query().Get("end_date"); endDate != "" {
		if t, err := time.Parse("2006-01-02", endDate); err == nil {
			filter.EndDate = &t
		}
	}
	if status := r.URL.Query().Get("status"); status != "" {
		s := attendance.Status(status)
		if !s.Valid() {
			response.HandleError(w, attendance.ErrInvalidStatus)
			return
		}
		filter.Status = &s
	}

	records, err := h.attendanceService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		resp = append(resp, toAttendanceResponse(att))
	}
	response.Success(w, resp)
}

// UpdateStatus implements AttendanceHandler.
func (h *AttendanceHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Attendance ID is required", nil)
		return
	}

	var req attendance.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	att, err := h.attendanceService.UpdateStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance status updated successfully", toAttendanceResponse(att))
}

// MonthlyStats implements AttendanceHandler.
func (h *AttendanceHandlerImpl) MonthlyStats(w http.ResponseWriter, r *http.Request) {
	caller, ok := claimsFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Failed to extract claims from context")
		return
	}

	employeeID, ok := resolveEmployeeID(caller, chi.URLParam(r, "id"))
	if !ok {
		response.Forbidden(w, "Cannot access another employee's attendance")
		return
	}

	year, month, err := parseYearMonth(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	stats, err := h.attendanceService.MonthlyStats(r.Context(), employeeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

func parseYearMonth(r *http.Request) (int, time.Month, error) {
	now := time.Now()
	year := now.Year()
	month := now.Month()

	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		y, err := strconv.Atoi(yearStr)
		if err != nil || y < 1970 {
			return 0, 0, errInvalidYear
		}
		year = y
	}
	if monthStr := r.URL.Query().Get("month"); monthStr != "" {
		m, err := strconv.Atoi(monthStr)
		if err != nil || m < 1 || m > 12 {
			return 0, 0, errInvalidMonth
		}
		month = time.Month(m)
	}
	return year, month, nil
}

func toAttendanceResponse(att attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:           att.ID,
		EmployeeID:   att.EmployeeID,
		EmployeeName: att.EmployeeName,
		Date:         att.Date.Format("2006-01-02"),
		CheckIn:      att.CheckIn,
		CheckOut:     att.CheckOut,
		WorkHours:    att.WorkHours,
		ExtraHours:   att.ExtraHours,
		Status:       string(att.Status),
	}
}
