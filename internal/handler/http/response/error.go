package response

import (
	"errors"
	"net/http"

	"github.com/dayflow/hrms-backend-go/internal/domain/attendance"
	"github.com/dayflow/hrms-backend-go/internal/domain/auth"
	"github.com/dayflow/hrms-backend-go/internal/domain/employee"
	"github.com/dayflow/hrms-backend-go/internal/domain/leave"
	"github.com/dayflow/hrms-backend-go/internal/domain/salary"
	"github.com/dayflow/hrms-backend-go/internal/domain/user"
	"github.com/dayflow/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "No check-in found for today", nil)
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out today")
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, "Invalid attendance status", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrNoAllocation):
		BadRequest(w, "No leave allocation for this type and year", nil)
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, "Insufficient leave balance", nil)
	case errors.Is(err, leave.ErrAllocationExists):
		Conflict(w, "Leave allocation already exists")
	case errors.Is(err, leave.ErrAllocationNotFound):
		NotFound(w, "Leave allocation not found")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "End date must not be before start date", nil)

	// Salary domain errors
	case errors.Is(err, salary.ErrSalaryInfoNotFound):
		NotFound(w, "Salary information not found")
	case errors.Is(err, salary.ErrInvalidMonthlyWage):
		BadRequest(w, "Monthly wage must be greater than 0", nil)
	case errors.Is(err, salary.ErrWageTooLow):
		BadRequest(w, "Monthly wage is too low to cover the fixed components", nil)
	case errors.Is(err, salary.ErrComponentMismatch):
		InternalServerError(w, "Salary components failed the consistency check")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
