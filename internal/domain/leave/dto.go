package leave

import (
	"time"

	"github.com/dayflow/hrms-backend-go/internal/pkg/validator"
)

type Filter struct {
	EmployeeID *string
	Status     *Status
}

type CreateLeaveRequest struct {
	EmployeeID string  `json:"-"`
	LeaveType  string  `json:"leave_type"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Remarks    *string `json:"remarks,omitempty"`
}

func (r CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if !LeaveType(r.LeaveType).Valid() {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "must be one of PAID, SICK, UNPAID"})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be in YYYY-MM-DD format"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be in YYYY-MM-DD format"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RejectLeaveRequest struct {
	Reason *string `json:"reason,omitempty"`
}

type CreateAllocationRequest struct {
	EmployeeID    string `json:"employee_id"`
	LeaveType     string `json:"leave_type"`
	AllocatedDays int    `json:"allocated_days"`
	Year          int    `json:"year"`
}

func (r CreateAllocationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !LeaveType(r.LeaveType).Valid() {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "must be one of PAID, SICK, UNPAID"})
	}
	if r.AllocatedDays <= 0 {
		errs = append(errs, validator.ValidationError{Field: "allocated_days", Message: "must be greater than 0"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveResponse struct {
	ID           string     `json:"id"`
	EmployeeID   string     `json:"employee_id"`
	EmployeeName *string    `json:"employee_name,omitempty"`
	LeaveType    string     `json:"leave_type"`
	StartDate    string     `json:"start_date"`
	EndDate      string     `json:"end_date"`
	Days         int        `json:"days"`
	Remarks      *string    `json:"remarks,omitempty"`
	Status       string     `json:"status"`
	ApprovedBy   *string    `json:"approved_by,omitempty"`
	ApprovedAt   *time.Time `json:"approved_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type AllocationResponse struct {
	ID            string `json:"id"`
	EmployeeID    string `json:"employee_id"`
	LeaveType     string `json:"leave_type"`
	Year          int    `json:"year"`
	AllocatedDays int    `json:"allocated_days"`
	UsedDays      int    `json:"used_days"`
	RemainingDays int    `json:"remaining_days"`
}
