package attendance

import (
	"time"

	"github.com/dayflow/hrms-backend-go/internal/pkg/validator"
)

type Filter struct {
	EmployeeID *string
	StartDate  *time.Time
	EndDate    *time.Time
	Status     *Status
}

type UpdateStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "is required"})
	} else if !Status(r.Status).Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of PRESENT, ABSENT, HALF_DAY, LEAVE"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID           string     `json:"id"`
	EmployeeID   string     `json:"employee_id"`
	EmployeeName *string    `json:"employee_name,omitempty"`
	Date         string     `json:"date"`
	CheckIn      *time.Time `json:"check_in,omitempty"`
	CheckOut     *time.Time `json:"check_out,omitempty"`
	WorkHours    float64    `json:"work_hours"`
	ExtraHours   float64    `json:"extra_hours"`
	Status       string     `json:"status"`
}

// MonthlyStats summarises one employee's attendance for a month.
type MonthlyStats struct {
	TotalDays       int     `json:"total_days"`
	PresentDays     int     `json:"present_days"`
	AbsentDays      int     `json:"absent_days"`
	HalfDays        int     `json:"half_days"`
	LeaveDays       int     `json:"leave_days"`
	TotalWorkHours  float64 `json:"total_work_hours"`
	TotalExtraHours float64 `json:"total_extra_hours"`
}
