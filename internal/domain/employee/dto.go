package employee

import (
	"time"

	"github.com/dayflow/hrms-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Email         string   `json:"email"`
	Password      string   `json:"password"`
	EmployeeCode  string   `json:"employee_code"`
	FirstName     string   `json:"first_name"`
	LastName      string   `json:"last_name"`
	Phone         *string  `json:"phone,omitempty"`
	Department    *string  `json:"department,omitempty"`
	JobPosition   *string  `json:"job_position,omitempty"`
	Company       *string  `json:"company,omitempty"`
	ManagerID     *string  `json:"manager_id,omitempty"`
	Location      *string  `json:"location,omitempty"`
	DateOfJoining string   `json:"date_of_joining"`
	WorkingDays   []int    `json:"working_days,omitempty"`
	BreakHours    *float64 `json:"break_hours,omitempty"`
}

func (r CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 8 characters"})
	}
	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "is required"})
	}
	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.DateOfJoining); !ok {
		errs = append(errs, validator.ValidationError{Field: "date_of_joining", Message: "must be in YYYY-MM-DD format"})
	}
	for _, d := range r.WorkingDays {
		if d < 0 || d > 6 {
			errs = append(errs, validator.ValidationError{Field: "working_days", Message: "weekday numbers must be between 0 and 6"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID          string   `json:"-"`
	FirstName   *string  `json:"first_name,omitempty"`
	LastName    *string  `json:"last_name,omitempty"`
	Phone       *string  `json:"phone,omitempty"`
	Department  *string  `json:"department,omitempty"`
	JobPosition *string  `json:"job_position,omitempty"`
	Location    *string  `json:"location,omitempty"`
	WorkingDays []int    `json:"working_days,omitempty"`
	BreakHours  *float64 `json:"break_hours,omitempty"`
}

func (r UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FirstName != nil && validator.IsEmpty(*r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "must not be empty"})
	}
	if r.LastName != nil && validator.IsEmpty(*r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "must not be empty"})
	}
	if r.BreakHours != nil && *r.BreakHours < 0 {
		errs = append(errs, validator.ValidationError{Field: "break_hours", Message: "must not be negative"})
	}
	for _, d := range r.WorkingDays {
		if d < 0 || d > 6 {
			errs = append(errs, validator.ValidationError{Field: "working_days", Message: "weekday numbers must be between 0 and 6"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	EmployeeCode  string    `json:"employee_code"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Phone         *string   `json:"phone,omitempty"`
	Department    *string   `json:"department,omitempty"`
	JobPosition   *string   `json:"job_position,omitempty"`
	Company       *string   `json:"company,omitempty"`
	Location      *string   `json:"location,omitempty"`
	DateOfJoining time.Time `json:"date_of_joining"`
	WorkingDays   []int     `json:"working_days"`
	BreakHours    float64   `json:"break_hours"`
}
