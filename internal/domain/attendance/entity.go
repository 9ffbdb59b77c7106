package attendance

import "time"

type Status string

const (
	StatusPresent Status = "PRESENT"
	StatusAbsent  Status = "ABSENT"
	StatusHalfDay Status = "HALF_DAY"
	StatusLeave   Status = "LEAVE"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusHalfDay, StatusLeave:
		return true
	}
	return false
}

// Attendance is one row per (employee, calendar day). CheckOut fills
// WorkHours and ExtraHours once; StatusLeave overrides any other derivation
// for that day.
type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	CheckIn    *time.Time
	CheckOut   *time.Time
	WorkHours  float64
	ExtraHours float64
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	EmployeeName *string
}
