package employee

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// WorkingDaySet is the set of weekdays an employee is expected to work.
// Days outside the set are paid rest days for payroll purposes. Stored as a
// JSONB array of weekday numbers (time.Weekday, Sunday = 0).
type WorkingDaySet []time.Weekday

// DefaultWorkingDays returns the standard five-day week, Monday through Friday.
func DefaultWorkingDays() WorkingDaySet {
	return WorkingDaySet{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}
}

func (s WorkingDaySet) Contains(d time.Weekday) bool {
	for _, day := range s {
		if day == d {
			return true
		}
	}
	return false
}

// Value implements driver.Valuer for database storage
func (s WorkingDaySet) Value() (driver.Value, error) {
	if len(s) == 0 {
		return nil, nil
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner for database retrieval
func (s *WorkingDaySet) Scan(value interface{}) error {
	if value == nil {
		*s = DefaultWorkingDays()
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan WorkingDaySet: invalid type")
	}

	return json.Unmarshal(bytes, s)
}

// Employee entity
type Employee struct {
	ID            string
	UserID        string
	EmployeeCode  string
	FirstName     string
	LastName      string
	Phone         *string
	Department    *string
	JobPosition   *string
	Company       *string
	ManagerID     *string
	Location      *string
	DateOfJoining time.Time
	DateOfBirth   *time.Time

	// Working-day policy consumed by payroll
	WorkingDaysPerWeek int
	BreakHours         float64
	WorkingDays        WorkingDaySet

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
