package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records.
type AttendanceRepository interface {
	// Create creates a new attendance record
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetByID retrieves attendance by ID
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByEmployeeAndDate retrieves attendance for a specific employee on a
	// specific date. Returns nil when no record exists for that day.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// Update updates an existing attendance record
	Update(ctx context.Context, att Attendance) error

	// UpsertLeaveDay creates the record for (employeeID, date) with status
	// LEAVE, or overwrites the status of an existing record. Leave approval
	// always wins over a prior PRESENT or HALF_DAY entry.
	UpsertLeaveDay(ctx context.Context, employeeID string, date time.Time) error

	// ListByEmployeeRange retrieves records for [from, to] inclusive
	ListByEmployeeRange(ctx context.Context, employeeID string, from, to time.Time) ([]Attendance, error)

	// List retrieves attendance records with filters
	List(ctx context.Context, filter Filter) ([]Attendance, error)
}
