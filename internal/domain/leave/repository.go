package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	Create(ctx context.Context, l Leave) (Leave, error)
	GetByID(ctx context.Context, id string) (Leave, error)
	// UpdateStatus records a terminal state transition together with approver
	// identity.
	UpdateStatus(ctx context.Context, id string, status Status, approvedBy string, approvedAt time.Time) error
	List(ctx context.Context, filter Filter) ([]Leave, error)
	// ListApprovedOverlapping returns the employee's APPROVED leaves whose
	// date range intersects [from, to] inclusive.
	ListApprovedOverlapping(ctx context.Context, employeeID string, from, to time.Time) ([]Leave, error)
}

type AllocationRepository interface {
	Create(ctx context.Context, a Allocation) (Allocation, error)
	GetByEmployeeTypeYear(ctx context.Context, employeeID string, leaveType LeaveType, year int) (Allocation, error)
	ListByEmployeeYear(ctx context.Context, employeeID string, year int) ([]Allocation, error)
	// AddUsedDays increments used_days by days, guarded so that used_days
	// never exceeds allocated_days. Returns ErrInsufficientBalance when the
	// guard rejects the increment.
	AddUsedDays(ctx context.Context, id string, days int) error
}
