package leave

import "time"

type LeaveType string

const (
	LeaveTypePaid   LeaveType = "PAID"
	LeaveTypeSick   LeaveType = "SICK"
	LeaveTypeUnpaid LeaveType = "UNPAID"
)

func (t LeaveType) Valid() bool {
	switch t {
	case LeaveTypePaid, LeaveTypeSick, LeaveTypeUnpaid:
		return true
	}
	return false
}

// Payable reports whether days taken under this leave type still count
// toward salary.
func (t LeaveType) Payable() bool {
	return t == LeaveTypePaid || t == LeaveTypeSick
}

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Leave is a date-range request. StartDate and EndDate are inclusive; APPROVED
// and REJECTED are terminal states.
type Leave struct {
	ID         string
	EmployeeID string
	LeaveType  LeaveType
	StartDate  time.Time
	EndDate    time.Time
	Remarks    *string
	Status     Status
	ApprovedBy *string
	ApprovedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	EmployeeName *string
}

// Days returns the inclusive day count of the leave range.
func (l Leave) Days() int {
	return InclusiveDays(l.StartDate, l.EndDate)
}

// Covers reports whether day falls within the leave range, comparing dates
// only and ignoring time of day.
func (l Leave) Covers(day time.Time) bool {
	d := dateOnly(day)
	return !d.Before(dateOnly(l.StartDate)) && !d.After(dateOnly(l.EndDate))
}

// InclusiveDays counts calendar days between start and end, both ends
// included.
func InclusiveDays(start, end time.Time) int {
	return int(dateOnly(end).Sub(dateOnly(start)).Hours()/24) + 1
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Allocation is the yearly entitlement of leave days per type, tracked
// separately from usage.
type Allocation struct {
	ID            string
	EmployeeID    string
	LeaveType     LeaveType
	Year          int
	AllocatedDays int
	UsedDays      int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Remaining returns the unused day count.
func (a Allocation) Remaining() int {
	return a.AllocatedDays - a.UsedDays
}
