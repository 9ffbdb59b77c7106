package salary

import (
	"testing"
	"time"

	"github.com/dayflow/hrms-backend-go/internal/domain/attendance"
	"github.com/dayflow/hrms-backend-go/internal/domain/employee"
	"github.com/dayflow/hrms-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
)

// June 2025 has 30 days; the 1st is a Sunday. With a Mon-Fri working week
// there are 9 rest days (5 Sundays, 4 Saturdays) and 21 working days.
func june(day int) time.Time {
	return time.Date(2025, time.June, day, 0, 0, 0, 0, time.UTC)
}

func present(day int) attendance.Attendance {
	return attendance.Attendance{Date: june(day), Status: attendance.StatusPresent}
}

func TestResolvePayableDays_EmptyMonth(t *testing.T) {
	payable, total := ResolvePayableDays(2025, time.June, employee.DefaultWorkingDays(), nil, nil)

	assert.Equal(t, 30, total)
	// No records at all: rest days still pay, working days do not.
	assert.Equal(t, 9.0, payable)
}

func TestResolvePayableDays_PresentAndHalfDays(t *testing.T) {
	records := []attendance.Attendance{
		present(2),
		present(3),
		{Date: june(4), Status: attendance.StatusHalfDay},
		{Date: june(5), Status: attendance.StatusAbsent},
	}

	payable, total := ResolvePayableDays(2025, time.June, employee.DefaultWorkingDays(), records, nil)

	assert.Equal(t, 30, total)
	// 9 rest days + 2 present + 0.5 half day; the absent day adds nothing.
	assert.Equal(t, 11.5, payable)
}

func TestResolvePayableDays_PaidLeaveCountsUnpaidDoesNot(t *testing.T) {
	records := []attendance.Attendance{
		{Date: june(9), Status: attendance.StatusLeave},
		{Date: june(10), Status: attendance.StatusLeave},
		{Date: june(11), Status: attendance.StatusLeave},
	}
	approved := []leave.Leave{
		{LeaveType: leave.LeaveTypePaid, Status: leave.StatusApproved, StartDate: june(9), EndDate: june(9)},
		{LeaveType: leave.LeaveTypeSick, Status: leave.StatusApproved, StartDate: june(10), EndDate: june(10)},
		{LeaveType: leave.LeaveTypeUnpaid, Status: leave.StatusApproved, StartDate: june(11), EndDate: june(11)},
	}

	payable, _ := ResolvePayableDays(2025, time.June, employee.DefaultWorkingDays(), records, approved)

	// 9 rest days + PAID day + SICK day; the UNPAID day adds nothing.
	assert.Equal(t, 11.0, payable)
}

func TestResolvePayableDays_LeaveDayWithoutCoveringApproval(t *testing.T) {
	records := []attendance.Attendance{
		{Date: june(9), Status: attendance.StatusLeave},
	}

	payable, _ := ResolvePayableDays(2025, time.June, employee.DefaultWorkingDays(), records, nil)

	// A LEAVE day no approved leave covers is unpaid.
	assert.Equal(t, 9.0, payable)
}

func TestResolvePayableDays_CustomWorkingDaySet(t *testing.T) {
	sixDayWeek := employee.WorkingDaySet{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday,
	}

	payable, total := ResolvePayableDays(2025, time.June, sixDayWeek, nil, nil)

	assert.Equal(t, 30, total)
	// Only the 5 Sundays are rest days for a six-day week.
	assert.Equal(t, 5.0, payable)
}

func TestResolvePayableDays_IgnoresTimeOfDayOnRecords(t *testing.T) {
	records := []attendance.Attendance{
		{Date: june(2), Status: attendance.StatusLeave},
	}
	approved := []leave.Leave{
		{
			LeaveType: leave.LeaveTypePaid,
			Status:    leave.StatusApproved,
			StartDate: time.Date(2025, time.June, 2, 9, 30, 0, 0, time.UTC),
			EndDate:   time.Date(2025, time.June, 2, 18, 0, 0, 0, time.UTC),
		},
	}

	payable, _ := ResolvePayableDays(2025, time.June, employee.DefaultWorkingDays(), records, approved)

	assert.Equal(t, 10.0, payable)
}
