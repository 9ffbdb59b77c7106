package salary

import (
	"time"

	"github.com/dayflow/hrms-backend-go/internal/domain/attendance"
	"github.com/dayflow/hrms-backend-go/internal/domain/employee"
	"github.com/dayflow/hrms-backend-go/internal/domain/leave"
)

// ResolvePayableDays walks every calendar day of the month and accumulates the
// payable-day count:
//
//	PRESENT   +1.0
//	HALF_DAY  +0.5
//	LEAVE     +1.0 when an APPROVED paid leave type covers the day, else +0
//	ABSENT    +0
//	no record +1.0 on non-working weekdays (rest days are paid), +0 otherwise
//
// Records are matched by date only; time of day on Date is ignored.
func ResolvePayableDays(year int, month time.Month, workingDays employee.WorkingDaySet, records []attendance.Attendance, approved []leave.Leave) (payableDays float64, totalDays int) {
	if len(workingDays) == 0 {
		workingDays = employee.DefaultWorkingDays()
	}

	byDate := make(map[string]attendance.Attendance, len(records))
	for _, rec := range records {
		byDate[rec.Date.Format("2006-01-02")] = rec
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	totalDays = first.AddDate(0, 1, -1).Day()

	for d := 1; d <= totalDays; d++ {
		day := time.Date(year, month, d, 0, 0, 0, 0, time.UTC)

		rec, ok := byDate[day.Format("2006-01-02")]
		if !ok {
			if !workingDays.Contains(day.Weekday()) {
				payableDays += 1.0
			}
			continue
		}

		switch rec.Status {
		case attendance.StatusPresent:
			payableDays += 1.0
		case attendance.StatusHalfDay:
			payableDays += 0.5
		case attendance.StatusLeave:
			if coveredByPaidLeave(day, approved) {
				payableDays += 1.0
			}
		}
	}

	return payableDays, totalDays
}

func coveredByPaidLeave(day time.Time, approved []leave.Leave) bool {
	for _, l := range approved {
		if l.Status != leave.StatusApproved || !l.LeaveType.Payable() {
			continue
		}
		if l.Covers(day) {
			return true
		}
	}
	return false
}
