package attendance

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/dayflow/hrms-backend-go/internal/domain/attendance"
	"github.com/dayflow/hrms-backend-go/internal/domain/employee"
)

// Hours worked past this threshold in a day count as extra hours.
const regularHoursPerDay = 9.0

type Service struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	now            func() time.Time
}

func NewService(attendanceRepo attendance.AttendanceRepository, employeeRepo employee.EmployeeRepository) *Service {
	return &Service{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		now:            time.Now,
	}
}

// CheckIn opens today's attendance record for the employee and marks it
// PRESENT. A second check-in on the same day is rejected.
func (s *Service) CheckIn(ctx context.Context, employeeID string) (attendance.Attendance, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return attendance.Attendance{}, err
	}

	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.Attendance{}, err
	}
	if existing != nil && existing.CheckIn != nil {
		return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
	}

	if existing != nil {
		existing.CheckIn = &now
		existing.Status = attendance.StatusPresent
		if err := s.attendanceRepo.Update(ctx, *existing); err != nil {
			return attendance.Attendance{}, err
		}
		return *existing, nil
	}

	created, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		EmployeeID: employeeID,
		Date:       today,
		CheckIn:    &now,
		Status:     attendance.StatusPresent,
	})
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance record: %w", err)
	}
	return created, nil
}

// CheckOut closes today's record and derives the hour totals. Work hours are
// the span between check-in and check-out minus the employee's break hours;
// anything beyond the regular nine counts as extra hours.
func (s *Service) CheckOut(ctx context.Context, employeeID string) (attendance.Attendance, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.Attendance{}, err
	}

	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.Attendance{}, err
	}
	if existing == nil || existing.CheckIn == nil {
		return attendance.Attendance{}, attendance.ErrNotCheckedIn
	}
	if existing.CheckOut != nil {
		return attendance.Attendance{}, attendance.ErrAlreadyCheckedOut
	}

	workHours := now.Sub(*existing.CheckIn).Hours() - emp.BreakHours
	if workHours < 0 {
		workHours = 0
	}
	workHours = round2(workHours)

	existing.CheckOut = &now
	existing.WorkHours = workHours
	existing.ExtraHours = round2(math.Max(0, workHours-regularHoursPerDay))

	if err := s.attendanceRepo.Update(ctx, *existing); err != nil {
		return attendance.Attendance{}, err
	}
	return *existing, nil
}

// Today returns the employee's record for the current day, or nil when none
// exists yet.
func (s *Service) Today(ctx context.Context, employeeID string) (*attendance.Attendance, error) {
	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, today)
}

// List returns attendance records matching the filter.
func (s *Service) List(ctx context.Context, filter attendance.Filter) ([]attendance.Attendance, error) {
	return s.attendanceRepo.List(ctx, filter)
}

// UpdateStatus lets an admin override the derived status of a day, for example
// to mark a no-show ABSENT or downgrade a short day to HALF_DAY.
func (s *Service) UpdateStatus(ctx context.Context, req attendance.UpdateStatusRequest) (attendance.Attendance, error) {
	if err := req.Validate(); err != nil {
		return attendance.Attendance{}, err
	}

	att, err := s.attendanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.Attendance{}, err
	}

	att.Status = attendance.Status(req.Status)
	if err := s.attendanceRepo.Update(ctx, att); err != nil {
		return attendance.Attendance{}, err
	}
	return att, nil
}

// MonthlyStats aggregates one employee's attendance for a month.
func (s *Service) MonthlyStats(ctx context.Context, employeeID string, year int, month time.Month) (attendance.MonthlyStats, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return attendance.MonthlyStats{}, err
	}

	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	records, err := s.attendanceRepo.ListByEmployeeRange(ctx, employeeID, from, to)
	if err != nil {
		return attendance.MonthlyStats{}, err
	}

	stats := attendance.MonthlyStats{TotalDays: to.Day()}
	for _, rec := range records {
		switch rec.Status {
		case attendance.StatusPresent:
			stats.PresentDays++
		case attendance.StatusAbsent:
			stats.AbsentDays++
		case attendance.StatusHalfDay:
			stats.HalfDays++
		case attendance.StatusLeave:
			stats.LeaveDays++
		}
		stats.TotalWorkHours += rec.WorkHours
		stats.TotalExtraHours += rec.ExtraHours
	}
	stats.TotalWorkHours = round2(stats.TotalWorkHours)
	stats.TotalExtraHours = round2(stats.TotalExtraHours)

	return stats, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
