package salary

import (
	"context"
	"fmt"
	"time"

	"github.com/dayflow/hrms-backend-go/internal/domain/attendance"
	"github.com/dayflow/hrms-backend-go/internal/domain/employee"
	"github.com/dayflow/hrms-backend-go/internal/domain/leave"
	"github.com/dayflow/hrms-backend-go/internal/domain/salary"
)

// AttendanceReader is the slice of the attendance repository the payroll
// service needs.
type AttendanceReader interface {
	ListByEmployeeRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error)
}

// LeaveReader is the slice of the leave repository the payroll service needs.
type LeaveReader interface {
	ListApprovedOverlapping(ctx context.Context, employeeID string, from, to time.Time) ([]leave.Leave, error)
}

type Service struct {
	salaryRepo     salary.SalaryInfoRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo AttendanceReader
	leaveRepo      LeaveReader
}

func NewService(
	salaryRepo salary.SalaryInfoRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo AttendanceReader,
	leaveRepo LeaveReader,
) *Service {
	return &Service{
		salaryRepo:     salaryRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
	}
}

// GetByEmployeeID returns the stored salary breakdown for an employee.
func (s *Service) GetByEmployeeID(ctx context.Context, employeeID string) (salary.Info, error) {
	return s.salaryRepo.GetByEmployeeID(ctx, employeeID)
}

// Update recalculates the breakdown from the new monthly wage and persists it.
func (s *Service) Update(ctx context.Context, req salary.UpdateSalaryInfoRequest) (salary.Info, error) {
	if err := req.Validate(); err != nil {
		return salary.Info{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return salary.Info{}, err
	}

	components, err := CalculateComponents(req.MonthlyWage)
	if err != nil {
		return salary.Info{}, err
	}

	info, err := s.salaryRepo.Upsert(ctx, salary.Info{
		EmployeeID: req.EmployeeID,
		Components: components,
	})
	if err != nil {
		return salary.Info{}, fmt.Errorf("failed to save salary info: %w", err)
	}
	return info, nil
}

// Calculate previews the breakdown for a wage without persisting anything.
func (s *Service) Calculate(ctx context.Context, req salary.CalculateRequest) (salary.Components, error) {
	if err := req.Validate(); err != nil {
		return salary.Components{}, err
	}
	return CalculateComponents(req.MonthlyWage)
}

// Slip computes the pro-rated payroll breakdown for one employee and month,
// combining the attendance record, approved leaves, and the employee's
// working-day policy.
func (s *Service) Slip(ctx context.Context, employeeID string, year int, month time.Month) (salary.SlipResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return salary.SlipResponse{}, err
	}

	info, err := s.salaryRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return salary.SlipResponse{}, err
	}

	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	records, err := s.attendanceRepo.ListByEmployeeRange(ctx, employeeID, from, to)
	if err != nil {
		return salary.SlipResponse{}, fmt.Errorf("failed to load attendance for slip: %w", err)
	}
	approved, err := s.leaveRepo.ListApprovedOverlapping(ctx, employeeID, from, to)
	if err != nil {
		return salary.SlipResponse{}, fmt.Errorf("failed to load leaves for slip: %w", err)
	}

	payableDays, totalDays := ResolvePayableDays(year, month, emp.WorkingDays, records, approved)

	components, err := CalculateProRated(info.MonthlyWage, payableDays, totalDays)
	if err != nil {
		return salary.SlipResponse{}, err
	}

	return salary.SlipResponse{
		EmployeeID:      employeeID,
		Year:            year,
		Month:           int(month),
		PayableDays:     payableDays,
		TotalDays:       totalDays,
		PayableSalary:   components,
		ContractualWage: info.MonthlyWage,
	}, nil
}
