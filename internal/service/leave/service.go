package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/dayflow/hrms-backend-go/internal/domain/employee"
	"github.com/dayflow/hrms-backend-go/internal/domain/leave"
	"github.com/dayflow/hrms-backend-go/internal/pkg/database"
)

// AttendanceWriter is the slice of the attendance repository the approval
// reconciler needs.
type AttendanceWriter interface {
	UpsertLeaveDay(ctx context.Context, employeeID string, date time.Time) error
}

type Service struct {
	leaveRepo      leave.LeaveRepository
	allocationRepo leave.AllocationRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo AttendanceWriter
	txManager      database.TxManager
}

func NewService(
	leaveRepo leave.LeaveRepository,
	allocationRepo leave.AllocationRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo AttendanceWriter,
	txManager database.TxManager,
) *Service {
	return &Service{
		leaveRepo:      leaveRepo,
		allocationRepo: allocationRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		txManager:      txManager,
	}
}

// Request admits a new PENDING leave request. The balance is checked here so
// obviously doomed requests fail fast, but nothing is deducted until approval.
func (s *Service) Request(ctx context.Context, req leave.CreateLeaveRequest) (leave.Leave, error) {
	if err := req.Validate(); err != nil {
		return leave.Leave{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)
	if end.Before(start) {
		return leave.Leave{}, leave.ErrInvalidDateRange
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return leave.Leave{}, err
	}

	leaveType := leave.LeaveType(req.LeaveType)
	allocation, err := s.allocationRepo.GetByEmployeeTypeYear(ctx, req.EmployeeID, leaveType, start.Year())
	if err != nil {
		if err == leave.ErrAllocationNotFound {
			return leave.Leave{}, leave.ErrNoAllocation
		}
		return leave.Leave{}, err
	}

	days := leave.InclusiveDays(start, end)
	if days > allocation.Remaining() {
		return leave.Leave{}, leave.ErrInsufficientBalance
	}

	created, err := s.leaveRepo.Create(ctx, leave.Leave{
		EmployeeID: req.EmployeeID,
		LeaveType:  leaveType,
		StartDate:  start,
		EndDate:    end,
		Remarks:    req.Remarks,
		Status:     leave.StatusPending,
	})
	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return created, nil
}

// Approve moves a PENDING request to APPROVED, deducts the balance, and marks
// every day of the range as LEAVE in the attendance record. The three writes
// share one transaction; the balance is re-validated here because it may have
// shrunk since the request was admitted.
func (s *Service) Approve(ctx context.Context, leaveID string, approverID string) (leave.Leave, error) {
	var approved leave.Leave

	err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		l, err := s.leaveRepo.GetByID(ctx, leaveID)
		if err != nil {
			return err
		}
		if l.Status != leave.StatusPending {
			return leave.ErrAlreadyProcessed
		}

		now := time.Now()
		if err := s.leaveRepo.UpdateStatus(ctx, leaveID, leave.StatusApproved, approverID, now); err != nil {
			return err
		}

		allocation, err := s.allocationRepo.GetByEmployeeTypeYear(ctx, l.EmployeeID, l.LeaveType, l.StartDate.Year())
		if err != nil {
			if err == leave.ErrAllocationNotFound {
				return leave.ErrNoAllocation
			}
			return err
		}
		if err := s.allocationRepo.AddUsedDays(ctx, allocation.ID, l.Days()); err != nil {
			return err
		}

		for day := l.StartDate; !day.After(l.EndDate); day = day.AddDate(0, 0, 1) {
			if err := s.attendanceRepo.UpsertLeaveDay(ctx, l.EmployeeID, day); err != nil {
				return err
			}
		}

		l.Status = leave.StatusApproved
		l.ApprovedBy = &approverID
		l.ApprovedAt = &now
		approved = l
		return nil
	})
	if err != nil {
		return leave.Leave{}, err
	}
	return approved, nil
}

// Reject moves a PENDING request to REJECTED. No balance is touched.
func (s *Service) Reject(ctx context.Context, leaveID string, approverID string, reason *string) (leave.Leave, error) {
	l, err := s.leaveRepo.GetByID(ctx, leaveID)
	if err != nil {
		return leave.Leave{}, err
	}
	if l.Status != leave.StatusPending {
		return leave.Leave{}, leave.ErrAlreadyProcessed
	}

	now := time.Now()
	if err := s.leaveRepo.UpdateStatus(ctx, leaveID, leave.StatusRejected, approverID, now); err != nil {
		return leave.Leave{}, err
	}

	l.Status = leave.StatusRejected
	l.ApprovedBy = &approverID
	l.ApprovedAt = &now
	if reason != nil {
		l.Remarks = reason
	}
	return l, nil
}

// GetByID returns a single leave request.
func (s *Service) GetByID(ctx context.Context, leaveID string) (leave.Leave, error) {
	return s.leaveRepo.GetByID(ctx, leaveID)
}

// List returns leave requests matching the filter.
func (s *Service) List(ctx context.Context, filter leave.Filter) ([]leave.Leave, error) {
	return s.leaveRepo.List(ctx, filter)
}

// CreateAllocation grants an employee a yearly entitlement for one leave type.
func (s *Service) CreateAllocation(ctx context.Context, req leave.CreateAllocationRequest) (leave.Allocation, error) {
	if err := req.Validate(); err != nil {
		return leave.Allocation{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return leave.Allocation{}, err
	}

	year := req.Year
	if year == 0 {
		year = time.Now().Year()
	}

	return s.allocationRepo.Create(ctx, leave.Allocation{
		EmployeeID:    req.EmployeeID,
		LeaveType:     leave.LeaveType(req.LeaveType),
		Year:          year,
		AllocatedDays: req.AllocatedDays,
	})
}

// ListAllocations returns the employee's allocations for a year.
func (s *Service) ListAllocations(ctx context.Context, employeeID string, year int) ([]leave.Allocation, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.allocationRepo.ListByEmployeeYear(ctx, employeeID, year)
}
