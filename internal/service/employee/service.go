package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/dayflow/hrms-backend-go/internal/domain/employee"
	"github.com/dayflow/hrms-backend-go/internal/domain/leave"
	"github.com/dayflow/hrms-backend-go/internal/domain/user"
	"github.com/dayflow/hrms-backend-go/internal/fixtures"
	"github.com/dayflow/hrms-backend-go/internal/pkg/database"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	employeeRepo   employee.EmployeeRepository
	userRepo       user.UserRepository
	allocationRepo leave.AllocationRepository
	txManager      database.TxManager
}

func NewService(
	employeeRepo employee.EmployeeRepository,
	userRepo user.UserRepository,
	allocationRepo leave.AllocationRepository,
	txManager database.TxManager,
) *Service {
	return &Service{
		employeeRepo:   employeeRepo,
		userRepo:       userRepo,
		allocationRepo: allocationRepo,
		txManager:      txManager,
	}
}

// Create onboards a new employee: a login, the employee record, and the
// default leave allocations for the current year, all in one transaction.
func (s *Service) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	if _, err := s.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return employee.Employee{}, user.ErrEmailExists
	} else if err != user.ErrUserNotFound {
		return employee.Employee{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to hash password: %w", err)
	}

	dateOfJoining, _ := time.Parse("2006-01-02", req.DateOfJoining)

	workingDays := employee.DefaultWorkingDays()
	if len(req.WorkingDays) > 0 {
		workingDays = make(employee.WorkingDaySet, 0, len(req.WorkingDays))
		for _, d := range req.WorkingDays {
			workingDays = append(workingDays, time.Weekday(d))
		}
	}
	breakHours := 1.0
	if req.BreakHours != nil {
		breakHours = *req.BreakHours
	}

	var created employee.Employee
	err = s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		u, err := s.userRepo.Create(ctx, user.User{
			Email:        req.Email,
			PasswordHash: string(hash),
			Role:         user.RoleEmployee,
			IsFirstLogin: true,
		})
		if err != nil {
			return err
		}

		created, err = s.employeeRepo.Create(ctx, employee.Employee{
			UserID:             u.ID,
			EmployeeCode:       req.EmployeeCode,
			FirstName:          req.FirstName,
			LastName:           req.LastName,
			Phone:              req.Phone,
			Department:         req.Department,
			JobPosition:        req.JobPosition,
			Company:            req.Company,
			ManagerID:          req.ManagerID,
			Location:           req.Location,
			DateOfJoining:      dateOfJoining,
			WorkingDaysPerWeek: len(workingDays),
			BreakHours:         breakHours,
			WorkingDays:        workingDays,
		})
		if err != nil {
			return err
		}

		for _, a := range fixtures.DefaultLeaveAllocations(created.ID, time.Now().Year()) {
			if _, err := s.allocationRepo.Create(ctx, a); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return employee.Employee{}, err
	}

	return created, nil
}

// GetByID returns a single employee.
func (s *Service) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return s.employeeRepo.GetByID(ctx, id)
}

// GetByUserID returns the employee record bound to a login.
func (s *Service) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	return s.employeeRepo.GetByUserID(ctx, userID)
}

// List returns all employees.
func (s *Service) List(ctx context.Context) ([]employee.Employee, error) {
	return s.employeeRepo.List(ctx)
}

// Update applies a partial profile update.
func (s *Service) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	if err := s.employeeRepo.Update(ctx, req); err != nil {
		return employee.Employee{}, err
	}
	return s.employeeRepo.GetByID(ctx, req.ID)
}
