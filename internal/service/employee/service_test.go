package employee

import (
	"context"
	"testing"
	"time"

	"github.com/dayflow/hrms-backend-go/internal/domain/employee"
	"github.com/dayflow/hrms-backend-go/internal/domain/leave"
	"github.com/dayflow/hrms-backend-go/internal/domain/user"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type memUserRepo struct {
	users map[string]user.User
}

func (r *memUserRepo) Create(_ context.Context, u user.User) (user.User, error) {
	u.ID = uuid.NewString()
	r.users[u.ID] = u
	return u, nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *memUserRepo) UpdatePassword(_ context.Context, id string, passwordHash string) error {
	u, ok := r.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	r.users[id] = u
	return nil
}

type memEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (r *memEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	emp.ID = uuid.NewString()
	r.employees[emp.ID] = emp
	return emp, nil
}

func (r *memEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *memEmployeeRepo) GetByUserID(_ context.Context, userID string) (employee.Employee, error) {
	for _, emp := range r.employees {
		if emp.UserID == userID {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *memEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) {
	out := make([]employee.Employee, 0, len(r.employees))
	for _, emp := range r.employees {
		out = append(out, emp)
	}
	return out, nil
}

func (r *memEmployeeRepo) Update(_ context.Context, req employee.UpdateEmployeeRequest) error {
	emp, ok := r.employees[req.ID]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	if req.FirstName != nil {
		emp.FirstName = *req.FirstName
	}
	r.employees[req.ID] = emp
	return nil
}

type memAllocationRepo struct {
	allocations []leave.Allocation
}

func (r *memAllocationRepo) Create(_ context.Context, a leave.Allocation) (leave.Allocation, error) {
	a.ID = uuid.NewString()
	r.allocations = append(r.allocations, a)
	return a, nil
}

func (r *memAllocationRepo) GetByEmployeeTypeYear(_ context.Context, employeeID string, leaveType leave.LeaveType, year int) (leave.Allocation, error) {
	for _, a := range r.allocations {
		if a.EmployeeID == employeeID && a.LeaveType == leaveType && a.Year == year {
			return a, nil
		}
	}
	return leave.Allocation{}, leave.ErrAllocationNotFound
}

func (r *memAllocationRepo) ListByEmployeeYear(_ context.Context, employeeID string, year int) ([]leave.Allocation, error) {
	out := make([]leave.Allocation, 0)
	for _, a := range r.allocations {
		if a.EmployeeID == employeeID && a.Year == year {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memAllocationRepo) AddUsedDays(_ context.Context, _ string, _ int) error {
	return nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newOnboardingFixture() (*Service, *memUserRepo, *memAllocationRepo) {
	userRepo := &memUserRepo{users: make(map[string]user.User)}
	employeeRepo := &memEmployeeRepo{employees: make(map[string]employee.Employee)}
	allocationRepo := &memAllocationRepo{}
	svc := NewService(employeeRepo, userRepo, allocationRepo, passthroughTxManager{})
	return svc, userRepo, allocationRepo
}

func validCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		Email:         "jane.doe@example.com",
		Password:      "password123",
		EmployeeCode:  "EMP-001",
		FirstName:     "Jane",
		LastName:      "Doe",
		DateOfJoining: "2025-06-01",
	}
}

func TestCreate_OnboardsWithDefaults(t *testing.T) {
	svc, userRepo, allocationRepo := newOnboardingFixture()

	emp, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, employee.DefaultWorkingDays(), emp.WorkingDays)
	assert.Equal(t, 5, emp.WorkingDaysPerWeek)
	assert.Equal(t, 1.0, emp.BreakHours)

	// Login created with a verifiable bcrypt hash and EMPLOYEE role.
	u, err := userRepo.GetByEmail(context.Background(), "jane.doe@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.RoleEmployee, u.Role)
	assert.True(t, u.IsFirstLogin)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("password123")))

	// Default allocations for the current year.
	allocations, err := allocationRepo.ListByEmployeeYear(context.Background(), emp.ID, time.Now().Year())
	require.NoError(t, err)
	require.Len(t, allocations, 3)

	byType := make(map[leave.LeaveType]int)
	for _, a := range allocations {
		byType[a.LeaveType] = a.AllocatedDays
	}
	assert.Equal(t, 24, byType[leave.LeaveTypePaid])
	assert.Equal(t, 7, byType[leave.LeaveTypeSick])
	assert.Equal(t, 5, byType[leave.LeaveTypeUnpaid])
}

func TestCreate_DuplicateEmail(t *testing.T) {
	svc, _, _ := newOnboardingFixture()

	_, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, user.ErrEmailExists)
}

func TestCreate_CustomWorkingDays(t *testing.T) {
	svc, _, _ := newOnboardingFixture()

	req := validCreateRequest()
	req.WorkingDays = []int{1, 2, 3, 4, 5, 6}

	emp, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 6, emp.WorkingDaysPerWeek)
	assert.True(t, emp.WorkingDays.Contains(time.Saturday))
	assert.False(t, emp.WorkingDays.Contains(time.Sunday))
}

func TestCreate_ValidationFailure(t *testing.T) {
	svc, _, _ := newOnboardingFixture()

	req := validCreateRequest()
	req.Email = "not-an-email"

	_, err := svc.Create(context.Background(), req)
	assert.Error(t, err)
}
