package salary

import (
	"context"
	"testing"
	"time"

	"github.com/dayflow/hrms-backend-go/internal/domain/attendance"
	"github.com/dayflow/hrms-backend-go/internal/domain/employee"
	"github.com/dayflow/hrms-backend-go/internal/domain/leave"
	"github.com/dayflow/hrms-backend-go/internal/domain/salary"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSalaryRepo struct {
	infos map[string]salary.Info
}

func (r *stubSalaryRepo) GetByEmployeeID(_ context.Context, employeeID string) (salary.Info, error) {
	info, ok := r.infos[employeeID]
	if !ok {
		return salary.Info{}, salary.ErrSalaryInfoNotFound
	}
	return info, nil
}

func (r *stubSalaryRepo) Upsert(_ context.Context, info salary.Info) (salary.Info, error) {
	if info.ID == "" {
		info.ID = uuid.NewString()
	}
	r.infos[info.EmployeeID] = info
	return info, nil
}

type stubEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (r *stubEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (r *stubEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *stubEmployeeRepo) GetByUserID(_ context.Context, _ string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *stubEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (r *stubEmployeeRepo) Update(_ context.Context, _ employee.UpdateEmployeeRequest) error {
	return nil
}

type stubAttendanceReader struct {
	records []attendance.Attendance
}

func (r *stubAttendanceReader) ListByEmployeeRange(_ context.Context, _ string, _, _ time.Time) ([]attendance.Attendance, error) {
	return r.records, nil
}

type stubLeaveReader struct {
	leaves []leave.Leave
}

func (r *stubLeaveReader) ListApprovedOverlapping(_ context.Context, _ string, _, _ time.Time) ([]leave.Leave, error) {
	return r.leaves, nil
}

func newSlipFixture() (*Service, string, *stubSalaryRepo, *stubAttendanceReader) {
	empID := uuid.NewString()
	salaryRepo := &stubSalaryRepo{infos: make(map[string]salary.Info)}
	employeeRepo := &stubEmployeeRepo{employees: map[string]employee.Employee{
		empID: {ID: empID, WorkingDays: employee.DefaultWorkingDays()},
	}}
	attendanceReader := &stubAttendanceReader{}
	svc := NewService(salaryRepo, employeeRepo, attendanceReader, &stubLeaveReader{})
	return svc, empID, salaryRepo, attendanceReader
}

func TestUpdate_PersistsDerivedComponents(t *testing.T) {
	svc, empID, salaryRepo, _ := newSlipFixture()

	info, err := svc.Update(context.Background(), salary.UpdateSalaryInfoRequest{
		EmployeeID:  empID,
		MonthlyWage: d("50000"),
	})
	require.NoError(t, err)

	assert.True(t, d("25000").Equal(info.BasicSalary))
	assert.True(t, d("600000").Equal(info.YearlyWage))

	stored, err := salaryRepo.GetByEmployeeID(context.Background(), empID)
	require.NoError(t, err)
	assert.True(t, d("25000").Equal(stored.BasicSalary))
}

func TestUpdate_UnknownEmployee(t *testing.T) {
	svc, _, _, _ := newSlipFixture()

	_, err := svc.Update(context.Background(), salary.UpdateSalaryInfoRequest{
		EmployeeID:  "nobody",
		MonthlyWage: d("50000"),
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestSlip_ProRatesFromResolvedDays(t *testing.T) {
	svc, empID, salaryRepo, attendanceReader := newSlipFixture()

	_, err := salaryRepo.Upsert(context.Background(), salary.Info{
		EmployeeID: empID,
		Components: salary.Components{MonthlyWage: d("50000")},
	})
	require.NoError(t, err)

	// Present on the 21 working days of June 2025; rest days pay by default,
	// so the month is fully payable.
	records := make([]attendance.Attendance, 0)
	for day := 1; day <= 30; day++ {
		date := time.Date(2025, time.June, day, 0, 0, 0, 0, time.UTC)
		if employee.DefaultWorkingDays().Contains(date.Weekday()) {
			records = append(records, attendance.Attendance{
				EmployeeID: empID,
				Date:       date,
				Status:     attendance.StatusPresent,
			})
		}
	}
	attendanceReader.records = records

	slip, err := svc.Slip(context.Background(), empID, 2025, time.June)
	require.NoError(t, err)

	assert.Equal(t, 30.0, slip.PayableDays)
	assert.Equal(t, 30, slip.TotalDays)
	assert.True(t, d("50000").Equal(slip.ContractualWage))
	assert.True(t, d("25000").Equal(slip.PayableSalary.BasicSalary))
	assert.True(t, d("600000").Equal(slip.PayableSalary.YearlyWage))
}

func TestSlip_PartialMonth(t *testing.T) {
	svc, empID, salaryRepo, attendanceReader := newSlipFixture()

	_, err := salaryRepo.Upsert(context.Background(), salary.Info{
		EmployeeID: empID,
		Components: salary.Components{MonthlyWage: d("50000")},
	})
	require.NoError(t, err)

	// No attendance at all: only the 9 rest days of June 2025 pay.
	attendanceReader.records = nil

	slip, err := svc.Slip(context.Background(), empID, 2025, time.June)
	require.NoError(t, err)

	assert.Equal(t, 9.0, slip.PayableDays)
	assert.Equal(t, 30, slip.TotalDays)
	// applicable wage = 50000 * 9/30 = 15000
	assert.True(t, d("15000").Equal(slip.PayableSalary.MonthlyWage))
	assert.True(t, d("7500").Equal(slip.PayableSalary.BasicSalary))
	assert.True(t, d("200").Equal(slip.PayableSalary.ProfessionalTax))
	assert.True(t, d("600000").Equal(slip.PayableSalary.YearlyWage))
}

func TestSlip_NoSalaryInfo(t *testing.T) {
	svc, empID, _, _ := newSlipFixture()

	_, err := svc.Slip(context.Background(), empID, 2025, time.June)
	assert.ErrorIs(t, err, salary.ErrSalaryInfoNotFound)
}
