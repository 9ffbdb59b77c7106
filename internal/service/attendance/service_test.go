package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/dayflow/hrms-backend-go/internal/domain/attendance"
	"github.com/dayflow/hrms-backend-go/internal/domain/employee"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memAttendanceRepo struct {
	records map[string]attendance.Attendance
}

func newMemAttendanceRepo() *memAttendanceRepo {
	return &memAttendanceRepo{records: make(map[string]attendance.Attendance)}
}

func (r *memAttendanceRepo) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	att.ID = uuid.NewString()
	r.records[att.ID] = att
	return att, nil
}

func (r *memAttendanceRepo) GetByID(_ context.Context, id string) (attendance.Attendance, error) {
	att, ok := r.records[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return att, nil
}

func (r *memAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	for _, att := range r.records {
		if att.EmployeeID == employeeID && att.Date.Equal(date) {
			copied := att
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memAttendanceRepo) Update(_ context.Context, att attendance.Attendance) error {
	if _, ok := r.records[att.ID]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	r.records[att.ID] = att
	return nil
}

func (r *memAttendanceRepo) UpsertLeaveDay(_ context.Context, employeeID string, date time.Time) error {
	for id, att := range r.records {
		if att.EmployeeID == employeeID && att.Date.Equal(date) {
			att.Status = attendance.StatusLeave
			r.records[id] = att
			return nil
		}
	}
	r.records[uuid.NewString()] = attendance.Attendance{
		EmployeeID: employeeID,
		Date:       date,
		Status:     attendance.StatusLeave,
	}
	return nil
}

func (r *memAttendanceRepo) ListByEmployeeRange(_ context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	out := make([]attendance.Attendance, 0)
	for _, att := range r.records {
		if att.EmployeeID != employeeID || att.Date.Before(from) || att.Date.After(to) {
			continue
		}
		out = append(out, att)
	}
	return out, nil
}

func (r *memAttendanceRepo) List(_ context.Context, filter attendance.Filter) ([]attendance.Attendance, error) {
	out := make([]attendance.Attendance, 0)
	for _, att := range r.records {
		if filter.EmployeeID != nil && att.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Status != nil && att.Status != *filter.Status {
			continue
		}
		out = append(out, att)
	}
	return out, nil
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

func newTestService(breakHours float64) (*Service, string, *memAttendanceRepo) {
	empID := uuid.NewString()
	attendanceRepo := newMemAttendanceRepo()
	employeeRepo := &stubEmployeeRepo{employees: map[string]employee.Employee{
		empID: {ID: empID, BreakHours: breakHours},
	}}
	return NewService(attendanceRepo, employeeRepo), empID, attendanceRepo
}

func at(hour, minute int) time.Time {
	return time.Date(2025, time.June, 9, hour, minute, 0, 0, time.UTC)
}

func TestCheckIn_CreatesPresentRecord(t *testing.T) {
	svc, empID, _ := newTestService(1.0)
	svc.now = func() time.Time { return at(9, 0) }

	att, err := svc.CheckIn(context.Background(), empID)
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusPresent, att.Status)
	require.NotNil(t, att.CheckIn)
	assert.Equal(t, at(9, 0), *att.CheckIn)
	assert.Nil(t, att.CheckOut)
}

func TestCheckIn_Twice(t *testing.T) {
	svc, empID, _ := newTestService(1.0)
	svc.now = func() time.Time { return at(9, 0) }

	_, err := svc.CheckIn(context.Background(), empID)
	require.NoError(t, err)

	_, err = svc.CheckIn(context.Background(), empID)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestCheckOut_ComputesWorkAndExtraHours(t *testing.T) {
	svc, empID, _ := newTestService(1.0)

	svc.now = func() time.Time { return at(9, 0) }
	_, err := svc.CheckIn(context.Background(), empID)
	require.NoError(t, err)

	// 9:00 to 20:30 is 11.5h on the clock, 10.5h after the 1h break.
	svc.now = func() time.Time { return at(20, 30) }
	att, err := svc.CheckOut(context.Background(), empID)
	require.NoError(t, err)

	assert.Equal(t, 10.5, att.WorkHours)
	assert.Equal(t, 1.5, att.ExtraHours)
}

func TestCheckOut_ShortDayHasNoExtraHours(t *testing.T) {
	svc, empID, _ := newTestService(0.5)

	svc.now = func() time.Time { return at(10, 0) }
	_, err := svc.CheckIn(context.Background(), empID)
	require.NoError(t, err)

	svc.now = func() time.Time { return at(16, 0) }
	att, err := svc.CheckOut(context.Background(), empID)
	require.NoError(t, err)

	assert.Equal(t, 5.5, att.WorkHours)
	assert.Equal(t, 0.0, att.ExtraHours)
}

func TestCheckOut_WithoutCheckIn(t *testing.T) {
	svc, empID, _ := newTestService(1.0)
	svc.now = func() time.Time { return at(17, 0) }

	_, err := svc.CheckOut(context.Background(), empID)
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestCheckOut_Twice(t *testing.T) {
	svc, empID, _ := newTestService(1.0)

	svc.now = func() time.Time { return at(9, 0) }
	_, err := svc.CheckIn(context.Background(), empID)
	require.NoError(t, err)

	svc.now = func() time.Time { return at(18, 0) }
	_, err = svc.CheckOut(context.Background(), empID)
	require.NoError(t, err)

	_, err = svc.CheckOut(context.Background(), empID)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestUpdateStatus_Override(t *testing.T) {
	svc, empID, repo := newTestService(1.0)
	svc.now = func() time.Time { return at(9, 0) }

	att, err := svc.CheckIn(context.Background(), empID)
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(context.Background(), attendance.UpdateStatusRequest{
		ID:     att.ID,
		Status: "HALF_DAY",
	})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusHalfDay, updated.Status)
	assert.Equal(t, attendance.StatusHalfDay, repo.records[att.ID].Status)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	svc, _, _ := newTestService(1.0)

	_, err := svc.UpdateStatus(context.Background(), attendance.UpdateStatusRequest{
		ID:     "whatever",
		Status: "ON_VACATION",
	})
	assert.Error(t, err)
}

func TestMonthlyStats(t *testing.T) {
	svc, empID, repo := newTestService(1.0)

	days := []struct {
		day    int
		status attendance.Status
		hours  float64
		extra  float64
	}{
		{2, attendance.StatusPresent, 8.0, 0},
		{3, attendance.StatusPresent, 10.0, 1.0},
		{4, attendance.StatusHalfDay, 4.0, 0},
		{5, attendance.StatusAbsent, 0, 0},
		{6, attendance.StatusLeave, 0, 0},
	}
	for _, d := range days {
		repo.records[uuid.NewString()] = attendance.Attendance{
			EmployeeID: empID,
			Date:       time.Date(2025, time.June, d.day, 0, 0, 0, 0, time.UTC),
			Status:     d.status,
			WorkHours:  d.hours,
			ExtraHours: d.extra,
		}
	}

	stats, err := svc.MonthlyStats(context.Background(), empID, 2025, time.June)
	require.NoError(t, err)

	assert.Equal(t, 30, stats.TotalDays)
	assert.Equal(t, 2, stats.PresentDays)
	assert.Equal(t, 1, stats.AbsentDays)
	assert.Equal(t, 1, stats.HalfDays)
	assert.Equal(t, 1, stats.LeaveDays)
	assert.Equal(t, 22.0, stats.TotalWorkHours)
	assert.Equal(t, 1.0, stats.TotalExtraHours)
}
