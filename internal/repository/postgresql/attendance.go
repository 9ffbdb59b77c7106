package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/dayflow/hrms-backend-go/internal/domain/attendance"
	"github.com/dayflow/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.date, a.check_in, a.check_out,
	a.work_hours, a.extra_hours, a.status, a.created_at, a.updated_at
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.CheckIn, &att.CheckOut,
		&att.WorkHours, &att.ExtraHours, &att.Status, &att.CreatedAt, &att.UpdatedAt,
	)
	return att, err
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO attendances (id, employee_id, date, check_in, check_out, work_hours, extra_hours, status, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.EmployeeID, att.Date, att.CheckIn, att.CheckOut,
		att.WorkHours, att.ExtraHours, att.Status,
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)
	if err != nil {
		return attendance.Attendance{}, err
	}

	return att, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + attendanceColumns + ` FROM attendances a WHERE a.id = $1`

	att, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, err
	}
	return att, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + attendanceColumns + ` FROM attendances a WHERE a.employee_id = $1 AND a.date = $2`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &att, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE attendances
		SET check_in = $1, check_out = $2, work_hours = $3, extra_hours = $4, status = $5, updated_at = NOW()
		WHERE id = $6
	`

	result, err := q.Exec(ctx, query,
		att.CheckIn, att.CheckOut, att.WorkHours, att.ExtraHours, att.Status, att.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance with id %s: %w", att.ID, err)
	}
	if result.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

// UpsertLeaveDay implements attendance.AttendanceRepository. An approved leave
// overwrites whatever status the day already carried.
func (r *attendanceRepositoryImpl) UpsertLeaveDay(ctx context.Context, employeeID string, date time.Time) error {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO attendances (id, employee_id, date, status, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, NOW(), NOW())
		ON CONFLICT (employee_id, date)
		DO UPDATE SET status = $3, updated_at = NOW()
	`

	_, err := q.Exec(ctx, query, employeeID, date, attendance.StatusLeave)
	if err != nil {
		return fmt.Errorf("failed to upsert leave day %s for employee %s: %w", date.Format("2006-01-02"), employeeID, err)
	}
	return nil
}

// ListByEmployeeRange implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployeeRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.employee_id = $1 AND a.date >= $2 AND a.date <= $3
		ORDER BY a.date
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]attendance.Attendance, 0)
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, att)
	}

	return records, nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.Filter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + attendanceColumns + `,
			e.first_name || ' ' || e.last_name AS employee_name
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE 1=1
	`

	args := make([]interface{}, 0)
	argNum := 1
	if filter.EmployeeID != nil {
		query += fmt.Sprintf(" AND a.employee_id = $%d", argNum)
		args = append(args, *filter.EmployeeID)
		argNum++
	}
	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND a.date >= $%d", argNum)
		args = append(args, *filter.StartDate)
		argNum++
	}
	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND a.date <= $%d", argNum)
		args = append(args, *filter.EndDate)
		argNum++
	}
	if filter.Status != nil {
		query += fmt.Sprintf(" AND a.status = $%d", argNum)
		args = append(args, *filter.Status)
		argNum++
	}
	query += " ORDER BY a.date DESC, employee_name"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]attendance.Attendance, 0)
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date, &att.CheckIn, &att.CheckOut,
			&att.WorkHours, &att.ExtraHours, &att.Status, &att.CreatedAt, &att.UpdatedAt,
			&att.EmployeeName,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, att)
	}

	return records, nil
}
