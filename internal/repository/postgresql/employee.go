package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dayflow/hrms-backend-go/internal/domain/employee"
	"github.com/dayflow/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	id, user_id, employee_code, first_name, last_name, phone,
	department, job_position, company, manager_id, location,
	date_of_joining, date_of_birth,
	working_days_per_week, break_hours, working_days,
	created_at, updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.UserID, &emp.EmployeeCode, &emp.FirstName, &emp.LastName, &emp.Phone,
		&emp.Department, &emp.JobPosition, &emp.Company, &emp.ManagerID, &emp.Location,
		&emp.DateOfJoining, &emp.DateOfBirth,
		&emp.WorkingDaysPerWeek, &emp.BreakHours, &emp.WorkingDays,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO employees (
			id, user_id, employee_code, first_name, last_name, phone,
			department, job_position, company, manager_id, location,
			date_of_joining, date_of_birth,
			working_days_per_week, break_hours, working_days,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5,
			$6, $7, $8, $9, $10,
			$11, $12,
			$13, $14, $15,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.UserID, emp.EmployeeCode, emp.FirstName, emp.LastName, emp.Phone,
		emp.Department, emp.JobPosition, emp.Company, emp.ManagerID, emp.Location,
		emp.DateOfJoining, emp.DateOfBirth,
		emp.WorkingDaysPerWeek, emp.BreakHours, emp.WorkingDays,
	).Scan(&emp.ID, &emp.CreatedAt, &emp.UpdatedAt)
	if err != nil {
		return employee.Employee{}, err
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

// GetByUserID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE user_id = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY first_name, last_name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	return employees, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make(map[string]interface{})

	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Department != nil {
		updates["department"] = *req.Department
	}
	if req.JobPosition != nil {
		updates["job_position"] = *req.JobPosition
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.BreakHours != nil {
		updates["break_hours"] = *req.BreakHours
	}
	if len(req.WorkingDays) > 0 {
		set := make(employee.WorkingDaySet, 0, len(req.WorkingDays))
		for _, d := range req.WorkingDays {
			set = append(set, time.Weekday(d))
		}
		updates["working_days"] = set
	}

	if len(updates) == 0 {
		return fmt.Errorf("no updatable fields provided for employee update")
	}
	updates["updated_at"] = time.Now()

	setClauses := make([]string, 0, len(updates))
	args := make([]interface{}, 0, len(updates)+1)
	i := 1
	for col, val := range updates {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}

	sql := "UPDATE employees SET " +
		strings.Join(setClauses, ", ") +
		fmt.Sprintf(" WHERE id = $%d", i)
	args = append(args, req.ID)

	result, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to update employee with id %s: %w", req.ID, err)
	}
	if result.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
