package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/dayflow/hrms-backend-go/internal/domain/leave"
	"github.com/dayflow/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

const leaveColumns = `
	l.id, l.employee_id, l.leave_type, l.start_date, l.end_date, l.remarks,
	l.status, l.approved_by, l.approved_at, l.created_at, l.updated_at
`

func scanLeave(row pgx.Row) (leave.Leave, error) {
	var l leave.Leave
	err := row.Scan(
		&l.ID, &l.EmployeeID, &l.LeaveType, &l.StartDate, &l.EndDate, &l.Remarks,
		&l.Status, &l.ApprovedBy, &l.ApprovedAt, &l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

// Create implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, l leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO leaves (id, employee_id, leave_type, start_date, end_date, remarks, status, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		l.EmployeeID, l.LeaveType, l.StartDate, l.EndDate, l.Remarks, l.Status,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return leave.Leave{}, err
	}

	return l, nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id string) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + leaveColumns + ` FROM leaves l WHERE l.id = $1`

	l, err := scanLeave(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, err
	}
	return l, nil
}

// UpdateStatus implements leave.LeaveRepository. The guard on the current
// PENDING status keeps two concurrent approvers from both winning.
func (r *leaveRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.Status, approvedBy string, approvedAt time.Time) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE leaves
		SET status = $1, approved_by = $2, approved_at = $3, updated_at = NOW()
		WHERE id = $4 AND status = $5
	`

	result, err := q.Exec(ctx, query, status, approvedBy, approvedAt, id, leave.StatusPending)
	if err != nil {
		return fmt.Errorf("failed to update leave status for id %s: %w", id, err)
	}
	if result.RowsAffected() == 0 {
		// Distinguish missing from already processed.
		var exists bool
		if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM leaves WHERE id = $1)`, id).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return leave.ErrLeaveNotFound
		}
		return leave.ErrAlreadyProcessed
	}
	return nil
}

// List implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) List(ctx context.Context, filter leave.Filter) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + leaveColumns + `,
			e.first_name || ' ' || e.last_name AS employee_name
		FROM leaves l
		JOIN employees e ON e.id = l.employee_id
		WHERE 1=1
	`

	args := make([]interface{}, 0)
	argNum := 1
	if filter.EmployeeID != nil {
		query += fmt.Sprintf(" AND l.employee_id = $%d", argNum)
		args = append(args, *filter.EmployeeID)
		argNum++
	}
	if filter.Status != nil {
		query += fmt.Sprintf(" AND l.status = $%d", argNum)
		args = append(args, *filter.Status)
		argNum++
	}
	query += " ORDER BY l.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leaves := make([]leave.Leave, 0)
	for rows.Next() {
		var l leave.Leave
		err := rows.Scan(
			&l.ID, &l.EmployeeID, &l.LeaveType, &l.StartDate, &l.EndDate, &l.Remarks,
			&l.Status, &l.ApprovedBy, &l.ApprovedAt, &l.CreatedAt, &l.UpdatedAt,
			&l.EmployeeName,
		)
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, l)
	}

	return leaves, nil
}

// ListApprovedOverlapping implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListApprovedOverlapping(ctx context.Context, employeeID string, from, to time.Time) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + leaveColumns + `
		FROM leaves l
		WHERE l.employee_id = $1
			AND l.status = $2
			AND l.start_date <= $3
			AND l.end_date >= $4
		ORDER BY l.start_date
	`

	rows, err := q.Query(ctx, query, employeeID, leave.StatusApproved, to, from)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leaves := make([]leave.Leave, 0)
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, l)
	}

	return leaves, nil
}
