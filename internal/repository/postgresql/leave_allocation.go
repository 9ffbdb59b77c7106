package postgresql

import (
	"context"
	"fmt"

	"github.com/dayflow/hrms-backend-go/internal/domain/leave"
	"github.com/dayflow/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type allocationRepositoryImpl struct {
	db *database.DB
}

func NewAllocationRepository(db *database.DB) leave.AllocationRepository {
	return &allocationRepositoryImpl{db: db}
}

// Create implements leave.AllocationRepository.
func (r *allocationRepositoryImpl) Create(ctx context.Context, a leave.Allocation) (leave.Allocation, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO leave_allocations (id, employee_id, leave_type, year, allocated_days, used_days, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (employee_id, leave_type, year) DO NOTHING
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		a.EmployeeID, a.LeaveType, a.Year, a.AllocatedDays, a.UsedDays,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Allocation{}, leave.ErrAllocationExists
		}
		return leave.Allocation{}, err
	}

	return a, nil
}

// GetByEmployeeTypeYear implements leave.AllocationRepository.
func (r *allocationRepositoryImpl) GetByEmployeeTypeYear(ctx context.Context, employeeID string, leaveType leave.LeaveType, year int) (leave.Allocation, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, employee_id, leave_type, year, allocated_days, used_days, created_at, updated_at
		FROM leave_allocations
		WHERE employee_id = $1 AND leave_type = $2 AND year = $3
	`

	var a leave.Allocation
	err := q.QueryRow(ctx, query, employeeID, leaveType, year).Scan(
		&a.ID, &a.EmployeeID, &a.LeaveType, &a.Year,
		&a.AllocatedDays, &a.UsedDays, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Allocation{}, leave.ErrAllocationNotFound
		}
		return leave.Allocation{}, err
	}
	return a, nil
}

// ListByEmployeeYear implements leave.AllocationRepository.
func (r *allocationRepositoryImpl) ListByEmployeeYear(ctx context.Context, employeeID string, year int) ([]leave.Allocation, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, employee_id, leave_type, year, allocated_days, used_days, created_at, updated_at
		FROM leave_allocations
		WHERE employee_id = $1 AND year = $2
		ORDER BY leave_type
	`

	rows, err := q.Query(ctx, query, employeeID, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	allocations := make([]leave.Allocation, 0)
	for rows.Next() {
		var a leave.Allocation
		err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.LeaveType, &a.Year,
			&a.AllocatedDays, &a.UsedDays, &a.CreatedAt, &a.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		allocations = append(allocations, a)
	}

	return allocations, nil
}

// AddUsedDays implements leave.AllocationRepository. The WHERE guard makes the
// balance check atomic with the increment, so concurrent approvals cannot
// overspend the allocation.
func (r *allocationRepositoryImpl) AddUsedDays(ctx context.Context, id string, days int) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE leave_allocations
		SET used_days = used_days + $1, updated_at = NOW()
		WHERE id = $2 AND used_days + $1 <= allocated_days
	`

	result, err := q.Exec(ctx, query, days, id)
	if err != nil {
		return fmt.Errorf("failed to add used days to allocation %s: %w", id, err)
	}
	if result.RowsAffected() == 0 {
		return leave.ErrInsufficientBalance
	}
	return nil
}
