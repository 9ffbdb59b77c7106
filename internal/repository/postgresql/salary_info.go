package postgresql

import (
	"context"

	"github.com/dayflow/hrms-backend-go/internal/domain/salary"
	"github.com/dayflow/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type salaryInfoRepositoryImpl struct {
	db *database.DB
}

func NewSalaryInfoRepository(db *database.DB) salary.SalaryInfoRepository {
	return &salaryInfoRepositoryImpl{db: db}
}

// GetByEmployeeID implements salary.SalaryInfoRepository.
func (r *salaryInfoRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (salary.Info, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, employee_id, monthly_wage, yearly_wage, basic_salary, hra,
			standard_allowance, performance_bonus, lta, fixed_allowance,
			pf_employee, pf_employer, professional_tax, created_at, updated_at
		FROM salary_infos
		WHERE employee_id = $1
	`

	var info salary.Info
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&info.ID, &info.EmployeeID, &info.MonthlyWage, &info.YearlyWage, &info.BasicSalary, &info.HRA,
		&info.StandardAllowance, &info.PerformanceBonus, &info.LTA, &info.FixedAllowance,
		&info.PFEmployee, &info.PFEmployer, &info.ProfessionalTax, &info.CreatedAt, &info.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return salary.Info{}, salary.ErrSalaryInfoNotFound
		}
		return salary.Info{}, err
	}
	return info, nil
}

// Upsert implements salary.SalaryInfoRepository.
func (r *salaryInfoRepositoryImpl) Upsert(ctx context.Context, info salary.Info) (salary.Info, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO salary_infos (
			id, employee_id, monthly_wage, yearly_wage, basic_salary, hra,
			standard_allowance, performance_bonus, lta, fixed_allowance,
			pf_employee, pf_employer, professional_tax, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5,
			$6, $7, $8, $9,
			$10, $11, $12, NOW(), NOW()
		)
		ON CONFLICT (employee_id) DO UPDATE SET
			monthly_wage = EXCLUDED.monthly_wage,
			yearly_wage = EXCLUDED.yearly_wage,
			basic_salary = EXCLUDED.basic_salary,
			hra = EXCLUDED.hra,
			standard_allowance = EXCLUDED.standard_allowance,
			performance_bonus = EXCLUDED.performance_bonus,
			lta = EXCLUDED.lta,
			fixed_allowance = EXCLUDED.fixed_allowance,
			pf_employee = EXCLUDED.pf_employee,
			pf_employer = EXCLUDED.pf_employer,
			professional_tax = EXCLUDED.professional_tax,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		info.EmployeeID, info.MonthlyWage, info.YearlyWage, info.BasicSalary, info.HRA,
		info.StandardAllowance, info.PerformanceBonus, info.LTA, info.FixedAllowance,
		info.PFEmployee, info.PFEmployer, info.ProfessionalTax,
	).Scan(&info.ID, &info.CreatedAt, &info.UpdatedAt)
	if err != nil {
		return salary.Info{}, err
	}

	return info, nil
}
