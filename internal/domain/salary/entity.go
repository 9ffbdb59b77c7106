package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

// Components is the structured breakdown derived from a monthly wage. The six
// earning components (BasicSalary, HRA, StandardAllowance, PerformanceBonus,
// LTA, FixedAllowance) sum back to the applicable wage within one unit of
// rounding tolerance. PF and ProfessionalTax are deductions, outside that sum.
type Components struct {
	MonthlyWage       decimal.Decimal `json:"monthly_wage"`
	YearlyWage        decimal.Decimal `json:"yearly_wage"`
	BasicSalary       decimal.Decimal `json:"basic_salary"`
	HRA               decimal.Decimal `json:"hra"`
	StandardAllowance decimal.Decimal `json:"standard_allowance"`
	PerformanceBonus  decimal.Decimal `json:"performance_bonus"`
	LTA               decimal.Decimal `json:"lta"`
	FixedAllowance    decimal.Decimal `json:"fixed_allowance"`
	PFEmployee        decimal.Decimal `json:"pf_employee"`
	PFEmployer        decimal.Decimal `json:"pf_employer"`
	ProfessionalTax   decimal.Decimal `json:"professional_tax"`
}

// Info is the persisted salary record, one-to-one with an employee. The
// monthly wage is the base truth; every other field is derived from it by the
// calculator and stored alongside for querying.
type Info struct {
	ID         string
	EmployeeID string
	Components
	CreatedAt time.Time
	UpdatedAt time.Time
}
