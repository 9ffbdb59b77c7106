package salary

import (
	"github.com/dayflow/hrms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CalculateRequest struct {
	MonthlyWage decimal.Decimal `json:"monthly_wage"`
}

func (r CalculateRequest) Validate() error {
	if r.MonthlyWage.LessThanOrEqual(decimal.Zero) {
		return validator.ValidationErrors{
			{Field: "monthly_wage", Message: "must be greater than 0"},
		}
	}
	return nil
}

type UpdateSalaryInfoRequest struct {
	EmployeeID  string          `json:"-"`
	MonthlyWage decimal.Decimal `json:"monthly_wage"`
}

func (r UpdateSalaryInfoRequest) Validate() error {
	if r.MonthlyWage.LessThanOrEqual(decimal.Zero) {
		return validator.ValidationErrors{
			{Field: "monthly_wage", Message: "must be greater than 0"},
		}
	}
	return nil
}

// SlipResponse is the pro-rated breakdown for one payroll month together with
// the payable-day metadata it was derived from.
type SlipResponse struct {
	EmployeeID      string          `json:"employee_id"`
	Year            int             `json:"year"`
	Month           int             `json:"month"`
	PayableDays     float64         `json:"payable_days"`
	TotalDays       int             `json:"total_days"`
	PayableSalary   Components      `json:"payable_salary"`
	ContractualWage decimal.Decimal `json:"contractual_wage"`
}
