package salary

import (
	"github.com/dayflow/hrms-backend-go/internal/domain/salary"
	"github.com/shopspring/decimal"
)

// Component rates applied to the applicable wage. Basic is half the wage, HRA
// half of basic, PF 12% of basic, and bonus/LTA 8.33% of the wage each. The
// standard allowance and professional tax are flat amounts, not rates.
var (
	basicRate         = decimal.NewFromFloat(0.50)
	hraRate           = decimal.NewFromFloat(0.50)
	bonusRate         = decimal.NewFromFloat(0.0833)
	ltaRate           = decimal.NewFromFloat(0.0833)
	pfRate            = decimal.NewFromFloat(0.12)
	standardAllowance = decimal.NewFromInt(4167)
	professionalTax   = decimal.NewFromInt(200)
	monthsPerYear     = decimal.NewFromInt(12)
)

// CalculateComponents derives the full component breakdown from a monthly
// wage. The six earning components sum back to the wage exactly: the fixed
// allowance absorbs whatever the rated components leave over.
func CalculateComponents(monthlyWage decimal.Decimal) (salary.Components, error) {
	if monthlyWage.LessThanOrEqual(decimal.Zero) {
		return salary.Components{}, salary.ErrInvalidMonthlyWage
	}

	c, err := calculate(monthlyWage, monthlyWage, decimal.NewFromInt(1))
	if err != nil {
		return salary.Components{}, err
	}

	// Sanity check on the unprorated breakdown. One unit of tolerance covers
	// cent rounding on the individual components.
	earned := c.BasicSalary.
		Add(c.HRA).
		Add(c.StandardAllowance).
		Add(c.PerformanceBonus).
		Add(c.LTA).
		Add(c.FixedAllowance)
	if earned.Sub(monthlyWage).Abs().GreaterThan(decimal.NewFromInt(1)) {
		return salary.Components{}, salary.ErrComponentMismatch
	}

	return c, nil
}

// CalculateProRated derives the breakdown for a partial month. The applicable
// wage scales by payableDays/totalDaysInMonth, as does the standard allowance;
// the professional tax stays flat and the yearly wage stays contractual.
func CalculateProRated(monthlyWage decimal.Decimal, payableDays float64, totalDaysInMonth int) (salary.Components, error) {
	if monthlyWage.LessThanOrEqual(decimal.Zero) {
		return salary.Components{}, salary.ErrInvalidMonthlyWage
	}

	ratio := decimal.NewFromFloat(payableDays).Div(decimal.NewFromInt(int64(totalDaysInMonth)))
	applicable := round2(monthlyWage.Mul(ratio))

	return calculate(monthlyWage, applicable, ratio)
}

func calculate(monthlyWage, applicableWage, ratio decimal.Decimal) (salary.Components, error) {
	basic := round2(applicableWage.Mul(basicRate))
	hra := round2(basic.Mul(hraRate))
	std := round2(standardAllowance.Mul(ratio))
	bonus := round2(applicableWage.Mul(bonusRate))
	lta := round2(applicableWage.Mul(ltaRate))

	fixed := round2(applicableWage.Sub(basic).Sub(hra).Sub(std).Sub(bonus).Sub(lta))
	if fixed.IsNegative() {
		return salary.Components{}, salary.ErrWageTooLow
	}

	pf := round2(basic.Mul(pfRate))

	return salary.Components{
		MonthlyWage:       round2(applicableWage),
		YearlyWage:        round2(monthlyWage.Mul(monthsPerYear)),
		BasicSalary:       basic,
		HRA:               hra,
		StandardAllowance: std,
		PerformanceBonus:  bonus,
		LTA:               lta,
		FixedAllowance:    fixed,
		PFEmployee:        pf,
		PFEmployer:        pf,
		ProfessionalTax:   professionalTax,
	}, nil
}

// round2 rounds to the cent, half away from zero.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
