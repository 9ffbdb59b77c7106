package salary

import "errors"

var (
	ErrInvalidMonthlyWage = errors.New("monthly wage must be greater than 0")
	// ErrWageTooLow means the wage cannot cover the fixed components and the
	// balancing fixed allowance would go negative.
	ErrWageTooLow         = errors.New("fixed allowance cannot be negative, please increase the monthly wage")
	ErrComponentMismatch  = errors.New("salary components do not sum back to the monthly wage")
	ErrSalaryInfoNotFound = errors.New("salary information not found")
)
