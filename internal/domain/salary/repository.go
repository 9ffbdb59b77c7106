package salary

import "context"

type SalaryInfoRepository interface {
	GetByEmployeeID(ctx context.Context, employeeID string) (Info, error)
	// Upsert creates the record for the employee or replaces its components.
	Upsert(ctx context.Context, info Info) (Info, error)
}
