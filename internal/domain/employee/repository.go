package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByUserID(ctx context.Context, userID string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) error
}
