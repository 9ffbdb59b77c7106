package leave

import "errors"

var (
	ErrLeaveNotFound       = errors.New("leave request not found")
	ErrAlreadyProcessed    = errors.New("leave request already processed")
	ErrNoAllocation        = errors.New("no leave allocation found for this type and year")
	ErrInsufficientBalance = errors.New("insufficient leave balance")
	ErrAllocationExists    = errors.New("leave allocation already exists for this type and year")
	ErrAllocationNotFound  = errors.New("leave allocation not found")
	ErrInvalidDateRange    = errors.New("end date must not be before start date")
)
