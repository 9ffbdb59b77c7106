package fixtures

import "github.com/dayflow/hrms-backend-go/internal/domain/leave"

// DefaultLeaveAllocations returns the entitlements granted to every new
// employee for the given year.
func DefaultLeaveAllocations(employeeID string, year int) []leave.Allocation {
	return []leave.Allocation{
		{EmployeeID: employeeID, LeaveType: leave.LeaveTypePaid, Year: year, AllocatedDays: 24},
		{EmployeeID: employeeID, LeaveType: leave.LeaveTypeSick, Year: year, AllocatedDays: 7},
		{EmployeeID: employeeID, LeaveType: leave.LeaveTypeUnpaid, Year: year, AllocatedDays: 5},
	}
}
