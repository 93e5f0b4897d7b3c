package selfservice

import (
	"github.com/roshan749997/PravaraHealthCare-sub000/internal/allowance"
	"github.com/roshan749997/PravaraHealthCare-sub000/internal/employee"
	"github.com/roshan749997/PravaraHealthCare-sub000/internal/payroll"
)

// DashboardResponse is the employee's personal view for one period.
type DashboardResponse struct {
	Employee         employee.EmployeeResponse          `json:"employee"`
	Month            int                                `json:"month"`
	Year             int                                `json:"year"`
	PayrollSummary   payroll.PayrollSummaryResponse     `json:"payroll_summary"`
	AllowanceSummary allowance.AllowanceSummaryResponse `json:"allowance_summary"`
}
