package payroll

type CreatePayrollRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Month      int    `json:"month" binding:"required,min=1,max=12"`
	Year       int    `json:"year" binding:"required,min=2000"`
	BaseSalary int64  `json:"base_salary" binding:"gte=0"`
	Incentive  int64  `json:"incentive" binding:"gte=0"`
	Allowance  int64  `json:"allowance" binding:"gte=0"`
}

type UpdatePayrollRequest struct {
	BaseSalary int64  `json:"base_salary" binding:"gte=0"`
	Incentive  int64  `json:"incentive" binding:"gte=0"`
	Allowance  int64  `json:"allowance" binding:"gte=0"`
	Status     string `json:"status" binding:"required,oneof=Pending Processed Paid"`
}

type ProcessPayrollRequest struct {
	Month int `json:"month" binding:"required,min=1,max=12"`
	Year  int `json:"year" binding:"required,min=2000"`
}

type PayrollResponse struct {
	ID             string `json:"id"`
	EmployeeID     string `json:"employee_id"`
	EmployeeNumber string `json:"employee_number,omitempty"`
	EmployeeName   string `json:"employee_name,omitempty"`
	Month          int    `json:"month"`
	Year           int    `json:"year"`
	BaseSalary     int64  `json:"base_salary"`
	Incentive      int64  `json:"incentive"`
	Allowance      int64  `json:"allowance"`
	Total          int64  `json:"total"`
	Status         string `json:"status"`
}

type ProcessPayrollResponse struct {
	Month   int `json:"month"`
	Year    int `json:"year"`
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}

// PayrollSummaryResponse always carries every field, zero-valued when no
// payroll matches the filter.
type PayrollSummaryResponse struct {
	Count      int64 `json:"count"`
	BaseSalary int64 `json:"base_salary"`
	Incentive  int64 `json:"incentive"`
	Allowance  int64 `json:"allowance"`
	Total      int64 `json:"total"`
}
