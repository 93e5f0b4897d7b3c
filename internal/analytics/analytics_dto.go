package analytics

// MonthlySummaryEntry is one month of the Jan..Dec series. Months with no
// records carry zeroes rather than being omitted.
type MonthlySummaryEntry struct {
	Month          int    `json:"month"`
	MonthName      string `json:"month_name"`
	Year           int    `json:"year"`
	PayrollTotal   int64  `json:"payroll_total"`
	AllowanceTotal int64  `json:"allowance_total"`
	ExpenseTotal   int64  `json:"expense_total"`
	Net            int64  `json:"net"`
}

type DepartmentStat struct {
	Department string  `json:"department"`
	Count      int64   `json:"count"`
	AvgSalary  float64 `json:"avg_salary"`
}

type MetricsResponse struct {
	TotalEmployees     int64            `json:"total_employees"`
	ActiveEmployees    int64            `json:"active_employees"`
	TotalMonthlySalary int64            `json:"total_monthly_salary"`
	TotalAnnualSalary  int64            `json:"total_annual_salary"`
	Departments        []DepartmentStat `json:"departments"`
}

// IncomeBreakdownResponse is the period's compensation outflow. Total is the
// arithmetic sum of the two components, computed in the service.
type IncomeBreakdownResponse struct {
	Month              int   `json:"month"`
	Year               int   `json:"year"`
	SalaryMass         int64 `json:"salary_mass"`
	AllowanceIncentive int64 `json:"allowance_incentive"`
	TotalCompensation  int64 `json:"total_compensation"`
}

type ExpenseBreakdownResponse struct {
	Month      int   `json:"month"`
	Year       int   `json:"year"`
	OfficeRent int64 `json:"office_rent"`
	LightBill  int64 `json:"light_bill"`
	Other      int64 `json:"other"`
	Total      int64 `json:"total"`
}
