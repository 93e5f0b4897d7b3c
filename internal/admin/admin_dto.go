package admin

import "time"

type UserSummary struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	EmployeeID string    `json:"employee_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type UpdateUserRequest struct {
	Role       string `json:"role" binding:"required,oneof=admin employee"`
	EmployeeID string `json:"employee_id" binding:"omitempty,uuid"`
}

type StatsResponse struct {
	TotalUsers      int64 `json:"total_users"`
	AdminUsers      int64 `json:"admin_users"`
	EmployeeUsers   int64 `json:"employee_users"`
	TotalEmployees  int64 `json:"total_employees"`
	ActiveEmployees int64 `json:"active_employees"`
}

// OverviewResponse is the admin landing view for one period.
type OverviewResponse struct {
	Month              int   `json:"month"`
	Year               int   `json:"year"`
	TotalEmployees     int64 `json:"total_employees"`
	ActiveEmployees    int64 `json:"active_employees"`
	TotalMonthlySalary int64 `json:"total_monthly_salary"`
	PayrollTotal       int64 `json:"payroll_total"`
	AllowanceTotal     int64 `json:"allowance_total"`
	ExpenseTotal       int64 `json:"expense_total"`
	Net                int64 `json:"net"`
}
