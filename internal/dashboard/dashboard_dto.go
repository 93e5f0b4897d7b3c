package dashboard

import "time"

type CreateDashboardRequest struct {
	Month     string `json:"month" binding:"required,max=10"`
	Year      int    `json:"year" binding:"min=0"`
	Sales     int64  `json:"sales" binding:"gte=0"`
	Revenue   int64  `json:"revenue" binding:"gte=0"`
	Orders    int64  `json:"orders" binding:"gte=0"`
	Customers int64  `json:"customers" binding:"gte=0"`
}

type UpdateDashboardRequest struct {
	Sales     int64 `json:"sales" binding:"gte=0"`
	Revenue   int64 `json:"revenue" binding:"gte=0"`
	Orders    int64 `json:"orders" binding:"gte=0"`
	Customers int64 `json:"customers" binding:"gte=0"`
}

type RefreshDashboardRequest struct {
	Month int `json:"month" binding:"required,min=1,max=12"`
	Year  int `json:"year" binding:"required,min=2000"`
}

type DashboardResponse struct {
	ID          string    `json:"id"`
	Month       string    `json:"month"`
	Year        int       `json:"year"`
	Sales       int64     `json:"sales"`
	Revenue     int64     `json:"revenue"`
	Orders      int64     `json:"orders"`
	Customers   int64     `json:"customers"`
	GeneratedAt time.Time `json:"generated_at"`
}

// StatsResponse is the live aggregate view, independent of stored snapshots.
type StatsResponse struct {
	TotalEmployees     int64 `json:"total_employees"`
	ActiveEmployees    int64 `json:"active_employees"`
	TotalMonthlySalary int64 `json:"total_monthly_salary"`
	PayrollTotal       int64 `json:"payroll_total"`
	AllowanceTotal     int64 `json:"allowance_total"`
	ExpenseTotal       int64 `json:"expense_total"`
	Month              int   `json:"month"`
	Year               int   `json:"year"`
}
