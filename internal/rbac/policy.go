package rbac

import "github.com/roshan749997/PravaraHealthCare-sub000/internal/domain"

type policy struct {
	Role     string
	Resource string
	Action   string
}

// Admin can do everything; the employee role only reads, and services
// further restrict those reads to the caller's own records.
var policies = []policy{
	{domain.RoleAdmin, "employee", "read"},
	{domain.RoleAdmin, "employee", "create"},
	{domain.RoleAdmin, "employee", "update"},
	{domain.RoleAdmin, "employee", "delete"},
	{domain.RoleAdmin, "payroll", "read"},
	{domain.RoleAdmin, "payroll", "create"},
	{domain.RoleAdmin, "payroll", "update"},
	{domain.RoleAdmin, "payroll", "delete"},
	{domain.RoleAdmin, "payroll", "process"},
	{domain.RoleAdmin, "allowance", "read"},
	{domain.RoleAdmin, "allowance", "create"},
	{domain.RoleAdmin, "allowance", "update"},
	{domain.RoleAdmin, "allowance", "delete"},
	{domain.RoleAdmin, "expense", "read"},
	{domain.RoleAdmin, "expense", "create"},
	{domain.RoleAdmin, "expense", "update"},
	{domain.RoleAdmin, "expense", "delete"},
	{domain.RoleAdmin, "dashboard", "read"},
	{domain.RoleAdmin, "dashboard", "create"},
	{domain.RoleAdmin, "dashboard", "update"},
	{domain.RoleAdmin, "dashboard", "delete"},
	{domain.RoleAdmin, "analytics", "read"},
	{domain.RoleAdmin, "admin", "read"},
	{domain.RoleAdmin, "admin", "update"},
	{domain.RoleAdmin, "admin", "delete"},
	{domain.RoleAdmin, "selfservice", "read"},

	{domain.RoleEmployee, "employee", "read"},
	{domain.RoleEmployee, "payroll", "read"},
	{domain.RoleEmployee, "allowance", "read"},
	{domain.RoleEmployee, "dashboard", "read"},
	{domain.RoleEmployee, "analytics", "read"},
	{domain.RoleEmployee, "selfservice", "read"},
}
