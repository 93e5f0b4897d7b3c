package employee

type CreateEmployeeRequest struct {
	EmployeeNumber string `json:"employee_id"`
	FullName       string `json:"name" binding:"required"`
	Department     string `json:"department" binding:"required,oneof=Clinical Administrative 'Support Services' Technical Other"`
	Status         string `json:"status" binding:"omitempty,oneof=Active Inactive 'On Leave'"`
	MonthlySalary  int64  `json:"monthly_salary" binding:"gte=0"`
	AnnualSalary   int64  `json:"annual_salary" binding:"gte=0"`
}

type UpdateEmployeeRequest struct {
	FullName      string `json:"name" binding:"required"`
	Department    string `json:"department" binding:"required,oneof=Clinical Administrative 'Support Services' Technical Other"`
	Status        string `json:"status" binding:"required,oneof=Active Inactive 'On Leave'"`
	MonthlySalary int64  `json:"monthly_salary" binding:"gte=0"`
	AnnualSalary  int64  `json:"annual_salary" binding:"gte=0"`
}

type EmployeeResponse struct {
	ID             string `json:"id"`
	EmployeeNumber string `json:"employee_id"`
	FullName       string `json:"name"`
	Department     string `json:"department"`
	Status         string `json:"status"`
	MonthlySalary  int64  `json:"monthly_salary"`
	AnnualSalary   int64  `json:"annual_salary"`
}
