package payrollerrors

import (
	"net/http"

	"github.com/roshan749997/PravaraHealthCare-sub000/internal/shared/apperror"
)

var (
	ErrPayrollNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payroll not found",
		http.StatusNotFound,
	)
	ErrPayrollAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Payroll already exists for this employee and period",
		http.StatusConflict,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"Month must be 1..12 and year must be set",
		http.StatusBadRequest,
	)
	ErrForeignPayrollRecord = apperror.New(
		apperror.CodeForbidden,
		"You may only access your own payroll records",
		http.StatusForbidden,
	)
)
