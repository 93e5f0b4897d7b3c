package allowanceerrors

import (
	"net/http"

	"github.com/roshan749997/PravaraHealthCare-sub000/internal/shared/apperror"
)

var (
	ErrAllowanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Allowance not found",
		http.StatusNotFound,
	)
	ErrAllowanceAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Allowance already exists for this employee and period",
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
	ErrForeignAllowanceRecord = apperror.New(
		apperror.CodeForbidden,
		"You may only access your own allowance records",
		http.StatusForbidden,
	)
)
