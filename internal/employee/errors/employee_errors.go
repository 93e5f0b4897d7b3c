package employeeerrors

import (
	"net/http"

	"github.com/roshan749997/PravaraHealthCare-sub000/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeNumberAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee with the same employee ID already exists",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrNegativeSalary = apperror.New(
		apperror.CodeInvalidInput,
		"Monthly salary cannot be negative",
		http.StatusBadRequest,
	)
	ErrForeignEmployeeRecord = apperror.New(
		apperror.CodeForbidden,
		"You may only access your own employee record",
		http.StatusForbidden,
	)
)
