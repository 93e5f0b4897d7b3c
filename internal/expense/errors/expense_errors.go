package expenseerrors

import (
	"net/http"

	"github.com/roshan749997/PravaraHealthCare-sub000/internal/shared/apperror"
)

var (
	ErrExpenseNotFound = apperror.New(
		apperror.CodeNotFound,
		"Expense not found",
		http.StatusNotFound,
	)
	ErrExpenseAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Expense already exists for this period",
		http.StatusConflict,
	)
)
