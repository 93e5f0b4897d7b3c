package selfserviceerrors

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
	ErrForeignRecord = apperror.New(
		apperror.CodeForbidden,
		"You may only access your own records",
		http.StatusForbidden,
	)
)
