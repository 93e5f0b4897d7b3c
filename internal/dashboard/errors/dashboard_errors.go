package dashboarderrors

import (
	"net/http"

	"github.com/roshan749997/PravaraHealthCare-sub000/internal/shared/apperror"
)

var (
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"Month must be 1..12 and year must be set",
		http.StatusBadRequest,
	)
	ErrDashboardNotFound = apperror.New(
		apperror.CodeNotFound,
		"Dashboard entry not found",
		http.StatusNotFound,
	)
	ErrDashboardAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Dashboard entry already exists for this period",
		http.StatusConflict,
	)
)
