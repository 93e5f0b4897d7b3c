package autherrors

import (
	"net/http"

	"github.com/roshan749997/PravaraHealthCare-sub000/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid email or password",
		http.StatusUnauthorized,
	)
	ErrEmailAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"An account with this email already exists",
		http.StatusConflict,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)
	ErrInvalidRefreshToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid or expired refresh token",
		http.StatusUnauthorized,
	)
	ErrEmployeeLinkRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Employee accounts must reference an employee record",
		http.StatusBadRequest,
	)
)
