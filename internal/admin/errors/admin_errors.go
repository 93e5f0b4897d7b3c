package adminerrors

import (
	"net/http"

	"github.com/roshan749997/PravaraHealthCare-sub000/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)
	ErrCannotDeleteSelf = apperror.New(
		apperror.CodeInvalidState,
		"You cannot delete your own account",
		http.StatusConflict,
	)
)
