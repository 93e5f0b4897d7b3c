package expense

import (
	"errors"
	"strings"

	expenseerrors "github.com/roshan749997/PravaraHealthCare-sub000/internal/expense/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return expenseerrors.ErrExpenseNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_expense_period" {
			return expenseerrors.ErrExpenseAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_expense_period") {
		return expenseerrors.ErrExpenseAlreadyExists
	}

	return err
}
