package dashboard

import (
	"errors"
	"strings"

	dashboarderrors "github.com/roshan749997/PravaraHealthCare-sub000/internal/dashboard/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return dashboarderrors.ErrDashboardNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_dashboard_period" {
			return dashboarderrors.ErrDashboardAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_dashboard_period") {
		return dashboarderrors.ErrDashboardAlreadyExists
	}

	return err
}
