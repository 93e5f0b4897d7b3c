package admin

import (
	"context"
	"database/sql"
	"errors"

	adminerrors "github.com/roshan749997/PravaraHealthCare-sub000/internal/admin/errors"
	"github.com/roshan749997/PravaraHealthCare-sub000/internal/domain"
	"github.com/roshan749997/PravaraHealthCare-sub000/internal/shared/period"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=admin_service.go -destination=mock/admin_service_mock.go -package=mock
type Service interface {
	Stats(ctx context.Context) (StatsResponse, error)
	Overview(ctx context.Context, p period.Period) (OverviewResponse, error)
	ListUsers(ctx context.Context) ([]UserSummary, error)
	UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (UserSummary, error)
	DeleteUser(ctx context.Context, actor domain.Actor, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("admin.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("admin.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Stats(ctx context.Context) (StatsResponse, error) {
	userCounts, err := s.repo.UserCounts(ctx)
	if err != nil {
		s.logger.Error("admin stats user counts failed", zap.Error(err))
		return StatsResponse{}, err
	}

	employeeCounts, err := s.repo.EmployeeCounts(ctx)
	if err != nil {
		s.logger.Error("admin stats employee counts failed", zap.Error(err))
		return StatsResponse{}, err
	}

	return StatsResponse{
		TotalUsers:      userCounts.Total,
		AdminUsers:      userCounts.Admin,
		EmployeeUsers:   userCounts.Employee,
		TotalEmployees:  employeeCounts.Total,
		ActiveEmployees: employeeCounts.Active,
	}, nil
}

func (s *service) Overview(
	ctx context.Context,
	p period.Period,
) (OverviewResponse, error) {
	if !p.Valid() {
		p = period.Current()
	}

	employeeCounts, err := s.repo.EmployeeCounts(ctx)
	if err != nil {
		s.logger.Error("admin overview employee counts failed", zap.Error(err))
		return OverviewResponse{}, err
	}

	totals, err := s.repo.PeriodTotals(ctx, p.Month, p.Year)
	if err != nil {
		s.logger.Error("admin overview period totals failed", zap.Error(err))
		return OverviewResponse{}, err
	}

	return OverviewResponse{
		Month:              p.Month,
		Year:               p.Year,
		TotalEmployees:     employeeCounts.Total,
		ActiveEmployees:    employeeCounts.Active,
		TotalMonthlySalary: employeeCounts.MonthlySalary,
		PayrollTotal:       totals.PayrollTotal,
		AllowanceTotal:     totals.AllowanceTotal,
		ExpenseTotal:       totals.ExpenseTotal,
		Net:                totals.PayrollTotal + totals.AllowanceTotal - totals.ExpenseTotal,
	}, nil
}

func (s *service) ListUsers(ctx context.Context) ([]UserSummary, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		s.logger.Error("admin list users failed", zap.Error(err))
		return nil, err
	}
	return users, nil
}

func (s *service) UpdateUser(
	ctx context.Context,
	id string,
	req UpdateUserRequest,
) (UserSummary, error) {
	s.logger.Debug("admin update user requested", zap.String("target_user_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("admin update user begin tx failed", zap.Error(err))
		return UserSummary{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindUser(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserSummary{}, adminerrors.ErrUserNotFound
		}
		return UserSummary{}, err
	}

	var employeeID *string
	if req.EmployeeID != "" {
		employeeID = &req.EmployeeID
	}

	if err := qtx.UpdateUser(ctx, id, req.Role, employeeID); err != nil {
		s.logger.Error("admin update user persist failed", zap.Error(err))
		return UserSummary{}, err
	}

	updated, err := qtx.FindUser(ctx, id)
	if err != nil {
		return UserSummary{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("admin update user commit failed", zap.Error(err))
		return UserSummary{}, err
	}

	s.logger.Info("admin update user success", zap.String("target_user_id", id))

	return *updated, nil
}

func (s *service) DeleteUser(
	ctx context.Context,
	actor domain.Actor,
	id string,
) error {
	if actor.UserID == id {
		return adminerrors.ErrCannotDeleteSelf
	}

	s.logger.Debug("admin delete user requested", zap.String("target_user_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindUser(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return adminerrors.ErrUserNotFound
		}
		return err
	}

	if err := qtx.DeleteUser(ctx, id); err != nil {
		s.logger.Error("admin delete user failed", zap.Error(err))
		return err
	}

	return tx.Commit()
}
