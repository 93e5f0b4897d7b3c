package allowance

import (
	"context"
	"database/sql"

	allowanceerrors "github.com/roshan749997/PravaraHealthCare-sub000/internal/allowance/errors"
	"github.com/roshan749997/PravaraHealthCare-sub000/internal/domain"
	"github.com/roshan749997/PravaraHealthCare-sub000/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=allowance_service.go -destination=mock/allowance_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateAllowanceRequest) (AllowanceResponse, error)
	GetAll(ctx context.Context, actor domain.Actor, filter AllowanceQueryFilter) ([]AllowanceResponse, error)
	GetByID(ctx context.Context, actor domain.Actor, id string) (AllowanceResponse, error)
	Update(ctx context.Context, id string, req UpdateAllowanceRequest) (AllowanceResponse, error)
	Delete(ctx context.Context, id string) error
	Summary(ctx context.Context, actor domain.Actor, filter AllowanceQueryFilter) (AllowanceSummaryResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("allowance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("allowance.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func sumComponents(mobileRecharge, petrol, vehicleTag, incentive, gift int64) int64 {
	return mobileRecharge + petrol + vehicleTag + incentive + gift
}

func (s *service) Create(
	ctx context.Context,
	req CreateAllowanceRequest,
) (AllowanceResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create allowance requested",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
		zap.Int("month", req.Month),
		zap.Int("year", req.Year),
	)

	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return AllowanceResponse{}, allowanceerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create allowance begin tx failed", zap.Error(err))
		return AllowanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.EmployeeExists(ctx, req.EmployeeID)
	if err != nil {
		s.logger.Error("create allowance lookup employee failed", zap.Error(err))
		return AllowanceResponse{}, err
	}
	if !exists {
		return AllowanceResponse{}, allowanceerrors.ErrEmployeeNotFound
	}

	allowance := &Allowance{
		ID:             uuid.New(),
		EmployeeID:     employeeUUID,
		Month:          req.Month,
		Year:           req.Year,
		MobileRecharge: req.MobileRecharge,
		Petrol:         req.Petrol,
		VehicleTag:     req.VehicleTag,
		Incentive:      req.Incentive,
		Gift:           req.Gift,
		Total:          sumComponents(req.MobileRecharge, req.Petrol, req.VehicleTag, req.Incentive, req.Gift),
	}

	if err := qtx.Create(ctx, allowance); err != nil {
		s.logger.Error("create allowance persist failed", zap.Error(err))
		return AllowanceResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create allowance commit failed", zap.Error(err))
		return AllowanceResponse{}, err
	}

	s.logger.Info("create allowance success",
		zap.String("request_id", rid),
		zap.String("allowance_id", allowance.ID.String()),
	)

	return mapToResponse(*allowance), nil
}

func (s *service) GetAll(
	ctx context.Context,
	actor domain.Actor,
	filter AllowanceQueryFilter,
) ([]AllowanceResponse, error) {
	if !actor.IsAdmin() {
		filter.EmployeeID = actor.EmployeeID
	}

	allowances, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("get all allowances failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(allowances), nil
}

func (s *service) GetByID(
	ctx context.Context,
	actor domain.Actor,
	id string,
) (AllowanceResponse, error) {
	allowance, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get allowance by id failed", zap.Error(err))
		return AllowanceResponse{}, mapRepositoryError(err)
	}

	if !actor.IsAdmin() && allowance.EmployeeID.String() != actor.EmployeeID {
		return AllowanceResponse{}, allowanceerrors.ErrForeignAllowanceRecord
	}

	return mapToResponse(*allowance), nil
}

func (s *service) Update(
	ctx context.Context,
	id string,
	req UpdateAllowanceRequest,
) (AllowanceResponse, error) {
	s.logger.Debug("update allowance requested", zap.String("allowance_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update allowance begin tx failed", zap.Error(err))
		return AllowanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	allowance, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("update allowance fetch existing failed", zap.Error(err))
		return AllowanceResponse{}, mapRepositoryError(err)
	}

	allowance.MobileRecharge = req.MobileRecharge
	allowance.Petrol = req.Petrol
	allowance.VehicleTag = req.VehicleTag
	allowance.Incentive = req.Incentive
	allowance.Gift = req.Gift
	allowance.Total = sumComponents(req.MobileRecharge, req.Petrol, req.VehicleTag, req.Incentive, req.Gift)

	if err := qtx.Update(ctx, allowance); err != nil {
		s.logger.Error("update allowance persist failed", zap.Error(err))
		return AllowanceResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update allowance commit failed", zap.Error(err))
		return AllowanceResponse{}, err
	}

	s.logger.Info("update allowance success", zap.String("allowance_id", id))

	return mapToResponse(*allowance), nil
}

func (s *service) Delete(
	ctx context.Context,
	id string,
) error {
	s.logger.Debug("delete allowance requested", zap.String("allowance_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete allowance failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	return tx.Commit()
}

func (s *service) Summary(
	ctx context.Context,
	actor domain.Actor,
	filter AllowanceQueryFilter,
) (AllowanceSummaryResponse, error) {
	if !actor.IsAdmin() {
		filter.EmployeeID = actor.EmployeeID
	}

	sums, err := s.repo.SumByFilter(ctx, filter)
	if err != nil {
		s.logger.Error("allowance summary failed", zap.Error(err))
		return AllowanceSummaryResponse{}, mapRepositoryError(err)
	}

	return AllowanceSummaryResponse{
		Count:          sums.Count,
		MobileRecharge: sums.MobileRecharge,
		Petrol:         sums.Petrol,
		VehicleTag:     sums.VehicleTag,
		Incentive:      sums.Incentive,
		Gift:           sums.Gift,
		Total:          sums.Total,
	}, nil
}

func mapToResponse(allowance Allowance) AllowanceResponse {
	resp := AllowanceResponse{
		ID:             allowance.ID.String(),
		EmployeeID:     allowance.EmployeeID.String(),
		Month:          allowance.Month,
		Year:           allowance.Year,
		MobileRecharge: allowance.MobileRecharge,
		Petrol:         allowance.Petrol,
		VehicleTag:     allowance.VehicleTag,
		Incentive:      allowance.Incentive,
		Gift:           allowance.Gift,
		Total:          allowance.Total,
	}
	if allowance.Employee != nil {
		resp.EmployeeNumber = allowance.Employee.EmployeeNumber
		resp.EmployeeName = allowance.Employee.FullName
	}
	return resp
}

func mapToListResponse(allowances []Allowance) []AllowanceResponse {
	resp := make([]AllowanceResponse, len(allowances))
	for i, allowance := range allowances {
		resp[i] = mapToResponse(allowance)
	}
	return resp
}
