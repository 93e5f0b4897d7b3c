package expense

import (
	"context"
	"database/sql"

	"github.com/roshan749997/PravaraHealthCare-sub000/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=expense_service.go -destination=mock/expense_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateExpenseRequest) (ExpenseResponse, error)
	GetAll(ctx context.Context, filter ExpenseQueryFilter) ([]ExpenseResponse, error)
	GetByID(ctx context.Context, id string) (ExpenseResponse, error)
	Update(ctx context.Context, id string, req UpdateExpenseRequest) (ExpenseResponse, error)
	Delete(ctx context.Context, id string) error
	Summary(ctx context.Context, filter ExpenseQueryFilter) (ExpenseSummaryResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("expense.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("expense.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(
	ctx context.Context,
	req CreateExpenseRequest,
) (ExpenseResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create expense requested",
		zap.String("request_id", rid),
		zap.Int("month", req.Month),
		zap.Int("year", req.Year),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create expense begin tx failed", zap.Error(err))
		return ExpenseResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	expense := &Expense{
		ID:         uuid.New(),
		Month:      req.Month,
		Year:       req.Year,
		OfficeRent: req.OfficeRent,
		LightBill:  req.LightBill,
		Other:      req.Other,
		Total:      req.OfficeRent + req.LightBill + req.Other,
		Notes:      req.Notes,
	}

	if err := qtx.Create(ctx, expense); err != nil {
		s.logger.Error("create expense persist failed", zap.Error(err))
		return ExpenseResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create expense commit failed", zap.Error(err))
		return ExpenseResponse{}, err
	}

	s.logger.Info("create expense success",
		zap.String("request_id", rid),
		zap.String("expense_id", expense.ID.String()),
	)

	return mapToResponse(*expense), nil
}

func (s *service) GetAll(
	ctx context.Context,
	filter ExpenseQueryFilter,
) ([]ExpenseResponse, error) {
	expenses, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("get all expenses failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	resp := make([]ExpenseResponse, len(expenses))
	for i, expense := range expenses {
		resp[i] = mapToResponse(expense)
	}
	return resp, nil
}

func (s *service) GetByID(
	ctx context.Context,
	id string,
) (ExpenseResponse, error) {
	expense, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get expense by id failed", zap.Error(err))
		return ExpenseResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*expense), nil
}

func (s *service) Update(
	ctx context.Context,
	id string,
	req UpdateExpenseRequest,
) (ExpenseResponse, error) {
	s.logger.Debug("update expense requested", zap.String("expense_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update expense begin tx failed", zap.Error(err))
		return ExpenseResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	expense, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("update expense fetch existing failed", zap.Error(err))
		return ExpenseResponse{}, mapRepositoryError(err)
	}

	expense.OfficeRent = req.OfficeRent
	expense.LightBill = req.LightBill
	expense.Other = req.Other
	expense.Total = req.OfficeRent + req.LightBill + req.Other
	expense.Notes = req.Notes

	if err := qtx.Update(ctx, expense); err != nil {
		s.logger.Error("update expense persist failed", zap.Error(err))
		return ExpenseResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update expense commit failed", zap.Error(err))
		return ExpenseResponse{}, err
	}

	s.logger.Info("update expense success", zap.String("expense_id", id))

	return mapToResponse(*expense), nil
}

func (s *service) Delete(
	ctx context.Context,
	id string,
) error {
	s.logger.Debug("delete expense requested", zap.String("expense_id", id))

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
		s.logger.Error("delete expense failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	return tx.Commit()
}

func (s *service) Summary(
	ctx context.Context,
	filter ExpenseQueryFilter,
) (ExpenseSummaryResponse, error) {
	sums, err := s.repo.SumByFilter(ctx, filter)
	if err != nil {
		s.logger.Error("expense summary failed", zap.Error(err))
		return ExpenseSummaryResponse{}, mapRepositoryError(err)
	}

	return ExpenseSummaryResponse{
		Count:      sums.Count,
		OfficeRent: sums.OfficeRent,
		LightBill:  sums.LightBill,
		Other:      sums.Other,
		Total:      sums.Total,
	}, nil
}

func mapToResponse(expense Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:         expense.ID.String(),
		Month:      expense.Month,
		Year:       expense.Year,
		OfficeRent: expense.OfficeRent,
		LightBill:  expense.LightBill,
		Other:      expense.Other,
		Total:      expense.Total,
		Notes:      expense.Notes,
	}
}
