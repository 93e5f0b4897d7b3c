package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/roshan749997/PravaraHealthCare-sub000/internal/domain"
	"github.com/roshan749997/PravaraHealthCare-sub000/internal/events"
	"github.com/roshan749997/PravaraHealthCare-sub000/internal/messaging/kafka"
	payrollerrors "github.com/roshan749997/PravaraHealthCare-sub000/internal/payroll/errors"
	"github.com/roshan749997/PravaraHealthCare-sub000/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	StatusPending   = "Pending"
	StatusProcessed = "Processed"
	StatusPaid      = "Paid"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreatePayrollRequest) (PayrollResponse, error)
	GetAll(ctx context.Context, actor domain.Actor, filter PayrollQueryFilter) ([]PayrollResponse, error)
	GetByID(ctx context.Context, actor domain.Actor, id string) (PayrollResponse, error)
	Update(ctx context.Context, id string, req UpdatePayrollRequest) (PayrollResponse, error)
	Delete(ctx context.Context, id string) error
	Summary(ctx context.Context, actor domain.Actor, filter PayrollQueryFilter) (PayrollSummaryResponse, error)
	Process(ctx context.Context, req ProcessPayrollRequest) (ProcessPayrollResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{db: db, repo: repo, outbox: outboxRepo, logger: l}
}

func (s *service) Create(
	ctx context.Context,
	req CreatePayrollRequest,
) (PayrollResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create payroll requested",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
		zap.Int("month", req.Month),
		zap.Int("year", req.Year),
	)

	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidEmployeeID
	}
	if req.Month < 1 || req.Month > 12 || req.Year == 0 {
		return PayrollResponse{}, payrollerrors.ErrInvalidPeriod
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create payroll begin tx failed", zap.Error(err))
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	monthlySalary, found, err := qtx.EmployeeMonthlySalary(ctx, req.EmployeeID)
	if err != nil {
		s.logger.Error("create payroll lookup employee failed", zap.Error(err))
		return PayrollResponse{}, err
	}
	if !found {
		return PayrollResponse{}, payrollerrors.ErrEmployeeNotFound
	}

	// Default-fill rule: a missing base salary snapshots the employee's
	// current monthly salary.
	baseSalary := req.BaseSalary
	if baseSalary == 0 {
		baseSalary = monthlySalary
	}

	payroll := &Payroll{
		ID:         uuid.New(),
		EmployeeID: employeeUUID,
		Month:      req.Month,
		Year:       req.Year,
		BaseSalary: baseSalary,
		Incentive:  req.Incentive,
		Allowance:  req.Allowance,
		Total:      baseSalary + req.Incentive + req.Allowance,
		Status:     StatusPending,
	}

	if err := qtx.Create(ctx, payroll); err != nil {
		s.logger.Error("create payroll persist failed", zap.Error(err))
		return PayrollResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create payroll commit failed", zap.Error(err))
		return PayrollResponse{}, err
	}

	s.logger.Info("create payroll success",
		zap.String("request_id", rid),
		zap.String("payroll_id", payroll.ID.String()),
	)

	return mapToResponse(*payroll), nil
}

func (s *service) GetAll(
	ctx context.Context,
	actor domain.Actor,
	filter PayrollQueryFilter,
) ([]PayrollResponse, error) {
	// Employee-role callers are pinned to their own records no matter what
	// filter they sent.
	if !actor.IsAdmin() {
		filter.EmployeeID = actor.EmployeeID
	}

	payrolls, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("get all payrolls failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(payrolls), nil
}

func (s *service) GetByID(
	ctx context.Context,
	actor domain.Actor,
	id string,
) (PayrollResponse, error) {
	payroll, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get payroll by id failed", zap.Error(err))
		return PayrollResponse{}, mapRepositoryError(err)
	}

	if !actor.IsAdmin() && payroll.EmployeeID.String() != actor.EmployeeID {
		return PayrollResponse{}, payrollerrors.ErrForeignPayrollRecord
	}

	return mapToResponse(*payroll), nil
}

func (s *service) Update(
	ctx context.Context,
	id string,
	req UpdatePayrollRequest,
) (PayrollResponse, error) {
	s.logger.Debug("update payroll requested", zap.String("payroll_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update payroll begin tx failed", zap.Error(err))
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	payroll, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("update payroll fetch existing failed", zap.Error(err))
		return PayrollResponse{}, mapRepositoryError(err)
	}

	payroll.BaseSalary = req.BaseSalary
	payroll.Incentive = req.Incentive
	payroll.Allowance = req.Allowance
	payroll.Total = req.BaseSalary + req.Incentive + req.Allowance
	payroll.Status = req.Status

	if err := qtx.Update(ctx, payroll); err != nil {
		s.logger.Error("update payroll persist failed", zap.Error(err))
		return PayrollResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update payroll commit failed", zap.Error(err))
		return PayrollResponse{}, err
	}

	s.logger.Info("update payroll success", zap.String("payroll_id", id))

	return mapToResponse(*payroll), nil
}

func (s *service) Delete(
	ctx context.Context,
	id string,
) error {
	s.logger.Debug("delete payroll requested", zap.String("payroll_id", id))

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
		s.logger.Error("delete payroll failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	return tx.Commit()
}

func (s *service) Summary(
	ctx context.Context,
	actor domain.Actor,
	filter PayrollQueryFilter,
) (PayrollSummaryResponse, error) {
	if !actor.IsAdmin() {
		filter.EmployeeID = actor.EmployeeID
	}

	sums, err := s.repo.SumByFilter(ctx, filter)
	if err != nil {
		s.logger.Error("payroll summary failed", zap.Error(err))
		return PayrollSummaryResponse{}, mapRepositoryError(err)
	}

	return PayrollSummaryResponse{
		Count:      sums.Count,
		BaseSalary: sums.BaseSalary,
		Incentive:  sums.Incentive,
		Allowance:  sums.Allowance,
		Total:      sums.Total,
	}, nil
}

// Process bulk-inserts one Pending->Processed payroll per Active employee
// that has none for the period. It is a single insert pass, not a scheduled
// job.
func (s *service) Process(
	ctx context.Context,
	req ProcessPayrollRequest,
) (ProcessPayrollResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("process payroll run requested",
		zap.String("request_id", rid),
		zap.Int("month", req.Month),
		zap.Int("year", req.Year),
	)

	if req.Month < 1 || req.Month > 12 || req.Year == 0 {
		return ProcessPayrollResponse{}, payrollerrors.ErrInvalidPeriod
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("process payroll begin tx failed", zap.Error(err))
		return ProcessPayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	snapshots, err := qtx.ActiveEmployeesWithoutPayroll(ctx, req.Month, req.Year)
	if err != nil {
		s.logger.Error("process payroll list employees failed", zap.Error(err))
		return ProcessPayrollResponse{}, err
	}

	existing, err := qtx.SumByFilter(ctx, PayrollQueryFilter{Month: req.Month, Year: req.Year})
	if err != nil {
		return ProcessPayrollResponse{}, err
	}

	payrolls := make([]*Payroll, 0, len(snapshots))
	for _, snap := range snapshots {
		payrolls = append(payrolls, &Payroll{
			ID:         uuid.New(),
			EmployeeID: uuid.MustParse(snap.ID),
			Month:      req.Month,
			Year:       req.Year,
			BaseSalary: snap.MonthlySalary,
			Total:      snap.MonthlySalary,
			Status:     StatusProcessed,
		})
	}

	if err := qtx.CreateBatch(ctx, payrolls); err != nil {
		s.logger.Error("process payroll batch insert failed", zap.Error(err))
		return ProcessPayrollResponse{}, mapRepositoryError(err)
	}

	resp := ProcessPayrollResponse{
		Month:   req.Month,
		Year:    req.Year,
		Created: len(payrolls),
		Skipped: int(existing.Count),
	}

	if s.outbox != nil {
		event := events.PayrollRunCompletedEvent{
			EventType:  "payroll_run_completed",
			RequestID:  rid,
			Month:      req.Month,
			Year:       req.Year,
			Created:    resp.Created,
			Skipped:    resp.Skipped,
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return ProcessPayrollResponse{}, err
		}

		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "payroll_run",
			AggregateID:   event.EventType,
			EventType:     event.EventType,
			Topic:         events.PayrollRunCompletedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("process payroll outbox persist failed", zap.Error(err))
			return ProcessPayrollResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("process payroll commit failed", zap.Error(err))
		return ProcessPayrollResponse{}, err
	}

	s.logger.Info("process payroll run success",
		zap.String("request_id", rid),
		zap.Int("created", resp.Created),
		zap.Int("skipped", resp.Skipped),
	)

	return resp, nil
}

func mapToResponse(payroll Payroll) PayrollResponse {
	resp := PayrollResponse{
		ID:         payroll.ID.String(),
		EmployeeID: payroll.EmployeeID.String(),
		Month:      payroll.Month,
		Year:       payroll.Year,
		BaseSalary: payroll.BaseSalary,
		Incentive:  payroll.Incentive,
		Allowance:  payroll.Allowance,
		Total:      payroll.Total,
		Status:     payroll.Status,
	}
	if payroll.Employee != nil {
		resp.EmployeeNumber = payroll.Employee.EmployeeNumber
		resp.EmployeeName = payroll.Employee.FullName
	}
	return resp
}

func mapToListResponse(payrolls []Payroll) []PayrollResponse {
	resp := make([]PayrollResponse, len(payrolls))
	for i, payroll := range payrolls {
		resp[i] = mapToResponse(payroll)
	}
	return resp
}
