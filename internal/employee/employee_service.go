package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/roshan749997/PravaraHealthCare-sub000/internal/domain"
	employeeerrors "github.com/roshan749997/PravaraHealthCare-sub000/internal/employee/errors"
	"github.com/roshan749997/PravaraHealthCare-sub000/internal/events"
	"github.com/roshan749997/PravaraHealthCare-sub000/internal/messaging/kafka"
	"github.com/roshan749997/PravaraHealthCare-sub000/internal/shared/contextutil"
	"github.com/roshan749997/PravaraHealthCare-sub000/internal/shared/counter"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, actor domain.Actor) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, actor domain.Actor, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, counter counter.Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, counter, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	counter counter.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counter,
		outbox:  outboxRepo,
		logger:  l,
	}
}

func (s *service) Create(
	ctx context.Context,
	req CreateEmployeeRequest,
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("employee_number", req.EmployeeNumber),
		zap.String("department", req.Department),
	)

	if req.MonthlySalary < 0 {
		return EmployeeResponse{}, employeeerrors.ErrNegativeSalary
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if req.EmployeeNumber == "" {
		nextVal, err := s.counter.GetNextValue(ctx, "employee_number")
		if err != nil {
			s.logger.Error("create employee generate number failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		req.EmployeeNumber = fmt.Sprintf("EMP-%06d", nextVal)
	}

	status := req.Status
	if status == "" {
		status = StatusActive
	}

	empl := &Employee{
		ID:             uuid.New(),
		EmployeeNumber: req.EmployeeNumber,
		FullName:       req.FullName,
		Department:     req.Department,
		Status:         status,
		MonthlySalary:  req.MonthlySalary,
		AnnualSalary:   deriveAnnualSalary(req.MonthlySalary, req.AnnualSalary),
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.EmployeeCreatedEvent{
			EventType:      "employee_created",
			RequestID:      rid,
			EmployeeID:     empl.ID.String(),
			EmployeeNumber: empl.EmployeeNumber,
			Department:     empl.Department,
			OccurredAt:     time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
			return EmployeeResponse{}, err
		}

		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "employee",
			AggregateID:   empl.ID.String(),
			EventType:     event.EventType,
			Topic:         events.EmployeeCreatedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("create employee outbox persist failed",
				zap.String("employee_id", empl.ID.String()),
				zap.Error(err),
			)
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
		zap.String("employee_number", empl.EmployeeNumber),
	)

	return mapToResponse(*empl), nil
}

func (s *service) GetAll(
	ctx context.Context,
	actor domain.Actor,
) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested", zap.String("role", actor.Role))

	// Employee-role callers only ever see their own record.
	if !actor.IsAdmin() {
		empl, err := s.repo.FindByID(ctx, actor.EmployeeID)
		if err != nil {
			s.logger.Error("get own employee record failed", zap.Error(err))
			return nil, mapRepositoryError(err)
		}
		return []EmployeeResponse{mapToResponse(*empl)}, nil
	}

	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(empls), nil
}

func (s *service) GetByID(
	ctx context.Context,
	actor domain.Actor,
	id string,
) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.String("employee_id", id))

	if !actor.IsAdmin() && actor.EmployeeID != id {
		return EmployeeResponse{}, employeeerrors.ErrForeignEmployeeRecord
	}

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get employee by id failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) Update(
	ctx context.Context,
	id string,
	req UpdateEmployeeRequest,
) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested", zap.String("employee_id", id))

	if req.MonthlySalary < 0 {
		return EmployeeResponse{}, employeeerrors.ErrNegativeSalary
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("update employee fetch existing failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	empl.FullName = req.FullName
	empl.Department = req.Department
	empl.Status = req.Status
	empl.MonthlySalary = req.MonthlySalary
	empl.AnnualSalary = deriveAnnualSalary(req.MonthlySalary, req.AnnualSalary)

	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("update employee success", zap.String("employee_id", id))

	return mapToResponse(*empl), nil
}

func (s *service) Delete(
	ctx context.Context,
	id string,
) error {
	s.logger.Debug("delete employee requested", zap.String("employee_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

// deriveAnnualSalary fills the annual figure from the monthly one when the
// caller did not supply it.
func deriveAnnualSalary(monthly, annual int64) int64 {
	if annual != 0 {
		return annual
	}
	return monthly * 12
}

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             empl.ID.String(),
		EmployeeNumber: empl.EmployeeNumber,
		FullName:       empl.FullName,
		Department:     empl.Department,
		Status:         empl.Status,
		MonthlySalary:  empl.MonthlySalary,
		AnnualSalary:   empl.AnnualSalary,
	}
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}
