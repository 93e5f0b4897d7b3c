package dashboard

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	dashboarderrors "github.com/roshan749997/PravaraHealthCare-sub000/internal/dashboard/errors"
	"github.com/roshan749997/PravaraHealthCare-sub000/internal/shared/contextutil"
	"github.com/roshan749997/PravaraHealthCare-sub000/internal/shared/period"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const statsCacheTTL = 60 * time.Second

//go:generate mockgen -source=dashboard_service.go -destination=mock/dashboard_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateDashboardRequest) (DashboardResponse, error)
	GetAll(ctx context.Context, year int) ([]DashboardResponse, error)
	GetByID(ctx context.Context, id string) (DashboardResponse, error)
	Update(ctx context.Context, id string, req UpdateDashboardRequest) (DashboardResponse, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context, p period.Period) (StatsResponse, error)
	Refresh(ctx context.Context, p period.Period) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{db: db, repo: repo, rdb: rdb, logger: l}
}

func (s *service) Create(
	ctx context.Context,
	req CreateDashboardRequest,
) (DashboardResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create dashboard entry requested",
		zap.String("request_id", rid),
		zap.String("month", req.Month),
		zap.Int("year", req.Year),
	)

	// Legacy clients send month as "MM-YYYY"; the trailing four digits win
	// over the year field. Any other month string leaves year as supplied.
	year := req.Year
	if _, legacyYear, ok := period.ParseLegacyMonth(req.Month); ok {
		year = legacyYear
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create dashboard begin tx failed", zap.Error(err))
		return DashboardResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	data := &DashboardData{
		ID:          uuid.New(),
		Month:       req.Month,
		Year:        year,
		Sales:       req.Sales,
		Revenue:     req.Revenue,
		Orders:      req.Orders,
		Customers:   req.Customers,
		GeneratedAt: time.Now().UTC(),
	}

	if err := qtx.Create(ctx, data); err != nil {
		s.logger.Error("create dashboard persist failed", zap.Error(err))
		return DashboardResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create dashboard commit failed", zap.Error(err))
		return DashboardResponse{}, err
	}

	s.logger.Info("create dashboard entry success",
		zap.String("request_id", rid),
		zap.String("dashboard_id", data.ID.String()),
	)

	return mapToResponse(*data), nil
}

func (s *service) GetAll(
	ctx context.Context,
	year int,
) ([]DashboardResponse, error) {
	entries, err := s.repo.FindAll(ctx, year)
	if err != nil {
		s.logger.Error("get all dashboard entries failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	resp := make([]DashboardResponse, len(entries))
	for i, entry := range entries {
		resp[i] = mapToResponse(entry)
	}
	return resp, nil
}

func (s *service) GetByID(
	ctx context.Context,
	id string,
) (DashboardResponse, error) {
	data, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get dashboard entry by id failed", zap.Error(err))
		return DashboardResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*data), nil
}

func (s *service) Update(
	ctx context.Context,
	id string,
	req UpdateDashboardRequest,
) (DashboardResponse, error) {
	s.logger.Debug("update dashboard entry requested", zap.String("dashboard_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update dashboard begin tx failed", zap.Error(err))
		return DashboardResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	data, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("update dashboard fetch existing failed", zap.Error(err))
		return DashboardResponse{}, mapRepositoryError(err)
	}

	data.Sales = req.Sales
	data.Revenue = req.Revenue
	data.Orders = req.Orders
	data.Customers = req.Customers
	data.GeneratedAt = time.Now().UTC()

	if err := qtx.Update(ctx, data); err != nil {
		s.logger.Error("update dashboard persist failed", zap.Error(err))
		return DashboardResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update dashboard commit failed", zap.Error(err))
		return DashboardResponse{}, err
	}

	s.logger.Info("update dashboard entry success", zap.String("dashboard_id", id))

	return mapToResponse(*data), nil
}

func (s *service) Delete(
	ctx context.Context,
	id string,
) error {
	s.logger.Debug("delete dashboard entry requested", zap.String("dashboard_id", id))

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
		s.logger.Error("delete dashboard entry failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	return tx.Commit()
}

// Stats serves the live aggregate view. Results are cached in redis for a
// minute and concurrent cache misses collapse to one database pass.
func (s *service) Stats(
	ctx context.Context,
	p period.Period,
) (StatsResponse, error) {
	if !p.Valid() {
		p = period.Current()
	}

	cacheKey := fmt.Sprintf("dashboard:stats:%s", p.String())

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp StatsResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (any, error) {
		agg, err := s.repo.LiveAggregates(ctx, p.Month, p.Year)
		if err != nil {
			return StatsResponse{}, err
		}

		resp := StatsResponse{
			TotalEmployees:     agg.TotalEmployees,
			ActiveEmployees:    agg.ActiveEmployees,
			TotalMonthlySalary: agg.TotalMonthlySalary,
			PayrollTotal:       agg.PayrollTotal,
			AllowanceTotal:     agg.AllowanceTotal,
			ExpenseTotal:       agg.ExpenseTotal,
			Month:              p.Month,
			Year:               p.Year,
		}

		if s.rdb != nil {
			if payload, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, payload, statsCacheTTL).Err(); err != nil {
					s.logger.Warn("dashboard stats cache store failed", zap.Error(err))
				}
			}
		}

		return resp, nil
	})
	if err != nil {
		s.logger.Error("dashboard stats failed", zap.Error(err))
		return StatsResponse{}, mapRepositoryError(err)
	}

	return v.(StatsResponse), nil
}

// Refresh derives the period's snapshot from the live aggregates and writes
// it over any existing row. Snapshot fields keep their legacy names: sales
// carries the payroll total, revenue the active salary mass, orders the
// payroll row count and customers the active headcount.
func (s *service) Refresh(ctx context.Context, p period.Period) error {
	if !p.Valid() {
		return dashboarderrors.ErrInvalidPeriod
	}

	agg, err := s.repo.LiveAggregates(ctx, p.Month, p.Year)
	if err != nil {
		s.logger.Error("dashboard refresh aggregates failed", zap.Error(err))
		return err
	}

	data := &DashboardData{
		ID:          uuid.New(),
		Month:       fmt.Sprintf("%02d", p.Month),
		Year:        p.Year,
		Sales:       agg.PayrollTotal,
		Revenue:     agg.TotalMonthlySalary,
		Orders:      agg.PayrollCount,
		Customers:   agg.ActiveEmployees,
		GeneratedAt: time.Now().UTC(),
	}

	if err := s.repo.Upsert(ctx, data); err != nil {
		s.logger.Error("dashboard refresh upsert failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if s.rdb != nil {
		cacheKey := fmt.Sprintf("dashboard:stats:%s", p.String())
		if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
			s.logger.Warn("dashboard stats cache invalidate failed", zap.Error(err))
		}
	}

	s.logger.Info("dashboard snapshot refreshed",
		zap.Int("month", p.Month),
		zap.Int("year", p.Year),
	)

	return nil
}

func mapToResponse(data DashboardData) DashboardResponse {
	return DashboardResponse{
		ID:          data.ID.String(),
		Month:       data.Month,
		Year:        data.Year,
		Sales:       data.Sales,
		Revenue:     data.Revenue,
		Orders:      data.Orders,
		Customers:   data.Customers,
		GeneratedAt: data.GeneratedAt,
	}
}
