package allowance_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/roshan749997/PravaraHealthCare-sub000/internal/allowance"
	allowanceerrors "github.com/roshan749997/PravaraHealthCare-sub000/internal/allowance/errors"
	"github.com/roshan749997/PravaraHealthCare-sub000/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeAllowanceRepository struct {
	createFn               func(ctx context.Context, a *allowance.Allowance) error
	findAllFn              func(ctx context.Context, filter allowance.AllowanceQueryFilter) ([]allowance.Allowance, error)
	findByIDFn             func(ctx context.Context, id string) (*allowance.Allowance, error)
	updateFn               func(ctx context.Context, a *allowance.Allowance) error
	deleteFn               func(ctx context.Context, id string) error
	employeeExistsFn       func(ctx context.Context, employeeID string) (bool, error)
	sumByFilterFn          func(ctx context.Context, filter allowance.AllowanceQueryFilter) (allowance.AllowanceSums, error)
	sumIncentiveByPeriodFn func(ctx context.Context, month, year int) (int64, error)
}

func (f *fakeAllowanceRepository) WithTx(tx *sql.Tx) allowance.Repository {
	return f
}

func (f *fakeAllowanceRepository) Create(ctx context.Context, a *allowance.Allowance) error {
	if f.createFn != nil {
		return f.createFn(ctx, a)
	}
	return nil
}

func (f *fakeAllowanceRepository) FindAll(ctx context.Context, filter allowance.AllowanceQueryFilter) ([]allowance.Allowance, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, filter)
	}
	return nil, nil
}

func (f *fakeAllowanceRepository) FindByID(ctx context.Context, id string) (*allowance.Allowance, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return &allowance.Allowance{}, nil
}

func (f *fakeAllowanceRepository) Update(ctx context.Context, a *allowance.Allowance) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, a)
	}
	return nil
}

func (f *fakeAllowanceRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeAllowanceRepository) EmployeeExists(ctx context.Context, employeeID string) (bool, error) {
	if f.employeeExistsFn != nil {
		return f.employeeExistsFn(ctx, employeeID)
	}
	return true, nil
}

func (f *fakeAllowanceRepository) SumByFilter(ctx context.Context, filter allowance.AllowanceQueryFilter) (allowance.AllowanceSums, error) {
	if f.sumByFilterFn != nil {
		return f.sumByFilterFn(ctx, filter)
	}
	return allowance.AllowanceSums{}, nil
}

func (f *fakeAllowanceRepository) SumIncentiveByPeriod(ctx context.Context, month, year int) (int64, error) {
	if f.sumIncentiveByPeriodFn != nil {
		return f.sumIncentiveByPeriodFn(ctx, month, year)
	}
	return 0, nil
}

func setupAllowanceServiceTest(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *fakeAllowanceRepository, allowance.Service) {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeAllowanceRepository{}
	return db, sqlMock, repo, allowance.NewService(db, repo)
}

func TestAllowanceService_Create_TotalsComponents(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New().String()

	db, sqlMock, repo, svc := setupAllowanceServiceTest(t)
	defer db.Close()

	sqlMock.ExpectBegin()
	sqlMock.ExpectCommit()

	repo.createFn = func(ctx context.Context, a *allowance.Allowance) error {
		assert.Equal(t, int64(300+1200+500+2000+150), a.Total)
		return nil
	}

	resp, err := svc.Create(ctx, allowance.CreateAllowanceRequest{
		EmployeeID:     employeeID,
		Month:          6,
		Year:           2024,
		MobileRecharge: 300,
		Petrol:         1200,
		VehicleTag:     500,
		Incentive:      2000,
		Gift:           150,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(4150), resp.Total)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestAllowanceService_Create_UnknownEmployee(t *testing.T) {
	ctx := context.Background()

	db, sqlMock, repo, svc := setupAllowanceServiceTest(t)
	defer db.Close()

	sqlMock.ExpectBegin()
	sqlMock.ExpectRollback()

	repo.employeeExistsFn = func(ctx context.Context, employeeID string) (bool, error) {
		return false, nil
	}

	_, err := svc.Create(ctx, allowance.CreateAllowanceRequest{
		EmployeeID: uuid.New().String(),
		Month:      6,
		Year:       2024,
	})

	assert.ErrorIs(t, err, allowanceerrors.ErrEmployeeNotFound)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestAllowanceService_Create_DuplicatePeriodConflict(t *testing.T) {
	ctx := context.Background()

	db, sqlMock, repo, svc := setupAllowanceServiceTest(t)
	defer db.Close()

	sqlMock.ExpectBegin()
	sqlMock.ExpectRollback()

	repo.createFn = func(ctx context.Context, a *allowance.Allowance) error {
		return errors.New(`ERROR: duplicate key value violates unique constraint "uq_allowance_period" (SQLSTATE 23505)`)
	}

	_, err := svc.Create(ctx, allowance.CreateAllowanceRequest{
		EmployeeID: uuid.New().String(),
		Month:      6,
		Year:       2024,
	})

	assert.ErrorIs(t, err, allowanceerrors.ErrAllowanceAlreadyExists)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestAllowanceService_GetAll_ScopesEmployeeRole(t *testing.T) {
	ctx := context.Background()
	ownEmployeeID := uuid.New().String()

	db, _, repo, svc := setupAllowanceServiceTest(t)
	defer db.Close()

	repo.findAllFn = func(ctx context.Context, filter allowance.AllowanceQueryFilter) ([]allowance.Allowance, error) {
		assert.Equal(t, ownEmployeeID, filter.EmployeeID)
		return nil, nil
	}

	actor := domain.Actor{
		UserID:     uuid.New().String(),
		Role:       domain.RoleEmployee,
		EmployeeID: ownEmployeeID,
	}

	// The caller asked for someone else's rows; the filter gets pinned anyway.
	_, err := svc.GetAll(ctx, actor, allowance.AllowanceQueryFilter{EmployeeID: uuid.New().String()})
	assert.NoError(t, err)
}

func TestAllowanceService_GetByID_ForeignRecordForbidden(t *testing.T) {
	ctx := context.Background()

	db, _, repo, svc := setupAllowanceServiceTest(t)
	defer db.Close()

	repo.findByIDFn = func(ctx context.Context, id string) (*allowance.Allowance, error) {
		return &allowance.Allowance{ID: uuid.New(), EmployeeID: uuid.New()}, nil
	}

	actor := domain.Actor{
		UserID:     uuid.New().String(),
		Role:       domain.RoleEmployee,
		EmployeeID: uuid.New().String(),
	}

	_, err := svc.GetByID(ctx, actor, uuid.New().String())
	assert.ErrorIs(t, err, allowanceerrors.ErrForeignAllowanceRecord)
}

func TestAllowanceService_Summary_DefaultsToZero(t *testing.T) {
	ctx := context.Background()

	db, _, repo, svc := setupAllowanceServiceTest(t)
	defer db.Close()

	repo.sumByFilterFn = func(ctx context.Context, filter allowance.AllowanceQueryFilter) (allowance.AllowanceSums, error) {
		assert.Equal(t, 2, filter.Month)
		assert.Equal(t, 1999, filter.Year)
		return allowance.AllowanceSums{}, nil
	}

	actor := domain.Actor{UserID: uuid.New().String(), Role: domain.RoleAdmin}

	resp, err := svc.Summary(ctx, actor, allowance.AllowanceQueryFilter{Month: 2, Year: 1999})

	assert.NoError(t, err)
	assert.Equal(t, int64(0), resp.Count)
	assert.Equal(t, int64(0), resp.Total)
}

func TestAllowanceService_Update_RecomputesTotal(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	db, sqlMock, repo, svc := setupAllowanceServiceTest(t)
	defer db.Close()

	sqlMock.ExpectBegin()
	sqlMock.ExpectCommit()

	repo.findByIDFn = func(ctx context.Context, lookupID string) (*allowance.Allowance, error) {
		assert.Equal(t, id.String(), lookupID)
		return &allowance.Allowance{ID: id, EmployeeID: uuid.New(), Month: 6, Year: 2024, Total: 9999}, nil
	}
	repo.updateFn = func(ctx context.Context, a *allowance.Allowance) error {
		assert.Equal(t, int64(100+200), a.Total)
		return nil
	}

	resp, err := svc.Update(ctx, id.String(), allowance.UpdateAllowanceRequest{
		MobileRecharge: 100,
		Petrol:         200,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(300), resp.Total)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}
