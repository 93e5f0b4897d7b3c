package expense_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/roshan749997/PravaraHealthCare-sub000/internal/expense"
	expenseerrors "github.com/roshan749997/PravaraHealthCare-sub000/internal/expense/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeExpenseRepository struct {
	createFn      func(ctx context.Context, e *expense.Expense) error
	findAllFn     func(ctx context.Context, filter expense.ExpenseQueryFilter) ([]expense.Expense, error)
	findByIDFn    func(ctx context.Context, id string) (*expense.Expense, error)
	updateFn      func(ctx context.Context, e *expense.Expense) error
	deleteFn      func(ctx context.Context, id string) error
	sumByFilterFn func(ctx context.Context, filter expense.ExpenseQueryFilter) (expense.ExpenseSums, error)
}

func (f *fakeExpenseRepository) WithTx(tx *sql.Tx) expense.Repository {
	return f
}

func (f *fakeExpenseRepository) Create(ctx context.Context, e *expense.Expense) error {
	if f.createFn != nil {
		return f.createFn(ctx, e)
	}
	return nil
}

func (f *fakeExpenseRepository) FindAll(ctx context.Context, filter expense.ExpenseQueryFilter) ([]expense.Expense, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, filter)
	}
	return nil, nil
}

func (f *fakeExpenseRepository) FindByID(ctx context.Context, id string) (*expense.Expense, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return &expense.Expense{}, nil
}

func (f *fakeExpenseRepository) Update(ctx context.Context, e *expense.Expense) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, e)
	}
	return nil
}

func (f *fakeExpenseRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeExpenseRepository) SumByFilter(ctx context.Context, filter expense.ExpenseQueryFilter) (expense.ExpenseSums, error) {
	if f.sumByFilterFn != nil {
		return f.sumByFilterFn(ctx, filter)
	}
	return expense.ExpenseSums{}, nil
}

func setupExpenseServiceTest(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *fakeExpenseRepository, expense.Service) {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeExpenseRepository{}
	return db, sqlMock, repo, expense.NewService(db, repo)
}

func TestExpenseService_Create_TotalsComponents(t *testing.T) {
	ctx := context.Background()

	db, sqlMock, repo, svc := setupExpenseServiceTest(t)
	defer db.Close()

	sqlMock.ExpectBegin()
	sqlMock.ExpectCommit()

	repo.createFn = func(ctx context.Context, e *expense.Expense) error {
		assert.Equal(t, int64(25000+3200+1800), e.Total)
		return nil
	}

	resp, err := svc.Create(ctx, expense.CreateExpenseRequest{
		Month:      6,
		Year:       2024,
		OfficeRent: 25000,
		LightBill:  3200,
		Other:      1800,
		Notes:      "generator fuel included",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(30000), resp.Total)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestExpenseService_Create_DuplicatePeriodConflict(t *testing.T) {
	ctx := context.Background()

	db, sqlMock, repo, svc := setupExpenseServiceTest(t)
	defer db.Close()

	sqlMock.ExpectBegin()
	sqlMock.ExpectRollback()

	repo.createFn = func(ctx context.Context, e *expense.Expense) error {
		return errors.New(`ERROR: duplicate key value violates unique constraint "uq_expense_period" (SQLSTATE 23505)`)
	}

	_, err := svc.Create(ctx, expense.CreateExpenseRequest{Month: 6, Year: 2024})

	assert.ErrorIs(t, err, expenseerrors.ErrExpenseAlreadyExists)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestExpenseService_Summary_DefaultsToZero(t *testing.T) {
	ctx := context.Background()

	db, _, repo, svc := setupExpenseServiceTest(t)
	defer db.Close()

	repo.sumByFilterFn = func(ctx context.Context, filter expense.ExpenseQueryFilter) (expense.ExpenseSums, error) {
		assert.Equal(t, 11, filter.Month)
		assert.Equal(t, 1980, filter.Year)
		return expense.ExpenseSums{}, nil
	}

	resp, err := svc.Summary(ctx, expense.ExpenseQueryFilter{Month: 11, Year: 1980})

	assert.NoError(t, err)
	assert.Equal(t, int64(0), resp.Count)
	assert.Equal(t, int64(0), resp.OfficeRent)
	assert.Equal(t, int64(0), resp.Total)
}

func TestExpenseService_Update_RecomputesTotal(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	db, sqlMock, repo, svc := setupExpenseServiceTest(t)
	defer db.Close()

	sqlMock.ExpectBegin()
	sqlMock.ExpectCommit()

	repo.findByIDFn = func(ctx context.Context, lookupID string) (*expense.Expense, error) {
		return &expense.Expense{ID: id, Month: 6, Year: 2024, Total: 9999}, nil
	}
	repo.updateFn = func(ctx context.Context, e *expense.Expense) error {
		assert.Equal(t, int64(20000+2500), e.Total)
		return nil
	}

	resp, err := svc.Update(ctx, id.String(), expense.UpdateExpenseRequest{
		OfficeRent: 20000,
		LightBill:  2500,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(22500), resp.Total)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}
