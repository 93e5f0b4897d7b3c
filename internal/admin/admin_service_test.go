package admin_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/roshan749997/PravaraHealthCare-sub000/internal/admin"
	adminerrors "github.com/roshan749997/PravaraHealthCare-sub000/internal/admin/errors"
	"github.com/roshan749997/PravaraHealthCare-sub000/internal/domain"
	"github.com/roshan749997/PravaraHealthCare-sub000/internal/shared/period"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeAdminRepository struct {
	listUsersFn      func(ctx context.Context) ([]admin.UserSummary, error)
	findUserFn       func(ctx context.Context, id string) (*admin.UserSummary, error)
	updateUserFn     func(ctx context.Context, id, role string, employeeID *string) error
	deleteUserFn     func(ctx context.Context, id string) error
	userCountsFn     func(ctx context.Context) (admin.UserCounts, error)
	employeeCountsFn func(ctx context.Context) (admin.EmployeeCounts, error)
	periodTotalsFn   func(ctx context.Context, month, year int) (admin.PeriodTotals, error)
}

func (f *fakeAdminRepository) WithTx(tx *sql.Tx) admin.Repository { return f }

func (f *fakeAdminRepository) ListUsers(ctx context.Context) ([]admin.UserSummary, error) {
	if f.listUsersFn != nil {
		return f.listUsersFn(ctx)
	}
	return nil, nil
}

func (f *fakeAdminRepository) FindUser(ctx context.Context, id string) (*admin.UserSummary, error) {
	if f.findUserFn != nil {
		return f.findUserFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAdminRepository) UpdateUser(ctx context.Context, id, role string, employeeID *string) error {
	if f.updateUserFn != nil {
		return f.updateUserFn(ctx, id, role, employeeID)
	}
	return nil
}

func (f *fakeAdminRepository) DeleteUser(ctx context.Context, id string) error {
	if f.deleteUserFn != nil {
		return f.deleteUserFn(ctx, id)
	}
	return nil
}

func (f *fakeAdminRepository) UserCounts(ctx context.Context) (admin.UserCounts, error) {
	if f.userCountsFn != nil {
		return f.userCountsFn(ctx)
	}
	return admin.UserCounts{}, nil
}

func (f *fakeAdminRepository) EmployeeCounts(ctx context.Context) (admin.EmployeeCounts, error) {
	if f.employeeCountsFn != nil {
		return f.employeeCountsFn(ctx)
	}
	return admin.EmployeeCounts{}, nil
}

func (f *fakeAdminRepository) PeriodTotals(ctx context.Context, month, year int) (admin.PeriodTotals, error) {
	if f.periodTotalsFn != nil {
		return f.periodTotalsFn(ctx, month, year)
	}
	return admin.PeriodTotals{}, nil
}

func setupAdminServiceTest(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *fakeAdminRepository, admin.Service) {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeAdminRepository{}
	return db, sqlMock, repo, admin.NewService(db, repo)
}

func TestAdminService_Overview_ComputesNet(t *testing.T) {
	ctx := context.Background()

	db, _, repo, svc := setupAdminServiceTest(t)
	defer db.Close()

	repo.employeeCountsFn = func(ctx context.Context) (admin.EmployeeCounts, error) {
		return admin.EmployeeCounts{Total: 20, Active: 18, MonthlySalary: 900000}, nil
	}
	repo.periodTotalsFn = func(ctx context.Context, month, year int) (admin.PeriodTotals, error) {
		assert.Equal(t, 4, month)
		assert.Equal(t, 2024, year)
		return admin.PeriodTotals{PayrollTotal: 920000, AllowanceTotal: 40000, ExpenseTotal: 60000}, nil
	}

	resp, err := svc.Overview(ctx, period.Period{Month: 4, Year: 2024})

	assert.NoError(t, err)
	assert.Equal(t, int64(920000+40000-60000), resp.Net)
	assert.Equal(t, int64(18), resp.ActiveEmployees)
}

func TestAdminService_Stats(t *testing.T) {
	ctx := context.Background()

	db, _, repo, svc := setupAdminServiceTest(t)
	defer db.Close()

	repo.userCountsFn = func(ctx context.Context) (admin.UserCounts, error) {
		return admin.UserCounts{Total: 5, Admin: 2, Employee: 3}, nil
	}
	repo.employeeCountsFn = func(ctx context.Context) (admin.EmployeeCounts, error) {
		return admin.EmployeeCounts{Total: 20, Active: 18}, nil
	}

	resp, err := svc.Stats(ctx)

	assert.NoError(t, err)
	assert.Equal(t, int64(5), resp.TotalUsers)
	assert.Equal(t, int64(2), resp.AdminUsers)
	assert.Equal(t, int64(20), resp.TotalEmployees)
}

func TestAdminService_UpdateUser_NotFound(t *testing.T) {
	ctx := context.Background()

	db, sqlMock, _, svc := setupAdminServiceTest(t)
	defer db.Close()

	sqlMock.ExpectBegin()
	sqlMock.ExpectRollback()

	_, err := svc.UpdateUser(ctx, uuid.New().String(), admin.UpdateUserRequest{Role: domain.RoleAdmin})

	assert.ErrorIs(t, err, adminerrors.ErrUserNotFound)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestAdminService_DeleteUser_SelfDeleteRejected(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New().String()

	db, _, repo, svc := setupAdminServiceTest(t)
	defer db.Close()

	repo.deleteUserFn = func(ctx context.Context, id string) error {
		t.Fatal("self delete must stop before the repository")
		return nil
	}

	actor := domain.Actor{UserID: actorID, Role: domain.RoleAdmin}
	err := svc.DeleteUser(ctx, actor, actorID)

	assert.ErrorIs(t, err, adminerrors.ErrCannotDeleteSelf)
}

func TestAdminService_DeleteUser(t *testing.T) {
	ctx := context.Background()
	targetID := uuid.New().String()

	db, sqlMock, repo, svc := setupAdminServiceTest(t)
	defer db.Close()

	sqlMock.ExpectBegin()
	sqlMock.ExpectCommit()

	repo.findUserFn = func(ctx context.Context, id string) (*admin.UserSummary, error) {
		return &admin.UserSummary{ID: id, Email: "nurse@pravara.example", Role: domain.RoleEmployee}, nil
	}

	deleted := false
	repo.deleteUserFn = func(ctx context.Context, id string) error {
		assert.Equal(t, targetID, id)
		deleted = true
		return nil
	}

	actor := domain.Actor{UserID: uuid.New().String(), Role: domain.RoleAdmin}
	err := svc.DeleteUser(ctx, actor, targetID)

	assert.NoError(t, err)
	assert.True(t, deleted)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}
