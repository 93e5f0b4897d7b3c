package employee_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/roshan749997/PravaraHealthCare-sub000/internal/domain"
	"github.com/roshan749997/PravaraHealthCare-sub000/internal/employee"
	employeeerrors "github.com/roshan749997/PravaraHealthCare-sub000/internal/employee/errors"
	"github.com/roshan749997/PravaraHealthCare-sub000/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeEmployeeRepository struct {
	withTxFn                 func(tx *sql.Tx) employee.Repository
	createFn                 func(ctx context.Context, empl *employee.Employee) error
	findAllFn                func(ctx context.Context) ([]employee.Employee, error)
	findByIDFn               func(ctx context.Context, id string) (*employee.Employee, error)
	findByNumberFn           func(ctx context.Context, number string, caseInsensitive bool) (*employee.Employee, error)
	updateFn                 func(ctx context.Context, empl *employee.Employee) error
	deleteFn                 func(ctx context.Context, id string) error
	countActiveFn            func(ctx context.Context) (int64, error)
	sumActiveMonthlySalaryFn func(ctx context.Context) (int64, error)
	groupByDepartmentFn      func(ctx context.Context) ([]employee.DepartmentStat, error)
}

func (f *fakeEmployeeRepository) WithTx(tx *sql.Tx) employee.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeEmployeeRepository) Create(ctx context.Context, empl *employee.Employee) error {
	if f.createFn != nil {
		return f.createFn(ctx, empl)
	}
	return nil
}

func (f *fakeEmployeeRepository) FindAll(ctx context.Context) ([]employee.Employee, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) FindByNumber(ctx context.Context, number string, caseInsensitive bool) (*employee.Employee, error) {
	if f.findByNumberFn != nil {
		return f.findByNumberFn(ctx, number, caseInsensitive)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) Update(ctx context.Context, empl *employee.Employee) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, empl)
	}
	return nil
}

func (f *fakeEmployeeRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeEmployeeRepository) CountActive(ctx context.Context) (int64, error) {
	if f.countActiveFn != nil {
		return f.countActiveFn(ctx)
	}
	return 0, nil
}

func (f *fakeEmployeeRepository) SumActiveMonthlySalary(ctx context.Context) (int64, error) {
	if f.sumActiveMonthlySalaryFn != nil {
		return f.sumActiveMonthlySalaryFn(ctx)
	}
	return 0, nil
}

func (f *fakeEmployeeRepository) GroupByDepartment(ctx context.Context) ([]employee.DepartmentStat, error) {
	if f.groupByDepartmentFn != nil {
		return f.groupByDepartmentFn(ctx)
	}
	return nil, nil
}

type fakeCounterRepository struct {
	getNextValueFn func(ctx context.Context, counterType string) (int64, error)
}

func (f *fakeCounterRepository) GetNextValue(ctx context.Context, counterType string) (int64, error) {
	if f.getNextValueFn != nil {
		return f.getNextValueFn(ctx, counterType)
	}
	return 1, nil
}

type fakeOutboxRepository struct {
	createFn func(ctx context.Context, event kafka.OutboxEvent) error
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository {
	return f
}

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	if f.createFn != nil {
		return f.createFn(ctx, event)
	}
	return nil
}

func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error {
	return nil
}

func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

type employeeServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service employee.Service
	repo    *fakeEmployeeRepository
	counter *fakeCounterRepository
}

func setupEmployeeServiceTest(t *testing.T) *employeeServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeEmployeeRepository{}
	counterRepo := &fakeCounterRepository{}
	svc := employee.NewService(db, repo, counterRepo)

	return &employeeServiceDeps{db: db, sqlMock: sqlMock, service: svc, repo: repo, counter: counterRepo}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestEmployeeService_Create_DerivesAnnualSalary(t *testing.T) {
	ctx := context.Background()

	deps := setupEmployeeServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, true)
	deps.repo.createFn = func(ctx context.Context, empl *employee.Employee) error {
		assert.Equal(t, int64(50000*12), empl.AnnualSalary)
		return nil
	}

	resp, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
		EmployeeNumber: "EMP-000042",
		FullName:       "Asha Kulkarni",
		Department:     employee.DepartmentClinical,
		MonthlySalary:  50000,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(600000), resp.AnnualSalary)
	assert.Equal(t, employee.StatusActive, resp.Status)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestEmployeeService_Create_KeepsExplicitAnnualSalary(t *testing.T) {
	ctx := context.Background()

	deps := setupEmployeeServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, true)

	resp, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
		EmployeeNumber: "EMP-000043",
		FullName:       "Ravi Deshmukh",
		Department:     employee.DepartmentTechnical,
		MonthlySalary:  40000,
		AnnualSalary:   500000,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(500000), resp.AnnualSalary)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestEmployeeService_Create_GeneratesBusinessNumber(t *testing.T) {
	ctx := context.Background()

	deps := setupEmployeeServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, true)
	deps.counter.getNextValueFn = func(ctx context.Context, counterType string) (int64, error) {
		assert.Equal(t, "employee_number", counterType)
		return 7, nil
	}

	resp, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
		FullName:      "Meera Patil",
		Department:    employee.DepartmentAdministrative,
		MonthlySalary: 30000,
	})

	assert.NoError(t, err)
	assert.Equal(t, "EMP-000007", resp.EmployeeNumber)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestEmployeeService_Create_DuplicateNumberConflict(t *testing.T) {
	ctx := context.Background()

	deps := setupEmployeeServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, false)
	deps.repo.createFn = func(ctx context.Context, empl *employee.Employee) error {
		return errors.New(`ERROR: duplicate key value violates unique constraint "uq_employee_number" (SQLSTATE 23505)`)
	}

	_, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
		EmployeeNumber: "EMP-000042",
		FullName:       "Asha Kulkarni",
		Department:     employee.DepartmentClinical,
		MonthlySalary:  50000,
	})

	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNumberAlreadyExists)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestEmployeeService_GetAll_ScopesEmployeeRole(t *testing.T) {
	ctx := context.Background()
	ownID := uuid.New()

	deps := setupEmployeeServiceTest(t)
	defer deps.db.Close()

	deps.repo.findAllFn = func(ctx context.Context) ([]employee.Employee, error) {
		t.Fatal("employee role must not list the whole table")
		return nil, nil
	}
	deps.repo.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
		assert.Equal(t, ownID.String(), id)
		return &employee.Employee{ID: ownID, EmployeeNumber: "EMP-000001", FullName: "Asha Kulkarni"}, nil
	}

	actor := domain.Actor{
		UserID:     uuid.New().String(),
		Role:       domain.RoleEmployee,
		EmployeeID: ownID.String(),
	}

	resp, err := deps.service.GetAll(ctx, actor)

	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, ownID.String(), resp[0].ID)
}

func TestEmployeeService_GetByID_ForeignRecordForbidden(t *testing.T) {
	ctx := context.Background()

	deps := setupEmployeeServiceTest(t)
	defer deps.db.Close()

	actor := domain.Actor{
		UserID:     uuid.New().String(),
		Role:       domain.RoleEmployee,
		EmployeeID: uuid.New().String(),
	}

	_, err := deps.service.GetByID(ctx, actor, uuid.New().String())

	assert.ErrorIs(t, err, employeeerrors.ErrForeignEmployeeRecord)
}
