package payroll_test

import (
	"context"
	"testing"

	"github.com/roshan749997/PravaraHealthCare-sub000/internal/payroll"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestPayrollRepository_WithTx_RunsQueriesOnTransaction(t *testing.T) {
	// Two separate connections: the pool behind the gorm handle must stay
	// idle, every statement has to reach the transaction's connection.
	poolDB, poolMock, err := sqlmock.New()
	require.NoError(t, err)
	defer poolDB.Close()

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: poolDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	txDB, txMock, err := sqlmock.New()
	require.NoError(t, err)
	defer txDB.Close()

	txMock.ExpectBegin()
	txMock.ExpectQuery(`SELECT .+ FROM "payrolls"`).
		WithArgs(4, 2024).
		WillReturnRows(sqlmock.NewRows(
			[]string{"count", "base_salary", "incentive", "allowance", "total"},
		).AddRow(2, 90000, 5000, 3000, 98000))
	txMock.ExpectRollback()

	tx, err := txDB.BeginTx(context.Background(), nil)
	require.NoError(t, err)

	repo := payroll.NewRepository(gormDB).WithTx(tx)
	sums, err := repo.SumByFilter(context.Background(), payroll.PayrollQueryFilter{Month: 4, Year: 2024})
	require.NoError(t, err)
	assert.Equal(t, int64(2), sums.Count)
	assert.Equal(t, int64(98000), sums.Total)

	require.NoError(t, tx.Rollback())
	assert.NoError(t, txMock.ExpectationsWereMet())
	assert.NoError(t, poolMock.ExpectationsWereMet())
}

func TestPayrollRepository_WithTx_LeavesRootSessionOnPool(t *testing.T) {
	poolDB, poolMock, err := sqlmock.New()
	require.NoError(t, err)
	defer poolDB.Close()

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: poolDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	txDB, txMock, err := sqlmock.New()
	require.NoError(t, err)
	defer txDB.Close()

	txMock.ExpectBegin()
	txMock.ExpectRollback()

	tx, err := txDB.BeginTx(context.Background(), nil)
	require.NoError(t, err)

	repo := payroll.NewRepository(gormDB)
	repo.WithTx(tx)

	// Binding a transaction must not rewire the original repository.
	poolMock.ExpectQuery(`SELECT .+ FROM "payrolls"`).
		WithArgs(5, 2024).
		WillReturnRows(sqlmock.NewRows(
			[]string{"count", "base_salary", "incentive", "allowance", "total"},
		).AddRow(0, 0, 0, 0, 0))

	_, err = repo.SumByFilter(context.Background(), payroll.PayrollQueryFilter{Month: 5, Year: 2024})
	require.NoError(t, err)

	require.NoError(t, tx.Rollback())
	assert.NoError(t, txMock.ExpectationsWereMet())
	assert.NoError(t, poolMock.ExpectationsWereMet())
}
