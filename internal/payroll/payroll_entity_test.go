package payroll_test

import (
	"sync"
	"testing"

	"github.com/roshan749997/PravaraHealthCare-sub000/internal/payroll"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestPayrollSchema_PeriodIndexIgnoresSoftDeletedRows(t *testing.T) {
	sch, err := schema.Parse(&payroll.Payroll{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	idx, ok := sch.ParseIndexes()["uq_payroll_period"]
	require.True(t, ok)
	assert.Equal(t, "UNIQUE", idx.Class)
	assert.Equal(t, "deleted_at IS NULL", idx.Where)
	assert.Len(t, idx.Fields, 3)
}
