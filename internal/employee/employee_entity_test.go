package employee_test

import (
	"sync"
	"testing"

	"github.com/roshan749997/PravaraHealthCare-sub000/internal/employee"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestEmployeeSchema_NumberIndexIgnoresSoftDeletedRows(t *testing.T) {
	sch, err := schema.Parse(&employee.Employee{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	idx, ok := sch.ParseIndexes()["uq_employee_number"]
	require.True(t, ok)
	assert.Equal(t, "UNIQUE", idx.Class)
	assert.Equal(t, "deleted_at IS NULL", idx.Where)
}
