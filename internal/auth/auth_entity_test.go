package auth_test

import (
	"sync"
	"testing"

	"github.com/roshan749997/PravaraHealthCare-sub000/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestUserSchema_EmailIndexIgnoresSoftDeletedRows(t *testing.T) {
	sch, err := schema.Parse(&auth.User{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	idx, ok := sch.ParseIndexes()["uq_user_email"]
	require.True(t, ok)
	assert.Equal(t, "UNIQUE", idx.Class)
	assert.Equal(t, "deleted_at IS NULL", idx.Where)
}
