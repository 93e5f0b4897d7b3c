package rbac_test

import (
	"testing"

	"github.com/roshan749997/PravaraHealthCare-sub000/internal/domain"
	"github.com/roshan749997/PravaraHealthCare-sub000/internal/rbac"

	"github.com/stretchr/testify/assert"
)

func TestEnforce(t *testing.T) {
	svc, err := rbac.NewService()
	assert.NoError(t, err)

	cases := []struct {
		name     string
		role     string
		resource string
		action   string
		want     bool
	}{
		{"admin creates employees", domain.RoleAdmin, "employee", "create", true},
		{"admin deletes expenses", domain.RoleAdmin, "expense", "delete", true},
		{"admin runs payroll", domain.RoleAdmin, "payroll", "process", true},
		{"employee reads payroll", domain.RoleEmployee, "payroll", "read", true},
		{"employee cannot create payroll", domain.RoleEmployee, "payroll", "create", false},
		{"employee cannot read expenses", domain.RoleEmployee, "expense", "read", false},
		{"employee cannot manage users", domain.RoleEmployee, "admin", "read", false},
		{"unknown role denied", "superuser", "payroll", "read", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			allowed, err := svc.Enforce(tc.role, tc.resource, tc.action)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, allowed)
		})
	}
}
