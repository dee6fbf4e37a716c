package helper

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timetable_backend/internals/constants"
	helper "timetable_backend/internals/helpers"
)

func principal(role, dept string) Principal {
	return Principal{AccountID: uuid.New(), Role: role, Department: dept}
}

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name    string
		p       Principal
		dept    string
		wantErr bool
	}{
		{"superadmin any department", principal(constants.RoleSuperAdmin, ""), "IT Engineering", false},
		{"same department", principal(constants.RoleAdmin, "Computer Engineering"), "Computer Engineering", false},
		{"other department", principal(constants.RoleAdmin, "Computer Engineering"), "IT Engineering", true},
		{"unbound admin", principal(constants.RoleAdmin, ""), "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.p, tt.dept)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, helper.IsCode(err, helper.CodeCrossTenantAccess))
			assert.True(t, helper.IsKind(err, helper.KindAuthorization))
		})
	}
}

func TestBlockSuperadminGeneration(t *testing.T) {
	err := BlockSuperadminGeneration(principal(constants.RoleSuperAdmin, ""))
	require.Error(t, err)
	assert.True(t, helper.IsKind(err, helper.KindAuthorization))

	// departemen tidak mengubah hasil
	err = BlockSuperadminGeneration(principal(constants.RoleSuperAdmin, "Computer Engineering"))
	assert.True(t, helper.IsKind(err, helper.KindAuthorization))

	assert.NoError(t, BlockSuperadminGeneration(principal(constants.RoleAdmin, "Computer Engineering")))
}

func TestOperatingDepartment(t *testing.T) {
	admin := principal(constants.RoleAdmin, "Computer Engineering")
	dept, err := OperatingDepartment(admin, "IT Engineering")
	require.NoError(t, err)
	assert.Equal(t, "Computer Engineering", dept, "client-supplied department must be ignored")

	super := principal(constants.RoleSuperAdmin, "")
	dept, err = OperatingDepartment(super, " IT Engineering ")
	require.NoError(t, err)
	assert.Equal(t, "IT Engineering", dept)

	_, err = OperatingDepartment(super, "")
	assert.True(t, helper.IsCode(err, helper.CodeDepartmentRequired))

	_, err = OperatingDepartment(super, "Basket Weaving")
	assert.True(t, helper.IsKind(err, helper.KindValidation))
}

func TestScopeFilter(t *testing.T) {
	admin := principal(constants.RoleAdmin, "Computer Engineering")
	dept, err := ScopeFilter(admin, "IT Engineering")
	require.NoError(t, err)
	assert.Equal(t, "Computer Engineering", dept)

	dept, err = ScopeFilter(principal(constants.RoleSuperAdmin, ""), "")
	require.NoError(t, err)
	assert.Empty(t, dept)

	_, err = ScopeFilter(principal(constants.RoleAdmin, ""), "")
	assert.Error(t, err, "unbound admin must never list across tenants")
}

func TestGuardTarget_NoExistenceLeak(t *testing.T) {
	admin := principal(constants.RoleAdmin, "Computer Engineering")

	absent := GuardTarget(admin, false, "", "room")
	foreign := GuardTarget(admin, true, "IT Engineering", "room")
	require.Error(t, absent)
	require.Error(t, foreign)
	assert.Equal(t, absent.Error(), foreign.Error())

	ae, ok := helper.AsAppError(absent)
	require.True(t, ok)
	assert.Equal(t, helper.CodeCrossTenantAccess, ae.Code)

	assert.NoError(t, GuardTarget(admin, true, "Computer Engineering", "room"))

	super := principal(constants.RoleSuperAdmin, "")
	assert.True(t, helper.IsKind(GuardTarget(super, false, "", "room"), helper.KindNotFound))
	assert.NoError(t, GuardTarget(super, true, "IT Engineering", "room"))
}
