package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timetable_backend/internals/constants"
	"timetable_backend/internals/features/users/accounts/dto"
	"timetable_backend/internals/features/users/accounts/repository"
	helper "timetable_backend/internals/helpers"
	helperAuth "timetable_backend/internals/helpers/auth"
)

var (
	superadmin = helperAuth.Principal{AccountID: uuid.New(), Role: constants.RoleSuperAdmin}
	ceAdmin    = helperAuth.Principal{AccountID: uuid.New(), Role: constants.RoleAdmin, Department: "Computer Engineering"}
	itAdmin    = helperAuth.Principal{AccountID: uuid.New(), Role: constants.RoleAdmin, Department: "IT Engineering"}
)

func newRequest(email, role, dept string) dto.CreateAccountRequest {
	return dto.CreateAccountRequest{
		Email: email, Password: "password123", Name: "Test " + role, Role: role, Department: dept,
	}
}

func TestCreate_AdminForcesOwnDepartment(t *testing.T) {
	svc := NewAccountService(repository.NewMemoryRepository())
	ctx := context.Background()

	acc, err := svc.Create(ctx, ceAdmin, newRequest("Rao@Example.edu", constants.RoleTeacher, "IT Engineering"))
	require.NoError(t, err)
	assert.Equal(t, "rao@example.edu", acc.Email)
	assert.Equal(t, "Computer Engineering", acc.DepartmentValue())
	assert.True(t, acc.CheckPassword("password123"))
	require.NotNil(t, acc.CreatedBy)
	assert.Equal(t, ceAdmin.AccountID, *acc.CreatedBy)
}

func TestCreate_RoleAndDepartmentRules(t *testing.T) {
	svc := NewAccountService(repository.NewMemoryRepository())
	ctx := context.Background()

	_, err := svc.Create(ctx, ceAdmin, newRequest("a2@example.edu", constants.RoleAdmin, ""))
	assert.True(t, helper.IsCode(err, helper.CodeForbiddenRole))

	_, err = svc.Create(ctx, superadmin, newRequest("a3@example.edu", constants.RoleAdmin, ""))
	assert.True(t, helper.IsCode(err, helper.CodeDepartmentRequired))

	_, err = svc.Create(ctx, superadmin, newRequest("a4@example.edu", constants.RoleAdmin, "Underwater Basket Weaving"))
	assert.True(t, helper.IsCode(err, helper.CodeFieldValidation))

	_, err = svc.Create(ctx, superadmin, newRequest("a5@example.edu", constants.RoleAdmin, "IT Engineering"))
	assert.NoError(t, err)

	_, err = svc.Create(ctx, superadmin, newRequest("A5@example.edu", constants.RoleTeacher, "IT Engineering"))
	assert.True(t, helper.IsCode(err, helper.CodeDuplicateEmail))
}

func TestGet_CrossTenantLooksLikeMissing(t *testing.T) {
	svc := NewAccountService(repository.NewMemoryRepository())
	ctx := context.Background()

	acc, err := svc.Create(ctx, ceAdmin, newRequest("rao@example.edu", constants.RoleTeacher, ""))
	require.NoError(t, err)

	_, errForeign := svc.Get(ctx, itAdmin, acc.ID)
	_, errMissing := svc.Get(ctx, itAdmin, uuid.New())
	require.Error(t, errForeign)
	require.Error(t, errMissing)
	assert.Equal(t, errMissing.Error(), errForeign.Error())

	got, err := svc.Get(ctx, ceAdmin, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, acc.ID, got.ID)
}

func TestActiveTeachers_SkipsInactiveAndOtherDepartments(t *testing.T) {
	svc := NewAccountService(repository.NewMemoryRepository())
	ctx := context.Background()

	rao, err := svc.Create(ctx, ceAdmin, newRequest("rao@example.edu", constants.RoleTeacher, ""))
	require.NoError(t, err)
	mehta, err := svc.Create(ctx, ceAdmin, newRequest("mehta@example.edu", constants.RoleTeacher, ""))
	require.NoError(t, err)
	_, err = svc.Create(ctx, itAdmin, newRequest("iyer@example.edu", constants.RoleTeacher, ""))
	require.NoError(t, err)
	_, err = svc.Create(ctx, ceAdmin, newRequest("asha@example.edu", constants.RoleStudent, ""))
	require.NoError(t, err)

	_, err = svc.SetActive(ctx, ceAdmin, mehta.ID, false)
	require.NoError(t, err)

	list, err := svc.ActiveTeachers(ctx, "Computer Engineering")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, rao.ID, list[0].ID)
}

func TestUpdateSubjects_OnlyTeachers(t *testing.T) {
	svc := NewAccountService(repository.NewMemoryRepository())
	ctx := context.Background()

	rao, err := svc.Create(ctx, ceAdmin, newRequest("rao@example.edu", constants.RoleTeacher, ""))
	require.NoError(t, err)
	asha, err := svc.Create(ctx, ceAdmin, newRequest("asha@example.edu", constants.RoleStudent, ""))
	require.NoError(t, err)

	req := dto.UpdateSubjectsRequest{Subjects: []dto.SubjectQualificationDTO{{Code: "CS101", Name: "Programming"}}}
	updated, err := svc.UpdateSubjects(ctx, ceAdmin, rao.ID, req)
	require.NoError(t, err)
	require.Len(t, updated.Subjects, 1)
	assert.Equal(t, "Computer Engineering", updated.Subjects[0].Department)

	_, err = svc.UpdateSubjects(ctx, ceAdmin, asha.ID, req)
	assert.True(t, helper.IsCode(err, helper.CodeFieldValidation))
}
