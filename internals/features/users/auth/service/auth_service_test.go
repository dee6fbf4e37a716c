package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timetable_backend/internals/constants"
	accountModel "timetable_backend/internals/features/users/accounts/model"
	accountRepo "timetable_backend/internals/features/users/accounts/repository"
	authRepo "timetable_backend/internals/features/users/auth/repository"
	helper "timetable_backend/internals/helpers"
	authMw "timetable_backend/internals/middlewares/auth"
)

const secret = "auth-service-secret"

func newAuthService(t *testing.T) (*AuthService, accountRepo.Repository) {
	t.Helper()
	accounts := accountRepo.NewMemoryRepository()
	svc := &AuthService{
		Accounts:  accounts,
		Blacklist: authRepo.NewMemoryBlacklist(secret),
		Secret:    secret,
		AccessTTL: time.Hour,
	}
	return svc, accounts
}

func seedAccount(t *testing.T, repo accountRepo.Repository, email, role string, active bool) *accountModel.AccountModel {
	t.Helper()
	dept := "Computer Engineering"
	acc := &accountModel.AccountModel{Email: email, Name: email, Role: role, Department: &dept, IsActive: active}
	require.NoError(t, acc.SetPassword("password123"))
	require.NoError(t, repo.Create(context.Background(), acc))
	return acc
}

func TestLogin_IssuesTokenWithDepartment(t *testing.T) {
	svc, repo := newAuthService(t)
	acc := seedAccount(t, repo, "admin.ce@example.edu", constants.RoleAdmin, true)

	res, err := svc.Login(context.Background(), " Admin.CE@example.edu ", "password123", constants.AdminRoles)
	require.NoError(t, err)
	assert.Equal(t, acc.ID, res.Account.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), res.ExpiresAt, 5*time.Second)

	exp, ok := authMw.TokenExpiry(res.AccessToken)
	require.True(t, ok)
	assert.Equal(t, res.ExpiresAt.Unix(), exp.Unix())
}

func TestLogin_UnknownEmailAndWrongPasswordAreIndistinguishable(t *testing.T) {
	svc, repo := newAuthService(t)
	seedAccount(t, repo, "rao@example.edu", constants.RoleTeacher, true)

	_, errUnknown := svc.Login(context.Background(), "nobody@example.edu", "password123", constants.EndUserRoles)
	_, errWrong := svc.Login(context.Background(), "rao@example.edu", "wrong-password", constants.EndUserRoles)
	assert.True(t, helper.IsCode(errUnknown, helper.CodeInvalidCredentials))
	assert.Equal(t, errUnknown.Error(), errWrong.Error())
}

func TestLogin_RoleAndActiveChecks(t *testing.T) {
	svc, repo := newAuthService(t)
	seedAccount(t, repo, "rao@example.edu", constants.RoleTeacher, true)
	seedAccount(t, repo, "old@example.edu", constants.RoleTeacher, false)

	_, err := svc.Login(context.Background(), "rao@example.edu", "password123", constants.AdminRoles)
	assert.True(t, helper.IsCode(err, helper.CodeForbiddenRole))

	_, err = svc.Login(context.Background(), "old@example.edu", "password123", constants.EndUserRoles)
	assert.True(t, helper.IsCode(err, helper.CodeForbiddenInactive))

	_, err = svc.Login(context.Background(), "", "", constants.EndUserRoles)
	assert.True(t, helper.IsCode(err, helper.CodeFieldValidation))
}

func TestLogout_BlacklistsUntilExpiry(t *testing.T) {
	svc, repo := newAuthService(t)
	seedAccount(t, repo, "rao@example.edu", constants.RoleTeacher, true)
	ctx := context.Background()

	res, err := svc.Login(ctx, "rao@example.edu", "password123", constants.EndUserRoles)
	require.NoError(t, err)

	revoked, err := svc.IsBlacklisted(ctx, res.AccessToken)
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, svc.Logout(ctx, res.AccessToken))
	revoked, err = svc.IsBlacklisted(ctx, res.AccessToken)
	require.NoError(t, err)
	assert.True(t, revoked)

	assert.NoError(t, svc.Logout(ctx, ""))
}

func TestIssueAccessToken_RequiresSecret(t *testing.T) {
	_, _, err := IssueAccessToken(&accountModel.AccountModel{}, "", time.Hour, time.Now())
	assert.True(t, helper.IsKind(err, helper.KindInternal))
}
