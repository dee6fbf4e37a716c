package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timetable_backend/internals/constants"
	accountModel "timetable_backend/internals/features/users/accounts/model"
	accountRepo "timetable_backend/internals/features/users/accounts/repository"
	helper "timetable_backend/internals/helpers"
)

const testSecret = "test-secret"

func seedAccount(t *testing.T, repo accountRepo.Repository, role, dept string, active bool) *accountModel.AccountModel {
	t.Helper()
	acc := &accountModel.AccountModel{
		Name:     role + " user",
		Email:    uuid.NewString() + "@example.edu",
		Role:     role,
		IsActive: active,
	}
	if dept != "" {
		acc.Department = &dept
	}
	require.NoError(t, acc.SetPassword("secret123"))
	require.NoError(t, repo.Create(context.Background(), acc))
	return acc
}

func signToken(t *testing.T, id string, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		ClaimID:     id,
		ClaimExpiry: exp.Unix(),
		ClaimRole:   "ignored",
	})
	s, err := tok.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return s
}

func adminChain(repo accountRepo.Repository, bl BlacklistChecker) *Chain {
	return AdminChain(Options{Secret: testSecret, Accounts: repo, Blacklist: bl})
}

func TestChain_NoCredential(t *testing.T) {
	repo := accountRepo.NewMemoryRepository()
	r := adminChain(repo, nil).Verify(context.Background(), Credentials{})
	require.Equal(t, Rejected, r.Outcome)
	assert.Equal(t, helper.CodeUnauthorizedMissing, r.Err.Code)
	assert.Equal(t, helper.KindAuthentication, r.Err.Kind)
}

func TestChain_SessionResolvesBeforeToken(t *testing.T) {
	repo := accountRepo.NewMemoryRepository()
	admin := seedAccount(t, repo, constants.RoleAdmin, "Computer Engineering", true)

	r := adminChain(repo, nil).Verify(context.Background(), Credentials{
		SessionAccountID: admin.ID.String(),
		SessionIsAdmin:   true,
		Token:            "garbage",
	})
	require.Equal(t, Resolved, r.Outcome)
	assert.Equal(t, "session", r.Principal.Via)
	assert.Equal(t, admin.ID, r.Principal.AccountID)
	assert.Equal(t, "Computer Engineering", r.Principal.Department)
}

func TestChain_SessionWithoutAdminFlagFallsThrough(t *testing.T) {
	repo := accountRepo.NewMemoryRepository()
	admin := seedAccount(t, repo, constants.RoleAdmin, "Computer Engineering", true)

	r := adminChain(repo, nil).Verify(context.Background(), Credentials{
		SessionAccountID: admin.ID.String(),
		Token:            signToken(t, admin.ID.String(), time.Now().Add(time.Hour)),
	})
	require.Equal(t, Resolved, r.Outcome)
	assert.Equal(t, "token", r.Principal.Via)
}

func TestChain_RejectionReasons(t *testing.T) {
	repo := accountRepo.NewMemoryRepository()
	admin := seedAccount(t, repo, constants.RoleAdmin, "Computer Engineering", true)
	inactive := seedAccount(t, repo, constants.RoleAdmin, "Computer Engineering", false)
	student := seedAccount(t, repo, constants.RoleStudent, "Computer Engineering", true)
	future := time.Now().Add(time.Hour)

	tests := []struct {
		name     string
		token    string
		wantKind helper.ErrorKind
		wantCode string
	}{
		{"unknown account", signToken(t, uuid.NewString(), future), helper.KindNotFound, helper.CodeAccountNotFound},
		{"wrong role", signToken(t, student.ID.String(), future), helper.KindAuthorization, helper.CodeForbiddenRole},
		{"inactive", signToken(t, inactive.ID.String(), future), helper.KindAuthorization, helper.CodeForbiddenInactive},
		{"expired", signToken(t, admin.ID.String(), time.Now().Add(-time.Hour)), helper.KindAuthentication, helper.CodeUnauthorizedExpired},
		{"bad signature", signToken(t, admin.ID.String(), future) + "x", helper.KindAuthentication, helper.CodeUnauthorizedInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := adminChain(repo, nil).Verify(context.Background(), Credentials{Token: tt.token})
			require.Equal(t, Rejected, r.Outcome)
			assert.Equal(t, tt.wantKind, r.Err.Kind)
			assert.Equal(t, tt.wantCode, r.Err.Code)
		})
	}
}

func TestChain_RevokedToken(t *testing.T) {
	repo := accountRepo.NewMemoryRepository()
	admin := seedAccount(t, repo, constants.RoleAdmin, "Computer Engineering", true)
	tok := signToken(t, admin.ID.String(), time.Now().Add(time.Hour))

	revoked := func(_ context.Context, raw string) (bool, error) { return raw == tok, nil }
	r := adminChain(repo, revoked).Verify(context.Background(), Credentials{Token: tok})
	require.Equal(t, Rejected, r.Outcome)
	assert.Equal(t, helper.CodeUnauthorizedRevoked, r.Err.Code)
}

func TestUserChain_OnlyEndUsersViaToken(t *testing.T) {
	repo := accountRepo.NewMemoryRepository()
	teacher := seedAccount(t, repo, constants.RoleTeacher, "IT Engineering", true)
	admin := seedAccount(t, repo, constants.RoleAdmin, "IT Engineering", true)
	chain := UserChain(Options{Secret: testSecret, Accounts: repo})
	future := time.Now().Add(time.Hour)

	r := chain.Verify(context.Background(), Credentials{Token: signToken(t, teacher.ID.String(), future)})
	require.Equal(t, Resolved, r.Outcome)
	assert.Equal(t, constants.RoleTeacher, r.Principal.Role)

	r = chain.Verify(context.Background(), Credentials{Token: signToken(t, admin.ID.String(), future)})
	require.Equal(t, Rejected, r.Outcome)
	assert.Equal(t, helper.CodeForbiddenRole, r.Err.Code)

	// session tidak dibaca oleh chain end-user
	r = chain.Verify(context.Background(), Credentials{SessionAccountID: teacher.ID.String(), SessionIsAdmin: true})
	require.Equal(t, Rejected, r.Outcome)
	assert.Equal(t, helper.CodeUnauthorizedMissing, r.Err.Code)
}

func TestTokenStrategy_SkewAndClock(t *testing.T) {
	repo := accountRepo.NewMemoryRepository()
	admin := seedAccount(t, repo, constants.RoleAdmin, "Computer Engineering", true)
	exp := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	tok := signToken(t, admin.ID.String(), exp)

	s := &TokenStrategy{
		Secret:       testSecret,
		Accounts:     repo,
		AllowedRoles: constants.AdminRoles,
		Skew:         30 * time.Second,
		Now:          func() time.Time { return exp.Add(10 * time.Second) },
	}
	assert.Equal(t, Resolved, s.Verify(context.Background(), Credentials{Token: tok}).Outcome)

	s.Now = func() time.Time { return exp.Add(time.Minute) }
	r := s.Verify(context.Background(), Credentials{Token: tok})
	require.Equal(t, Rejected, r.Outcome)
	assert.Equal(t, helper.CodeUnauthorizedExpired, r.Err.Code)
}
