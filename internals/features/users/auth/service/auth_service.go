package service

import (
	"context"
	"log"
	"strings"
	"time"

	"timetable_backend/internals/constants"
	accountModel "timetable_backend/internals/features/users/accounts/model"
	accountRepo "timetable_backend/internals/features/users/accounts/repository"
	authRepo "timetable_backend/internals/features/users/auth/repository"
	helper "timetable_backend/internals/helpers"
	authMw "timetable_backend/internals/middlewares/auth"
)

type AuthService struct {
	Accounts  accountRepo.Repository
	Blacklist authRepo.Blacklist
	Secret    string
	AccessTTL time.Duration
	Now       func() time.Time
}

type LoginResult struct {
	Account     *accountModel.AccountModel
	AccessToken string
	ExpiresAt   time.Time
}

func (s *AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Login memverifikasi email+password untuk kelompok role tertentu lalu menerbitkan token.
// Email tak dikenal dan password salah menghasilkan error yang sama.
func (s *AuthService) Login(ctx context.Context, email, password string, allowedRoles []string) (*LoginResult, error) {
	email = accountModel.NormalizeEmail(email)
	if email == "" || strings.TrimSpace(password) == "" {
		return nil, helper.ValidationError(helper.CodeFieldValidation, "credential", "email and password are required")
	}

	acc, err := s.Accounts.FindByEmail(ctx, email)
	if err != nil {
		if helper.IsKind(err, helper.KindNotFound) {
			return nil, invalidCredentials()
		}
		return nil, err
	}
	if !acc.CheckPassword(password) {
		return nil, invalidCredentials()
	}
	if !constants.HasRole(allowedRoles, acc.Role) {
		return nil, helper.AuthorizationError(helper.CodeForbiddenRole, "account", "role not permitted for this login")
	}
	if !acc.IsActive {
		return nil, helper.AuthorizationError(helper.CodeForbiddenInactive, "account", "account is deactivated")
	}

	token, exp, err := IssueAccessToken(acc, s.Secret, s.AccessTTL, s.now())
	if err != nil {
		return nil, err
	}
	log.Printf("[AUTH] login id=%s role=%s", acc.ID, acc.Role)
	return &LoginResult{Account: acc, AccessToken: token, ExpiresAt: exp}, nil
}

// Logout mem-blacklist token sampai exp aslinya.
func (s *AuthService) Logout(ctx context.Context, rawToken string) error {
	if strings.TrimSpace(rawToken) == "" || s.Blacklist == nil {
		return nil
	}
	exp, ok := authMw.TokenExpiry(rawToken)
	if !ok {
		exp = s.now().Add(s.AccessTTL)
	}
	return s.Blacklist.Add(ctx, rawToken, exp)
}

// IsBlacklisted dipakai TokenStrategy.
func (s *AuthService) IsBlacklisted(ctx context.Context, rawToken string) (bool, error) {
	if s.Blacklist == nil {
		return false, nil
	}
	return s.Blacklist.IsBlacklisted(ctx, rawToken)
}

func invalidCredentials() error {
	return helper.AuthenticationError(helper.CodeInvalidCredentials, "invalid email or password")
}
