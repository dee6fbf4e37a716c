package auth

import (
	"context"
	"log"
	"strings"
	"time"

	helper "timetable_backend/internals/helpers"
)

// BlacklistChecker: true jika token sudah di-revoke (logout).
type BlacklistChecker func(ctx context.Context, rawToken string) (bool, error)

// TokenStrategy: JWT HS256 dari Authorization bearer atau cookie access_token.
type TokenStrategy struct {
	Secret       string
	Accounts     AccountFinder
	AllowedRoles []string
	Blacklist    BlacklistChecker
	Skew         time.Duration
	Now          func() time.Time
}

func (s *TokenStrategy) Name() string { return "token" }

func (s *TokenStrategy) Verify(ctx context.Context, cred Credentials) Result {
	raw := strings.TrimSpace(cred.Token)
	if raw == "" {
		return Result{Outcome: NotApplicable}
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	claims, err := ParseAccessToken(raw, s.Secret, now(), s.Skew)
	if err != nil {
		return rejected(err)
	}

	if s.Blacklist != nil {
		black, err := s.Blacklist(ctx, raw)
		if err != nil {
			log.Printf("[AUTH] blacklist check failed: %v", err)
			return rejected(helper.InternalError("token blacklist unavailable"))
		}
		if black {
			return rejected(helper.AuthenticationError(helper.CodeUnauthorizedRevoked, "token revoked"))
		}
	}

	return resolveAccount(ctx, s.Accounts, claims.AccountID, s.AllowedRoles)
}
