package auth

import (
	"context"
	"strings"
)

// SessionStrategy: alur login lama berbasis session store (flag admin di session).
type SessionStrategy struct {
	Accounts     AccountFinder
	AllowedRoles []string
}

func (s *SessionStrategy) Name() string { return "session" }

func (s *SessionStrategy) Verify(ctx context.Context, cred Credentials) Result {
	if !cred.SessionIsAdmin || strings.TrimSpace(cred.SessionAccountID) == "" {
		return Result{Outcome: NotApplicable}
	}
	return resolveAccount(ctx, s.Accounts, cred.SessionAccountID, s.AllowedRoles)
}
