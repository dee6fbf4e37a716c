// internals/middlewares/auth/credential_chain.go
package auth

import (
	"context"

	"github.com/google/uuid"

	"timetable_backend/internals/constants"
	accountModel "timetable_backend/internals/features/users/accounts/model"
	helper "timetable_backend/internals/helpers"
	helperAuth "timetable_backend/internals/helpers/auth"
)

// Credentials: material kredensial mentah yang diambil dari request.
type Credentials struct {
	SessionAccountID string
	SessionIsAdmin   bool
	Token            string
}

type Outcome int

const (
	NotApplicable Outcome = iota
	Resolved
	Rejected
)

func (o Outcome) String() string {
	switch o {
	case Resolved:
		return "resolved"
	case Rejected:
		return "rejected"
	default:
		return "not_applicable"
	}
}

type Result struct {
	Outcome   Outcome
	Principal helperAuth.Principal
	Err       *helper.AppError
}

func resolved(p helperAuth.Principal) Result { return Result{Outcome: Resolved, Principal: p} }

func rejected(err *helper.AppError) Result { return Result{Outcome: Rejected, Err: err} }

// CredentialStrategy memverifikasi satu skema kredensial.
// NotApplicable = skema ini tidak punya material di request.
type CredentialStrategy interface {
	Name() string
	Verify(ctx context.Context, cred Credentials) Result
}

// AccountFinder: satu-satunya akses chain ke identity store.
type AccountFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*accountModel.AccountModel, error)
}

// Chain mencoba strategi sesuai urutan dan berhenti di hasil pertama
// yang bukan NotApplicable.
type Chain struct {
	strategies []CredentialStrategy
}

func NewChain(strategies ...CredentialStrategy) *Chain {
	return &Chain{strategies: strategies}
}

func (ch *Chain) Verify(ctx context.Context, cred Credentials) Result {
	for _, s := range ch.strategies {
		r := s.Verify(ctx, cred)
		if r.Outcome != NotApplicable {
			if r.Outcome == Resolved {
				r.Principal.Via = s.Name()
			}
			return r
		}
	}
	return rejected(helper.AuthenticationError(helper.CodeUnauthorizedMissing, "not authenticated"))
}

// resolveAccount: account → role → active, dipakai semua strategi.
func resolveAccount(ctx context.Context, finder AccountFinder, rawID string, allowedRoles []string) Result {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return rejected(helper.AuthenticationError(helper.CodeUnauthorizedInvalid, "credential carries an invalid account id"))
	}
	acc, err := finder.FindByID(ctx, id)
	if err != nil {
		if helper.IsKind(err, helper.KindNotFound) {
			return rejected(&helper.AppError{
				Kind:    helper.KindNotFound,
				Code:    helper.CodeAccountNotFound,
				Subject: "account",
				Detail:  "account referenced by credential does not exist",
			})
		}
		return rejected(helper.InternalError("identity store unavailable"))
	}
	if !constants.HasRole(allowedRoles, acc.Role) {
		return rejected(helper.AuthorizationError(helper.CodeForbiddenRole, "account", "role not permitted here"))
	}
	if !acc.IsActive {
		return rejected(helper.AuthorizationError(helper.CodeForbiddenInactive, "account", "account is deactivated"))
	}
	return resolved(ToPrincipal(acc))
}

func ToPrincipal(acc *accountModel.AccountModel) helperAuth.Principal {
	return helperAuth.Principal{
		AccountID:     acc.ID,
		Role:          acc.Role,
		Department:    acc.DepartmentValue(),
		Name:          acc.Name,
		Email:         acc.Email,
		AdmissionYear: acc.AdmissionYear,
		Division:      acc.DivisionValue(),
		Batch:         acc.BatchValue(),
	}
}
