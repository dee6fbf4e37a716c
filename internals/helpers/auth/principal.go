package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"timetable_backend/internals/constants"
	helper "timetable_backend/internals/helpers"
)

const (
	LocPrincipal = "principal"
	LocRole      = "role"
	LocUserID    = "user_id"
)

// Principal adalah identitas hasil verifikasi kredensial, hidup selama satu request.
type Principal struct {
	AccountID     uuid.UUID `json:"account_id"`
	Role          string    `json:"role"`
	Department    string    `json:"department,omitempty"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	AdmissionYear *int      `json:"admission_year,omitempty"`
	Division      string    `json:"division,omitempty"`
	Batch         string    `json:"batch,omitempty"`
	Via           string    `json:"via"`
}

func (p Principal) IsSuperAdmin() bool { return p.Role == constants.RoleSuperAdmin }

func (p Principal) IsAdmin() bool {
	return p.Role == constants.RoleAdmin || p.Role == constants.RoleSuperAdmin
}

// SetPrincipal menyimpan principal + locals legacy (role, user_id).
func SetPrincipal(c *fiber.Ctx, p Principal) {
	c.Locals(LocPrincipal, p)
	c.Locals(LocRole, p.Role)
	c.Locals(LocUserID, p.AccountID.String())
}

func GetPrincipal(c *fiber.Ctx) (Principal, error) {
	if p, ok := c.Locals(LocPrincipal).(Principal); ok && p.AccountID != uuid.Nil {
		return p, nil
	}
	return Principal{}, helper.AuthenticationError(helper.CodeUnauthorizedMissing, "not authenticated")
}

func normDept(s string) string { return strings.TrimSpace(s) }
