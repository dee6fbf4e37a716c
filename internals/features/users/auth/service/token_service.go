package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	accountModel "timetable_backend/internals/features/users/accounts/model"
	helper "timetable_backend/internals/helpers"
	authMw "timetable_backend/internals/middlewares/auth"
)

const accessTTLDefault = 24 * time.Hour

// IssueAccessToken menandatangani JWT HS256 untuk satu akun.
func IssueAccessToken(acc *accountModel.AccountModel, secret string, ttl time.Duration, now time.Time) (string, time.Time, error) {
	if secret == "" {
		return "", time.Time{}, helper.InternalError("token secret is not configured")
	}
	if ttl <= 0 {
		ttl = accessTTLDefault
	}
	exp := now.Add(ttl)
	claims := jwt.MapClaims{
		authMw.ClaimID:       acc.ID.String(),
		authMw.ClaimRole:     acc.Role,
		authMw.ClaimIssuedAt: now.Unix(),
		authMw.ClaimExpiry:   exp.Unix(),
		authMw.ClaimTokenID:  uuid.NewString(),
	}
	if d := acc.DepartmentValue(); d != "" {
		claims[authMw.ClaimDepartment] = d
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "sign access token")
	}
	return signed, exp, nil
}
