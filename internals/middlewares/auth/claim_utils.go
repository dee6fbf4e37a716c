// internals/middlewares/auth/claim_utils.go
package auth

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	helper "timetable_backend/internals/helpers"
)

// Klaim yang ditulis saat login dan dibaca TokenStrategy.
const (
	ClaimID         = "id"
	ClaimRole       = "role"
	ClaimDepartment = "department"
	ClaimExpiry     = "exp"
	ClaimIssuedAt   = "iat"
	ClaimTokenID    = "jti"
)

type AccessClaims struct {
	AccountID  string
	Role       string
	Department string
	ExpiresAt  time.Time
}

// ParseAccessToken: verifikasi algoritma + signature, lalu expiry manual (dengan skew).
func ParseAccessToken(raw, secret string, now time.Time, skew time.Duration) (AccessClaims, *helper.AppError) {
	if strings.TrimSpace(secret) == "" {
		return AccessClaims{}, helper.InternalError("token secret is not configured")
	}
	parser := jwt.Parser{SkipClaimsValidation: true}
	tok, err := parser.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return AccessClaims{}, helper.AuthenticationError(helper.CodeUnauthorizedInvalid, "invalid token")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return AccessClaims{}, helper.AuthenticationError(helper.CodeUnauthorizedInvalid, "invalid token claims")
	}

	exp, err := readUnix(claims, ClaimExpiry)
	if err != nil {
		return AccessClaims{}, helper.AuthenticationError(helper.CodeUnauthorizedInvalid, "token has no valid exp")
	}
	if now.After(exp.Add(skew)) {
		return AccessClaims{}, helper.AuthenticationError(helper.CodeUnauthorizedExpired, "token expired")
	}

	id := strClaim(claims, ClaimID)
	if _, err := uuid.Parse(id); err != nil {
		return AccessClaims{}, helper.AuthenticationError(helper.CodeUnauthorizedInvalid, "token carries an invalid account id")
	}
	return AccessClaims{
		AccountID:  id,
		Role:       strClaim(claims, ClaimRole),
		Department: strClaim(claims, ClaimDepartment),
		ExpiresAt:  exp,
	}, nil
}

// TokenExpiry membaca exp tanpa verifikasi signature (dipakai saat logout).
func TokenExpiry(raw string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(raw, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := readUnix(claims, ClaimExpiry)
	if err != nil {
		return time.Time{}, false
	}
	return exp, true
}

func readUnix(claims jwt.MapClaims, key string) (time.Time, error) {
	v, ok := claims[key]
	if !ok {
		return time.Time{}, fmt.Errorf("claim %s missing", key)
	}
	var n int64
	switch t := v.(type) {
	case float64:
		n = int64(t)
	case int64:
		n = t
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid %s format", key)
		}
		n = parsed
	default:
		return time.Time{}, fmt.Errorf("invalid %s type", key)
	}
	return time.Unix(n, 0), nil
}

func strClaim(m jwt.MapClaims, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}
