package repository

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"timetable_backend/internals/features/users/auth/model"
)

type Blacklist interface {
	Add(ctx context.Context, rawToken string, expiresAt time.Time) error
	IsBlacklisted(ctx context.Context, rawToken string) (bool, error)
	PurgeExpired(ctx context.Context, before time.Time) (int64, error)
}

func hmacHex(msg, secret string) string {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(msg))
	return hex.EncodeToString(m.Sum(nil))
}

/* ====================== GORM ====================== */

type gormBlacklist struct {
	db     *gorm.DB
	secret string
}

func NewGormBlacklist(db *gorm.DB, secret string) Blacklist {
	return &gormBlacklist{db: db, secret: secret}
}

func (b *gormBlacklist) Add(ctx context.Context, rawToken string, expiresAt time.Time) error {
	if strings.TrimSpace(rawToken) == "" {
		return nil
	}
	row := model.TokenBlacklist{Token: hmacHex(rawToken, b.secret), ExpiredAt: expiresAt}
	err := b.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "token"}},
		DoUpdates: clause.AssignmentColumns([]string{"expired_at"}),
	}).Create(&row).Error
	return errors.Wrap(err, "blacklist token")
}

func (b *gormBlacklist) IsBlacklisted(ctx context.Context, rawToken string) (bool, error) {
	if strings.TrimSpace(rawToken) == "" {
		return false, nil
	}
	var exists bool
	err := b.db.WithContext(ctx).Raw(`
		SELECT EXISTS (
		  SELECT 1 FROM token_blacklist
		  WHERE token = ? AND expired_at > NOW()
		)`, hmacHex(rawToken, b.secret)).Scan(&exists).Error
	return exists, errors.Wrap(err, "check blacklist")
}

func (b *gormBlacklist) PurgeExpired(ctx context.Context, before time.Time) (int64, error) {
	res := b.db.WithContext(ctx).Where("expired_at < ?", before).Delete(&model.TokenBlacklist{})
	return res.RowsAffected, errors.Wrap(res.Error, "purge blacklist")
}

/* ====================== MEMORY ====================== */

type memoryBlacklist struct {
	mu     sync.RWMutex
	secret string
	tokens map[string]time.Time
	now    func() time.Time
}

func NewMemoryBlacklist(secret string) Blacklist {
	return &memoryBlacklist{secret: secret, tokens: map[string]time.Time{}, now: time.Now}
}

func (b *memoryBlacklist) Add(_ context.Context, rawToken string, expiresAt time.Time) error {
	if strings.TrimSpace(rawToken) == "" {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tokens[hmacHex(rawToken, b.secret)] = expiresAt
	return nil
}

func (b *memoryBlacklist) IsBlacklisted(_ context.Context, rawToken string) (bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	exp, ok := b.tokens[hmacHex(rawToken, b.secret)]
	return ok && exp.After(b.now()), nil
}

func (b *memoryBlacklist) PurgeExpired(_ context.Context, before time.Time) (int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	var n int64
	for k, exp := range b.tokens {
		if exp.Before(before) {
			delete(b.tokens, k)
			n++
		}
	}
	return n, nil
}
