package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const (
	SessionKeyAccountID = "admin_id"
	SessionKeyIsAdmin   = "is_admin"
	SessionCookieName   = "session_id"
)

func NewSessionStore(ttl time.Duration) *session.Store {
	return session.New(session.Config{
		Expiration:     ttl,
		KeyLookup:      "cookie:" + SessionCookieName,
		CookieHTTPOnly: true,
		CookieSameSite: fiber.CookieSameSiteLaxMode,
	})
}

// sessionCredentials membaca flag admin dari session tanpa membuat session baru
// bila cookie tidak ada.
func sessionCredentials(c *fiber.Ctx, store *session.Store, cred *Credentials) error {
	if store == nil || c.Cookies(SessionCookieName) == "" {
		return nil
	}
	sess, err := store.Get(c)
	if err != nil {
		return err
	}
	if id, ok := sess.Get(SessionKeyAccountID).(string); ok {
		cred.SessionAccountID = id
	}
	if flag, ok := sess.Get(SessionKeyIsAdmin).(bool); ok {
		cred.SessionIsAdmin = flag
	}
	return nil
}
