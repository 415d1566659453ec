package service

import (
	"fmt"
	"time"

	"github.com/fadilmartias/job-board/internal/config"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
)

const sessionAdminKey = "admin_id"

type SessionServiceInterface interface {
	Establish(c *fiber.Ctx, adminID uuid.UUID) error
	Resolve(c *fiber.Ctx) (uuid.UUID, bool, error)
	Destroy(c *fiber.Ctx) error
}

// SessionService issues server-side sessions keyed by an httpOnly cookie.
// Expiry is absolute: only Establish writes a new deadline.
type SessionService struct {
	store *session.Store
}

func NewSessionService(storage fiber.Storage, cfg *config.SessionConfig) *SessionService {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	name := cfg.CookieName
	if name == "" {
		name = "session_id"
	}
	return &SessionService{
		store: session.New(session.Config{
			Expiration:     ttl,
			Storage:        storage,
			KeyLookup:      "cookie:" + name,
			CookiePath:     "/",
			CookieHTTPOnly: true,
			CookieSecure:   cfg.CookieSecure,
			CookieSameSite: fiber.CookieSameSiteLaxMode,
		}),
	}
}

// Establish starts a fresh session for the admin. Any session id the client
// already carried is deleted from storage first.
func (s *SessionService) Establish(c *fiber.Ctx, adminID uuid.UUID) error {
	sess, err := s.store.Get(c)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	if !sess.Fresh() {
		if err := s.store.Delete(sess.ID()); err != nil {
			return fmt.Errorf("drop previous session: %w", err)
		}
	}
	if err := sess.Regenerate(); err != nil {
		return fmt.Errorf("regenerate session: %w", err)
	}
	sess.Set(sessionAdminKey, adminID.String())
	if err := sess.Save(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Resolve reports the admin bound to the request's session. Missing,
// expired and malformed sessions all resolve to ok == false.
func (s *SessionService) Resolve(c *fiber.Ctx) (uuid.UUID, bool, error) {
	sess, err := s.store.Get(c)
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("load session: %w", err)
	}
	raw, ok := sess.Get(sessionAdminKey).(string)
	if !ok || raw == "" {
		return uuid.Nil, false, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false, nil
	}
	return id, true, nil
}

// Destroy removes the session record and expires the cookie. It succeeds
// when there was no session to begin with.
func (s *SessionService) Destroy(c *fiber.Ctx) error {
	sess, err := s.store.Get(c)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	if err := sess.Destroy(); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}
