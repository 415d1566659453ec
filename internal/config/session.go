package config

import (
	"sync"
	"time"
)

type SessionConfig struct {
	CookieName   string
	TTL          time.Duration
	CookieSecure bool
	CleanupSpec  string
}

var (
	sessionConfig *SessionConfig
	sessionOnce   sync.Once
)

func LoadSessionConfig() *SessionConfig {
	sessionOnce.Do(func() {
		v := Env()
		ttl := v.GetDuration("SESSION_TTL")
		if ttl <= 0 {
			ttl = 7 * 24 * time.Hour
		}
		sessionConfig = &SessionConfig{
			CookieName:   v.GetString("SESSION_COOKIE_NAME"),
			TTL:          ttl,
			CookieSecure: v.GetBool("SESSION_COOKIE_SECURE"),
			CleanupSpec:  v.GetString("SESSION_CLEANUP_SPEC"),
		}
	})
	return sessionConfig
}
