package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// SessionPurger deletes expired session rows.
type SessionPurger interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

// New returns a cron runner with the session purge registered under spec.
// The caller starts and stops it.
func New(spec string, sessions SessionPurger) (*cron.Cron, error) {
	c := cron.New()
	if _, err := c.AddFunc(spec, PurgeSessions(sessions)); err != nil {
		return nil, fmt.Errorf("schedule session purge %q: %w", spec, err)
	}
	return c, nil
}

func PurgeSessions(sessions SessionPurger) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		n, err := sessions.DeleteExpired(ctx)
		if err != nil {
			log.Printf("[scheduler] purge expired sessions: %v", err)
			return
		}
		if n > 0 {
			log.Printf("[scheduler] purged %d expired sessions", n)
		}
	}
}
