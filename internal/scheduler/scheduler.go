package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/nestlist/nestlist/internal/metrics"
	"github.com/nestlist/nestlist/internal/repo"
)

// Run starts a background cron that purges expired sessions every hour.
// Expired sessions are already treated as anonymous at lookup time; the purge
// only keeps the collection from growing without bound.
func Run(sessions *repo.SessionRepo) *cron.Cron {
	c := cron.New()

	purge := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		n, err := sessions.DeleteExpired(ctx, time.Now().UTC())
		if err != nil {
			slog.Error("session purge failed", "error", err)
			return
		}
		if n > 0 {
			metrics.AddSessionsPurged(n)
			slog.Info("purged expired sessions", "count", n)
		}
	}

	if _, err := c.AddFunc("@hourly", purge); err != nil {
		slog.Error("scheduler: add purge job", "error", err)
		return c
	}

	c.Start()
	return c
}
