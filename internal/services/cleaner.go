package services

import (
	"time"

	"github.com/antoniuk-oleksandr/blogs-app/pkg/logger"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// RevokedTokenCleaner periodically deletes revocation records whose expiry
// has passed, bounding the revoked_tokens table. It runs on its own cron
// schedule, independent of request handling, and is a no-op when nothing has
// expired.
type RevokedTokenCleaner struct {
	store     *RevokedTokenStore
	cronExpr  string
	scheduler *cron.Cron
}

func NewRevokedTokenCleaner(db *gorm.DB, cronExpr string) *RevokedTokenCleaner {
	return &RevokedTokenCleaner{
		store:    NewRevokedTokenStore(db),
		cronExpr: cronExpr,
	}
}

// Start registers the cleanup job and starts the scheduler.
func (c *RevokedTokenCleaner) Start() error {
	c.scheduler = cron.New()

	if _, err := c.scheduler.AddFunc(c.cronExpr, func() {
		c.Clean(time.Now())
	}); err != nil {
		return err
	}

	c.scheduler.Start()
	logger.Info().Str("cron", c.cronExpr).Msg("revoked token cleaner started")
	return nil
}

// Stop halts the scheduler. A sweep already in flight runs to completion.
func (c *RevokedTokenCleaner) Stop() {
	if c.scheduler != nil {
		c.scheduler.Stop()
	}
}

// Clean deletes every revocation record expired as of now.
func (c *RevokedTokenCleaner) Clean(now time.Time) {
	deleted, err := c.store.DeleteExpired(now)
	if err != nil {
		logger.Error().Err(err).Msg("revoked token cleanup failed")
		return
	}

	if deleted > 0 {
		logger.Info().Int64("deleted", deleted).Msg("cleaned up expired revoked tokens")
	}
}
