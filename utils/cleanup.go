package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"car-rental-backend/config"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Retry configuration
const maxCleanupRetries = 3
const cleanupRetryDelay = 2 * time.Minute

// CleanupStaleTempFiles removes ledger temp artifacts that survived a
// crashed write. A healthy write renames its temp file away within
// milliseconds, so anything older than the TTL is an orphan.
func CleanupStaleTempFiles(ledgerPath string, ttl time.Duration) error {
	matches, err := filepath.Glob(ledgerPath + ".tmp-*")
	if err != nil {
		return fmt.Errorf("error scanning for temp files: %v", err)
	}

	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil {
			continue
		}
		if time.Since(info.ModTime()) < ttl {
			continue
		}
		if err := os.Remove(match); err != nil {
			return fmt.Errorf("error deleting stale temp file %s: %v", match, err)
		}
		config.Logger.Info("Removed stale ledger temp file", zap.String("file", match))
	}
	return nil
}

// RunScheduledCleanup sweeps ledger temp artifacts daily at 1 AM with
// retries, logging failures instead of giving up silently.
func RunScheduledCleanup(ledgerPath string) {
	c := cron.New()

	_, err := c.AddFunc("0 1 * * *", func() {
		config.Logger.Info("Running scheduled ledger temp cleanup")

		for retries := 0; retries < maxCleanupRetries; retries++ {
			err := CleanupStaleTempFiles(ledgerPath, time.Hour)
			if err == nil {
				return
			}
			config.Logger.Warn("Cleanup attempt failed",
				zap.Int("attempt", retries+1),
				zap.Error(err),
			)
			time.Sleep(cleanupRetryDelay)
		}
		config.Logger.Error("Cleanup task failed after retries",
			zap.Int("retries", maxCleanupRetries),
			zap.String("ledger", ledgerPath),
		)
	})
	if err != nil {
		config.Logger.Error("Failed to schedule cleanup task", zap.Error(err))
		return
	}

	c.Start()
}
