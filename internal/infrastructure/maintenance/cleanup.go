// Package maintenance contains scheduled housekeeping jobs.
// Uses robfig/cron for schedule parsing and execution.
package maintenance

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// logRetention is how long archived log files are kept before removal
const logRetention = 35 * 24 * time.Hour

// cleanupSchedule fires at 00:05 on the first day of every month
const cleanupSchedule = "5 0 1 * *"

// LogCleaner removes aged log files from the log directory. It touches
// archival files only, never state shared with in-flight dispatches.
type LogCleaner struct {
	dir    string
	cron   *cron.Cron
	logger zerolog.Logger
}

// NewLogCleaner creates a new log cleaner for dir
func NewLogCleaner(dir string, logger zerolog.Logger) *LogCleaner {
	return &LogCleaner{
		dir:    dir,
		cron:   cron.New(),
		logger: logger,
	}
}

// Start schedules the monthly cleanup
func (c *LogCleaner) Start() error {
	if _, err := c.cron.AddFunc(cleanupSchedule, func() {
		removed, err := c.RemoveOldLogs(logRetention)
		if err != nil {
			c.logger.Error().Err(err).Msg("Monthly log cleanup failed")
			return
		}
		c.logger.Info().Int("removed", removed).Msg("Monthly log cleanup finished")
	}); err != nil {
		return err
	}

	c.cron.Start()
	c.logger.Info().Str("schedule", cleanupSchedule).Str("dir", c.dir).Msg("Log cleanup scheduled")
	return nil
}

// Stop stops the schedule, waiting for a running job to finish
func (c *LogCleaner) Stop() {
	ctx := c.cron.Stop()
	<-ctx.Done()
}

// RemoveOldLogs deletes log files in the directory older than maxAge and
// returns how many were removed
func (c *LogCleaner) RemoveOldLogs(maxAge time.Duration) (int, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return 0, err
	}

	cutoff := time.Now().Add(-maxAge)
	removed := 0

	for _, entry := range entries {
		if entry.IsDir() || !isLogFile(entry.Name()) {
			continue
		}

		path := filepath.Join(c.dir, entry.Name())
		info, err := entry.Info()
		if err != nil {
			c.logger.Error().Err(err).Str("path", path).Msg("Failed to stat log file")
			continue
		}

		if info.ModTime().Before(cutoff) {
			if err := os.Remove(path); err != nil {
				c.logger.Error().Err(err).Str("path", path).Msg("Failed to remove log file")
				continue
			}
			removed++
		}
	}

	return removed, nil
}

// isLogFile matches the service log and its rotated archives
func isLogFile(name string) bool {
	return strings.HasSuffix(name, ".log") || strings.HasPrefix(name, "bot.log")
}
