package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config carries the non-database settings for both binaries. Database config
// lives in pkg/database and is read separately.
type Config struct {
	BotToken string
	AdminIDs []int64

	DashboardAddr     string
	SessionSecret     string
	AdminUsername     string
	AdminPassword     string
	AdminPasswordHash string // optional bcrypt hash; takes precedence over AdminPassword

	AlertHour     int          // local hour for the daily job digest
	PurgeHour     int          // local hour for the expired-job purge
	PurgeWeekday  time.Weekday // weekday the purge runs on
	RetentionDays int          // expired jobs older than this are deleted
}

// FromEnv builds a Config from environment variables, applying the same
// defaults for schedule times and retention as the deployed system.
func FromEnv() Config {
	return Config{
		BotToken: os.Getenv("BOT_TOKEN"),
		AdminIDs: parseAdminIDs(os.Getenv("ADMIN_IDS")),

		DashboardAddr:     envOr("DASHBOARD_ADDR", "0.0.0.0:5000"),
		SessionSecret:     envOr("SESSION_SECRET", "zewedjobs-secret-key-2024"),
		AdminUsername:     envOr("ADMIN_USERNAME", "admin"),
		AdminPassword:     envOr("ADMIN_PASSWORD", "admin123"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),

		AlertHour:     envInt("ALERT_HOUR", 9),
		PurgeHour:     envInt("PURGE_HOUR", 2),
		PurgeWeekday:  time.Weekday(envInt("PURGE_WEEKDAY", int(time.Sunday))),
		RetentionDays: envInt("JOB_RETENTION_DAYS", 90),
	}
}

// ValidateBot reports whether the config is sufficient to run the bot binary.
func (c Config) ValidateBot() error {
	if c.BotToken == "" {
		return errors.New("BOT_TOKEN is required")
	}
	return nil
}

func parseAdminIDs(raw string) []int64 {
	if raw == "" {
		return nil
	}
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
