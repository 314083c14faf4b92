package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"telegram-mission-bot/internal/clock"
)

// Config is built once in main and passed by reference; business logic never
// re-reads the environment.
type Config struct {
	BotToken        string `envconfig:"TG_BOT_TOKEN" required:"true"`
	Timezone        string `envconfig:"TZ" default:"Europe/Moscow"`
	DBPath          string `envconfig:"DB_PATH" default:"data/ia1_reports.db"`
	CSVBackup       string `envconfig:"CSV_BACKUP" default:"data/ia1_reports_backup.csv"`
	DefaultReminder string `envconfig:"DEFAULT_REMINDER" default:"21:00"` // reserved, not applied yet
}

func Load() (Config, error) {
	_ = godotenv.Load() // TG_BOT_TOKEN etc.

	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if _, _, err := clock.ParseHM(c.DefaultReminder); err != nil {
		return Config{}, fmt.Errorf("config: DEFAULT_REMINDER: %w", err)
	}
	return c, nil
}
