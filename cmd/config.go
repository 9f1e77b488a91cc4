package cmd

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the application.
type Config struct {
	BackupDir               string `envconfig:"BACKUP_DIR" default:"backups"`
	AutosaveIntervalSeconds int    `envconfig:"AUTOSAVE_INTERVAL_SECONDS" default:"300"`
	BackupRetentionDays     int    `envconfig:"BACKUP_RETENTION_DAYS" default:"30"`
	LogJSON                 bool   `envconfig:"LOG_JSON" default:"false"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// AutosaveInterval returns the autosave period as a duration.
func (c Config) AutosaveInterval() time.Duration {
	return time.Duration(c.AutosaveIntervalSeconds) * time.Second
}
