package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	SlackBotToken      string `env:"SLACK_BOT_TOKEN"`
	SlackSigningSecret string `env:"SLACK_SIGNING_SECRET"`
	DiscordBotToken    string `env:"DISCORD_BOT_TOKEN"`
	DatabasePath       string `env:"DATABASE_PATH" envDefault:"./raids.db"`
	GymsFile           string `env:"GYMS_FILE"`
	Port               string `env:"PORT" envDefault:"3000"`

	RaidDefaultDuration time.Duration `env:"RAID_DEFAULT_DURATION" envDefault:"2h"`
	RaidSweepInterval   time.Duration `env:"RAID_SWEEP_INTERVAL" envDefault:"6s"`
	RaidExpireOnStart   bool          `env:"RAID_EXPIRE_ON_START" envDefault:"true"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) SlackEnabled() bool {
	return c.SlackBotToken != ""
}

func (c *Config) DiscordEnabled() bool {
	return c.DiscordBotToken != ""
}

func (c *Config) Validate() error {
	if !c.SlackEnabled() && !c.DiscordEnabled() {
		return errors.New("at least one of SLACK_BOT_TOKEN or DISCORD_BOT_TOKEN is required")
	}
	if c.SlackEnabled() && c.SlackSigningSecret == "" {
		return errors.New("SLACK_SIGNING_SECRET is required when SLACK_BOT_TOKEN is set")
	}
	if c.RaidDefaultDuration <= 0 {
		return fmt.Errorf("RAID_DEFAULT_DURATION must be positive, got %s", c.RaidDefaultDuration)
	}
	if c.RaidSweepInterval < time.Second {
		return fmt.Errorf("RAID_SWEEP_INTERVAL must be at least 1s, got %s", c.RaidSweepInterval)
	}
	return nil
}
