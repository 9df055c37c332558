package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

type config struct {
	Production     bool          `env:"PRODUCTION" envDefault:"false"`
	Port           string        `env:"PORT" envDefault:"8080"`
	Token          string        `env:"TOKEN,required"`
	DatabasePath   string        `env:"DATABASE_PATH" envDefault:"reminders.db"`
	Timezone       string        `env:"TIMEZONE" envDefault:"Local"`
	NotifySchedule string        `env:"NOTIFY_SCHEDULE" envDefault:"* * * * *"`
	RedisUrl       string        `env:"REDIS_URL" envDefault:""`
	SessionTTL     time.Duration `env:"SESSION_TTL" envDefault:"24h"`
}

var (
	conf     config
	location *time.Location
)

// Load reads the environment, after merging a .env file from the working
// directory if there is one. It must be called before any accessor.
func Load() error {
	_ = godotenv.Load()

	var c config
	if err := env.Parse(&c); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}

	conf = c
	location = loc
	return nil
}

func Production() bool {
	return conf.Production
}

func Port() string {
	return conf.Port
}

// HealthcheckEnabled is false when PORT is "off".
func HealthcheckEnabled() bool {
	return conf.Port != "off"
}

func Token() string {
	return conf.Token
}

func DatabasePath() string {
	return conf.DatabasePath
}

func Location() *time.Location {
	if location == nil {
		return time.Local
	}
	return location
}

func NotifySchedule() string {
	return conf.NotifySchedule
}

func RedisURL() string {
	return conf.RedisUrl
}

func SessionTTL() time.Duration {
	return conf.SessionTTL
}
