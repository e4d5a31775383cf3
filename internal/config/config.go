package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HTTP        HTTP
	TelegramBot TelegramBot
	Sessions    Sessions
	Feed        Feed

	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	DefaultTeam string `envconfig:"DEFAULT_TEAM"`
}

type HTTP struct {
	Addr string `envconfig:"HTTP_ADDR" default:":8080"`
}

// TelegramBot is optional. The bot only starts when Token is set.
type TelegramBot struct {
	Token  string `envconfig:"TELEGRAM_TOKEN"`
	ChatID int64  `envconfig:"CHAT_ID"`
}

type Sessions struct {
	TTL           time.Duration `envconfig:"SESSION_TTL" default:"24h"`
	PruneInterval time.Duration `envconfig:"PRUNE_INTERVAL" default:"1h"`
}

type Feed struct {
	Timeout time.Duration `envconfig:"FEED_TIMEOUT" default:"10s"`
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	if c.Sessions.TTL <= 0 || c.Sessions.PruneInterval <= 0 {
		return nil, fmt.Errorf("session TTL and prune interval must be positive")
	}
	return &c, nil
}

func (c *Config) BotEnabled() bool {
	return c.TelegramBot.Token != ""
}

func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
