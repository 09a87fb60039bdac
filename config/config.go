// Package config loads process configuration. Each agent binary is configured
// once at startup; there is no runtime reconfiguration.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults applied when the file omits a field.
const (
	DefaultServerURL      = "ws://127.0.0.1:8000/ws"
	DefaultPollIntervalMS = 500
	DefaultTickIntervalMS = 1000
)

// PriceRange is an inclusive [Low, High] band for randomized prices.
type PriceRange struct {
	Low  int `yaml:"low"`
	High int `yaml:"high"`
}

// BotConfig configures the autonomous agent.
type BotConfig struct {
	Name           string     `yaml:"name"`
	BidRange       PriceRange `yaml:"bid_range"`
	OfferRange     PriceRange `yaml:"offer_range"`
	TickIntervalMS int        `yaml:"tick_interval_ms"`
	StartRound     bool       `yaml:"start_round"`
	Seed           int64      `yaml:"seed"` // 0 seeds from the clock
}

// TickInterval is the pause between strategy ticks.
func (b BotConfig) TickInterval() time.Duration {
	return time.Duration(b.TickIntervalMS) * time.Millisecond
}

// HumanConfig configures the interactive agent.
type HumanConfig struct {
	StartRound bool `yaml:"start_round"`
}

// Config is the full per-process configuration.
type Config struct {
	ServerURL      string      `yaml:"server_url"`
	PollIntervalMS int         `yaml:"poll_interval_ms"`
	Human          HumanConfig `yaml:"human"`
	Bot            BotConfig   `yaml:"bot"`
}

// PollInterval is the backoff between round-started polls.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMS) * time.Millisecond
}

// Load reads a YAML config file, applies defaults and env overrides, and
// validates the result. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{
		ServerURL:      DefaultServerURL,
		PollIntervalMS: DefaultPollIntervalMS,
		Bot: BotConfig{
			Name:           "Random Player",
			BidRange:       PriceRange{Low: 1, High: 10},
			OfferRange:     PriceRange{Low: 5, High: 15},
			TickIntervalMS: DefaultTickIntervalMS,
		},
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// defaults only
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if url := os.Getenv("FIGGIE_SERVER_URL"); url != "" {
		cfg.ServerURL = url
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks the invariants the agents rely on.
func (c *Config) Validate() error {
	if c.ServerURL == "" {
		return fmt.Errorf("server_url cannot be empty")
	}
	if c.PollIntervalMS <= 0 {
		return fmt.Errorf("poll_interval_ms must be positive, got %d", c.PollIntervalMS)
	}
	if c.Bot.TickIntervalMS <= 0 {
		return fmt.Errorf("bot.tick_interval_ms must be positive, got %d", c.Bot.TickIntervalMS)
	}
	if c.Bot.Name == "" {
		return fmt.Errorf("bot.name cannot be empty")
	}
	if err := c.Bot.BidRange.validate("bot.bid_range"); err != nil {
		return err
	}
	return c.Bot.OfferRange.validate("bot.offer_range")
}

func (r PriceRange) validate(field string) error {
	if r.Low <= 0 {
		return fmt.Errorf("%s.low must be a positive price, got %d", field, r.Low)
	}
	if r.High < r.Low {
		return fmt.Errorf("%s: high %d below low %d", field, r.High, r.Low)
	}
	return nil
}
