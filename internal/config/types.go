package config

import (
	"time"

	"github.com/saravenpi/folio/internal/models"
)

// Config is the top-level folio configuration, corresponding to folio.yml.
type Config struct {
	Dark    bool          `yaml:"dark" koanf:"dark"`
	LogFile string        `yaml:"log_file" koanf:"log_file"`
	Profile ProfileConfig `yaml:"profile" koanf:"profile"`
	Chat    ChatConfig    `yaml:"chat" koanf:"chat"`
	Rain    RainConfig    `yaml:"rain" koanf:"rain"`
	Wave    WaveConfig    `yaml:"wave" koanf:"wave"`
}

// ProfileConfig is the text shown on the card and in the about overlay.
type ProfileConfig struct {
	Greeting string        `yaml:"greeting" koanf:"greeting"`
	Accent   string        `yaml:"accent" koanf:"accent"`
	Tagline  string        `yaml:"tagline" koanf:"tagline"`
	About    []string      `yaml:"about" koanf:"about"`
	Footer   string        `yaml:"footer" koanf:"footer"`
	Links    []models.Link `yaml:"links" koanf:"links"`
}

type ChatConfig struct {
	TypingDelay time.Duration `yaml:"typing_delay" koanf:"typing_delay"`
	ReplyDelay  time.Duration `yaml:"reply_delay" koanf:"reply_delay"`
}

type RainConfig struct {
	Drops int `yaml:"drops" koanf:"drops"`
}

type WaveConfig struct {
	Height    int     `yaml:"height" koanf:"height"`
	Amplitude int     `yaml:"amplitude" koanf:"amplitude"`
	Speed     float64 `yaml:"speed" koanf:"speed"`
	Points    int     `yaml:"points" koanf:"points"`
}
