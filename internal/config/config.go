package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

const envPrefix = "FOLIO_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (FOLIO_*). FOLIO_CHAT_TYPING_DELAY maps
// to chat.typing_delay; the first underscore after the prefix separates
// the section from the key.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	for _, section := range []string{"profile", "chat", "rain", "wave"} {
		if rest, ok := strings.CutPrefix(key, section+"_"); ok {
			return section + "." + rest
		}
	}
	return key
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	var errs []error

	if c.Chat.TypingDelay < 0 {
		errs = append(errs, fmt.Errorf("chat.typing_delay must be non-negative"))
	}
	if c.Chat.ReplyDelay < 0 {
		errs = append(errs, fmt.Errorf("chat.reply_delay must be non-negative"))
	}
	if c.Rain.Drops <= 0 {
		errs = append(errs, fmt.Errorf("rain.drops must be positive"))
	}
	if c.Wave.Points <= 0 {
		errs = append(errs, fmt.Errorf("wave.points must be positive"))
	}
	if c.Wave.Amplitude < 0 || c.Wave.Height < 0 {
		errs = append(errs, fmt.Errorf("wave.height and wave.amplitude must be non-negative"))
	}
	for i, l := range c.Profile.Links {
		if l.URL == "" {
			errs = append(errs, fmt.Errorf("profile.links[%d]: url is required", i))
		}
	}

	return errors.Join(errs...)
}
