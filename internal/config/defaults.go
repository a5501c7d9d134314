package config

import (
	"github.com/saravenpi/folio/internal/ambient"
	"github.com/saravenpi/folio/internal/chat"
	"github.com/saravenpi/folio/internal/models"
)

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	wave := ambient.DefaultWave()
	return &Config{
		Profile: ProfileConfig{
			Greeting: "hello,",
			Accent:   "and welcome",
			Tagline:  "3rd year CS student and caffeine + game addict",
			About: []string{
				"Hi, I am Yin Bo Chen.\nI'm a Chinese Malaysian born in the US.",
				"Currently Studying for: Bachelor of Science in Computer Science at Champlain College",
				"I am fluent in English, and can speak decently in Mandarin Chinese/中文.\nI can also speak Cantonese Chinese at a very low level.",
			},
			Footer: "why are you here? theres nothing. Design inspired by sharyap.com",
			Links: []models.Link{
				{Label: "LinkedIn", URL: "https://www.linkedin.com/in/yinbochen/", Tooltip: "LinkedIn Profile"},
				{Label: "GitHub", URL: "https://github.com/citiniS", Tooltip: "GitHub Profile"},
			},
		},
		Chat: ChatConfig{
			TypingDelay: chat.DefaultTypingDelay,
			ReplyDelay:  chat.DefaultReplyDelay,
		},
		Rain: RainConfig{
			Drops: ambient.DefaultDrops,
		},
		Wave: WaveConfig{
			Height:    wave.Height,
			Amplitude: wave.Amplitude,
			Speed:     wave.Speed,
			Points:    wave.Points,
		},
	}
}

// WaveSettings converts the wave section into the renderer's settings.
func (c *Config) WaveSettings() ambient.Wave {
	return ambient.Wave{
		Height:    c.Wave.Height,
		Amplitude: c.Wave.Amplitude,
		Speed:     c.Wave.Speed,
		Points:    c.Wave.Points,
	}
}
