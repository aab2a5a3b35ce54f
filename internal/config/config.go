// Package config handles configuration loading and management.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
type Config struct {
	Archive ArchiveConfig `yaml:"archive"`
	Slack   SlackConfig   `yaml:"slack"`
}

// ArchiveConfig controls where archived tasks are filed.
type ArchiveConfig struct {
	// Heading is the top-level archive heading line.
	Heading string `yaml:"heading"`

	// DateFormat is the Go reference-time layout for date subsections.
	DateFormat string `yaml:"date_format"`
}

// SlackConfig contains Slack notification settings.
type SlackConfig struct {
	WebhookURL     string `yaml:"webhook_url"`
	BotToken       string `yaml:"bot_token"`
	Channel        string `yaml:"channel"`
	NotifyComplete bool   `yaml:"notify_complete"`
	NotifyProgress bool   `yaml:"notify_progress"`
}

// Load reads and parses a YAML config file.
// Returns an error if the file cannot be read or parsed.
// For missing files, use LoadWithDefaults instead.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadWithDefaults reads and parses a YAML config file, applying defaults
// for any missing fields. A missing or empty file is valid and yields all
// defaults, not an error.
func LoadWithDefaults(path string) (*Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if len(data) == 0 {
		return cfg, nil
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, err
	}

	mergeConfig(cfg, &fileCfg)

	return cfg, nil
}

// mergeConfig merges values from src into dst.
// Only non-zero values from src overwrite dst.
func mergeConfig(dst, src *Config) {
	if src.Archive.Heading != "" {
		dst.Archive.Heading = src.Archive.Heading
	}
	if src.Archive.DateFormat != "" {
		dst.Archive.DateFormat = src.Archive.DateFormat
	}

	if src.Slack.WebhookURL != "" {
		dst.Slack.WebhookURL = src.Slack.WebhookURL
	}
	if src.Slack.BotToken != "" {
		dst.Slack.BotToken = src.Slack.BotToken
	}
	if src.Slack.Channel != "" {
		dst.Slack.Channel = src.Slack.Channel
	}
	// Bool fields: yaml.Unmarshal cannot distinguish "not set" from
	// "set to false". Default-true flags keep their default, default-false
	// flags take the file value.
	dst.Slack.NotifyComplete = src.Slack.NotifyComplete || dst.Slack.NotifyComplete
	dst.Slack.NotifyProgress = src.Slack.NotifyProgress
}
