package config

// Defaults returns a new Config with all default values set.
func Defaults() *Config {
	return &Config{
		Archive: ArchiveConfig{
			Heading:    "# History",
			DateFormat: "2006-01-02",
		},
		Slack: SlackConfig{
			WebhookURL:     "",
			BotToken:       "",
			Channel:        "",
			NotifyComplete: true,
			NotifyProgress: false,
		},
	}
}
