package config

import "time"

// Config holds all configuration for the stub API server.
type Config struct {
	DBName    string
	Port      string
	UploadDir string
	RedisURL  string
	Turso     TursoConfig
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

// ClientConfig holds the configuration of the CLI.
type ClientConfig struct {
	APIBaseURL string
	APITimeout time.Duration
	ProjectID  string
	Topic      string
	Slack      SlackConfig
}

type SlackConfig struct {
	Token     string
	ChannelID string
}

// Enabled reports whether both a token and a channel are configured.
func (s SlackConfig) Enabled() bool {
	return s.Token != "" && s.ChannelID != ""
}
