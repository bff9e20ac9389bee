package config

import "time"

// Config holds runtime settings for the Stadtwache client.
//
// Fields:
//   - APIBaseURL: base URL of the backend, e.g. "http://localhost:8001".
//   - HTTPTimeout: per-request timeout, covers login and validation calls.
//   - DatabasePath: path of the local SQLite database.
//   - RestoreMinWait: minimum duration a session restore takes to resolve.
//   - PrivateChatInterval / ChannelChatInterval: chat polling cadence.
//   - RefreshInterval: cadence for slower resources (incidents, roster,
//     persons, reports, notifications).
type Config struct {
	APIBaseURL          string
	HTTPTimeout         time.Duration
	DatabasePath        string
	RestoreMinWait      time.Duration
	PrivateChatInterval time.Duration
	ChannelChatInterval time.Duration
	RefreshInterval     time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8001"
	c.HTTPTimeout = 15 * time.Second
	c.DatabasePath = "stadtwache.db"
	c.RestoreMinWait = 1 * time.Second
	c.PrivateChatInterval = 3 * time.Second
	c.ChannelChatInterval = 5 * time.Second
	c.RefreshInterval = 30 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
