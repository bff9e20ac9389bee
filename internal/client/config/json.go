package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/stadtwache/patrol/internal/flagx"
	"github.com/stadtwache/patrol/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "3s"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config.
type JsonConfig struct {
	APIBaseURL          string         `json:"api_base_url"`
	HTTPTimeout         timex.Duration `json:"http_timeout"`
	DatabasePath        string         `json:"database_path"`
	RestoreMinWait      timex.Duration `json:"restore_min_wait"`
	PrivateChatInterval timex.Duration `json:"private_chat_interval"`
	ChannelChatInterval timex.Duration `json:"channel_chat_interval"`
	RefreshInterval     timex.Duration `json:"refresh_interval"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags; when absent, nothing is loaded.
// Zero values in the file leave the corresponding Config field untouched.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.HTTPTimeout.Duration != 0 {
		cfg.HTTPTimeout = time.Duration(jc.HTTPTimeout.Duration)
	}
	if jc.RestoreMinWait.Duration != 0 {
		cfg.RestoreMinWait = time.Duration(jc.RestoreMinWait.Duration)
	}
	if jc.PrivateChatInterval.Duration != 0 {
		cfg.PrivateChatInterval = time.Duration(jc.PrivateChatInterval.Duration)
	}
	if jc.ChannelChatInterval.Duration != 0 {
		cfg.ChannelChatInterval = time.Duration(jc.ChannelChatInterval.Duration)
	}
	if jc.RefreshInterval.Duration != 0 {
		cfg.RefreshInterval = time.Duration(jc.RefreshInterval.Duration)
	}
}
