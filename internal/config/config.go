// file: internal/config/config.go
// version: 1.1.0
// guid: 7b3f9c2e-1d5a-4b8f-9e60-c4a2d7f81b35

package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	TitlesFile   string        // path to the titles list
	DataDir      string        // cache + summary directory
	BaseURL      string        // catalog endpoint override, empty means default
	UseCache     bool          // serve from cached responses when present
	Debug        bool          // verbose diagnostic logging
	RequestDelay time.Duration // throttle between live API requests
}

var AppConfig Config

// InitConfig initializes the application configuration
func InitConfig() {
	// Set defaults
	viper.SetDefault("titles_file", "titles.txt")
	viper.SetDefault("data_dir", "data")
	viper.SetDefault("request_delay", "1s")

	AppConfig = Config{
		TitlesFile:   viper.GetString("titles_file"),
		DataDir:      viper.GetString("data_dir"),
		BaseURL:      viper.GetString("base_url"),
		UseCache:     viper.GetBool("use_cache"),
		Debug:        viper.GetBool("debug"),
		RequestDelay: viper.GetDuration("request_delay"),
	}

	// Normalize the throttle interval
	if AppConfig.RequestDelay < 0 {
		AppConfig.RequestDelay = time.Second
	}
}
