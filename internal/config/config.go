// file: internal/config/config.go
// version: 2.0.0
// guid: 7b8c9d0e-1f2a-3b4c-5d6e-7f8a9b0c1d2e

package config

import (
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	Workers             int
	Debug               bool
	TasksFile           string
	SupportedExtensions []string
}

var AppConfig Config

// InitConfig initializes the application configuration from viper.
func InitConfig() {
	viper.SetDefault("workers", OptimalWorkers())

	AppConfig = Config{
		Workers:   viper.GetInt("workers"),
		Debug:     viper.GetBool("debug"),
		TasksFile: viper.GetString("tasks_file"),
		SupportedExtensions: []string{
			".mp3", ".m4b", ".m4a", ".ogg", ".oga", ".opus", ".flac", ".wma", ".aac",
		},
	}

	if AppConfig.Workers < 1 {
		AppConfig.Workers = 1
	}
}

// OptimalWorkers picks a tagging parallelism based on CPU count, capped so a
// big machine doesn't hammer the disk.
func OptimalWorkers() int {
	workers := runtime.NumCPU() * 2
	if workers > 16 {
		workers = 16
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}

// IsSupportedExtension reports whether ext (with leading dot, any case) is a
// supported audio format.
func (c *Config) IsSupportedExtension(ext string) bool {
	ext = strings.ToLower(ext)
	for _, supported := range c.SupportedExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}
