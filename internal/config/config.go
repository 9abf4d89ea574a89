package config

import (
	"strings"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Addr      string `mapstructure:"addr"`
	GinMode   string `mapstructure:"gin_mode"`
	Templates string `mapstructure:"templates"` // glob for the page templates; empty disables page routes
}

type DatabaseConfig struct {
	Path    string `mapstructure:"path"`
	MaxOpen int    `mapstructure:"max_open"`
	MaxIdle int    `mapstructure:"max_idle"`
}

type UploadConfig struct {
	Dir               string   `mapstructure:"dir"`
	URLPrefix         string   `mapstructure:"url_prefix"`
	MaxRequestBytes   int64    `mapstructure:"max_request_bytes"`
	AllowedExtensions []string `mapstructure:"allowed_extensions"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Upload   UploadConfig   `mapstructure:"upload"`
	Log      LogConfig      `mapstructure:"log"`
}

// Load reads config.yaml from the working directory, if present, and lets
// FERD_* environment variables override any key.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("FERD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.gin_mode", "release")
	v.SetDefault("server.templates", "web/templates/*.html")
	v.SetDefault("database.path", "ferd.db")
	// SQLite allows a single writer; one open connection keeps every
	// logical operation serialized without "database is locked" errors.
	v.SetDefault("database.max_open", 1)
	v.SetDefault("database.max_idle", 1)
	v.SetDefault("upload.dir", "static/uploads")
	v.SetDefault("upload.url_prefix", "/static/uploads")
	v.SetDefault("upload.max_request_bytes", 16<<20)
	v.SetDefault("upload.allowed_extensions", []string{"png", "jpg", "jpeg", "gif", "webp"})
	v.SetDefault("log.level", "info")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
