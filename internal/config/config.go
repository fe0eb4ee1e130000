package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Address string `mapstructure:"address"`
	Port    int    `mapstructure:"port"`
	Mode    string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Path    string `mapstructure:"path"`
	LogMode bool   `mapstructure:"log_mode"`
}

type AvatarConfig struct {
	Dir string `mapstructure:"dir"`
}

type BackupConfig struct {
	Dir string `mapstructure:"dir"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type WebConfig struct {
	StaticDir   string `mapstructure:"static_dir"`
	TemplateDir string `mapstructure:"template_dir"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Avatar   AvatarConfig   `mapstructure:"avatar"`
	Backup   BackupConfig   `mapstructure:"backup"`
	Log      LogConfig      `mapstructure:"log"`
	Web      WebConfig      `mapstructure:"web"`
}

// Load loads configuration from the given file path (e.g. "config.yaml").
// If path is empty, it defaults to "config.yaml" in the current working
// directory. The returned config is passed around explicitly; there is no
// package-level instance.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path == "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	} else {
		v.SetConfigFile(path)
	}

	v.SetDefault("server.address", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("database.path", "data/family_chores.db")
	v.SetDefault("avatar.dir", "data/avatars")
	v.SetDefault("backup.dir", "data/backups")
	v.SetDefault("log.level", "info")
	v.SetDefault("web.static_dir", "web/static")
	v.SetDefault("web.template_dir", "web/templates")

	// environment overrides, e.g. FCH_SERVER_PORT=9000
	v.SetEnvPrefix("FCH")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &c, nil
}
