// Package config loads service and CLI settings from configs/config.yml and
// the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"ilo_monitor/internal/ribcl"

	"github.com/spf13/viper"
)

const (
	defaultPort            = "8080"
	defaultDBPath          = "app.db"
	defaultTokenTTL        = 12 * time.Hour
	defaultMonitorInterval = 5 * time.Second

	envPrefix = "ILOMON"
)

var (
	ErrMissingHost       = errors.New("config: ilo.host is required")
	ErrMissingSigningKey = errors.New("config: auth.signing_key is required")
	ErrBadInterval       = errors.New("config: monitor.interval must be positive")
)

type Config struct {
	Port    string                 `mapstructure:"port"`
	Log     LogConfig              `mapstructure:"log"`
	DB      DBConfig               `mapstructure:"db"`
	Auth    AuthConfig             `mapstructure:"auth"`
	ILO     ribcl.ConnectionConfig `mapstructure:"ilo"`
	Monitor MonitorConfig          `mapstructure:"monitor"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type DBConfig struct {
	Path string `mapstructure:"path"`
}

type AuthConfig struct {
	SigningKey string        `mapstructure:"signing_key"`
	TokenTTL   time.Duration `mapstructure:"token_ttl"`
}

type MonitorConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Interval time.Duration `mapstructure:"interval"`
}

// Load reads the config file and overlays the environment. An empty path
// searches ./configs and . for config.yml and tolerates its absence; an
// explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	if err := bindEnv(v); err != nil {
		return nil, err
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("configs")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", defaultPort)
	v.SetDefault("log.level", "info")
	v.SetDefault("db.path", defaultDBPath)
	v.SetDefault("auth.signing_key", "")
	v.SetDefault("auth.token_ttl", defaultTokenTTL)
	v.SetDefault("ilo.host", "")
	v.SetDefault("ilo.username", "")
	v.SetDefault("ilo.password", "")
	v.SetDefault("ilo.https", false)
	v.SetDefault("ilo.path", ribcl.DefaultPath)
	v.SetDefault("ilo.timeout", ribcl.DefaultTimeout)
	v.SetDefault("monitor.enabled", true)
	v.SetDefault("monitor.interval", defaultMonitorInterval)
}

// bindEnv keeps the short controller variable names operators already use
// and exposes every other key as ILOMON_<KEY>.
func bindEnv(v *viper.Viper) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	aliases := map[string][]string{
		"ilo.host":     {"ILO_IP", "ILOMON_ILO_HOST"},
		"ilo.username": {"ILO_USER", "ILOMON_ILO_USERNAME"},
		"ilo.password": {"ILO_PASS", "ILOMON_ILO_PASSWORD"},
	}
	for key, names := range aliases {
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return fmt.Errorf("bind %s: %w", key, err)
		}
	}
	return nil
}

// ValidateClient checks what every controller call needs.
func (c *Config) ValidateClient() error {
	if strings.TrimSpace(c.ILO.Host) == "" {
		return ErrMissingHost
	}
	return nil
}

// ValidateServer checks what the HTTP service needs on top of the client.
func (c *Config) ValidateServer() error {
	if err := c.ValidateClient(); err != nil {
		return err
	}
	if c.Auth.SigningKey == "" {
		return ErrMissingSigningKey
	}
	if c.Monitor.Enabled && c.Monitor.Interval <= 0 {
		return ErrBadInterval
	}
	return nil
}
