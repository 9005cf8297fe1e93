// Package config provides configuration management and dependency injection for the notifier.
// It handles loading configuration from files and environment variables, and sets up the DI container.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the application configuration.
type Config struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
	BaseURL   string `mapstructure:"base_url"`

	Campfire CampfireConfig `mapstructure:"campfire"`
	Slack    SlackConfig    `mapstructure:"slack"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`

	// Timeout applied to outbound chat API calls.
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`

	v *viper.Viper
}

// CampfireConfig represents the Campfire credentials and room.
type CampfireConfig struct {
	Subdomain string `mapstructure:"subdomain"`
	APIToken  string `mapstructure:"api_token"`
	Room      string `mapstructure:"room"`
}

// SlackConfig represents the Slack incoming webhook.
type SlackConfig struct {
	WebhookURL string `mapstructure:"webhook_url"`
}

// ServerConfig represents the HTTP gateway configuration.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig represents database configuration.
type DatabaseConfig struct {
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	DBName   string `mapstructure:"dbName"`
	SSLMode  string `mapstructure:"sslMode"`

	AutoMigrate bool `mapstructure:"auto_migrate"`

	// Connection pool settings.
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// Environment variables understood by Seyren deployments.
var legacyEnv = map[string]string{
	"campfire.subdomain": "CAMPFIRE_SUBDOMAIN",
	"campfire.api_token": "CAMPFIRE_APITOKEN",
	"campfire.room":      "CAMPFIRE_ROOM",
	"base_url":           "SEYREN_URL",
	"slack.webhook_url":  "SLACK_WEBHOOK_URL",
}

// LoadConfig loads configuration from file and environment.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults.
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("base_url", "http://localhost:8080/seyren")
	v.SetDefault("http_timeout", "10s")
	v.SetDefault("campfire.subdomain", "")
	v.SetDefault("campfire.api_token", "")
	v.SetDefault("campfire.room", "")
	v.SetDefault("slack.webhook_url", "")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("database.host", "")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.conn_max_lifetime", "1h")

	// Set config file.
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/seyren-notifier")
	}

	// Enable environment variables.
	v.SetEnvPrefix("SEYREN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, env := range legacyEnv {
		prefixed := "SEYREN_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	// Read config file.
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.v = v

	// Validate configuration.
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}

	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("log_format must be text or json, got %q", c.LogFormat)
	}

	if strings.TrimSpace(c.BaseURL) == "" {
		return fmt.Errorf("base_url is required")
	}

	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("http_timeout must be positive")
	}

	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}

	if c.Database.Host != "" && c.Database.DBName == "" {
		return fmt.Errorf("database.dbName is required when database.host is set")
	}

	return nil
}

// Settings returns the notifier settings backed by this configuration.
func (c *Config) Settings() *Settings {
	if c.v == nil {
		c.v = viper.New()
		c.v.Set("base_url", c.BaseURL)
		c.v.Set("campfire.subdomain", c.Campfire.Subdomain)
		c.v.Set("campfire.api_token", c.Campfire.APIToken)
		c.v.Set("campfire.room", c.Campfire.Room)
		c.v.Set("slack.webhook_url", c.Slack.WebhookURL)
	}
	return &Settings{v: c.v}
}

// GetDatabaseDSN returns the database connection string.
func (c *DatabaseConfig) GetDatabaseDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// Settings implements interfaces.NotificationConfig. Every accessor looks the
// key up again, so environment changes are picked up on the next notification.
type Settings struct {
	v *viper.Viper
}

// BaseURL returns the Seyren URL used to link back to checks.
func (s *Settings) BaseURL() string {
	return strings.TrimRight(s.v.GetString("base_url"), "/")
}

// CampfireSubdomain returns the Campfire account subdomain.
func (s *Settings) CampfireSubdomain() string {
	return s.v.GetString("campfire.subdomain")
}

// CampfireAPIToken returns the Campfire API token.
func (s *Settings) CampfireAPIToken() string {
	return s.v.GetString("campfire.api_token")
}

// CampfireRoom returns the Campfire room name.
func (s *Settings) CampfireRoom() string {
	return s.v.GetString("campfire.room")
}

// SlackWebhookURL returns the Slack incoming webhook URL.
func (s *Settings) SlackWebhookURL() string {
	return s.v.GetString("slack.webhook_url")
}
