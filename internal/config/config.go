package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is the full service configuration loaded from config.toml.
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Site         SiteConfig         `toml:"site"`
	CalendarFeed CalendarFeedConfig `toml:"calendar_feed"`
	Zoom         ZoomConfig         `toml:"zoom"`
	SMTP         SMTPConfig         `toml:"smtp"`
	Reminders    RemindersConfig    `toml:"reminders"`
}

// ServerConfig holds HTTP server settings. Timeouts are in seconds.
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig holds Postgres connection settings.
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // seconds
}

// DSN builds the lib/pq connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig holds logger settings.
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig holds prometheus settings.
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// SiteConfig holds the public-facing site settings used when composing
// cancel/reschedule links, and the shared secret guarding internal routes.
type SiteConfig struct {
	BaseURL       string `toml:"base_url"`
	InternalToken string `toml:"internal_token"`
}

// CalendarFeedConfig holds the external busy-calendar integration settings.
// An empty ics_url means the integration is unconfigured.
type CalendarFeedConfig struct {
	ICSURL  string `toml:"ics_url"`
	Timeout int    `toml:"timeout"` // seconds
}

// ZoomConfig holds server-to-server OAuth credentials for the meetings API.
type ZoomConfig struct {
	AccountID    string `toml:"account_id"`
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
	BaseURL      string `toml:"base_url"`
	OAuthURL     string `toml:"oauth_url"`
	Timeout      int    `toml:"timeout"` // seconds
}

// SMTPConfig holds outgoing mail settings.
type SMTPConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
	From string `toml:"from"`
}

// RemindersConfig controls the in-process reminder sweep schedule.
type RemindersConfig struct {
	Enabled  bool   `toml:"enabled"`
	Schedule string `toml:"schedule"` // cron expression
}

// Load reads and validates configuration from the given TOML file.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 15
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 300
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "booking-service"
	}
	if cfg.CalendarFeed.Timeout == 0 {
		cfg.CalendarFeed.Timeout = 10
	}
	if cfg.Zoom.BaseURL == "" {
		cfg.Zoom.BaseURL = "https://api.zoom.us"
	}
	if cfg.Zoom.OAuthURL == "" {
		cfg.Zoom.OAuthURL = "https://zoom.us"
	}
	if cfg.Zoom.Timeout == 0 {
		cfg.Zoom.Timeout = 15
	}
	if cfg.SMTP.Port == 0 {
		cfg.SMTP.Port = 25
	}
	if cfg.Reminders.Schedule == "" {
		cfg.Reminders.Schedule = "*/5 * * * *"
	}
}

func validate(cfg *Config) error {
	if cfg.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if cfg.Database.User == "" {
		return fmt.Errorf("config: database.user is required")
	}
	if cfg.Database.DBName == "" {
		return fmt.Errorf("config: database.dbname is required")
	}
	if cfg.Site.InternalToken == "" {
		return fmt.Errorf("config: site.internal_token is required")
	}
	return nil
}
