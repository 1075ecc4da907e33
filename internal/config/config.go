package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the full service configuration, loaded from a TOML file.
// Secrets can be overridden through environment variables so the file can be
// committed without credentials.
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Admin     AdminConfig     `toml:"admin"`
	Email     EmailConfig     `toml:"email"`
	SMS       SMSConfig       `toml:"sms"`
	Reminders RemindersConfig `toml:"reminders"`
}

// ServerConfig configures the HTTP listener. Timeouts are in seconds.
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig configures the PostgreSQL connection pool.
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

// LogsConfig configures the file logger.
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig configures the prometheus endpoint.
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// AdminConfig holds the back-office access key checked by the admin
// middleware. Placeholder until real authentication lands.
type AdminConfig struct {
	APIKey string `toml:"api_key"`
}

// EmailConfig configures the EmailJS-compatible send endpoint.
type EmailConfig struct {
	Enabled             bool   `toml:"enabled"`
	BaseURL             string `toml:"base_url"`
	ServiceID           string `toml:"service_id"`
	UserID              string `toml:"user_id"`
	ReceivedTemplateID  string `toml:"received_template_id"`
	ConfirmedTemplateID string `toml:"confirmed_template_id"`
	ReminderTemplateID  string `toml:"reminder_template_id"`
	Timeout             int    `toml:"timeout"` // seconds
}

// SMSConfig configures the Twilio-compatible messaging endpoint.
type SMSConfig struct {
	Enabled    bool   `toml:"enabled"`
	BaseURL    string `toml:"base_url"`
	AccountSID string `toml:"account_sid"`
	AuthToken  string `toml:"auth_token"`
	FromNumber string `toml:"from_number"`
	Timeout    int    `toml:"timeout"` // seconds
}

// RemindersConfig configures the scheduled next-day reminder job.
type RemindersConfig struct {
	Enabled  bool   `toml:"enabled"`
	CronExpr string `toml:"cron_expr"`
}

// Load reads and validates the configuration file. Environment variables
// DB_PASSWORD, SMS_AUTH_TOKEN and ADMIN_API_KEY override the file values.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("SMS_AUTH_TOKEN"); v != "" {
		cfg.SMS.AuthToken = v
	}
	if v := os.Getenv("ADMIN_API_KEY"); v != "" {
		cfg.Admin.APIKey = v
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			ServiceName: "booking-service",
			Path:        "/metrics",
		},
		Email:     EmailConfig{Timeout: 10},
		SMS:       SMSConfig{Timeout: 10},
		Reminders: RemindersConfig{CronExpr: "0 9 * * *"},
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: invalid http_port %d", c.Server.HTTPPort)
	}
	if c.Database.Host == "" || c.Database.DBName == "" || c.Database.User == "" {
		return fmt.Errorf("config: database host, user and dbname are required")
	}
	if c.Email.Enabled && (c.Email.BaseURL == "" || c.Email.ServiceID == "") {
		return fmt.Errorf("config: email enabled but base_url/service_id missing")
	}
	if c.SMS.Enabled && (c.SMS.BaseURL == "" || c.SMS.AccountSID == "") {
		return fmt.Errorf("config: sms enabled but base_url/account_sid missing")
	}
	if c.Reminders.Enabled && c.Reminders.CronExpr == "" {
		return fmt.Errorf("config: reminders enabled but cron_expr missing")
	}
	return nil
}
