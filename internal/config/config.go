package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server    ServerConfig
	MongoDB   MongoDBConfig
	Dashboard DashboardConfig
	Reporting ReportingConfig
	Alert     AlertConfig
	Sheets    SheetsConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// MongoDBConfig holds settings for MongoDB.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// DashboardConfig holds tunables for the dashboard aggregator.
type DashboardConfig struct {
	// LowStockThresholdKg is the quantity below which (and above zero) an
	// inventory row counts as low stock.
	LowStockThresholdKg float64
}

// ReportingConfig holds scheduler-related settings for the daily summary.
type ReportingConfig struct {
	Enabled      bool
	CronSchedule string
	Timezone     string
}

// AlertConfig configures the outbound webhook used for operator alerts.
// Disabled when WebhookURL is empty.
type AlertConfig struct {
	WebhookURL string
	AuthToken  string
}

// SheetsConfig configures the optional Google Sheets export of daily
// summaries. Disabled when SpreadsheetID is empty.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
	ReportRange     string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	threshold, err := getenvFloat("LOW_STOCK_THRESHOLD_KG", 125)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		MongoDB: MongoDBConfig{
			URI:    getenvWithDefault("MONGODB_URI", "mongodb://localhost:27017"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "mangsho"),
		},
		Dashboard: DashboardConfig{
			LowStockThresholdKg: threshold,
		},
		Reporting: ReportingConfig{
			Enabled:      getenvWithDefault("REPORT_ENABLED", "true") == "true",
			CronSchedule: getenvWithDefault("REPORT_CRON_SCHEDULE", "0 20 * * *"),
			Timezone:     getenvWithDefault("TIMEZONE", "Asia/Dhaka"),
		},
		Alert: AlertConfig{
			WebhookURL: os.Getenv("ALERT_WEBHOOK_URL"),
			AuthToken:  os.Getenv("ALERT_WEBHOOK_TOKEN"),
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_REPORT_ID"),
			ReportRange:     getenvWithDefault("GOOGLE_SHEET_REPORT_RANGE", "DailySummary!A:H"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated. Optional
// integrations (alert webhook, sheets export) are only checked when enabled.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	switch {
	case c.MongoDB.URI == "":
		return errors.New("MONGODB_URI must be provided")
	case c.MongoDB.DBName == "":
		return errors.New("MONGODB_DB_NAME must be provided")
	}

	if c.Dashboard.LowStockThresholdKg <= 0 {
		return errors.New("LOW_STOCK_THRESHOLD_KG must be positive")
	}

	if c.Reporting.Enabled {
		if c.Reporting.CronSchedule == "" {
			return errors.New("REPORT_CRON_SCHEDULE must be provided")
		}
		if c.Reporting.Timezone == "" {
			return errors.New("TIMEZONE must be provided")
		}
	}

	if c.Sheets.SpreadsheetID != "" && c.Sheets.CredentialsPath == "" {
		return errors.New("GOOGLE_SHEETS_CREDENTIALS_PATH must be provided when sheet export is enabled")
	}

	return nil
}

// SheetsEnabled reports whether the daily summary should be exported to a
// spreadsheet.
func (c *Config) SheetsEnabled() bool {
	return c.Sheets.SpreadsheetID != ""
}

// AlertEnabled reports whether operator alerts should be pushed.
func (c *Config) AlertEnabled() bool {
	return c.Alert.WebhookURL != ""
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvFloat(key string, fallback float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be numeric: %w", key, err)
	}
	return value, nil
}
