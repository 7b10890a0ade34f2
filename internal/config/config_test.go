package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.MongoDB.DBName != "mangsho" {
		t.Errorf("DBName = %q, want mangsho", cfg.MongoDB.DBName)
	}
	if cfg.Dashboard.LowStockThresholdKg != 125 {
		t.Errorf("LowStockThresholdKg = %v, want 125", cfg.Dashboard.LowStockThresholdKg)
	}
	if cfg.AlertEnabled() || cfg.SheetsEnabled() {
		t.Error("optional integrations must be disabled by default")
	}
}

func TestLoadThresholdOverride(t *testing.T) {
	t.Setenv("LOW_STOCK_THRESHOLD_KG", "80.5")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Dashboard.LowStockThresholdKg != 80.5 {
		t.Errorf("LowStockThresholdKg = %v, want 80.5", cfg.Dashboard.LowStockThresholdKg)
	}
}

func TestLoadRejectsNonNumericThreshold(t *testing.T) {
	t.Setenv("LOW_STOCK_THRESHOLD_KG", "lots")

	if _, err := Load(""); err == nil {
		t.Error("want error for non-numeric threshold")
	}
}

func TestValidateRejectsMissingMongoURI(t *testing.T) {
	cfg := &Config{
		Server:    ServerConfig{Port: "8080"},
		MongoDB:   MongoDBConfig{DBName: "mangsho"},
		Dashboard: DashboardConfig{LowStockThresholdKg: 125},
	}
	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "MONGODB_URI") {
		t.Errorf("err = %v", err)
	}
}

func TestValidateSheetsNeedsCredentials(t *testing.T) {
	cfg := &Config{
		Server:    ServerConfig{Port: "8080"},
		MongoDB:   MongoDBConfig{URI: "mongodb://localhost:27017", DBName: "mangsho"},
		Dashboard: DashboardConfig{LowStockThresholdKg: 125},
		Sheets:    SheetsConfig{SpreadsheetID: "sheet-1"},
	}
	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "GOOGLE_SHEETS_CREDENTIALS_PATH") {
		t.Errorf("err = %v", err)
	}
}

func TestValidateRejectsNonPositiveThreshold(t *testing.T) {
	cfg := &Config{
		Server:    ServerConfig{Port: "8080"},
		MongoDB:   MongoDBConfig{URI: "mongodb://localhost:27017", DBName: "mangsho"},
		Dashboard: DashboardConfig{LowStockThresholdKg: 0},
	}
	if err := cfg.Validate(); err == nil {
		t.Error("want error for zero threshold")
	}
}
