package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds application configuration
type Config struct {
	Port     string
	Env      string
	LogLevel string

	// WhatsApp routing
	TargetGroupJID string

	// Gemini
	GeminiAPIKey  string
	GeminiModelID string

	// Google Sheets
	SheetsCredentialsPath string
	SheetName             string
	WorksheetTitle        string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:     getEnv("PORT", "8080"),
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		TargetGroupJID: getEnv("TARGET_GROUP_JID", ""),

		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		GeminiModelID: getEnv("GEMINI_MODEL_ID", "gemini-2.5-flash"),

		SheetsCredentialsPath: getEnv("GOOGLE_SHEETS_CREDENTIALS_PATH", ""),
		SheetName:             getEnv("SHEET_NAME", ""),
		WorksheetTitle:        getEnv("WORKSHEET_TITLE", ""),
	}
}

// Validate reports missing required configuration. A failure here is a
// deployment defect and should abort startup.
func (c *Config) Validate() error {
	var missing []string
	if strings.TrimSpace(c.TargetGroupJID) == "" {
		missing = append(missing, "TARGET_GROUP_JID")
	}
	if strings.TrimSpace(c.GeminiAPIKey) == "" {
		missing = append(missing, "GEMINI_API_KEY")
	}
	if strings.TrimSpace(c.SheetsCredentialsPath) == "" {
		missing = append(missing, "GOOGLE_SHEETS_CREDENTIALS_PATH")
	}
	if strings.TrimSpace(c.SheetName) == "" {
		missing = append(missing, "SHEET_NAME")
	}
	if len(missing) > 0 {
		return fmt.Errorf("config: missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
