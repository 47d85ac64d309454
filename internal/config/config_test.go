package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("GEMINI_MODEL_ID", "")
	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Fatalf("expected default env, got %s", cfg.Env)
	}
	if cfg.GeminiModelID != "gemini-2.5-flash" {
		t.Fatalf("expected default gemini model, got %s", cfg.GeminiModelID)
	}
	if cfg.WorksheetTitle != "" {
		t.Fatalf("expected empty default worksheet title, got %s", cfg.WorksheetTitle)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("TARGET_GROUP_JID", "120363403986445201@g.us")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("GEMINI_MODEL_ID", "gemini-2.0-flash")
	t.Setenv("GOOGLE_SHEETS_CREDENTIALS_PATH", "/etc/creds.json")
	t.Setenv("SHEET_NAME", "Leads")
	t.Setenv("WORKSHEET_TITLE", "Inbound")
	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("expected override port, got %s", cfg.Port)
	}
	if cfg.TargetGroupJID != "120363403986445201@g.us" {
		t.Fatalf("expected target group override, got %s", cfg.TargetGroupJID)
	}
	if cfg.GeminiModelID != "gemini-2.0-flash" {
		t.Fatalf("expected gemini model override, got %s", cfg.GeminiModelID)
	}
	if cfg.SheetName != "Leads" {
		t.Fatalf("expected sheet name override, got %s", cfg.SheetName)
	}
}

func TestValidateMissingRequired(t *testing.T) {
	t.Setenv("TARGET_GROUP_JID", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_SHEETS_CREDENTIALS_PATH", "")
	t.Setenv("SHEET_NAME", "")
	cfg := Load()
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error for empty config")
	}
	for _, key := range []string{"TARGET_GROUP_JID", "GEMINI_API_KEY", "GOOGLE_SHEETS_CREDENTIALS_PATH", "SHEET_NAME"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("expected error to name %s, got %q", key, err)
		}
	}
}

func TestValidateComplete(t *testing.T) {
	cfg := &Config{
		TargetGroupJID:        "120363403986445201@g.us",
		GeminiAPIKey:          "test-key",
		SheetsCredentialsPath: "/etc/creds.json",
		SheetName:             "Leads",
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}
