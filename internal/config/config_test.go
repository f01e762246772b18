package config

import (
	"os"
	"testing"
)

func TestGetEnvOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal string
		expected   string
	}{
		{"uses env value", "TEST_VAR_1", "hello", "default", "hello"},
		{"uses default when empty", "TEST_VAR_2", "", "default", "default"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			result := getEnvOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, result)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "OPENROUTER_API_KEY", "OPENROUTER_BASE_URL", "APP_URL", "APP_NAME"} {
		os.Unsetenv(key)
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Expected default port 8080, got %q", cfg.Port)
	}
	if cfg.OpenRouterAPIKey != "" {
		t.Errorf("Expected empty API key default, got %q", cfg.OpenRouterAPIKey)
	}
	if cfg.OpenRouterBaseURL != "https://openrouter.ai/api/v1" {
		t.Errorf("Unexpected base URL default: %q", cfg.OpenRouterBaseURL)
	}
	if cfg.AppURL != "http://localhost:3000" {
		t.Errorf("Unexpected app URL default: %q", cfg.AppURL)
	}
	if cfg.AppName != "FancyChat App" {
		t.Errorf("Unexpected app name default: %q", cfg.AppName)
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	os.Setenv("OPENROUTER_API_KEY", "sk-or-test")
	os.Setenv("APP_NAME", "My App")
	defer os.Unsetenv("OPENROUTER_API_KEY")
	defer os.Unsetenv("APP_NAME")

	cfg := Load()

	if cfg.OpenRouterAPIKey != "sk-or-test" {
		t.Errorf("Expected API key from env, got %q", cfg.OpenRouterAPIKey)
	}
	if cfg.AppName != "My App" {
		t.Errorf("Expected app name from env, got %q", cfg.AppName)
	}
}
