package config

import "testing"

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{
			"PORT", "HOST", "LOG_LEVEL", "SECRET_KEY",
			"DATA_DIR", "FEEDBACK_FILE", "STATIC_DIR", "PUBLIC_BASE_URL",
		} {
			t.Setenv(key, "")
		}

		cfg, err := Load()
		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}

		if cfg.Server.Port != "8080" {
			t.Errorf("expected default port 8080, got %s", cfg.Server.Port)
		}
		if cfg.SecretKey != "dev-key-for-prototype" {
			t.Errorf("expected dev secret fallback, got %s", cfg.SecretKey)
		}
		if cfg.Store.DataDir != "data" {
			t.Errorf("expected default data dir, got %s", cfg.Store.DataDir)
		}
	})

	t.Run("env overrides", func(t *testing.T) {
		t.Setenv("PORT", "9000")
		t.Setenv("SECRET_KEY", "prod-secret")
		t.Setenv("PUBLIC_BASE_URL", "https://clearlabel.example.com/")
		t.Setenv("LOG_LEVEL", "debug")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}

		if cfg.Server.Port != "9000" {
			t.Errorf("expected port 9000, got %s", cfg.Server.Port)
		}
		if cfg.SecretKey != "prod-secret" {
			t.Errorf("expected prod-secret, got %s", cfg.SecretKey)
		}
		if cfg.PublicBaseURL != "https://clearlabel.example.com" {
			t.Errorf("expected trailing slash trimmed, got %s", cfg.PublicBaseURL)
		}
	})

	t.Run("invalid log level", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "verbose")

		if _, err := Load(); err == nil {
			t.Error("expected error for invalid log level")
		}
	})
}
