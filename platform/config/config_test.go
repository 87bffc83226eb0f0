package config

import "testing"

func setEnv(t *testing.T, values map[string]string) {
	t.Helper()
	for key, value := range values {
		t.Setenv(key, value)
	}
}

func TestLoadDefaults(t *testing.T) {
	setEnv(t, map[string]string{
		"APP_ENV":        "development",
		"HTTP_ADDR":      ":5000",
		"PORT":           "",
		"CATALOG_SOURCE": "embedded",
		"CORS_ALLOW_ALL": "true",
		"CORS_ORIGINS":   "*",
		"RATE_LIMIT_RPS": "0",
	})

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.GetHTTPAddr() != ":5000" {
		t.Fatalf("expected addr :5000, got %q", cfg.GetHTTPAddr())
	}
	if !cfg.GetCORSAllowAll() {
		t.Fatal("expected CORS to allow all origins by default")
	}
	if cfg.GetCatalogSource() != CatalogSourceEmbedded {
		t.Fatalf("expected embedded source, got %q", cfg.GetCatalogSource())
	}
	if cfg.IsRateLimitEnabled() {
		t.Fatal("expected rate limiting to be disabled")
	}
}

func TestLoadPortOverridesAddr(t *testing.T) {
	setEnv(t, map[string]string{
		"HTTP_ADDR":      "127.0.0.1:5000",
		"PORT":           "10000",
		"CATALOG_SOURCE": "embedded",
	})

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.GetHTTPAddr() != "127.0.0.1:10000" {
		t.Fatalf("expected 127.0.0.1:10000, got %q", cfg.GetHTTPAddr())
	}
}

func TestLoadRejectsInconsistentSettings(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "file source without path",
			env:  map[string]string{"CATALOG_SOURCE": "file", "CATALOG_FILE": ""},
		},
		{
			name: "postgres source without database",
			env:  map[string]string{"CATALOG_SOURCE": "postgres", "DATABASE_URL": ""},
		},
		{
			name: "object source without minio",
			env:  map[string]string{"CATALOG_SOURCE": "object", "MINIO_ENDPOINT": ""},
		},
		{
			name: "object source without key",
			env: map[string]string{
				"CATALOG_SOURCE":        "object",
				"MINIO_ENDPOINT":        "localhost:9000",
				"CATALOG_OBJECT_BUCKET": "catalog",
				"CATALOG_OBJECT_KEY":    "",
			},
		},
		{
			name: "unknown source",
			env:  map[string]string{"CATALOG_SOURCE": "ftp"},
		},
		{
			name: "credentials with wildcard origin",
			env: map[string]string{
				"CATALOG_SOURCE":         "embedded",
				"CORS_ORIGINS":           "*",
				"CORS_ALLOW_CREDENTIALS": "true",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnv(t, tt.env)
			if _, err := Load(); err == nil {
				t.Fatal("expected an error, got nil")
			}
		})
	}
}

func TestResolveHTTPAddr(t *testing.T) {
	if got := resolveHTTPAddr(":5000", ""); got != ":5000" {
		t.Fatalf("expected :5000, got %q", got)
	}
	if got := resolveHTTPAddr(":5000", "8080"); got != ":8080" {
		t.Fatalf("expected :8080, got %q", got)
	}
	if got := resolveHTTPAddr("bogus", "8080"); got != ":8080" {
		t.Fatalf("expected :8080, got %q", got)
	}
}
