package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("VISION_MODEL", "")
	t.Setenv("VISION_RPS", "")
	t.Setenv("RETENTION_MONTHS", "")
	t.Setenv("CORRECTIONS_LIMIT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.VisionModel != "gpt-4o" {
		t.Fatalf("expected default vision model gpt-4o, got %q", cfg.VisionModel)
	}
	if cfg.VisionRPS != 1 {
		t.Fatalf("expected default vision rps 1, got %v", cfg.VisionRPS)
	}
	if cfg.RetentionMonths != 6 {
		t.Fatalf("expected default retention 6 months, got %d", cfg.RetentionMonths)
	}
	if cfg.CorrectionsLimit != 5 {
		t.Fatalf("expected default corrections limit 5, got %d", cfg.CorrectionsLimit)
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	t.Setenv("VISION_MODEL", "gpt-4o-mini")
	t.Setenv("VISION_RPS", "0.5")
	t.Setenv("MAX_UPLOAD_MB", "10")
	t.Setenv("API_RATE_LIMIT_RPS", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.VisionModel != "gpt-4o-mini" {
		t.Fatalf("expected vision model override, got %q", cfg.VisionModel)
	}
	if cfg.VisionRPS != 0.5 {
		t.Fatalf("expected vision rps 0.5, got %v", cfg.VisionRPS)
	}
	if cfg.MaxUploadMB != 10 {
		t.Fatalf("expected max upload 10MB, got %d", cfg.MaxUploadMB)
	}
	if cfg.APIRateLimitRPS != 5 {
		t.Fatalf("expected api rate limit 5, got %v", cfg.APIRateLimitRPS)
	}
}

func TestLoadAppliesConfigFileWithoutOverridingEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	contents := "VISION_MODEL: gpt-4o-mini\nNATS_SUBJECT: auditoria.test\n"
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("VISION_MODEL", "gpt-4o")
	t.Setenv("NATS_SUBJECT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.VisionModel != "gpt-4o" {
		t.Fatalf("env should win over file, got %q", cfg.VisionModel)
	}
	if cfg.NATSSubject != "auditoria.test" {
		t.Fatalf("expected file value for nats subject, got %q", cfg.NATSSubject)
	}
}
