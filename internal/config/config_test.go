package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/jesap_test")

	cfg := Load()

	if cfg.HTTPPort != "8080" {
		t.Errorf("HTTPPort = %q", cfg.HTTPPort)
	}
	if !cfg.RecruitingSeason {
		t.Error("RecruitingSeason should default to open")
	}
	if cfg.MaxResumeBytes != 5<<20 {
		t.Errorf("MaxResumeBytes = %d, want 5 MB", cfg.MaxResumeBytes)
	}
	if cfg.ExternalTimeout != 10*time.Second {
		t.Errorf("ExternalTimeout = %v", cfg.ExternalTimeout)
	}
	if cfg.SheetRange != "Candidature!A:S" {
		t.Errorf("SheetRange = %q", cfg.SheetRange)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/jesap_test")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("RECRUITING_SEASON", "false")
	t.Setenv("MAX_RESUME_BYTES", "1048576")
	t.Setenv("EXTERNAL_TIMEOUT", "3s")

	cfg := Load()

	if cfg.HTTPPort != "9090" {
		t.Errorf("HTTPPort = %q", cfg.HTTPPort)
	}
	if cfg.RecruitingSeason {
		t.Error("RECRUITING_SEASON=false not honored")
	}
	if cfg.MaxResumeBytes != 1<<20 {
		t.Errorf("MaxResumeBytes = %d", cfg.MaxResumeBytes)
	}
	if cfg.ExternalTimeout != 3*time.Second {
		t.Errorf("ExternalTimeout = %v", cfg.ExternalTimeout)
	}
}
