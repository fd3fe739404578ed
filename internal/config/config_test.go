package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	want := time.Date(2027, 12, 17, 21, 0, 0, 0, time.UTC)
	if !cfg.HomeTarget.Equal(want) {
		t.Errorf("HomeTarget = %v, want %v", cfg.HomeTarget, want)
	}
	want = time.Date(2028, 11, 1, 18, 0, 0, 0, time.UTC)
	if !cfg.FixedTarget.Equal(want) {
		t.Errorf("FixedTarget = %v, want %v", cfg.FixedTarget, want)
	}
	if cfg.Interval != time.Second {
		t.Errorf("Interval = %v, want 1s", cfg.Interval)
	}
	if len(cfg.Tabs) != 3 || cfg.Tabs[0].Key != "home" {
		t.Errorf("Tabs = %+v", cfg.Tabs)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.HomeTarget.Equal(Default().HomeTarget) {
		t.Errorf("HomeTarget = %v, want default", cfg.HomeTarget)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	data := "home-target: \"2030-01-01T00:00:00Z\"\ninterval: 2s\nlog-file: /tmp/countdown.log\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.HomeTarget.Equal(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("HomeTarget = %v", cfg.HomeTarget)
	}
	if !cfg.FixedTarget.Equal(Default().FixedTarget) {
		t.Errorf("FixedTarget = %v, want default", cfg.FixedTarget)
	}
	if cfg.Interval != 2*time.Second {
		t.Errorf("Interval = %v, want 2s", cfg.Interval)
	}
	if cfg.LogFile != "/tmp/countdown.log" {
		t.Errorf("LogFile = %q", cfg.LogFile)
	}
	if cfg.ConfigPath != path {
		t.Errorf("ConfigPath = %q, want %q", cfg.ConfigPath, path)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("COUNTDOWN_FIXED_TARGET", "2029-06-01T12:00:00+02:00")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.FixedTarget.Equal(time.Date(2029, 6, 1, 10, 0, 0, 0, time.UTC)) {
		t.Errorf("FixedTarget = %v", cfg.FixedTarget)
	}
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv("COUNTDOWN_HOME_TARGET", "tomorrow")

	if _, err := Load(filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Fatal("expected error for malformed home-target")
	}
}
