package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Input != "input.txt" || cfg.Output != "output.txt" {
		t.Fatalf("unexpected paths %q %q", cfg.Input, cfg.Output)
	}
	if cfg.LogLevel != "info" || cfg.Render || cfg.Strict || cfg.MetricsFile != "" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestLoadEnvAndArgs(t *testing.T) {
	t.Setenv("MARS_INPUT", "env-in.txt")
	t.Setenv("MARS_OUTPUT", "env-out.txt")
	t.Setenv("MARS_STRICT", "true")
	t.Setenv("MARS_LOG_LEVEL", "debug")

	cfg, err := Load([]string{"arg-in.txt"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Input != "arg-in.txt" {
		t.Fatalf("args must override env, got %q", cfg.Input)
	}
	if cfg.Output != "env-out.txt" {
		t.Fatalf("want env output got %q", cfg.Output)
	}
	if !cfg.Strict || cfg.LogLevel != "debug" {
		t.Fatalf("env not applied: %+v", cfg)
	}
}
