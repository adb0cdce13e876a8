package main

import (
	"errors"
	"testing"
)

func TestParseLayout(t *testing.T) {
	for _, l := range []layout{layoutCircle, layoutClosedCircle, layoutLine} {
		got, err := parseLayout(l.String())
		if err != nil {
			t.Fatalf("parseLayout(%q): %v", l, err)
		}
		if got != l {
			t.Fatalf("parseLayout(%q) = %v", l, got)
		}
	}
	if _, err := parseLayout("spiral"); err == nil {
		t.Fatal("expected error for unknown layout")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultDemoConfig()
	if err := cfg.validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.layout != layoutClosedCircle || cfg.oscillatorCount != 144 || cfg.periodSeconds != 8 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.backgroundColor != grey(0.1) || cfg.borderColor != grey(0.2) {
		t.Fatalf("unexpected default colors: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*demoConfig)
		wantErr error
	}{
		{"zero count", func(c *demoConfig) { c.oscillatorCount = 0 }, errNoOscillators},
		{"zero period", func(c *demoConfig) { c.periodSeconds = 0 }, errBadPeriod},
		{"negative period", func(c *demoConfig) { c.periodSeconds = -1 }, errBadPeriod},
		{"effect above one", func(c *demoConfig) { c.backgroundEffectAmount = 1.5 }, nil},
		{"negative radius", func(c *demoConfig) { c.oscillatorDrawRadius = -1 }, nil},
		{"unknown layout", func(c *demoConfig) { c.layout = layout(9) }, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultDemoConfig()
			tc.mutate(&cfg)
			err := cfg.validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Fatalf("err = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestConfigFromFlagsDefaults(t *testing.T) {
	cfg, err := configFromFlags()
	if err != nil {
		t.Fatalf("configFromFlags: %v", err)
	}
	if cfg != defaultDemoConfig() {
		t.Fatalf("flag defaults = %+v, want %+v", cfg, defaultDemoConfig())
	}
}
