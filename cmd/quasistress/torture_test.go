package main

import "testing"

// TestParseTortureArgs_Defaults verifies defaults with no options.
func TestParseTortureArgs_Defaults(t *testing.T) {
	cfg, err := parseTortureArgs(nil)
	if err != nil {
		t.Fatalf("parseTortureArgs(nil) error: %v", err)
	}

	if cfg.workers != 64 || cfg.iters != 1000 || cfg.words != 64 || cfg.fallback {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

// TestParseTortureArgs_Options verifies each option is applied.
func TestParseTortureArgs_Options(t *testing.T) {
	cfg, err := parseTortureArgs([]string{
		"-workers=8", "-iters=500", "-words=16", "-fallback",
	})
	if err != nil {
		t.Fatalf("parseTortureArgs error: %v", err)
	}

	if cfg.workers != 8 {
		t.Errorf("workers = %d, want 8", cfg.workers)
	}
	if cfg.iters != 500 {
		t.Errorf("iters = %d, want 500", cfg.iters)
	}
	if cfg.words != 16 {
		t.Errorf("words = %d, want 16", cfg.words)
	}
	if !cfg.fallback {
		t.Error("fallback = false, want true")
	}
}

// TestParseTortureArgs_Invalid verifies bad options are rejected.
func TestParseTortureArgs_Invalid(t *testing.T) {
	cases := [][]string{
		{"-workers=0"},
		{"-iters=-3"},
		{"-words=abc"},
		{"--bogus"},
		{"extra"},
	}

	for _, args := range cases {
		if _, err := parseTortureArgs(args); err == nil {
			t.Errorf("parseTortureArgs(%v) accepted invalid input", args)
		}
	}
}
