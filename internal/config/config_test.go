package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.ArraySize != 5 {
		t.Errorf("array size = %d, want 5", cfg.ArraySize)
	}
	if cfg.StepDelay != 800*time.Millisecond {
		t.Errorf("step delay = %s, want 800ms", cfg.StepDelay)
	}
	if cfg.TimerRefresh != 20*time.Millisecond {
		t.Errorf("timer refresh = %s, want 20ms", cfg.TimerRefresh)
	}
	if cfg.HistoryLimit != 10 {
		t.Errorf("history limit = %d, want 10", cfg.HistoryLimit)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SORTVIS_ARRAY_SIZE", "8")
	t.Setenv("SORTVIS_STEP_DELAY", "100ms")
	t.Setenv("SORTVIS_HISTORY_LIMIT", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.ArraySize != 8 {
		t.Errorf("array size = %d, want 8", cfg.ArraySize)
	}
	if cfg.StepDelay != 100*time.Millisecond {
		t.Errorf("step delay = %s, want 100ms", cfg.StepDelay)
	}
	if cfg.HistoryLimit != 3 {
		t.Errorf("history limit = %d, want 3", cfg.HistoryLimit)
	}
}

func TestLoadRejectsNonPositiveValues(t *testing.T) {
	cases := map[string]string{
		"SORTVIS_ARRAY_SIZE":    "0",
		"SORTVIS_STEP_DELAY":    "-1s",
		"SORTVIS_TIMER_REFRESH": "0s",
	}
	for envVar, value := range cases {
		t.Run(envVar, func(t *testing.T) {
			t.Setenv(envVar, value)
			if _, err := Load(); err == nil {
				t.Errorf("expected error for %s=%s", envVar, value)
			}
		})
	}
}
