package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Growth.LastDay != 34 {
		t.Errorf("expected last day 34, got %f", cfg.Growth.LastDay)
	}
	if len(cfg.Growth.GroupSizes) != 6 {
		t.Errorf("expected 6 group sizes, got %d", len(cfg.Growth.GroupSizes))
	}
	if cfg.Fit.Workers < 1 {
		t.Error("workers should be positive")
	}
	if cfg.Metadata.Filter != "bdm::SimParam" {
		t.Errorf("unexpected filter %s", cfg.Metadata.Filter)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("sweep", "h_b")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if len(cfg.Curves.Sweep.B) != 5 || cfg.Curves.Sweep.B[4] != 50 {
		t.Errorf("unexpected b values %v", cfg.Curves.Sweep.B)
	}

	seg := GetPreset("segments", "rattumor")
	if seg == nil || seg.Vessels.ColsToDrop != 38 {
		t.Errorf("unexpected segments preset %+v", seg)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	cfg := GetPreset("sweep", "nonexistent")
	if cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}

	cfg = GetPreset("nonexistent", "h_a")
	if cfg != nil {
		t.Error("expected nil for nonexistent group")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("sweep")
	want := []string{"h_a", "h_b", "h_xbar", "l_a", "l_xbar"}
	if len(presets) != len(want) {
		t.Fatalf("expected %d presets, got %v", len(want), presets)
	}
	for i := range want {
		if presets[i] != want[i] {
			t.Errorf("preset[%d] = %s, want %s", i, presets[i], want[i])
		}
	}

	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent group")
	}
}

func TestSweepFor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Curves.Dt = 0.5
	s, ok := cfg.SweepFor("l_a")
	if !ok {
		t.Fatal("expected l_a sweep")
	}
	if s.Dt != 0.5 || s.Function != "l" {
		t.Errorf("unexpected sweep %+v", s)
	}
	if GetPreset("sweep", "l_a").Curves.Sweep.Dt != 0 {
		t.Error("SweepFor must not modify the preset")
	}
	if _, ok := cfg.SweepFor("missing"); ok {
		t.Error("expected no sweep for unknown name")
	}
}

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tumorkit.yaml")
	cfg := DefaultConfig()
	cfg.Fit.Workers = 4
	cfg.Growth.GroupSizes = []int{3, 3}
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Fit.Workers != 4 {
		t.Errorf("expected 4 workers, got %d", loaded.Fit.Workers)
	}
	if len(loaded.Growth.GroupSizes) != 2 {
		t.Errorf("expected 2 group sizes, got %v", loaded.Growth.GroupSizes)
	}
}

func TestLoadPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("fit:\n  workers: 8\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Fit.Workers != 8 {
		t.Errorf("expected 8 workers, got %d", cfg.Fit.Workers)
	}
	if cfg.Fit.MaxIter != DefaultMaxIter {
		t.Errorf("unset fields should keep defaults, got %d", cfg.Fit.MaxIter)
	}
}
