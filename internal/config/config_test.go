package config

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/san-kum/radioactive/internal/decay"
	"github.com/san-kum/radioactive/internal/isotope"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Quantity != "radioactivity" {
		t.Errorf("expected quantity radioactivity, got %s", cfg.Quantity)
	}
	if cfg.Grid.Kind != "until" {
		t.Errorf("expected until grid, got %s", cfg.Grid.Kind)
	}
	if cfg.Grid.FloorBq <= 0 {
		t.Error("floor should be positive")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	p := GetPreset("pressurized-water")
	if p == nil {
		t.Fatal("expected preset, got nil")
	}
	want := 1.000 * wasteScale * 1000 / 137
	if got := p.Mixture.Get("Cs-137"); math.Abs(got-want) > 1e-12*want {
		t.Errorf("expected Cs-137 %g, got %g", want, got)
	}
	wantU := 9.480 * isotope.E(2) * wasteScale * 1000 / 238
	if got := p.Mixture.Get("U-238"); math.Abs(got-wantU) > 1e-9*wantU {
		t.Errorf("expected U-238 %g mol, got %g", wantU, got)
	}
	if ids := p.Mixture.IDs(); ids[0] != "Am-241" {
		t.Errorf("expected Am-241 first, got %s", ids[0])
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if p := GetPreset("nonexistent"); p != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	want := []string{"boiling-water", "pressurized-water"}
	if diff := cmp.Diff(want, ListPresets()); diff != "" {
		t.Errorf("presets mismatch (-want +got):\n%s", diff)
	}
}

func TestPresetsAreTabulated(t *testing.T) {
	table := isotope.Default()
	for _, name := range ListPresets() {
		p := GetPreset(name)
		if err := p.Mixture.Validate(); err != nil {
			t.Errorf("%s: %v", name, err)
		}
		for _, id := range p.Mixture.IDs() {
			if !table.Has(id) {
				t.Errorf("%s: isotope %s not in table", name, id)
			}
		}
		if _, err := decay.DecayProfile(p.Mixture); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := DefaultConfig()
	cfg.Mixture = decay.NewMixture(
		decay.Charge{ID: "Sr-90", Amount: 2},
		decay.Charge{ID: "Cs-137", Amount: 1},
	)
	cfg.Policy = "largest-fraction"
	cfg.Merge = "sum"
	cfg.Grid.Kind = "log"
	cfg.Grid.MinDecade = -1
	cfg.Grid.MaxDecade = 3

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if diff := cmp.Diff([]string{"Sr-90", "Cs-137"}, loaded.Mixture.IDs()); diff != "" {
		t.Errorf("mixture order mismatch (-want +got):\n%s", diff)
	}
	if loaded.Mixture.Get("Sr-90") != 2 {
		t.Errorf("expected Sr-90 2, got %g", loaded.Mixture.Get("Sr-90"))
	}
	if diff := cmp.Diff(cfg.Grid, loaded.Grid); diff != "" {
		t.Errorf("grid mismatch (-want +got):\n%s", diff)
	}
	if loaded.Policy != "largest-fraction" || loaded.Merge != "sum" {
		t.Errorf("policies not preserved: %s %s", loaded.Policy, loaded.Merge)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	cfg := DefaultConfig()
	cfg.Quantity = "concentration"
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.GetQuantity() != decay.QuantityConcentration {
		t.Errorf("expected concentration, got %v", loaded.GetQuantity())
	}
	if loaded.Grid.FloorBq != DefaultConfig().Grid.FloorBq {
		t.Errorf("expected default floor, got %g", loaded.Grid.FloorBq)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"quantity", func(c *Config) { c.Quantity = "mass" }},
		{"policy", func(c *Config) { c.Policy = "random" }},
		{"merge", func(c *Config) { c.Merge = "max" }},
		{"workers", func(c *Config) { c.Workers = -1 }},
		{"grid kind", func(c *Config) { c.Grid.Kind = "cubic" }},
		{"log range", func(c *Config) { c.Grid.Kind = "log"; c.Grid.MinDecade = 5; c.Grid.MaxDecade = 1 }},
		{"linear points", func(c *Config) { c.Grid.Kind = "linear"; c.Grid.Points = 1 }},
		{"floor", func(c *Config) { c.Grid.FloorBq = -1 }},
		{"charge", func(c *Config) { c.Mixture = decay.NewMixture(decay.Charge{ID: "Cs-137", Amount: -1}) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestNewSolver(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Merge = "sum"
	cfg.AllowUntabulated = true

	s, err := cfg.NewSolver(isotope.Default())
	if err != nil {
		t.Fatalf("new solver: %v", err)
	}
	if s.MergePolicy() != decay.SumOverlap {
		t.Errorf("expected sum merge, got %v", s.MergePolicy())
	}
	if !s.AllowsUntabulated() {
		t.Error("expected untabulated seeds allowed")
	}
	if s.Resolver().Policy().Name() != "first-listed" {
		t.Errorf("expected first-listed, got %s", s.Resolver().Policy().Name())
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("RADIOACTIVE_LOG_MODE", "prod")
	t.Setenv("RADIOACTIVE_WORKERS", "3")
	t.Setenv("RADIOACTIVE_FLOOR_BQ", "0.5")
	t.Setenv("RADIOACTIVE_VERBOSE", "true")

	e, err := ParseEnv()
	if err != nil {
		t.Fatalf("parse env: %v", err)
	}
	cfg := DefaultConfig()
	cfg.ApplyEnv(e)

	if cfg.LogMode != "prod" {
		t.Errorf("expected prod, got %s", cfg.LogMode)
	}
	if cfg.Workers != 3 {
		t.Errorf("expected 3 workers, got %d", cfg.Workers)
	}
	if cfg.Grid.FloorBq != 0.5 {
		t.Errorf("expected floor 0.5, got %g", cfg.Grid.FloorBq)
	}
	if !cfg.Verbose {
		t.Error("expected verbose from environment")
	}
}

func TestApplyEnv_Empty(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ApplyEnv(Env{})
	if diff := cmp.Diff(DefaultConfig(), cfg, cmp.AllowUnexported(decay.Mixture{})); diff != "" {
		t.Errorf("empty env changed config (-want +got):\n%s", diff)
	}
}

func TestParseEnv_Invalid(t *testing.T) {
	t.Setenv("RADIOACTIVE_WORKERS", "many")
	if _, err := ParseEnv(); err == nil {
		t.Error("expected error for non-numeric workers")
	}
}
