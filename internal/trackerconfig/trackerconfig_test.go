package trackerconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmpty_AllFieldsNil(t *testing.T) {
	cfg := Empty()
	if cfg.Variant != nil || cfg.HypothesisNeighborhood != nil || cfg.DemoEventRateHz != nil ||
		cfg.DemoDurationSeconds != nil || cfg.LogVerbose != nil {
		t.Error("Empty() must return a config with every field nil")
	}
}

func TestGetters_FallBackToDefaultsWhenUnset(t *testing.T) {
	cfg := Empty()
	if got := cfg.GetVariant(); got != "haste_difference_star" {
		t.Errorf("GetVariant() = %q, want haste_difference_star", got)
	}
	if got := cfg.GetHypothesisNeighborhood(); got != 11 {
		t.Errorf("GetHypothesisNeighborhood() = %d, want 11", got)
	}
	if got := cfg.GetDemoEventRateHz(); got != 1000.0 {
		t.Errorf("GetDemoEventRateHz() = %v, want 1000", got)
	}
	if got := cfg.GetDemoDurationSeconds(); got != 2.0 {
		t.Errorf("GetDemoDurationSeconds() = %v, want 2", got)
	}
	if got := cfg.GetLogVerbose(); got != false {
		t.Errorf("GetLogVerbose() = %v, want false", got)
	}
}

func TestLoad_PartialFileOverridesOnlySetFields(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")
	if err := os.WriteFile(configPath, []byte(`{"variant": "haste_correlation"}`), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got := cfg.GetVariant(); got != "haste_correlation" {
		t.Errorf("GetVariant() = %q, want haste_correlation", got)
	}
	if got := cfg.GetHypothesisNeighborhood(); got != 11 {
		t.Errorf("GetHypothesisNeighborhood() = %d, want default 11", got)
	}
}

func TestLoad_MissingFileErrors(t *testing.T) {
	if _, err := Load("/nonexistent/path/to/config.json"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoad_RejectsNonJSONExtension(t *testing.T) {
	if _, err := Load("/some/path/config.yaml"); err == nil {
		t.Error("expected error for non-.json extension")
	}
}

func TestLoad_RejectsInvalidVariant(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")
	if err := os.WriteFile(configPath, []byte(`{"variant": "not_a_variant"}`), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("expected error for invalid variant name")
	}
}

func TestLoad_RejectsInvalidHypothesisNeighborhood(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")
	if err := os.WriteFile(configPath, []byte(`{"hypothesis_neighborhood": 9}`), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("expected error for hypothesis_neighborhood not in {7, 11}")
	}
}

func TestLoad_RejectsNonPositiveDemoRate(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")
	if err := os.WriteFile(configPath, []byte(`{"demo_event_rate_hz": -1}`), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("expected error for non-positive demo_event_rate_hz")
	}
}
